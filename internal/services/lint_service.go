package services

import (
	"context"

	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	"github.com/Tomas-vilte/matelint/internal/lint"
	"github.com/Tomas-vilte/matelint/internal/logger"
)

type LintService struct {
	git    ports.GitService
	linter *lint.Linter
}

func NewLintService(git ports.GitService, linter *lint.Linter) *LintService {
	return &LintService{
		git:    git,
		linter: linter,
	}
}

func (s *LintService) LintMessage(ctx context.Context, message string) lint.Report {
	return s.linter.Lint(ctx, message)
}

// LintFile lints a commit message file, the way a commit-msg hook receives it.
func (s *LintService) LintFile(ctx context.Context, path string) (lint.Report, error) {
	message, err := s.git.ReadMessageFile(path)
	if err != nil {
		return lint.Report{}, err
	}
	logger.Debug(ctx, "linting message file", "path", path)
	return s.linter.Lint(ctx, message), nil
}

// LintRange lints every commit in from..to, oldest first.
func (s *LintService) LintRange(ctx context.Context, from, to string) ([]lint.Report, error) {
	messages, err := s.git.CommitMessages(ctx, from, to)
	if err != nil {
		return nil, err
	}

	reports := make([]lint.Report, 0, len(messages))
	for _, msg := range messages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reports = append(reports, s.linter.Lint(ctx, msg))
	}
	logger.Info(ctx, "linted commit range", "from", from, "to", to, "count", len(reports))
	return reports, nil
}

func (s *LintService) InstallHook(ctx context.Context, force bool) (string, error) {
	return s.git.InstallHook(ctx, force)
}

func (s *LintService) UninstallHook(ctx context.Context) (string, error) {
	return s.git.UninstallHook(ctx)
}

// Failed reports whether a batch should make the command exit non-zero.
// With strict, warnings count as failures.
func Failed(reports []lint.Report, strict bool) bool {
	for _, r := range reports {
		if !r.Valid {
			return true
		}
		if strict && len(r.Warnings) > 0 {
			return true
		}
	}
	return false
}
