package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/logger"
)

const (
	hookMarker = "# installed by matelint"
	hookScript = "#!/bin/sh\n" + hookMarker + "\nmatelint lint --edit \"$1\"\n"

	// commitSeparator cannot appear in a commit message.
	commitSeparator = "\x00"
)

type GitService struct {
	dir string
}

func NewGitService() *GitService {
	return &GitService{}
}

// NewGitServiceAt runs every git command inside dir.
func NewGitServiceAt(dir string) *GitService {
	return &GitService{dir: dir}
}

func (s *GitService) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir
	return cmd
}

func (s *GitService) output(ctx context.Context, args ...string) (string, error) {
	cmd := s.command(ctx, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return string(out), nil
}

// RepoRoot gets the absolute path to the root of the working tree.
func (s *GitService) RepoRoot(ctx context.Context) (string, error) {
	out, err := s.output(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", apperrors.ErrNotRepository.WithError(err)
	}
	return strings.TrimSpace(out), nil
}

// ReadMessageFile reads a commit message file such as .git/COMMIT_EDITMSG.
// Relative paths are resolved against the service directory.
func (s *GitService) ReadMessageFile(path string) (string, error) {
	if !filepath.IsAbs(path) && s.dir != "" {
		path = filepath.Join(s.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.ErrReadMessageFile.WithError(err).WithContext("path", path)
	}
	return string(data), nil
}

func (s *GitService) CommitMessages(ctx context.Context, from, to string) ([]string, error) {
	if to == "" {
		to = "HEAD"
	}
	rangeSpec := to
	if from != "" {
		rangeSpec = from + ".." + to
	}

	out, err := s.output(ctx, "log", "--reverse", "--format=%B%x00", rangeSpec)
	if err != nil {
		return nil, apperrors.ErrGetCommits.WithError(err).WithContext("range", rangeSpec)
	}

	messages := make([]string, 0)
	for _, part := range strings.Split(out, commitSeparator) {
		msg := strings.TrimSpace(part)
		if msg == "" {
			continue
		}
		messages = append(messages, msg)
	}
	logger.Debug(ctx, "read commits", "range", rangeSpec, "count", len(messages))
	return messages, nil
}

// hookPath asks git where the commit-msg hook lives, which honours
// core.hooksPath and linked worktrees.
func (s *GitService) hookPath(ctx context.Context) (string, error) {
	out, err := s.output(ctx, "rev-parse", "--git-path", "hooks/commit-msg")
	if err != nil {
		return "", apperrors.ErrNotRepository.WithError(err)
	}
	path := strings.TrimSpace(out)
	if !filepath.IsAbs(path) && s.dir != "" {
		path = filepath.Join(s.dir, path)
	}
	return path, nil
}

// InstallHook writes the commit-msg hook. A hook written by someone else is
// only replaced with force; our own hook is always refreshed.
func (s *GitService) InstallHook(ctx context.Context, force bool) (string, error) {
	path, err := s.hookPath(ctx)
	if err != nil {
		return "", err
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if !force && !isOwnHook(existing) {
			return "", apperrors.ErrHookExists.WithContext("path", path)
		}
	case !errors.Is(err, os.ErrNotExist):
		return "", apperrors.ErrWriteHook.WithError(err).WithContext("path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", apperrors.ErrWriteHook.WithError(err).WithContext("path", path)
	}
	if err := os.WriteFile(path, []byte(hookScript), 0755); err != nil {
		return "", apperrors.ErrWriteHook.WithError(err).WithContext("path", path)
	}

	logger.Info(ctx, "commit-msg hook installed", "path", path)
	return path, nil
}

// UninstallHook removes the hook when it was written by InstallHook. A
// missing hook is not an error.
func (s *GitService) UninstallHook(ctx context.Context) (string, error) {
	path, err := s.hookPath(ctx)
	if err != nil {
		return "", err
	}

	existing, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", apperrors.ErrWriteHook.WithError(err).WithContext("path", path)
	}
	if !isOwnHook(existing) {
		return "", apperrors.ErrHookNotOwned.WithContext("path", path)
	}

	if err := os.Remove(path); err != nil {
		return "", apperrors.ErrWriteHook.WithError(err).WithContext("path", path)
	}

	logger.Info(ctx, "commit-msg hook removed", "path", path)
	return path, nil
}

func isOwnHook(content []byte) bool {
	return bytes.Contains(content, []byte(hookMarker))
}
