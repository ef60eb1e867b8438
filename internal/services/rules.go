package services

import (
	"context"
	"os"

	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	"github.com/Tomas-vilte/matelint/internal/logger"
)

// LoadRuleSource resolves the rule set for the current directory. Discovery
// stops at the repository root; outside a repository it walks up to the
// filesystem root.
func LoadRuleSource(ctx context.Context, git ports.GitService, explicit string) (config.RuleSource, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.RuleSource{}, err
	}

	stop, err := git.RepoRoot(ctx)
	if err != nil {
		logger.Debug(ctx, "not in a git repository, searching up to the filesystem root", "error", err)
		stop = ""
	}

	return config.ResolveRuleSource(ctx, explicit, cwd, stop)
}
