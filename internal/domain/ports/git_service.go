package ports

import "context"

// GitService is the slice of git the linter needs: reading commit messages
// and managing the commit-msg hook.
type GitService interface {
	RepoRoot(ctx context.Context) (string, error)
	ReadMessageFile(path string) (string, error)
	// CommitMessages returns the full messages of the commits in from..to,
	// oldest first. An empty from means every commit reachable from to.
	CommitMessages(ctx context.Context, from, to string) ([]string, error)
	InstallHook(ctx context.Context, force bool) (string, error)
	UninstallHook(ctx context.Context) (string, error)
}
