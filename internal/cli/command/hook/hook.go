package hook

import (
	"context"

	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/urfave/cli/v3"
)

type HookCommandFactory struct {
	git ports.GitService
}

func NewHookCommandFactory(git ports.GitService) *HookCommandFactory {
	return &HookCommandFactory{git: git}
}

func (f *HookCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "hook",
		Usage: t.GetMessage("hook.usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "install",
				Usage: t.GetMessage("hook.install_usage", 0, nil),
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   t.GetMessage("hook.flag_force", 0, nil),
					},
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					path, err := f.git.InstallHook(ctx, command.Bool("force"))
					if err != nil {
						return err
					}
					ui.PrintSuccess(command.Root().Writer, t.GetMessage("hook.installed", 0, map[string]interface{}{"Path": path}))
					return nil
				},
			},
			{
				Name:  "uninstall",
				Usage: t.GetMessage("hook.uninstall_usage", 0, nil),
				Action: func(ctx context.Context, command *cli.Command) error {
					path, err := f.git.UninstallHook(ctx)
					if err != nil {
						return err
					}
					ui.PrintSuccess(command.Root().Writer, t.GetMessage("hook.removed", 0, map[string]interface{}{"Path": path}))
					return nil
				},
			},
		},
	}
}
