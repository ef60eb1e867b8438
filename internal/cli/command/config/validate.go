package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/lint"
	"github.com/Tomas-vilte/matelint/internal/services"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newValidateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: t.GetMessage("config_command.validate_usage", 0, nil),
		Flags: []cli.Flag{configFlag(t)},
		Action: func(ctx context.Context, command *cli.Command) error {
			source, err := services.LoadRuleSource(ctx, c.git, rulesPath(command, cfg))
			if err != nil {
				return err
			}

			linter, err := lint.New(source.RuleSet)
			if err != nil {
				return err
			}

			out := command.Root().Writer
			fmt.Fprintln(out, t.GetMessage("config_command.source", 0, map[string]interface{}{
				"Source": sourceName(t, source),
			}))
			fmt.Fprintln(out, t.GetMessage("config_command.valid", 0, map[string]interface{}{
				"Count": len(linter.Rules().Rules),
			}))
			return nil
		},
	}
}
