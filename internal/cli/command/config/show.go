package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/ruleset"
	"github.com/Tomas-vilte/matelint/internal/services"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_command.show_usage", 0, nil),
		Flags: []cli.Flag{
			configFlag(t),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("flags.format", 0, nil) + " (json, yaml, toml)",
				Value:   config.FormatJSON,
			},
			&cli.BoolFlag{
				Name:  "resolved",
				Usage: t.GetMessage("config_command.flag_resolved", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			source, err := services.LoadRuleSource(ctx, c.git, rulesPath(command, cfg))
			if err != nil {
				return err
			}

			rs := source.RuleSet
			if command.Bool("resolved") {
				if rs, err = ruleset.Resolve(rs); err != nil {
					return err
				}
			}

			data, err := config.EncodeRuleSet(rs, command.String("format"))
			if err != nil {
				return err
			}

			fmt.Fprintln(command.Root().ErrWriter, t.GetMessage("config_command.source", 0, map[string]interface{}{
				"Source": sourceName(t, source),
			}))
			_, err = command.Root().Writer.Write(data)
			return err
		},
	}
}

func sourceName(t *i18n.Translations, source config.RuleSource) string {
	if source.Builtin() {
		return t.GetMessage("config_command.builtin", 0, nil)
	}
	return source.Path
}
