package config

import (
	"context"

	"github.com/Tomas-vilte/matelint/internal/config"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config_command.set_lang_usage", 0, nil),
		ArgsUsage: "<lang>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   t.GetMessage("flags.lang", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.String("lang")
			if lang == "" {
				lang = command.Args().First()
			}

			if err := t.SetLanguage(lang); err != nil {
				return apperrors.ErrUnsupportedLanguage.WithError(err).WithContext("lang", lang)
			}

			previous := cfg.Language
			cfg.Language = t.Language()
			if err := config.SaveConfig(cfg); err != nil {
				cfg.Language = previous
				return err
			}

			ui.PrintSuccess(command.Root().Writer, t.GetMessage("config_command.lang_updated", 0, map[string]interface{}{"Lang": cfg.Language}))
			return nil
		},
	}
}
