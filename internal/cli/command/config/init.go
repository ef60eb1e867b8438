package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/matelint/internal/config"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/logger"
	"github.com/Tomas-vilte/matelint/internal/ruleset"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/urfave/cli/v3"
)

var initFileNames = map[string]string{
	config.FormatJSON: ".commitlintrc.json",
	config.FormatYAML: ".commitlintrc.yaml",
	config.FormatTOML: ".commitlintrc.toml",
}

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_command.init_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("flags.format", 0, nil) + " (json, yaml, toml)",
				Value:   config.FormatJSON,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: t.GetMessage("config_command.flag_force", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			format := command.String("format")
			name, ok := initFileNames[format]
			if !ok {
				return apperrors.ErrUnsupportedFormat.WithContext("format", format)
			}

			dir, err := c.git.RepoRoot(ctx)
			if err != nil {
				logger.Debug(ctx, "not in a git repository, writing to the working directory", "error", err)
				if dir, err = os.Getwd(); err != nil {
					return err
				}
			}
			path := filepath.Join(dir, name)

			if _, err := os.Stat(path); err == nil && !command.Bool("force") {
				return errors.New(t.GetMessage("config_command.exists", 0, map[string]interface{}{"Path": path}))
			}

			data, err := config.EncodeRuleSet(ruleset.Default(), format)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", path, err)
			}

			ui.PrintSuccess(command.Root().Writer, t.GetMessage("config_command.created", 0, map[string]interface{}{"Path": path}))
			return nil
		},
	}
}
