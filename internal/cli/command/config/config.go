package config

import (
	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct {
	git ports.GitService
}

func NewConfigCommandFactory(git ports.GitService) *ConfigCommandFactory {
	return &ConfigCommandFactory{git: git}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config_command.usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newInitCommand(t, cfg),
			c.newValidateCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
		},
	}
}

func configFlag(t *i18n.Translations) cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("flags.config", 0, nil),
	}
}

// rulesPath prefers the --config flag over the path saved in the user
// settings.
func rulesPath(cmd *cli.Command, cfg *config.Config) string {
	if path := cmd.String("config"); path != "" {
		return path
	}
	return cfg.RulesPath
}
