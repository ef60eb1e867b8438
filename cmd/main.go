package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Tomas-vilte/matelint/internal/cli/command/completion"
	"github.com/Tomas-vilte/matelint/internal/cli/command/config"
	"github.com/Tomas-vilte/matelint/internal/cli/command/hook"
	"github.com/Tomas-vilte/matelint/internal/cli/command/lint"
	"github.com/Tomas-vilte/matelint/internal/cli/command/types"
	"github.com/Tomas-vilte/matelint/internal/cli/registry"
	cfg "github.com/Tomas-vilte/matelint/internal/config"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/git"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/logger"
	"github.com/Tomas-vilte/matelint/internal/report"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/Tomas-vilte/matelint/internal/version"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("error starting matelint: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		printError(err, translations)
		os.Exit(2)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not get the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	gitService := git.NewGitService()

	registerCommand := registry.NewRegistry(cfgApp, translations)
	factories := map[string]registry.CommandFactory{
		"lint":   lint.NewLintCommandFactory(gitService),
		"types":  types.NewTypesCommandFactory(gitService),
		"config": config.NewConfigCommandFactory(gitService),
		"hook":   hook.NewHookCommandFactory(gitService),
	}
	for name, factory := range factories {
		if err := registerCommand.Register(name, factory); err != nil {
			return nil, nil, fmt.Errorf("error registering command '%s': %w", name, err)
		}
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, completion.NewCompletionCommand(translations))

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	setup := func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		l := logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
		if lang := cmd.String("lang"); lang != "" {
			if err := translations.SetLanguage(lang); err != nil {
				return ctx, apperrors.ErrUnsupportedLanguage.WithError(err).WithContext("lang", lang)
			}
		}
		report.ConfigureColor(cfgApp.Color, os.Stdout)
		return logger.WithLogger(ctx, l), nil
	}
	wrapActions(commands, setup)

	return &cli.Command{
		Name:        "matelint",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flags.debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   translations.GetMessage("flags.verbose", 0, nil),
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: translations.GetMessage("flags.lang", 0, nil),
			},
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}

// wrapActions runs setup before every command action, so the global flags
// are applied whichever subcommand is invoked.
func wrapActions(commands []*cli.Command, setup func(context.Context, *cli.Command) (context.Context, error)) {
	for _, c := range commands {
		if c.Action != nil {
			action := c.Action
			c.Action = func(ctx context.Context, cmd *cli.Command) error {
				ctx, err := setup(ctx, cmd)
				if err != nil {
					return err
				}
				return action(ctx, cmd)
			}
		}
		wrapActions(c.Commands, setup)
	}
}

func printError(err error, t *i18n.Translations) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		ui.HandleAppError(os.Stderr, err, t)
		return
	}
	ui.PrintError(os.Stderr, strutil.UpperFirst(err.Error()))
}
