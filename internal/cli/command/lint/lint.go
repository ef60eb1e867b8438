package lint

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/Tomas-vilte/matelint/internal/cli/completion_helper"
	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	linter "github.com/Tomas-vilte/matelint/internal/lint"
	"github.com/Tomas-vilte/matelint/internal/report"
	"github.com/Tomas-vilte/matelint/internal/services"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

type LintCommandFactory struct {
	git ports.GitService
}

func NewLintCommandFactory(git ports.GitService) *LintCommandFactory {
	return &LintCommandFactory{git: git}
}

func (f *LintCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "lint",
		Aliases:   []string{"l"},
		Usage:     t.GetMessage("lint.usage", 0, nil),
		ArgsUsage: "[message]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "edit",
				Aliases: []string{"e"},
				Usage:   t.GetMessage("lint.flag_edit", 0, nil),
			},
			&cli.StringFlag{
				Name:  "from",
				Usage: t.GetMessage("lint.flag_from", 0, nil),
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: t.GetMessage("lint.flag_to", 0, nil),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   t.GetMessage("flags.config", 0, nil),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("flags.format", 0, nil) + " (text, json)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: t.GetMessage("lint.flag_strict", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.lintAction(t, cfg),
	}
}

func (f *LintCommandFactory) lintAction(t *i18n.Translations, cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		rulesPath := command.String("config")
		if rulesPath == "" {
			rulesPath = cfg.RulesPath
		}

		source, err := services.LoadRuleSource(ctx, f.git, rulesPath)
		if err != nil {
			return err
		}
		l, err := linter.New(source.RuleSet)
		if err != nil {
			return err
		}
		service := services.NewLintService(f.git, l)

		reports, err := f.collect(ctx, command, service)
		if err != nil {
			return err
		}

		format := command.String("format")
		if format == "" {
			format = cfg.Format
		}

		out := command.Root().Writer
		switch format {
		case config.FormatJSON:
			err = report.JSON(out, reports, t)
		case config.FormatText, "":
			err = report.Text(out, reports, t, report.Options{
				Verbose: command.Bool("verbose"),
				HelpURL: l.Rules().HelpURL,
			})
		default:
			return apperrors.ErrUnsupportedFormat.WithContext("format", format)
		}
		if err != nil {
			return err
		}

		if services.Failed(reports, command.Bool("strict")) {
			return cli.Exit(t.GetMessage("lint.failed", 0, nil), 1)
		}
		return nil
	}
}

// collect picks the input in order: a commit range, a message file, the
// positional message, then stdin when it is not a terminal.
func (f *LintCommandFactory) collect(ctx context.Context, command *cli.Command, service *services.LintService) ([]linter.Report, error) {
	if from, to := command.String("from"), command.String("to"); from != "" || to != "" {
		return service.LintRange(ctx, from, to)
	}

	if path := command.String("edit"); path != "" {
		r, err := service.LintFile(ctx, path)
		if err != nil {
			return nil, err
		}
		return []linter.Report{r}, nil
	}

	if command.Args().Present() {
		message := strings.Join(command.Args().Slice(), " ")
		return []linter.Report{service.LintMessage(ctx, message)}, nil
	}

	message, err := readStdin(command.Root().Reader)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.ErrNoInput
	}
	return []linter.Report{service.LintMessage(ctx, message)}, nil
}

func readStdin(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	if f, ok := r.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return "", nil
		}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
