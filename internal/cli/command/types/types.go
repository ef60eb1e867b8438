package types

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/ruleset"
	"github.com/Tomas-vilte/matelint/internal/services"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	typeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	noteStyle  = lipgloss.NewStyle().Faint(true)
	boxStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

type TypesCommandFactory struct {
	git ports.GitService
}

func NewTypesCommandFactory(git ports.GitService) *TypesCommandFactory {
	return &TypesCommandFactory{git: git}
}

func (f *TypesCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "types",
		Aliases: []string{"t"},
		Usage:   t.GetMessage("types_command.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   t.GetMessage("flags.config", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			rulesPath := command.String("config")
			if rulesPath == "" {
				rulesPath = cfg.RulesPath
			}
			source, err := services.LoadRuleSource(ctx, f.git, rulesPath)
			if err != nil {
				return err
			}
			rs, err := ruleset.Resolve(source.RuleSet)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(command.Root().Writer, Render(t, rs))
			return err
		},
	}
}

// Render draws the allowed types of a resolved rule set with their
// descriptions, followed by the header limit when one is enforced.
func Render(t *i18n.Translations, rs ruleset.RuleSet) string {
	types := ruleset.ConventionalTypes
	if rule, ok := rs.Rule(ruleset.RuleTypeEnum); ok && rule.Enabled() {
		if configured, ok := rule.StringsValue(); ok {
			types = configured
		}
	}

	width := lo.Max(lo.Map(types, func(typ string, _ int) int {
		return lipgloss.Width(typ)
	}))

	rows := make([]string, 0, len(types))
	for _, typ := range types {
		desc := t.TypeDescription(typ)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			typeStyle.Width(width+2).Render(typ),
			descStyle.Render(desc),
		))
	}

	sections := []string{titleStyle.Render(t.GetMessage("types_command.title", 0, nil)), "", strings.Join(rows, "\n")}
	if rule, ok := rs.Rule(ruleset.RuleHeaderMaxLength); ok && rule.Enabled() {
		if limit, ok := rule.IntValue(); ok {
			sections = append(sections, "", noteStyle.Render(t.GetMessage("types_command.header_limit", 0, map[string]interface{}{"Max": limit})))
		}
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
