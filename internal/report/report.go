// Package report renders lint results for people and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/lint"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	symbolInput   = "⧗"
	symbolError   = "✖"
	symbolWarning = "⚠"
	symbolHelp    = "ⓘ"
	symbolPassed  = "✔"
)

// Options controls the text output.
type Options struct {
	// Verbose also prints messages that passed or were ignored.
	Verbose bool
	// HelpURL is printed after the summary when a message fails.
	HelpURL string
}

// Summary counts the problems of a batch of reports.
type Summary struct {
	Messages int
	Errors   int
	Warnings int
}

func Summarize(reports []lint.Report) Summary {
	s := Summary{Messages: len(reports)}
	for _, r := range reports {
		s.Errors += len(r.Errors)
		s.Warnings += len(r.Warnings)
	}
	return s
}

// ConfigureColor applies a color mode from the user settings. "auto"
// enables color only when out is a terminal.
func ConfigureColor(mode string, out *os.File) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default:
		fd := out.Fd()
		color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	}
}

// Text writes the reports in the commitlint console layout.
func Text(w io.Writer, reports []lint.Report, trans *i18n.Translations, opts Options) error {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	for _, r := range reports {
		clean := len(r.Errors) == 0 && len(r.Warnings) == 0
		if clean && !opts.Verbose {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s   %s: %s\n", gray(symbolInput), trans.GetMessage("report.input", 0, nil), bold(firstLine(r.Input))); err != nil {
			return err
		}

		if r.Ignored {
			if _, err := fmt.Fprintf(w, "%s   %s\n\n", gray(symbolHelp), trans.GetMessage("report.ignored", 0, nil)); err != nil {
				return err
			}
			continue
		}

		for _, p := range r.Errors {
			if _, err := fmt.Fprintf(w, "%s   %s %s\n", red(symbolError), problemText(trans, p), gray("["+p.Name+"]")); err != nil {
				return err
			}
		}
		for _, p := range r.Warnings {
			if _, err := fmt.Fprintf(w, "%s   %s %s\n", yellow(symbolWarning), problemText(trans, p), gray("["+p.Name+"]")); err != nil {
				return err
			}
		}
		if clean {
			if _, err := fmt.Fprintf(w, "%s   %s\n", green(symbolPassed), trans.GetMessage("report.passed", 0, nil)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	s := Summarize(reports)
	if s.Errors == 0 && s.Warnings == 0 && !opts.Verbose {
		return nil
	}

	symbol := green(symbolPassed)
	if s.Errors > 0 {
		symbol = red(symbolError)
	} else if s.Warnings > 0 {
		symbol = yellow(symbolWarning)
	}
	summary := trans.GetMessage("report.summary", s.Messages, map[string]interface{}{
		"Errors":   s.Errors,
		"Warnings": s.Warnings,
		"Count":    s.Messages,
	})
	if _, err := fmt.Fprintf(w, "%s   %s\n", symbol, summary); err != nil {
		return err
	}

	if s.Errors > 0 {
		help := trans.GetMessage("report.help", 0, nil)
		if opts.HelpURL != "" {
			help += " (" + opts.HelpURL + ")"
		}
		if _, err := fmt.Fprintf(w, "%s   %s\n", gray(symbolHelp), help); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the reports as an indented JSON array, with problem messages
// rendered in the active language.
func JSON(w io.Writer, reports []lint.Report, trans *i18n.Translations) error {
	out := make([]lint.Report, len(reports))
	for i, r := range reports {
		r.Errors = renderProblems(trans, r.Errors)
		r.Warnings = renderProblems(trans, r.Warnings)
		out[i] = r
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderProblems(trans *i18n.Translations, problems []lint.Problem) []lint.Problem {
	out := make([]lint.Problem, len(problems))
	for i, p := range problems {
		p.Message = problemText(trans, p)
		out[i] = p
	}
	return out
}

func problemText(trans *i18n.Translations, p lint.Problem) string {
	if p.MessageID == "" {
		return p.Message
	}
	return trans.GetMessage(p.MessageID, 0, p.Data)
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
