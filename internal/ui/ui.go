package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/i18n"
)

var (
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Info    = color.New(color.FgCyan)
	Dim     = color.New(color.FgHiBlack)
)

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Success.Sprint("✔"), msg)
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("✖"), Error.Sprint(msg))
}

// HandleAppError prints err for a person. AppErrors show their details and
// suggestion on separate lines; t may be nil, in which case English labels
// are used.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	PrintError(w, appErr.Message)

	var context []string
	for _, key := range []string{"rule", "path", "preset", "format", "lang", "range"} {
		if v, ok := appErr.Context[key]; ok {
			context = append(context, fmt.Sprintf("%s=%v", key, v))
		}
	}
	if len(context) > 0 {
		_, _ = Dim.Fprintf(w, "  %s\n", strings.Join(context, " "))
	}
	if appErr.Err != nil {
		detailsPrefix := "Details: "
		if t != nil {
			detailsPrefix = t.GetMessage("ui_error.details", 0, nil)
		}
		_, _ = Dim.Fprintf(w, "  %s%v\n", detailsPrefix, appErr.Err)
	}

	if appErr.Suggestion != "" {
		tryPrefix := "Try: "
		if t != nil {
			tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
		}
		_, _ = Info.Fprintf(w, "  %s%s\n", tryPrefix, appErr.Suggestion)
	}
}
