package cheatnav

import (
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/cheatnav/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatBold returns the string formatted as bold when stdout is a terminal
func formatBold(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}

// ReportError prints err to w, followed by the configuration source that
// produced it when the error came from loading.
func ReportError(w io.Writer, err error) {
	pterm.Error.WithWriter(w).Println(err)

	source, path := errors.ConfigOrigin(err)
	switch {
	case source != "" && path != "":
		pterm.Info.WithWriter(w).Printfln(MsgErrOriginPath, source, path)
	case source != "":
		pterm.Info.WithWriter(w).Printfln(MsgErrOrigin, source)
	}
}
