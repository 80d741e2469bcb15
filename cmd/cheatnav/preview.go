package cheatnav

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/cheatnav/pkg/config"
	"github.com/arthur-debert/cheatnav/pkg/style"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	fallbackWidth = 80
	columnGap     = "  "
)

type previewRow struct {
	tag     string
	comment string
	snippet string
}

var previewRows = []previewRow{
	{"git", "Show the commit graph", "git log --graph --oneline --all"},
	{"docker", "Remove dangling images", "docker image prune"},
	{"kubernetes", "Follow the logs of a pod", "kubectl logs -f <pod>"},
	{"tar", "Extract a gzipped archive", "tar -xzf <archive>"},
}

func newConfigPreviewCmd(opts *rootOptions) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: MsgConfigPreviewShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if width <= 0 {
				width = terminalWidth(out)
			}
			renderPreview(out, cfg.Config, outputProfile(out), width)
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, MsgFlagWidth)
	return cmd
}

func newConfigColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: MsgConfigColorsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			r := style.NewRenderer(out, outputProfile(out))
			for _, c := range style.Colors() {
				_, _ = fmt.Fprintf(out, "%s %2d\n", style.Column(r, c.String(), 14, c), c.ANSI())
			}
			return nil
		},
	}
}

// renderPreview lays out the sample rows the way the cheat list does: tag,
// comment and snippet columns sized from the configured percentages.
func renderPreview(w io.Writer, cfg *config.Config, profile termenv.Profile, total int) {
	r := style.NewRenderer(w, profile)
	columns := []config.ColorWidth{cfg.Style.Tag, cfg.Style.Comment, cfg.Style.Snippet}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = style.ColumnWidth(total, c.WidthPercentage, c.MinWidth)
	}

	for _, row := range previewRows {
		cells := []string{row.tag, row.comment, row.snippet}
		parts := make([]string, len(cells))
		for i, text := range cells {
			parts[i] = style.Column(r, text, widths[i], columns[i].Color)
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, columnGap), " "))
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, MsgPreviewFinder, cfg.Finder.Command, cfg.Finder.Command.Binary())
	_, _ = fmt.Fprintf(w, MsgPreviewShell, cfg.Shell.Command)
}

func outputProfile(w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok {
		return style.DetectProfile(f)
	}
	return termenv.Ascii
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
