// ABOUTME: -check report: validates the config, loads every layer, and flags rows a real terminal draws wider
// ABOUTME: Styled with lipgloss on a renderer bound to the output, so pipes get plain text

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/cryptsplash/internal/config"
	"github.com/mauromedda/cryptsplash/pkg/tui/width"
)

// errCheckFailed is returned when the report found errors.
var errCheckFailed = errors.New("config check failed")

type reportStyles struct {
	title lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
	muted lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		title: r.NewStyle().Bold(true).Underline(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
		err:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		muted: r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// runCheck writes the lint report for cfg to w.
func runCheck(w io.Writer, path string, cfg *config.Config) error {
	st := newReportStyles(w)
	failed := false

	fmt.Fprintln(w, st.title.Render("cryptsplash config check"))
	fmt.Fprintln(w, st.muted.Render(path))

	if err := cfg.Validate(); err != nil {
		failed = true
		for _, e := range splitJoined(err) {
			fmt.Fprintf(w, "%s %v\n", st.err.Render("error"), e)
		}
	}
	for _, msg := range cfg.Warnings() {
		fmt.Fprintf(w, "%s %s\n", st.warn.Render("warn "), msg)
	}

	layers, err := cfg.Layers()
	if err != nil {
		failed = true
		fmt.Fprintf(w, "%s %v\n", st.err.Render("error"), err)
	}
	for i, l := range layers {
		widest := 0
		for j, row := range l.ASCII {
			widest = max(widest, width.VisibleLength(row))
			if width.Mismatch(row) {
				fmt.Fprintf(w, "%s layer %d row %d: clipped as %d columns but draws %d cells\n",
					st.warn.Render("warn "), i, j, width.VisibleLength(row), width.CellWidth(row))
			}
		}
		fmt.Fprintf(w, "%s layer %d: %d rows, %d columns\n", st.ok.Render("ok   "), i, l.Height(), widest)
	}

	for i, r := range cfg.Theme.Field.Rows {
		for _, part := range []string{r.Left, r.Fill, r.Right} {
			if width.Mismatch(part) {
				fmt.Fprintf(w, "%s field row %d: %q draws %d cells\n",
					st.warn.Render("warn "), i, part, width.CellWidth(part))
			}
		}
	}

	if failed {
		return errCheckFailed
	}
	fmt.Fprintln(w, st.ok.Render("config is valid"))
	return nil
}

// splitJoined unpacks an errors.Join result into its parts.
func splitJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
