// ABOUTME: Splash screen: clears the console, draws the art layers and the framed field, then captures the passphrase
// ABOUTME: Falls back to a plain prompt when the terminal size is unknown

package splash

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/mauromedda/cryptsplash/internal/log"
	"github.com/mauromedda/cryptsplash/pkg/tui/ansi"
	"github.com/mauromedda/cryptsplash/pkg/tui/compose"
	"github.com/mauromedda/cryptsplash/pkg/tui/frame"
	"github.com/mauromedda/cryptsplash/pkg/tui/layout"
	"github.com/mauromedda/cryptsplash/pkg/tui/password"
	"github.com/mauromedda/cryptsplash/pkg/tui/terminal"
)

const (
	// FallbackPrompt is printed when the screen cannot be laid out.
	FallbackPrompt = "Unable to get terminal size. Normal password input mode\nPassword: "

	// FallbackBudget is how many mask glyphs the fallback prompt echoes.
	FallbackBudget = 20
)

// Screen is one configured splash screen bound to a terminal.
type Screen struct {
	term    terminal.Terminal
	layers  []layout.Layer
	field   frame.Field
	session *password.Session
}

// New returns a Screen drawing layers and field on t, echoing mask.
func New(t terminal.Terminal, layers []layout.Layer, field frame.Field, mask string) *Screen {
	return &Screen{
		term:    t,
		layers:  layers,
		field:   field,
		session: password.NewSession(t, mask),
	}
}

// Show draws the screen and blocks until a non-empty passphrase is entered.
func (s *Screen) Show() (string, error) {
	var buf bytes.Buffer
	if err := ansi.ClearScreen(&buf); err != nil {
		return "", err
	}

	budget, err := s.render(&buf)
	if err != nil {
		return "", err
	}
	if _, err := s.term.Write(buf.Bytes()); err != nil {
		return "", fmt.Errorf("drawing splash: %w", err)
	}
	return s.session.Capture(budget)
}

// render draws into w and returns the echo budget for the capture.
func (s *Screen) render(w io.Writer) (int, error) {
	cols, rows, err := s.term.Size()
	if err == nil && (cols <= 0 || rows <= 0) {
		err = fmt.Errorf("terminal reports %dx%d", cols, rows)
	}
	if err != nil {
		log.Debug("no terminal size, using plain prompt: %v", err)
		if _, err := io.WriteString(w, FallbackPrompt); err != nil {
			return 0, err
		}
		return FallbackBudget, nil
	}

	c, r := clampExtent(cols), clampExtent(rows)
	if err := compose.RenderLayers(w, s.layers, c, r); err != nil {
		return 0, err
	}
	g, err := frame.Build(w, s.field, c, r)
	if err != nil {
		return 0, err
	}
	if !g.Framed {
		log.Debug("field does not fit %dx%d, input is not echoed", cols, rows)
	}
	return g.Budget, nil
}

func clampExtent(n int) uint16 {
	return uint16(min(n, math.MaxUint16))
}
