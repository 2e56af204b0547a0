// ABOUTME: Masked password capture on a raw terminal: one mask glyph per rune up to a visible budget
// ABOUTME: Raw mode is scoped to Capture and restored on every return path

package password

import (
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/cryptsplash/pkg/tui/input"
	"github.com/mauromedda/cryptsplash/pkg/tui/key"
	"github.com/mauromedda/cryptsplash/pkg/tui/terminal"
)

// DefaultMask is echoed once per entered rune.
const DefaultMask = "*"

// eraseSeq steps back over one echoed glyph and blanks it.
const eraseSeq = "\b \b"

// Session captures secrets from a Terminal. Keys are read through one
// Reader for the session's lifetime so bytes buffered after an Enter are
// not lost between captures.
type Session struct {
	term terminal.Terminal
	keys *input.Reader
	mask string
}

// NewSession returns a Session on t. An empty mask selects DefaultMask.
func NewSession(t terminal.Terminal, mask string) *Session {
	if mask == "" {
		mask = DefaultMask
	}
	return &Session{term: t, keys: input.NewReader(t), mask: mask}
}

// Capture reads one secret. The first maxShow runes are echoed as the
// mask; later runes are accepted silently. Backspace removes the last rune
// and erases its glyph if it was shown. Enter completes only once the
// secret is non-empty. Every other key, Ctrl+C included, is ignored: the
// prompt cannot be aborted from the keyboard. Capture blocks until Enter
// or until reading the terminal fails.
func (s *Session) Capture(maxShow int) (secret string, err error) {
	if err := s.term.EnterRawMode(); err != nil {
		return "", err
	}
	defer func() {
		if exitErr := s.term.ExitRawMode(); exitErr != nil && err == nil {
			err = exitErr
		}
	}()

	var buf []rune
	for {
		k, err := s.keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return "", fmt.Errorf("reading password: %w", err)
		}

		switch k.Type {
		case key.KeyEnter:
			if len(buf) > 0 {
				return string(buf), nil
			}
		case key.KeyRune:
			buf = append(buf, k.Rune)
			if len(buf) <= maxShow {
				if err := s.echo(s.mask); err != nil {
					return "", err
				}
			}
		case key.KeyBackspace:
			if len(buf) == 0 {
				continue
			}
			buf = buf[:len(buf)-1]
			if len(buf) < maxShow {
				if err := s.echo(eraseSeq); err != nil {
					return "", err
				}
			}
		}
	}
}

func (s *Session) echo(seq string) error {
	if _, err := io.WriteString(s.term, seq); err != nil {
		return fmt.Errorf("echoing mask: %w", err)
	}
	return nil
}
