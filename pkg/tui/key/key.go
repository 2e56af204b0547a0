// ABOUTME: Key type and ParseKey for raw terminal input at the password prompt
// ABOUTME: Printable runes, Enter, Backspace and control bytes; escape sequences go to the legacy table

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key is one parsed keyboard event.
type Key struct {
	Type KeyType
	Rune rune // for KeyRune
	Alt  bool
	Ctrl bool
}

// KeyType enumerates the keys the prompt distinguishes.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // CR or LF
	KeyBackspace                // DEL (0x7F) or BS (0x08)
	KeyTab
	KeyEscape
	KeyCtrlC
	KeyCtrlD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyBackTab
	KeyUnknown
)

// ParseKey parses one key's worth of raw input.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

func parseSingleByte(b byte) Key {
	switch {
	case b == '\r', b == '\n':
		return Key{Type: KeyEnter}
	case b == 0x7f, b == 0x08:
		return Key{Type: KeyBackspace}
	case b == '\t':
		return Key{Type: KeyTab}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b == 0x03:
		return Key{Type: KeyCtrlC, Ctrl: true}
	case b == 0x04:
		return Key{Type: KeyCtrlD, Ctrl: true}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}
	// Alt+char: ESC followed by one printable byte.
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}
	return Key{Type: KeyUnknown}
}

var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyEscape:    "Escape",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlD:     "Ctrl+D",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyDelete:    "Delete",
	KeyBackTab:   "BackTab",
	KeyUnknown:   "Unknown",
}

// String returns a label for debug logging. Rune keys never print their
// rune: the prompt only ever reads secrets.
func (k Key) String() string {
	if k.Type == KeyRune {
		if k.Alt {
			return "Alt+<rune>"
		}
		return "<rune>"
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return fmt.Sprintf("KeyType(%d)", int(k.Type))
}
