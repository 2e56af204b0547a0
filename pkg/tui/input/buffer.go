// ABOUTME: Reader turns raw tty bytes into key events, one blocking ReadKey at a time
// ABOUTME: Buffers partial UTF-8 and splits escape sequences; an ESC ending a read chunk is a lone Escape

package input

import (
	"io"
	"unicode/utf8"

	"github.com/mauromedda/cryptsplash/pkg/tui/key"
)

const readBufSize = 256

// maxEmptyReads is how many (0, nil) reads in a row are tolerated before
// ReadKey gives up with io.ErrNoProgress.
const maxEmptyReads = 100

// Reader reads key events from r. It is not safe for concurrent use.
type Reader struct {
	r   io.Reader
	buf []byte
	tmp []byte
	err error
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:   r,
		buf: make([]byte, 0, readBufSize),
		tmp: make([]byte, readBufSize),
	}
}

// ReadKey blocks until one key is available. Once the underlying reader
// fails, buffered bytes are drained first and then its error is returned.
// A reader that keeps returning no data and no error fails with
// io.ErrNoProgress.
func (b *Reader) ReadKey() (key.Key, error) {
	empty := 0
	for {
		if len(b.buf) > 0 {
			n, k, needMore := b.tryParse(b.err != nil)
			if !needMore {
				b.buf = b.buf[n:]
				return k, nil
			}
		}
		if b.err != nil {
			return key.Key{}, b.err
		}

		n, err := b.r.Read(b.tmp)
		b.buf = append(b.buf, b.tmp[:n]...)
		if err != nil {
			b.err = err
			continue
		}
		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			b.err = io.ErrNoProgress
		}
	}
}

// tryParse parses one key from the front of b.buf and returns the bytes it
// covers. needMore is set when a UTF-8 rune is split across reads; final
// forces a result from whatever is buffered.
func (b *Reader) tryParse(final bool) (n int, k key.Key, needMore bool) {
	if b.buf[0] == 0x1b {
		n, k := parseEscape(b.buf)
		return n, k, false
	}

	if !utf8.FullRune(b.buf) {
		if !final {
			return 0, key.Key{}, true
		}
		return 1, key.Key{Type: key.KeyUnknown}, false
	}
	r, size := utf8.DecodeRune(b.buf)
	if r == utf8.RuneError {
		return 1, key.Key{Type: key.KeyUnknown}, false
	}
	return size, key.ParseKey(string(b.buf[:size])), false
}

// parseEscape splits one escape sequence off the front of buf. Terminals
// deliver a whole sequence in one read, so an ESC that starts no known
// sequence is the Escape key and the bytes after it are parsed on their own.
func parseEscape(buf []byte) (int, key.Key) {
	if len(buf) >= 2 && buf[1] == '[' {
		n := csiLen(buf)
		if n == 0 {
			// Truncated CSI: drop it rather than echo its bytes.
			return len(buf), key.Key{Type: key.KeyUnknown}
		}
		return n, key.ParseKey(string(buf[:n]))
	}
	if len(buf) >= 3 && buf[1] == 'O' {
		return 3, key.ParseKey(string(buf[:3]))
	}
	if len(buf) >= 2 {
		if k := key.ParseKey(string(buf[:2])); k.Type != key.KeyUnknown {
			return 2, k
		}
	}
	return 1, key.Key{Type: key.KeyEscape}
}

// csiLen returns the length of the CSI sequence at the front of buf, or 0
// when its final byte has not arrived.
func csiLen(buf []byte) int {
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return i + 1
		}
	}
	return 0
}
