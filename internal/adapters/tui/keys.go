package tui

import (
	"unicode/utf8"

	"go.trai.ch/livetree/internal/core/domain"
)

const (
	byteCtrlC = 0x03
	byteLF    = 0x0a
	byteCR    = 0x0d
	byteEsc   = 0x1b
	byteDEL   = 0x7f
)

// keyDecoder turns raw terminal bytes into key events.
// Incomplete escape and UTF-8 sequences stay buffered until more bytes arrive.
type keyDecoder struct {
	buf     []byte
	pending []domain.InputEvent
}

// feed appends p and decodes every complete key it can.
func (d *keyDecoder) feed(p []byte) {
	d.buf = append(d.buf, p...)

	i := 0
	for i < len(d.buf) {
		n, ev, ok := decodeOne(d.buf[i:])
		if n == 0 {
			break
		}
		if ok {
			d.pending = append(d.pending, ev)
		}
		i += n
	}

	d.buf = append(d.buf[:0], d.buf[i:]...)
}

// flush resolves a lone buffered ESC once the input went quiet.
func (d *keyDecoder) flush() {
	if len(d.buf) == 1 && d.buf[0] == byteEsc {
		d.pending = append(d.pending, domain.Key(domain.KeyEscape))
		d.buf = d.buf[:0]
	}
}

// next pops the oldest decoded event.
func (d *keyDecoder) next() (domain.InputEvent, bool) {
	if len(d.pending) == 0 {
		return domain.InputEvent{}, false
	}
	ev := d.pending[0]
	d.pending = d.pending[1:]
	return ev, true
}

// decodeOne decodes the key at the start of b. It returns the bytes consumed, 0 when the
// sequence is incomplete, and ok=false for input that maps to no key.
func decodeOne(b []byte) (n int, ev domain.InputEvent, ok bool) {
	switch c := b[0]; {
	case c == byteCtrlC:
		return 1, domain.Key(domain.KeyCtrlC), true
	case c == byteCR || c == byteLF:
		return 1, domain.Key(domain.KeyEnter), true
	case c == byteEsc:
		return decodeEscape(b)
	case c < 0x20 || c == byteDEL:
		return 1, domain.InputEvent{}, false
	case c < utf8.RuneSelf:
		return 1, domain.Key(string(rune(c))), true
	}

	if !utf8.FullRune(b) {
		return 0, domain.InputEvent{}, false
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError {
		return size, domain.InputEvent{}, false
	}
	return size, domain.Key(string(r)), true
}

func decodeEscape(b []byte) (int, domain.InputEvent, bool) {
	if len(b) < 2 {
		return 0, domain.InputEvent{}, false
	}

	switch b[1] {
	case '[':
		return decodeCSI(b)
	case 'O':
		if len(b) < 3 {
			return 0, domain.InputEvent{}, false
		}
		name, ok := finalKeys[b[2]]
		return 3, domain.Key(name), ok
	default:
		// ESC followed by a plain byte is Alt+key; report the escape and let the byte decode on its own.
		return 1, domain.Key(domain.KeyEscape), true
	}
}

// decodeCSI handles ESC [ params final. Unknown sequences are consumed and dropped.
func decodeCSI(b []byte) (int, domain.InputEvent, bool) {
	i := 2
	for i < len(b) && b[i] >= 0x30 && b[i] <= 0x3f {
		i++
	}
	for i < len(b) && b[i] >= 0x20 && b[i] <= 0x2f {
		i++
	}
	if i >= len(b) {
		return 0, domain.InputEvent{}, false
	}

	final := b[i]
	params := string(b[2:i])
	n := i + 1

	if final == '~' {
		name, ok := tildeKeys[params]
		return n, domain.Key(name), ok
	}
	if name, ok := finalKeys[final]; ok {
		return n, domain.Key(name), true
	}
	return n, domain.InputEvent{}, false
}

var finalKeys = map[byte]string{
	'A': domain.KeyUp,
	'B': domain.KeyDown,
	'H': domain.KeyHome,
	'F': domain.KeyEnd,
}

var tildeKeys = map[string]string{
	"1": domain.KeyHome,
	"7": domain.KeyHome,
	"4": domain.KeyEnd,
	"8": domain.KeyEnd,
	"5": domain.KeyPageUp,
	"6": domain.KeyPageDown,
}
