package tui

import "go.trai.ch/livetree/internal/core/domain"

// DecodeKeys feeds chunks through a fresh decoder, flushing after the last one,
// and returns every decoded event.
func DecodeKeys(chunks ...string) []domain.InputEvent {
	var d keyDecoder
	var out []domain.InputEvent
	for _, c := range chunks {
		d.feed([]byte(c))
		for ev, ok := d.next(); ok; ev, ok = d.next() {
			out = append(out, ev)
		}
	}
	d.flush()
	for ev, ok := d.next(); ok; ev, ok = d.next() {
		out = append(out, ev)
	}
	return out
}

// EncodeFrame exposes the byte encoding used by Draw.
var EncodeFrame = encodeFrame
