package domain

import "math"

// scrollEnd is a pending jump to the bottom, resolved by the next clamp.
const scrollEnd = math.MaxInt

// ScrollState tracks the first visible line of a scrollable viewport.
type ScrollState struct {
	offset     int
	totalLines int
}

// Offset returns the first visible line.
func (s *ScrollState) Offset() int {
	return s.offset
}

// TotalLines returns the line count recorded by the last clamp.
func (s *ScrollState) TotalLines() int {
	return s.totalLines
}

// UpdateTotalAndClamp records the content size and clamps the offset so that
// 0 <= offset <= max(0, total-viewport).
func (s *ScrollState) UpdateTotalAndClamp(total, viewport int) {
	s.totalLines = max(total, 0)
	maxOffset := max(s.totalLines-max(viewport, 0), 0)
	s.offset = min(max(s.offset, 0), maxOffset)
}

// ScrollUp moves the viewport up by n lines, stopping at the top.
func (s *ScrollState) ScrollUp(n int) {
	if s.offset == scrollEnd {
		s.offset = s.totalLines
	}
	s.offset = max(s.offset-n, 0)
}

// ScrollDown moves the viewport down by n lines. The next clamp bounds the result.
func (s *ScrollState) ScrollDown(n int) {
	if s.offset > scrollEnd-n {
		s.offset = scrollEnd
		return
	}
	s.offset += n
}

// ScrollHome jumps to the first line.
func (s *ScrollState) ScrollHome() {
	s.offset = 0
}

// ScrollEnd jumps to the last page once the next clamp knows the viewport.
func (s *ScrollState) ScrollEnd() {
	s.offset = scrollEnd
}
