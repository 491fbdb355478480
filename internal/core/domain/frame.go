package domain

// Frame is the complete content of the screen for one draw.
// Rows are already styled and clipped to Width; rows beyond the screen height are not drawn.
type Frame struct {
	Rows  []string
	Width int
}
