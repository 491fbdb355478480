package domain

// WatchEventKind discriminates WatchEvent.
type WatchEventKind int

const (
	// WatchChanged reports a debounced batch of changed paths.
	WatchChanged WatchEventKind = iota
	// WatchRootDeleted reports that the watched root no longer exists.
	WatchRootDeleted
	// WatchError reports a non-fatal watcher failure.
	WatchError
)

// WatchEvent is a single notification from the filesystem watcher.
type WatchEvent struct {
	Kind WatchEventKind
	// Paths is set for WatchChanged and holds no duplicates.
	Paths []string
	// Message is set for WatchError.
	Message string
}

// Changed builds a WatchChanged event.
func Changed(paths []string) WatchEvent {
	return WatchEvent{Kind: WatchChanged, Paths: paths}
}

// RootDeleted builds a WatchRootDeleted event.
func RootDeleted() WatchEvent {
	return WatchEvent{Kind: WatchRootDeleted}
}

// WatchFailed builds a WatchError event.
func WatchFailed(message string) WatchEvent {
	return WatchEvent{Kind: WatchError, Message: message}
}

// InputEventKind discriminates InputEvent.
type InputEventKind int

const (
	// InputKey is a decoded key press.
	InputKey InputEventKind = iota
	// InputResize reports a terminal size change.
	InputResize
)

// Key names produced by the terminal surface.
const (
	KeyUp       = "up"
	KeyDown     = "down"
	KeyPageUp   = "pgup"
	KeyPageDown = "pgdown"
	KeyHome     = "home"
	KeyEnd      = "end"
	KeyCtrlC    = "ctrl+c"
	KeyEscape   = "esc"
	KeyEnter    = "enter"
)

// InputEvent is a single notification from the input reader.
type InputEvent struct {
	Kind InputEventKind
	// Key is the decoded key name for InputKey, e.g. "q", "up" or "ctrl+c".
	Key string
}

// Key builds an InputKey event.
func Key(name string) InputEvent {
	return InputEvent{Kind: InputKey, Key: name}
}

// Resize builds an InputResize event.
func Resize() InputEvent {
	return InputEvent{Kind: InputResize}
}
