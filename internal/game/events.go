package game

// EventKind - distinguishes the window events the controller reacts to.
type EventKind int

const (
	// EventClick - a left mouse button press at window coordinates X, Y.
	EventClick EventKind = iota
	// EventQuit - a request to close the game, from the Escape key.
	EventQuit
)

// Event - is one input event collected during a tick.
type Event struct {
	Kind EventKind
	X    int
	Y    int
}
