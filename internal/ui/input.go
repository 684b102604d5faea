package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/game"
)

// inputHandler - turns key and mouse state into the events of one tick.
// Presses are edge triggered, so holding a button down produces a single
// event.
type inputHandler struct{}

func newInputHandler() *inputHandler {
	return &inputHandler{}
}

// poll - returns this tick's events in the order they should be handled:
// Escape first, then the mouse.
func (that *inputHandler) poll() []game.Event {
	var events []game.Event

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, game.Event{Kind: game.EventQuit})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, game.Event{Kind: game.EventClick, X: x, Y: y})
	}

	return events
}
