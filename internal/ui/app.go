package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/game"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/layout"
)

type controller interface {
	Advance(now time.Time, events []game.Event) error
	Cells() []string
}

// App - adapts the game to the ebiten run loop: Update collects one tick of
// events and advances the controller, Draw renders the current board.
type App struct {
	controller controller
	renderer   *renderer
	input      *inputHandler
	grid       layout.Grid
	quit       <-chan struct{}
}

// NewApp - builds the window adapter for the given controller. A token on
// quit ends the run loop on the next tick, whatever the game is doing.
func NewApp(controller controller, grid layout.Grid, quit <-chan struct{}) *App {
	return &App{
		controller: controller,
		renderer:   newRenderer(grid),
		input:      newInputHandler(),
		grid:       grid,
		quit:       quit,
	}
}

// Update - runs one tick: an interrupt ends the loop right here, before any
// game event is dispatched, so it can never be dropped by the freeze drain.
// Otherwise input is polled and the game advances.
func (that *App) Update() error {
	select {
	case <-that.quit:
		return ebiten.Termination
	default:
	}

	if err := that.controller.Advance(time.Now(), that.input.poll()); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}

		return fmt.Errorf("failed to advance game: %w", err)
	}

	return nil
}

// Draw - renders the board.
func (that *App) Draw(screen *ebiten.Image) {
	that.renderer.draw(screen, that.controller.Cells())
}

// Layout - reports the fixed logical screen size.
func (that *App) Layout(_, _ int) (int, int) {
	return that.grid.WindowSize(), that.grid.WindowSize()
}
