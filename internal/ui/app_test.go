package ui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/board"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/game"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/layout"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *game.Controller, layout.Grid, chan struct{}) {
	t.Helper()

	grid, err := layout.New(512, 10, 3)
	require.NoError(t, err)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	reporter := report.NewConsoleReporter(logger, io.Discard)
	controller := game.NewController(logger, board.NewEngine(grid), reporter, 2*time.Second)

	quit := make(chan struct{}, 1)

	return NewApp(controller, grid, quit), controller, grid, quit
}

// winGame - drives X to a quick win straight through the controller.
func winGame(t *testing.T, controller *game.Controller, grid layout.Grid) {
	t.Helper()

	now := time.Now()
	for _, cell := range []int{0, 4, 1, 5, 2} {
		now = now.Add(time.Second / 60)
		rect := grid.CellRect(cell)
		click := game.Event{Kind: game.EventClick, X: rect.X + rect.W/2, Y: rect.Y + rect.H/2}
		require.NoError(t, controller.Advance(now, []game.Event{click}))
	}
	require.Equal(t, game.PhaseFrozen, controller.Phase())
}

func TestApp_Update(t *testing.T) {
	t.Run("An interrupt ends the loop while the board is frozen", func(t *testing.T) {
		// Given: a finished game sitting out its freeze
		app, controller, grid, quit := newTestApp(t)
		winGame(t, controller, grid)

		// When: an interrupt arrives and the next tick runs
		quit <- struct{}{}
		err := app.Update()

		// Then: the loop terminates even though game events would be drained
		require.ErrorIs(t, err, ebiten.Termination)
		assert.Equal(t, game.PhaseFrozen, controller.Phase())
	})

	t.Run("An interrupt ends the loop during an active game", func(t *testing.T) {
		// Given: a running app
		app, controller, _, quit := newTestApp(t)

		// When: an interrupt arrives and the next tick runs
		quit <- struct{}{}
		err := app.Update()

		// Then: the loop terminates before any event dispatch
		require.ErrorIs(t, err, ebiten.Termination)
		assert.Equal(t, game.PhaseActive, controller.Phase())
	})

	t.Run("A tick without input advances the game", func(t *testing.T) {
		// Given: a running app
		app, controller, _, _ := newTestApp(t)

		// When: a tick runs with nothing pending
		err := app.Update()

		// Then: the game keeps going
		require.NoError(t, err)
		assert.Equal(t, game.PhaseActive, controller.Phase())
	})
}
