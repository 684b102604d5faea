package board

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/layout"
)

// Engine - owns the state of one board: the cells, whose turn it is and the
// outcome of the last evaluation. It knows nothing about phases, rendering
// or input; the caller decides when moves are allowed and when to evaluate.
type Engine struct {
	grid    layout.Grid
	cells   []string
	turn    string
	moves   int
	outcome Outcome
	lines   []line
}

// NewEngine - creates an engine with an empty board, X to move.
func NewEngine(grid layout.Grid) *Engine {
	return &Engine{
		grid:  grid,
		cells: make([]string, grid.CellCount()),
		turn:  PlayerX,
		lines: buildLines(grid.BoardSize()),
	}
}

// ApplyMove - places the current player's mark in the given cell and passes
// the turn. A move into a finished game, an out of range index or a taken
// cell is rejected and changes nothing.
func (that *Engine) ApplyMove(cell int) error {
	if that.outcome.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.cells) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.cells[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.cells[cell] = that.turn
	that.moves++
	that.turn = toggleMark(that.turn)

	return nil
}

// Reset - clears the board for a new game, X to move.
func (that *Engine) Reset() {
	that.cells = make([]string, that.grid.CellCount())
	that.turn = PlayerX
	that.moves = 0
	that.outcome = OutcomeNone
}

// CellIndexAt - maps window coordinates to a cell index via the grid.
func (that *Engine) CellIndexAt(x, y int) (int, bool) {
	return that.grid.CellIndexAt(x, y)
}

// Cells - returns a copy of the board, row by row from the top left.
func (that *Engine) Cells() []string {
	cells := make([]string, len(that.cells))
	copy(cells, that.cells)

	return cells
}

// Turn - returns the mark of the player to move.
func (that *Engine) Turn() string {
	return that.turn
}

// Moves - returns how many marks were placed since the last reset.
func (that *Engine) Moves() int {
	return that.moves
}

// Size - returns the number of cells per row and column.
func (that *Engine) Size() int {
	return that.grid.BoardSize()
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}

	return PlayerX
}
