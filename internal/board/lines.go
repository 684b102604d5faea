package board

// line - describes one straight run of cells: where it starts and which way
// it steps. A board has boardSize rows, boardSize columns and two diagonals.
type line struct {
	row, col         int
	stepRow, stepCol int
}

// buildLines - returns every line to scan, in a fixed order: rows top to
// bottom, columns left to right, the main diagonal, the anti-diagonal.
func buildLines(size int) []line {
	lines := make([]line, 0, 2*size+2)

	for row := 0; row < size; row++ {
		lines = append(lines, line{row: row, col: 0, stepRow: 0, stepCol: 1})
	}

	for col := 0; col < size; col++ {
		lines = append(lines, line{row: 0, col: col, stepRow: 1, stepCol: 0})
	}

	lines = append(lines, line{row: 0, col: 0, stepRow: 1, stepCol: 1})
	lines = append(lines, line{row: 0, col: size - 1, stepRow: 1, stepCol: -1})

	return lines
}

// Evaluate - rescans the whole board and returns the result. The first fully
// marked line in scan order decides the winner; a full board without one is
// a draw. The result is remembered until the next Reset.
func (that *Engine) Evaluate() Outcome {
	for _, ln := range that.lines {
		if mark := that.scanLine(ln); mark != EmptyCell {
			that.outcome = Outcome(mark)
			return that.outcome
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that.cells {
		if cell == EmptyCell {
			that.outcome = OutcomeNone
			return that.outcome
		}
	}

	that.outcome = OutcomeDraw

	return that.outcome
}

func (that *Engine) scanLine(ln line) string {
	size := that.grid.BoardSize()

	first := that.cells[ln.row*size+ln.col]
	if first == EmptyCell {
		return EmptyCell
	}

	row, col := ln.row, ln.col
	for step := 1; step < size; step++ {
		row += ln.stepRow
		col += ln.stepCol

		if that.cells[row*size+col] != first {
			return EmptyCell
		}
	}

	return first
}
