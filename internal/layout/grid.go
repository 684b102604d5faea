package layout

import (
	"errors"
	"fmt"
)

// minSquareSize - squares smaller than this are too small to click on.
const minSquareSize = 8

var (
	ErrBoardTooSmall  = errors.New("board must be at least 2x2")
	ErrBorderTooThin  = errors.New("border must be at least 1 pixel")
	ErrWindowTooSmall = errors.New("window is too small for the board")
)

// Rect - is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H int
}

// Grid - holds the pixel geometry of the window: a frame around the playing
// area and boardSize by boardSize squares inside it. Everything is computed
// once, a grid never changes after creation.
type Grid struct {
	windowSize      int
	borderThickness int
	boardSize       int

	offset     int
	areaSize   int
	squareSize int
	fillIn     int
}

// New - computes the grid geometry for the given window. The playing area
// starts two border widths from the window edge; its side is divided into
// boardSize equal squares and the integer remainder is left to the frame.
func New(windowSize, borderThickness, boardSize int) (Grid, error) {
	if boardSize < 2 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrBoardTooSmall, boardSize)
	}

	if borderThickness < 1 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrBorderTooThin, borderThickness)
	}

	offset := borderThickness * 2
	areaSize := windowSize - offset*2
	squareSize := areaSize / boardSize

	if squareSize < minSquareSize {
		return Grid{}, fmt.Errorf("%w: a %dpx window leaves %dpx squares", ErrWindowTooSmall, windowSize, squareSize)
	}

	return Grid{
		windowSize:      windowSize,
		borderThickness: borderThickness,
		boardSize:       boardSize,
		offset:          offset,
		areaSize:        areaSize,
		squareSize:      squareSize,
		fillIn:          areaSize - squareSize*boardSize,
	}, nil
}

// WindowSize - returns the window side in pixels.
func (that Grid) WindowSize() int {
	return that.windowSize
}

// BoardSize - returns the number of squares per row and column.
func (that Grid) BoardSize() int {
	return that.boardSize
}

// CellCount - returns the total number of squares on the board.
func (that Grid) CellCount() int {
	return that.boardSize * that.boardSize
}

// SquareSize - returns the side of one square in pixels.
func (that Grid) SquareSize() int {
	return that.squareSize
}

// CellIndexAt - maps window coordinates to a cell index, row by row from the
// top left. The second return value is false when the point lies outside the
// playing area: on the frame, on the leading grid line, or in the fill-in
// strip past the last square. Inner grid lines belong to the square on their
// right and bottom side.
func (that Grid) CellIndexAt(x, y int) (int, bool) {
	span := that.squareSize * that.boardSize

	playX := x - that.offset
	playY := y - that.offset
	if playX <= 0 || playY <= 0 || playX >= span || playY >= span {
		return 0, false
	}

	col := playX / that.squareSize
	row := playY / that.squareSize

	return row*that.boardSize + col, true
}

// CellRect - returns the outline rectangle of the given cell.
func (that Grid) CellRect(index int) Rect {
	row := index / that.boardSize
	col := index % that.boardSize

	return Rect{
		X: that.offset + col*that.squareSize,
		Y: that.offset + row*that.squareSize,
		W: that.squareSize,
		H: that.squareSize,
	}
}

// BorderRect - returns the frame rectangle drawn between the window edge and
// the playing area.
func (that Grid) BorderRect() Rect {
	return Rect{
		X: that.borderThickness,
		Y: that.borderThickness,
		W: that.windowSize - that.borderThickness*2,
		H: that.windowSize - that.borderThickness*2,
	}
}

// PlayingAreaRect - returns the board background rectangle. The fill-in
// remainder stays with the frame so the outer squares sit flush against it.
func (that Grid) PlayingAreaRect() Rect {
	side := that.areaSize - that.fillIn

	return Rect{X: that.offset, Y: that.offset, W: side, H: side}
}
