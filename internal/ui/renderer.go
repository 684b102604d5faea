package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/board"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/layout"
)

// markInset - how many pixels a mark fill stays away from its cell outline.
const markInset = 12

var (
	colorField   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorFrame   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorPlayerX = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	colorPlayerO = color.RGBA{R: 30, G: 80, B: 220, A: 255}
)

// renderer - draws the window from scratch every frame: the frame, the
// playing area, the occupied cells and the square outlines on top.
type renderer struct {
	grid layout.Grid
}

func newRenderer(grid layout.Grid) *renderer {
	return &renderer{grid: grid}
}

func (that *renderer) draw(screen *ebiten.Image, cells []string) {
	screen.Fill(colorField)

	that.fillRect(screen, that.grid.BorderRect(), colorFrame)
	that.fillRect(screen, that.grid.PlayingAreaRect(), colorField)

	for index, cell := range cells {
		if cell == board.EmptyCell {
			continue
		}

		rect := that.grid.CellRect(index)
		rect.X += markInset
		rect.Y += markInset
		rect.W -= markInset * 2
		rect.H -= markInset * 2

		that.fillRect(screen, rect, markColor(cell))
	}

	for index := range cells {
		that.strokeRect(screen, that.grid.CellRect(index), colorFrame)
	}
}

func (that *renderer) fillRect(screen *ebiten.Image, rect layout.Rect, clr color.Color) {
	ebitenutil.DrawRect(screen, float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H), clr)
}

func (that *renderer) strokeRect(screen *ebiten.Image, rect layout.Rect, clr color.Color) {
	x, y := float64(rect.X), float64(rect.Y)
	w, h := float64(rect.W), float64(rect.H)

	ebitenutil.DrawLine(screen, x, y, x+w, y, clr)
	ebitenutil.DrawLine(screen, x, y, x, y+h, clr)
	ebitenutil.DrawLine(screen, x+w, y, x+w, y+h, clr)
	ebitenutil.DrawLine(screen, x, y+h, x+w, y+h, clr)
}

func markColor(mark string) color.Color {
	if mark == board.PlayerX {
		return colorPlayerX
	}

	return colorPlayerO
}
