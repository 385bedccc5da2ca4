package gridmap

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Direction names the four neighbors of a rectangular tile.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Tile is a transient view of one Map cell. It is never cached or
// mutated; every lookup builds a fresh value. All geometry is map-local
// integer pixels with y increasing upward.
type Tile struct {
	m *Map

	// X and Y are the grid position.
	X, Y int
	// Width and Height are the cell size in pixels, copied from the map.
	Width, Height int
	// Meta is the cell's application data (nil when Meta was not supplied).
	Meta any
	// Image is the cell's drawable (nil when Images was not supplied).
	Image *ebiten.Image
}

// Bottom returns the y extent of the tile's bottom edge.
func (t Tile) Bottom() int { return t.Y * t.Height }

// Top returns the y extent of the tile's top edge.
func (t Tile) Top() int { return (t.Y + 1) * t.Height }

// Left returns the x extent of the tile's left edge.
func (t Tile) Left() int { return t.X * t.Width }

// Right returns the x extent of the tile's right edge.
func (t Tile) Right() int { return (t.X + 1) * t.Width }

// Center returns the tile's center point.
func (t Tile) Center() Point {
	return Point{t.X*t.Width + t.Width/2, t.Y*t.Height + t.Height/2}
}

// TopLeft returns the top-left corner.
func (t Tile) TopLeft() Point { return Point{t.Left(), t.Top()} }

// TopRight returns the top-right corner.
func (t Tile) TopRight() Point { return Point{t.Right(), t.Top()} }

// BottomLeft returns the bottom-left corner.
func (t Tile) BottomLeft() Point { return Point{t.Left(), t.Bottom()} }

// BottomRight returns the bottom-right corner.
func (t Tile) BottomRight() Point { return Point{t.Right(), t.Bottom()} }

// MidTop returns the middle of the top side.
func (t Tile) MidTop() Point { return Point{t.X*t.Width + t.Width/2, t.Top()} }

// MidBottom returns the middle of the bottom side.
func (t Tile) MidBottom() Point { return Point{t.X*t.Width + t.Width/2, t.Bottom()} }

// MidLeft returns the middle of the left side.
func (t Tile) MidLeft() Point { return Point{t.Left(), t.Y*t.Height + t.Height/2} }

// MidRight returns the middle of the right side.
func (t Tile) MidRight() Point { return Point{t.Right(), t.Y*t.Height + t.Height/2} }

// Neighbor returns the adjacent tile in the given direction, or false at
// the map edge. Passing an unknown Direction is a caller bug and panics.
func (t Tile) Neighbor(d Direction) (Tile, bool) {
	switch d {
	case Up:
		return t.m.TileAt(t.X, t.Y+1)
	case Down:
		return t.m.TileAt(t.X, t.Y-1)
	case Left:
		return t.m.TileAt(t.X-1, t.Y)
	case Right:
		return t.m.TileAt(t.X+1, t.Y)
	default:
		panic(fmt.Sprintf("gridmap: unknown Direction %d", d))
	}
}
