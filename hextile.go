package gridmap

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// HexDirection names the six neighbors of a hexagonal tile.
type HexDirection uint8

const (
	HexUp HexDirection = iota
	HexDown
	HexUpLeft
	HexUpRight
	HexDownLeft
	HexDownRight
)

// HexTile is a transient view of one HexMap cell: a flat-top regular
// hexagon. Like Tile, it is rebuilt on every lookup and never cached.
//
// All accessors add offsets to the cell origin rather than subtracting
// from neighbors, so truncated integer division yields the same pixel for
// a point shared with an adjacent cell's corresponding point.
type HexTile struct {
	m *HexMap

	// X and Y are the grid position.
	X, Y int
	// Width and Height are the bounding-box size in pixels.
	Width, Height int
	// Meta is the cell's application data.
	Meta any
	// Image is the cell's drawable.
	Image *ebiten.Image
}

// origin returns the bottom-left corner of the tile's bounding box.
func (t HexTile) origin() (int, int) {
	return hexOrigin(t.X, t.Y, t.Width, t.Height)
}

// Bottom returns the y extent of the tile's flat bottom side.
func (t HexTile) Bottom() int {
	_, oy := t.origin()
	return oy
}

// Top returns the y extent of the tile's flat top side.
func (t HexTile) Top() int {
	_, oy := t.origin()
	return oy + t.Height
}

// Left returns the left corner point.
func (t HexTile) Left() Point {
	ox, oy := t.origin()
	return Point{ox, oy + t.Height/2}
}

// Right returns the right corner point.
func (t HexTile) Right() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width, oy + t.Height/2}
}

// Center returns the tile's center point.
func (t HexTile) Center() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width/2, oy + t.Height/2}
}

// MidTop returns the middle of the flat top side.
func (t HexTile) MidTop() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width/2, oy + t.Height}
}

// MidBottom returns the middle of the flat bottom side.
func (t HexTile) MidBottom() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width/2, oy}
}

// TopLeft returns the top-left corner.
func (t HexTile) TopLeft() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width/4, oy + t.Height}
}

// TopRight returns the top-right corner.
func (t HexTile) TopRight() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width/2 + t.Width/4, oy + t.Height}
}

// BottomLeft returns the bottom-left corner.
func (t HexTile) BottomLeft() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width/4, oy}
}

// BottomRight returns the bottom-right corner.
func (t HexTile) BottomRight() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width/2 + t.Width/4, oy}
}

// MidTopLeft returns the middle of the upper-left side.
func (t HexTile) MidTopLeft() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width/8, oy + t.Height/2 + t.Height/4}
}

// MidTopRight returns the middle of the upper-right side.
func (t HexTile) MidTopRight() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width/2 + t.Width/4 + t.Width/8, oy + t.Height/2 + t.Height/4}
}

// MidBottomLeft returns the middle of the lower-left side.
func (t HexTile) MidBottomLeft() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width/8, oy + t.Height/4}
}

// MidBottomRight returns the middle of the lower-right side.
func (t HexTile) MidBottomRight() Point {
	ox, oy := t.origin()
	return Point{ox + t.Width/2 + t.Width/4 + t.Width/8, oy + t.Height/4}
}

// Neighbor returns the adjacent tile in the given direction, or false
// when the neighbor is outside the map or an explicit hole.
//
// For the four diagonal directions the row delta depends on column
// parity, because odd columns are raised half a cell: an odd column's
// upward diagonals land one row higher, an even column's downward
// diagonals land one row lower. Passing an unknown HexDirection is a
// caller bug and panics.
func (t HexTile) Neighbor(d HexDirection) (HexTile, bool) {
	odd := t.X%2 != 0
	switch d {
	case HexUp:
		return t.m.TileAt(t.X, t.Y+1)
	case HexDown:
		return t.m.TileAt(t.X, t.Y-1)
	case HexUpLeft:
		if odd {
			return t.m.TileAt(t.X-1, t.Y+1)
		}
		return t.m.TileAt(t.X-1, t.Y)
	case HexUpRight:
		if odd {
			return t.m.TileAt(t.X+1, t.Y+1)
		}
		return t.m.TileAt(t.X+1, t.Y)
	case HexDownLeft:
		if odd {
			return t.m.TileAt(t.X-1, t.Y)
		}
		return t.m.TileAt(t.X-1, t.Y-1)
	case HexDownRight:
		if odd {
			return t.m.TileAt(t.X+1, t.Y)
		}
		return t.m.TileAt(t.X+1, t.Y-1)
	default:
		panic(fmt.Sprintf("gridmap: unknown HexDirection %d", d))
	}
}
