package gridmap

import (
	"fmt"
	"math"
)

// HexMap is a map of flat-top, regular hexagonal cells with 6-neighbor
// connectivity. It is immutable once built.
//
// Cells are stored in an offset (brick-wall) array, column-major with y
// increasing up; odd columns sit half a cell higher than even columns:
//
//	      /d\ /h\
//	    /b\_/f\_/
//	    \_/c\_/g\
//	    /a\_/e\_/
//	    \_/ \_/
//
// is Meta = [][]any{{"a", "b"}, {"c", "d"}, {"e", "f"}, {"g", "h"}}.
type HexMap struct {
	grid         cellGrid
	tileW, tileH int
	edge         int
	origin       Origin
	pxW, pxH     int
}

// NewHexMap builds a hexagonal map with cells tileH pixels tall. The edge
// length and cell width are derived: edge = tileH/sqrt(3) (truncated),
// width = 2*edge.
func NewHexMap(tileH int, cfg MapConfig) (*HexMap, error) {
	if tileH <= 0 {
		return nil, fmt.Errorf("gridmap: tile height must be positive, got %d", tileH)
	}
	edge := int(float64(tileH) / math.Sqrt(3))
	if edge == 0 {
		return nil, fmt.Errorf("gridmap: tile height %d is too small for hex geometry", tileH)
	}
	grid, err := newCellGrid(cfg)
	if err != nil {
		return nil, err
	}

	m := &HexMap{
		grid:   grid,
		tileW:  edge * 2,
		tileH:  tileH,
		edge:   edge,
		origin: cfg.Origin,
	}
	// Closed-form map extent, equal to probing the corner tiles: the last
	// column's right edge, and the top edge of the tallest column (odd
	// columns are raised by half a cell, so a map wider than one column
	// gains tileH/2).
	m.pxW = (grid.cols-1)*hexColStride(m.tileW) + m.tileW
	m.pxH = grid.rows * tileH
	if grid.cols > 1 {
		m.pxH += tileH / 2
	}
	return m, nil
}

// hexColStride is the horizontal distance between adjacent column origins.
// Integer division matches the per-tile origin formula.
func hexColStride(tileW int) int { return tileW/2 + tileW/4 }

// hexOrigin returns the bottom-left corner of the bounding box of cell
// (x, y). Odd columns are raised by half a cell.
func hexOrigin(x, y, tileW, tileH int) (int, int) {
	ox := x * hexColStride(tileW)
	oy := y * tileH
	if x%2 != 0 {
		oy += tileH / 2
	}
	return ox, oy
}

// Width returns the map width in tiles.
func (m *HexMap) Width() int { return m.grid.cols }

// Height returns the map height in tiles.
func (m *HexMap) Height() int { return m.grid.rows }

// TileWidth returns the width of one cell's bounding box in pixels.
func (m *HexMap) TileWidth() int { return m.tileW }

// TileHeight returns the height of one cell in pixels.
func (m *HexMap) TileHeight() int { return m.tileH }

// EdgeLength returns the hexagon edge length in pixels.
func (m *HexMap) EdgeLength() int { return m.edge }

// PixelWidth returns the total map width in pixels.
func (m *HexMap) PixelWidth() int { return m.pxW }

// PixelHeight returns the total map height in pixels.
func (m *HexMap) PixelHeight() int { return m.pxH }

// Origin returns the map's pixel offset from the world origin.
func (m *HexMap) Origin() Origin { return m.origin }

// TileAt returns the tile at grid position (x, y). The second result is
// false when the position is outside the map, or when the cell is an
// explicit hole: every supplied backing array holds nil there. Sparse
// maps use such holes to carve non-rectangular shapes.
func (m *HexMap) TileAt(x, y int) (HexTile, bool) {
	if !m.grid.inBounds(x, y) {
		return HexTile{}, false
	}
	meta := m.grid.metaAt(x, y)
	img := m.grid.imageAt(x, y)
	if meta == nil && img == nil {
		return HexTile{}, false
	}
	return HexTile{
		m:      m,
		X:      x,
		Y:      y,
		Width:  m.tileW,
		Height: m.tileH,
		Meta:   meta,
		Image:  img,
	}, true
}

// TileAtPixel returns the tile containing the map-local pixel (px, py).
// The containing hexagon is the one whose center is nearest to the pixel
// (the hexagons tile the plane as the Voronoi cells of their centers), so
// the lookup scans the centers around the estimated column and row. Where
// the truncated integer geometry makes an edge ambiguous, a boundary
// pixel may resolve to either adjacent cell.
func (m *HexMap) TileAtPixel(px, py int) (HexTile, bool) {
	cx := floorDiv(px, hexColStride(m.tileW))
	cy := floorDiv(py, m.tileH)

	bestX, bestY := cx, cy
	best := math.MaxFloat64
	for x := cx - 1; x <= cx+1; x++ {
		for y := cy - 1; y <= cy+1; y++ {
			ox, oy := hexOrigin(x, y, m.tileW, m.tileH)
			dx := float64(px) - (float64(ox) + float64(m.tileW)/2)
			dy := float64(py) - (float64(oy) + float64(m.tileH)/2)
			if d := dx*dx + dy*dy; d < best {
				best = d
				bestX, bestY = x, y
			}
		}
	}
	return m.TileAt(bestX, bestY)
}
