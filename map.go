package gridmap

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// MapConfig carries the optional construction parameters shared by NewMap
// and NewHexMap. At least one of Meta or Images must be supplied; the grid
// size is taken from whichever is present (both must agree if both are).
type MapConfig struct {
	// Origin is the pixel offset of the map from the world origin.
	Origin Origin

	// Meta is arbitrary per-cell application data, addressed [x][y] with y
	// increasing upward. All columns must have equal length.
	Meta [][]any

	// Images is the per-cell drawable, addressed like Meta.
	Images [][]*ebiten.Image
}

// cellGrid is the flat column-major backing store shared by Map and HexMap.
// Cell (x, y) lives at index x*rows + y.
type cellGrid struct {
	cols, rows int
	meta       []any           // nil when Meta was not supplied
	images     []*ebiten.Image // nil when Images was not supplied
}

// newCellGrid validates the config arrays and flattens them. Ragged or
// empty arrays are construction errors, never runtime conditions.
func newCellGrid(cfg MapConfig) (cellGrid, error) {
	if cfg.Meta == nil && cfg.Images == nil {
		return cellGrid{}, fmt.Errorf("gridmap: either Meta or Images must be supplied")
	}

	cols, rows := 0, 0
	if cfg.Meta != nil {
		c, r, err := gridDims("Meta", len(cfg.Meta), func(x int) int { return len(cfg.Meta[x]) })
		if err != nil {
			return cellGrid{}, err
		}
		cols, rows = c, r
	}
	if cfg.Images != nil {
		c, r, err := gridDims("Images", len(cfg.Images), func(x int) int { return len(cfg.Images[x]) })
		if err != nil {
			return cellGrid{}, err
		}
		if cfg.Meta != nil && (c != cols || r != rows) {
			return cellGrid{}, fmt.Errorf("gridmap: Meta is %dx%d but Images is %dx%d", cols, rows, c, r)
		}
		cols, rows = c, r
	}

	g := cellGrid{cols: cols, rows: rows}
	if cfg.Meta != nil {
		g.meta = make([]any, cols*rows)
		for x, col := range cfg.Meta {
			copy(g.meta[x*rows:(x+1)*rows], col)
		}
	}
	if cfg.Images != nil {
		g.images = make([]*ebiten.Image, cols*rows)
		for x, col := range cfg.Images {
			copy(g.images[x*rows:(x+1)*rows], col)
		}
	}
	return g, nil
}

// gridDims measures a 2D config array and rejects empty or ragged input.
func gridDims(name string, cols int, colLen func(int) int) (int, int, error) {
	if cols == 0 {
		return 0, 0, fmt.Errorf("gridmap: %s has no columns", name)
	}
	rows := colLen(0)
	if rows == 0 {
		return 0, 0, fmt.Errorf("gridmap: %s has no rows", name)
	}
	for x := 1; x < cols; x++ {
		if colLen(x) != rows {
			return 0, 0, fmt.Errorf("gridmap: %s column %d has %d rows, want %d", name, x, colLen(x), rows)
		}
	}
	return cols, rows, nil
}

func (g *cellGrid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.cols && y < g.rows
}

func (g *cellGrid) metaAt(x, y int) any {
	if g.meta == nil {
		return nil
	}
	return g.meta[x*g.rows+y]
}

func (g *cellGrid) imageAt(x, y int) *ebiten.Image {
	if g.images == nil {
		return nil
	}
	return g.images[x*g.rows+y]
}

// Map is a rectangular tile map: uniform cells with 4-neighbor
// connectivity. It is immutable once built.
//
// Cells are stored column-major with y increasing up, allowing [x][y]
// addressing in MapConfig:
//
//	+---+---+---+
//	| d | e | f |
//	+---+---+---+
//	| a | b | c |
//	+---+---+---+
//
// is Meta = [][]any{{"a", "d"}, {"b", "e"}, {"c", "f"}}, and cell (0, 1)
// holds "d".
type Map struct {
	grid         cellGrid
	tileW, tileH int
	origin       Origin
	pxW, pxH     int
}

// NewMap builds a rectangular map with cells of tileW x tileH pixels.
func NewMap(tileW, tileH int, cfg MapConfig) (*Map, error) {
	if tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("gridmap: tile size must be positive, got %dx%d", tileW, tileH)
	}
	grid, err := newCellGrid(cfg)
	if err != nil {
		return nil, err
	}
	return &Map{
		grid:   grid,
		tileW:  tileW,
		tileH:  tileH,
		origin: cfg.Origin,
		pxW:    grid.cols * tileW,
		pxH:    grid.rows * tileH,
	}, nil
}

// Width returns the map width in tiles.
func (m *Map) Width() int { return m.grid.cols }

// Height returns the map height in tiles.
func (m *Map) Height() int { return m.grid.rows }

// TileWidth returns the width of one cell in pixels.
func (m *Map) TileWidth() int { return m.tileW }

// TileHeight returns the height of one cell in pixels.
func (m *Map) TileHeight() int { return m.tileH }

// PixelWidth returns the total map width in pixels.
func (m *Map) PixelWidth() int { return m.pxW }

// PixelHeight returns the total map height in pixels.
func (m *Map) PixelHeight() int { return m.pxH }

// Origin returns the map's pixel offset from the world origin.
func (m *Map) Origin() Origin { return m.origin }

// TileAt returns the tile at grid position (x, y). The second result is
// false when the position is outside the map; probing past an edge is not
// an error. Each call builds a fresh Tile value.
func (m *Map) TileAt(x, y int) (Tile, bool) {
	if !m.grid.inBounds(x, y) {
		return Tile{}, false
	}
	return Tile{
		m:      m,
		X:      x,
		Y:      y,
		Width:  m.tileW,
		Height: m.tileH,
		Meta:   m.grid.metaAt(x, y),
		Image:  m.grid.imageAt(x, y),
	}, true
}

// TileAtPixel returns the tile containing the map-local pixel (px, py).
// The pixel is floor-divided by the tile size, so negative pixels always
// miss the map.
func (m *Map) TileAtPixel(px, py int) (Tile, bool) {
	return m.TileAt(floorDiv(px, m.tileW), floorDiv(py, m.tileH))
}
