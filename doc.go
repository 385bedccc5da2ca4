// Package gridmap provides rectangular and hexagonal tile-map models for
// [Ebitengine] games: grid addressing, neighbor navigation in both lattice
// topologies, and pixel/tile geometry, plus a camera and debug grid views.
//
// # Quick start
//
// Build a map from per-cell metadata and query it:
//
//	m, err := gridmap.NewMap(32, 32, gridmap.MapConfig{
//		Meta: [][]any{{"a", "d"}, {"b", "e"}, {"c", "f"}},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	t, _ := m.TileAt(0, 0)            // "a"
//	r, _ := t.Neighbor(gridmap.Right) // "b"
//
// Maps are immutable once built. Cells are addressed [x][y], column-major,
// with y increasing upward; all pixel geometry is map-local and integer.
// Out-of-bounds lookups are not errors: every query returns a comma-ok
// result, so callers can probe past map edges freely.
//
// [HexMap] holds flat-top regular hexagons packed in offset (brick-wall)
// columns; odd columns sit half a cell higher than even columns, which is
// why diagonal neighbor lookups branch on column parity.
//
// # Tiles
//
// [Tile] and [HexTile] are transient views of one cell, rebuilt on every
// lookup. They carry the cell's Meta and Image values and expose pure
// geometry accessors (edges, corners, side midpoints, center) computed
// from the grid position and tile size.
//
// # Rendering
//
// [MapView] and [HexMapView] draw a map into an *ebiten.Image through a
// [Camera]. Besides drawing cell images they offer the checkered and
// line-grid debug styles, which need no art assets at all.
//
// [Ebitengine]: https://ebitengine.org
package gridmap
