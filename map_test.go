package gridmap

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// testMeta builds a cols x rows meta grid with distinct string values
// ("0,0", "0,1", ...), column-major.
func testMeta(cols, rows int) [][]any {
	meta := make([][]any, cols)
	for x := range meta {
		meta[x] = make([]any, rows)
		for y := range meta[x] {
			meta[x][y] = cell(x, y)
		}
	}
	return meta
}

func cell(x, y int) string {
	return string(rune('a'+x)) + string(rune('0'+y))
}

func TestNewMapRequiresCellData(t *testing.T) {
	_, err := NewMap(32, 32, MapConfig{})
	if err == nil {
		t.Fatal("NewMap with neither Meta nor Images should fail")
	}
}

func TestNewMapRequiresPositiveTileSize(t *testing.T) {
	meta := testMeta(2, 2)
	if _, err := NewMap(0, 32, MapConfig{Meta: meta}); err == nil {
		t.Error("tile width 0 accepted")
	}
	if _, err := NewMap(32, -1, MapConfig{Meta: meta}); err == nil {
		t.Error("negative tile height accepted")
	}
}

func TestNewMapRejectsRaggedColumns(t *testing.T) {
	meta := [][]any{{"a", "d"}, {"b"}, {"c", "f"}}
	if _, err := NewMap(32, 32, MapConfig{Meta: meta}); err == nil {
		t.Fatal("ragged Meta accepted")
	}
}

func TestNewMapRejectsEmptyGrid(t *testing.T) {
	if _, err := NewMap(32, 32, MapConfig{Meta: [][]any{}}); err == nil {
		t.Error("zero-column Meta accepted")
	}
	if _, err := NewMap(32, 32, MapConfig{Meta: [][]any{{}}}); err == nil {
		t.Error("zero-row Meta accepted")
	}
}

func TestNewMapRejectsMismatchedMetaImages(t *testing.T) {
	meta := testMeta(2, 2)
	images := make([][]*ebiten.Image, 3)
	for x := range images {
		images[x] = make([]*ebiten.Image, 2)
	}
	if _, err := NewMap(32, 32, MapConfig{Meta: meta, Images: images}); err == nil {
		t.Fatal("mismatched Meta/Images dimensions accepted")
	}
}

func TestMapScenario(t *testing.T) {
	// 3x2 map:
	//   +---+---+---+
	//   | d | e | f |
	//   +---+---+---+
	//   | a | b | c |
	//   +---+---+---+
	m, err := NewMap(32, 32, MapConfig{
		Meta: [][]any{{"a", "d"}, {"b", "e"}, {"c", "f"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	t0, ok := m.TileAt(0, 0)
	if !ok || t0.Meta != "a" {
		t.Fatalf("TileAt(0,0) = %v, %v, want meta a", t0.Meta, ok)
	}
	r, ok := t0.Neighbor(Right)
	if !ok || r.Meta != "b" {
		t.Errorf("Neighbor(Right) meta = %v, %v, want b", r.Meta, ok)
	}
	u, ok := t0.Neighbor(Up)
	if !ok || u.Meta != "d" {
		t.Errorf("Neighbor(Up) meta = %v, %v, want d", u.Meta, ok)
	}

	top, ok := m.TileAt(0, 1)
	if !ok {
		t.Fatal("TileAt(0,1) missing")
	}
	if _, ok := top.Neighbor(Up); ok {
		t.Error("Neighbor(Up) above the top row should be absent")
	}
}

func TestMapTileCoordsRoundtrip(t *testing.T) {
	m, err := NewMap(16, 24, MapConfig{Meta: testMeta(4, 3)})
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			tile, ok := m.TileAt(x, y)
			if !ok {
				t.Fatalf("TileAt(%d,%d) absent", x, y)
			}
			if tile.X != x || tile.Y != y {
				t.Errorf("TileAt(%d,%d) has coords (%d,%d)", x, y, tile.X, tile.Y)
			}
			if tile.Meta != cell(x, y) {
				t.Errorf("TileAt(%d,%d) meta = %v, want %v", x, y, tile.Meta, cell(x, y))
			}
		}
	}
}

func TestMapOutOfBounds(t *testing.T) {
	m, err := NewMap(32, 32, MapConfig{Meta: testMeta(3, 2)})
	if err != nil {
		t.Fatal(err)
	}
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {-3, -3}, {3, 0}, {0, 2}, {99, 99}} {
		if _, ok := m.TileAt(pos[0], pos[1]); ok {
			t.Errorf("TileAt(%d,%d) should be absent", pos[0], pos[1])
		}
	}
}

func TestMapNeighborEquivalence(t *testing.T) {
	m, err := NewMap(32, 32, MapConfig{Meta: testMeta(4, 3)})
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			tile, _ := m.TileAt(x, y)
			n, nok := tile.Neighbor(Right)
			want, wok := m.TileAt(x+1, y)
			if nok != wok {
				t.Fatalf("(%d,%d) Neighbor(Right) ok = %v, TileAt(%d,%d) ok = %v", x, y, nok, x+1, y, wok)
			}
			if nok && (n.X != want.X || n.Y != want.Y || n.Meta != want.Meta) {
				t.Errorf("(%d,%d) Neighbor(Right) = (%d,%d), want (%d,%d)", x, y, n.X, n.Y, want.X, want.Y)
			}
		}
	}
}

func TestMapPixelSize(t *testing.T) {
	for cols := 1; cols <= 3; cols++ {
		for rows := 1; rows <= 4; rows++ {
			m, err := NewMap(32, 16, MapConfig{Meta: testMeta(cols, rows)})
			if err != nil {
				t.Fatal(err)
			}
			if m.PixelWidth() != cols*32 {
				t.Errorf("%dx%d: PixelWidth = %d, want %d", cols, rows, m.PixelWidth(), cols*32)
			}
			if m.PixelHeight() != rows*16 {
				t.Errorf("%dx%d: PixelHeight = %d, want %d", cols, rows, m.PixelHeight(), rows*16)
			}
		}
	}
}

func TestMapTileAtPixel(t *testing.T) {
	m, err := NewMap(32, 32, MapConfig{Meta: testMeta(3, 2)})
	if err != nil {
		t.Fatal(err)
	}

	tile, ok := m.TileAtPixel(40, 10)
	if !ok || tile.X != 1 || tile.Y != 0 {
		t.Errorf("TileAtPixel(40,10) = (%d,%d), %v, want (1,0)", tile.X, tile.Y, ok)
	}

	// Pixel exactly on a tile boundary belongs to the higher tile.
	tile, ok = m.TileAtPixel(32, 32)
	if !ok || tile.X != 1 || tile.Y != 1 {
		t.Errorf("TileAtPixel(32,32) = (%d,%d), %v, want (1,1)", tile.X, tile.Y, ok)
	}

	// Negative pixels floor-divide to negative tiles and miss the map.
	if _, ok := m.TileAtPixel(-1, 10); ok {
		t.Error("TileAtPixel(-1,10) should be absent")
	}
	if _, ok := m.TileAtPixel(10, -1); ok {
		t.Error("TileAtPixel(10,-1) should be absent")
	}
	if _, ok := m.TileAtPixel(96, 0); ok {
		t.Error("TileAtPixel past the right edge should be absent")
	}
}

func TestMapImagesOnly(t *testing.T) {
	img := ebiten.NewImage(8, 8)
	images := [][]*ebiten.Image{{img}, {img}}
	m, err := NewMap(8, 8, MapConfig{Images: images})
	if err != nil {
		t.Fatal(err)
	}
	tile, ok := m.TileAt(1, 0)
	if !ok {
		t.Fatal("TileAt(1,0) absent")
	}
	if tile.Image != img {
		t.Error("tile Image not passed through")
	}
	if tile.Meta != nil {
		t.Errorf("tile Meta = %v, want nil when Meta not supplied", tile.Meta)
	}
}

func TestMapOriginStored(t *testing.T) {
	m, err := NewMap(32, 32, MapConfig{
		Origin: Origin{X: 10, Y: 20, Z: 3},
		Meta:   testMeta(2, 2),
	})
	if err != nil {
		t.Fatal(err)
	}
	if m.Origin() != (Origin{X: 10, Y: 20, Z: 3}) {
		t.Errorf("Origin = %+v", m.Origin())
	}
}
