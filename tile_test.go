package gridmap

import "testing"

func TestTileGeometry(t *testing.T) {
	m, err := NewMap(32, 32, MapConfig{Meta: testMeta(3, 4)})
	if err != nil {
		t.Fatal(err)
	}
	tile, ok := m.TileAt(1, 2)
	if !ok {
		t.Fatal("TileAt(1,2) absent")
	}

	if tile.Left() != 32 || tile.Right() != 64 {
		t.Errorf("Left/Right = %d/%d, want 32/64", tile.Left(), tile.Right())
	}
	if tile.Bottom() != 64 || tile.Top() != 96 {
		t.Errorf("Bottom/Top = %d/%d, want 64/96", tile.Bottom(), tile.Top())
	}
	if got := tile.Center(); got != (Point{48, 80}) {
		t.Errorf("Center = %v, want (48,80)", got)
	}

	if got := tile.TopLeft(); got != (Point{32, 96}) {
		t.Errorf("TopLeft = %v, want (32,96)", got)
	}
	if got := tile.TopRight(); got != (Point{64, 96}) {
		t.Errorf("TopRight = %v, want (64,96)", got)
	}
	if got := tile.BottomLeft(); got != (Point{32, 64}) {
		t.Errorf("BottomLeft = %v, want (32,64)", got)
	}
	if got := tile.BottomRight(); got != (Point{64, 64}) {
		t.Errorf("BottomRight = %v, want (64,64)", got)
	}

	if got := tile.MidTop(); got != (Point{48, 96}) {
		t.Errorf("MidTop = %v, want (48,96)", got)
	}
	if got := tile.MidBottom(); got != (Point{48, 64}) {
		t.Errorf("MidBottom = %v, want (48,64)", got)
	}
	if got := tile.MidLeft(); got != (Point{32, 80}) {
		t.Errorf("MidLeft = %v, want (32,80)", got)
	}
	if got := tile.MidRight(); got != (Point{64, 80}) {
		t.Errorf("MidRight = %v, want (64,80)", got)
	}
}

func TestTileGeometryNonSquare(t *testing.T) {
	m, err := NewMap(16, 48, MapConfig{Meta: testMeta(2, 2)})
	if err != nil {
		t.Fatal(err)
	}
	tile, _ := m.TileAt(1, 1)
	if tile.Width != 16 || tile.Height != 48 {
		t.Fatalf("tile size = %dx%d, want 16x48", tile.Width, tile.Height)
	}
	if tile.Left() != 16 || tile.Right() != 32 || tile.Bottom() != 48 || tile.Top() != 96 {
		t.Errorf("edges = L%d R%d B%d T%d", tile.Left(), tile.Right(), tile.Bottom(), tile.Top())
	}
	if got := tile.Center(); got != (Point{24, 72}) {
		t.Errorf("Center = %v, want (24,72)", got)
	}
}

func TestTileCornersConsistentWithEdges(t *testing.T) {
	m, err := NewMap(20, 12, MapConfig{Meta: testMeta(3, 3)})
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			tile, _ := m.TileAt(x, y)
			if tile.TopLeft() != (Point{tile.Left(), tile.Top()}) {
				t.Errorf("(%d,%d): TopLeft %v != (Left,Top)", x, y, tile.TopLeft())
			}
			if tile.BottomRight() != (Point{tile.Right(), tile.Bottom()}) {
				t.Errorf("(%d,%d): BottomRight %v != (Right,Bottom)", x, y, tile.BottomRight())
			}
		}
	}
}

func TestTileSharedEdges(t *testing.T) {
	// Adjacent tiles must agree on their shared edge pixel values.
	m, err := NewMap(32, 32, MapConfig{Meta: testMeta(3, 3)})
	if err != nil {
		t.Fatal(err)
	}
	a, _ := m.TileAt(0, 0)
	b, _ := a.Neighbor(Right)
	if a.Right() != b.Left() {
		t.Errorf("right edge %d != neighbor left edge %d", a.Right(), b.Left())
	}
	c, _ := a.Neighbor(Up)
	if a.Top() != c.Bottom() {
		t.Errorf("top edge %d != neighbor bottom edge %d", a.Top(), c.Bottom())
	}
}

func TestTileNeighborUnknownDirectionPanics(t *testing.T) {
	m, err := NewMap(32, 32, MapConfig{Meta: testMeta(2, 2)})
	if err != nil {
		t.Fatal(err)
	}
	tile, _ := m.TileAt(0, 0)
	defer func() {
		if recover() == nil {
			t.Error("Neighbor with unknown Direction did not panic")
		}
	}()
	tile.Neighbor(Direction(99))
}
