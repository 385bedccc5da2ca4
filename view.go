package gridmap

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ViewStyle selects how a map view renders its cells.
type ViewStyle uint8

const (
	// ViewImages draws each cell's Image at the cell origin.
	ViewImages ViewStyle = iota
	// ViewCheckered fills cells with alternating light/dark grey.
	ViewCheckered
	// ViewLines draws cell outlines only.
	ViewLines
)

var (
	checkerLight = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	checkerDark  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	lineGrey     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// visibleTileRange converts a camera's world-space bounds into an
// inclusive tile index range, clamped to the grid. ok is false when the
// bounds miss the map entirely.
func visibleTileRange(b Rect, org Origin, tw, th, cols, rows int) (minX, minY, maxX, maxY int, ok bool) {
	minX = floorDiv(int(math.Floor(b.X))-org.X, tw)
	maxX = floorDiv(int(math.Ceil(b.X+b.Width))-org.X, tw)
	minY = floorDiv(int(math.Floor(b.Y))-org.Y, th)
	maxY = floorDiv(int(math.Ceil(b.Y+b.Height))-org.Y, th)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > cols-1 {
		maxX = cols - 1
	}
	if maxY > rows-1 {
		maxY = rows - 1
	}
	ok = minX <= maxX && minY <= maxY
	return
}

// MapView draws a rectangular Map into a screen through a Camera.
// Only tiles inside the camera's visible bounds are drawn.
type MapView struct {
	Map    *Map
	Camera *Camera
	Style  ViewStyle

	checker [2]*ebiten.Image
	lines   *ebiten.Image
}

// NewMapView creates a view of m through cam with the given style.
func NewMapView(m *Map, cam *Camera, style ViewStyle) *MapView {
	return &MapView{Map: m, Camera: cam, Style: style}
}

// Draw renders the visible part of the map onto dst.
func (v *MapView) Draw(dst *ebiten.Image) {
	m := v.Map
	minX, minY, maxX, maxY, ok := visibleTileRange(
		v.Camera.VisibleBounds(), m.Origin(),
		m.TileWidth(), m.TileHeight(), m.Width(), m.Height())
	if !ok {
		return
	}

	org := m.Origin()
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			t, ok := m.TileAt(x, y)
			if !ok {
				continue
			}
			img := v.cellImage(t)
			if img == nil {
				continue
			}
			sx, sy := v.Camera.WorldToScreen(float64(org.X+t.Left()), float64(org.Y+t.Top()))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(v.Camera.Zoom, v.Camera.Zoom)
			op.GeoM.Translate(sx, sy)
			dst.DrawImage(img, op)
		}
	}
}

func (v *MapView) cellImage(t Tile) *ebiten.Image {
	switch v.Style {
	case ViewCheckered:
		v.ensureRectImages()
		return v.checker[(t.X+t.Y)%2]
	case ViewLines:
		v.ensureRectImages()
		return v.lines
	default:
		return t.Image
	}
}

// ensureRectImages lazily builds the debug cell images.
func (v *MapView) ensureRectImages() {
	if v.checker[0] != nil {
		return
	}
	tw, th := v.Map.TileWidth(), v.Map.TileHeight()
	v.checker[0] = ebiten.NewImage(tw, th)
	v.checker[0].Fill(checkerLight)
	v.checker[1] = ebiten.NewImage(tw, th)
	v.checker[1].Fill(checkerDark)
	v.lines = ebiten.NewImage(tw, th)
	for x := 0; x < tw; x++ {
		v.lines.Set(x, 0, lineGrey)
		v.lines.Set(x, th-1, lineGrey)
	}
	for y := 0; y < th; y++ {
		v.lines.Set(0, y, lineGrey)
		v.lines.Set(tw-1, y, lineGrey)
	}
}

// HexMapView draws a HexMap into a screen through a Camera.
type HexMapView struct {
	Map    *HexMap
	Camera *Camera
	Style  ViewStyle

	checker [2]*ebiten.Image
	lines   *ebiten.Image
}

// NewHexMapView creates a view of m through cam with the given style.
func NewHexMapView(m *HexMap, cam *Camera, style ViewStyle) *HexMapView {
	return &HexMapView{Map: m, Camera: cam, Style: style}
}

// Draw renders the visible part of the map onto dst. Columns are culled
// by stride, then each candidate tile by its bounding box (rows shift
// with column parity, so a plain row window would clip odd columns).
func (v *HexMapView) Draw(dst *ebiten.Image) {
	m := v.Map
	b := v.Camera.VisibleBounds()
	org := m.Origin()
	tw, th := m.TileWidth(), m.TileHeight()
	stride := hexColStride(tw)

	minX := floorDiv(int(math.Floor(b.X))-org.X-tw, stride)
	maxX := floorDiv(int(math.Ceil(b.X+b.Width))-org.X, stride)
	minY := floorDiv(int(math.Floor(b.Y))-org.Y-th-th/2, th)
	maxY := floorDiv(int(math.Ceil(b.Y+b.Height))-org.Y, th)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > m.Width()-1 {
		maxX = m.Width() - 1
	}
	if maxY > m.Height()-1 {
		maxY = m.Height() - 1
	}

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			ox, oy := hexOrigin(x, y, tw, th)
			box := Rect{
				X:      float64(org.X + ox),
				Y:      float64(org.Y + oy),
				Width:  float64(tw),
				Height: float64(th),
			}
			if !box.Intersects(b) {
				continue
			}
			t, ok := m.TileAt(x, y)
			if !ok {
				continue
			}
			img := v.cellImage(t)
			if img == nil {
				continue
			}
			sx, sy := v.Camera.WorldToScreen(float64(org.X+ox), float64(org.Y+oy+th))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(v.Camera.Zoom, v.Camera.Zoom)
			op.GeoM.Translate(sx, sy)
			dst.DrawImage(img, op)
		}
	}
}

func (v *HexMapView) cellImage(t HexTile) *ebiten.Image {
	switch v.Style {
	case ViewCheckered:
		v.ensureHexImages()
		return v.checker[(t.X+t.Y)%2]
	case ViewLines:
		v.ensureHexImages()
		return v.lines
	default:
		return t.Image
	}
}

// ensureHexImages lazily rasterizes the debug hexagon images.
func (v *HexMapView) ensureHexImages() {
	if v.checker[0] != nil {
		return
	}
	tw, th := v.Map.TileWidth(), v.Map.TileHeight()
	v.checker[0] = hexImage(tw, th, checkerLight, true)
	v.checker[1] = hexImage(tw, th, checkerDark, true)
	v.lines = hexImage(tw, th, lineGrey, false)
}

// hexImage rasterizes a flat-top hexagon of the given bounding box size,
// filled or outlined. Rows expand linearly from quarter-width insets at
// the flat sides to the full width at the middle corners.
func hexImage(tw, th int, clr color.RGBA, fill bool) *ebiten.Image {
	img := ebiten.NewImage(tw, th)
	for y := 0; y < th; y++ {
		d := math.Abs(float64(y) + 0.5 - float64(th)/2)
		inset := int(float64(tw) / 4 * d / (float64(th) / 2))
		if inset > tw/4 {
			inset = tw / 4
		}
		left, right := inset, tw-1-inset
		if fill || y == 0 || y == th-1 {
			for x := left; x <= right; x++ {
				img.Set(x, y, clr)
			}
		} else {
			img.Set(left, y, clr)
			img.Set(right, y, clr)
		}
	}
	return img
}
