package gridmap

// Point is an integer map-local pixel coordinate. Y increases upward.
type Point struct {
	X, Y int
}

// Origin is the pixel offset of a map from the world origin. Z is reserved
// for draw-order layering between maps and does not affect geometry.
type Origin struct {
	X, Y, Z int
}

// Rect is an axis-aligned rectangle with float64 components, used for
// camera viewports (screen space, y down) and world-space bounds (y up).
// X and Y are always the minimum corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// floorDiv divides a by b rounding toward negative infinity, so that
// pixel-to-tile conversion sends negative pixels to negative tiles
// instead of folding them onto tile 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
