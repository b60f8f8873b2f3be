// Package pips computes where the dots of a die face go.
package pips

// FaceValue is the number shown on a die face. Valid values are 1..6.
type FaceValue int

// Layout constants for the face canvas.
const (
	CanvasSize     = 256
	DotRadius      = 24
	OffsetFraction = 0.25
)

// Point is a dot centre in canvas coordinates (origin top-left, y down).
type Point struct {
	X, Y float64
}

// Valid reports whether v is one of the six die values.
func (v FaceValue) Valid() bool {
	return v >= 1 && v <= 6
}

// Layout returns the dot centres for face value v on a square canvas of the
// given size. Values outside 1..6 yield no dots.
func Layout(v FaceValue, size float64) []Point {
	c := size / 2
	off := size * OffsetFraction

	left, right := c-off, c+off
	top, bottom := c-off, c+off

	center := Point{c, c}
	topMid := Point{c, top}
	bottomMid := Point{c, bottom}
	corners := []Point{
		{left, top}, {right, top},
		{left, bottom}, {right, bottom},
	}

	switch v {
	case 1:
		return []Point{center}
	case 2:
		return []Point{topMid, bottomMid}
	case 3:
		return []Point{center, topMid, bottomMid}
	case 4:
		return corners
	case 5:
		return append([]Point{center}, corners...)
	case 6:
		return []Point{
			{left, top}, {right, top},
			{left, c}, {right, c},
			{left, bottom}, {right, bottom},
		}
	default:
		return []Point{}
	}
}
