package dice

import "dice-cube-renderer/internal/mathutil"

// DefaultSize is the edge length of a die.
const DefaultSize = 0.5

// LightingModel selects how a surface responds to scene lights.
type LightingModel int

const (
	// Constant shows the texture as-is, ignoring lights.
	Constant LightingModel = iota
	// Lambert shades by the diffuse term of every light.
	Lambert
)

// Cube is one die: a textured box at a world position. The face mapping is
// fixed once built; only the node rotation is animated.
type Cube struct {
	Name     string
	Size     float64
	Faces    Mapping
	Lighting LightingModel
	Position mathutil.Vec3
}

// NewCube returns a die of DefaultSize with constant lighting.
func NewCube(name string, faces Mapping, pos mathutil.Vec3) *Cube {
	return &Cube{
		Name:     name,
		Size:     DefaultSize,
		Faces:    faces,
		Lighting: Constant,
		Position: pos,
	}
}

// Transform returns the local-to-world matrix for the cube rotated by rot
// about its own centre.
func (c *Cube) Transform(rot mathutil.Mat3) mathutil.Mat4 {
	return mathutil.FromMat3Translation(rot, c.Position)
}

// HalfExtent is half the edge length.
func (c *Cube) HalfExtent() float64 {
	return c.Size / 2
}

// Triangle is one textured triangle of the cube mesh in local space.
type Triangle struct {
	Slot int // material slot, index into Mapping
	V    [3]mathutil.Vec3
	UV   [3][2]float64
}

// Mesh returns the 12 triangles of the box, two per face, wound
// counter-clockwise when seen from outside.
func (c *Cube) Mesh() []Triangle {
	h := c.HalfExtent()
	tris := make([]Triangle, 0, 12)

	for slot, f := range FaceOrder {
		b := bases[f]
		center := b.Normal.Scale(h)
		corner := func(sr, su float64) mathutil.Vec3 {
			return center.Add(b.Right.Scale(sr * h)).Add(b.Up.Scale(su * h))
		}

		tl, tr := corner(-1, 1), corner(1, 1)
		bl, br := corner(-1, -1), corner(1, -1)
		uvTL, uvTR := [2]float64{0, 0}, [2]float64{1, 0}
		uvBL, uvBR := [2]float64{0, 1}, [2]float64{1, 1}

		tris = append(tris,
			Triangle{Slot: slot, V: [3]mathutil.Vec3{bl, br, tr}, UV: [3][2]float64{uvBL, uvBR, uvTR}},
			Triangle{Slot: slot, V: [3]mathutil.Vec3{bl, tr, tl}, UV: [3][2]float64{uvBL, uvTR, uvTL}},
		)
	}
	return tris
}
