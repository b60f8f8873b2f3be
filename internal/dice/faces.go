// Package dice describes a die as a textured box: which face shows which
// value, in the order the box primitive expects its six materials.
package dice

import (
	"image"

	"dice-cube-renderer/internal/mathutil"
	"dice-cube-renderer/internal/pips"
)

// Face identifies one oriented side of the box.
type Face int

const (
	PosZ Face = iota // front
	NegZ             // back
	PosY             // top
	NegY             // bottom
	NegX             // left
	PosX             // right
)

var faceNames = [6]string{"+Z", "-Z", "+Y", "-Y", "-X", "+X"}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return "?"
	}
	return faceNames[f]
}

// FaceOrder is the material slot order of the box primitive. Slot i of a
// Mapping textures face FaceOrder[i].
var FaceOrder = [6]Face{PosZ, NegZ, PosY, NegY, NegX, PosX}

// FaceValues is the fixed value printed on each face.
var FaceValues = map[Face]pips.FaceValue{
	PosZ: 1,
	NegZ: 6,
	PosY: 3,
	NegY: 4,
	NegX: 5,
	PosX: 2,
}

// Opposite returns the face on the other side of the box.
func (f Face) Opposite() Face {
	switch f {
	case PosZ:
		return NegZ
	case NegZ:
		return PosZ
	case PosY:
		return NegY
	case NegY:
		return PosY
	case NegX:
		return PosX
	default:
		return NegX
	}
}

// faceBasis gives the outward normal and the directions of the texture's
// +u (right) and -v (up) axes as seen from outside the face.
type faceBasis struct {
	Normal, Right, Up mathutil.Vec3
}

var bases = map[Face]faceBasis{
	PosZ: {Normal: mathutil.Vec3{0, 0, 1}, Right: mathutil.Vec3{1, 0, 0}, Up: mathutil.Vec3{0, 1, 0}},
	NegZ: {Normal: mathutil.Vec3{0, 0, -1}, Right: mathutil.Vec3{-1, 0, 0}, Up: mathutil.Vec3{0, 1, 0}},
	PosY: {Normal: mathutil.Vec3{0, 1, 0}, Right: mathutil.Vec3{1, 0, 0}, Up: mathutil.Vec3{0, 0, -1}},
	NegY: {Normal: mathutil.Vec3{0, -1, 0}, Right: mathutil.Vec3{1, 0, 0}, Up: mathutil.Vec3{0, 0, 1}},
	NegX: {Normal: mathutil.Vec3{-1, 0, 0}, Right: mathutil.Vec3{0, 0, 1}, Up: mathutil.Vec3{0, 1, 0}},
	PosX: {Normal: mathutil.Vec3{1, 0, 0}, Right: mathutil.Vec3{0, 0, -1}, Up: mathutil.Vec3{0, 1, 0}},
}

// Normal returns the outward unit normal of f in the cube's local space.
func (f Face) Normal() mathutil.Vec3 {
	return bases[f].Normal
}

// Mapping holds one texture per material slot, in FaceOrder.
type Mapping [6]*image.NRGBA

// Resolver supplies the texture for a face value.
type Resolver interface {
	Resolve(v pips.FaceValue) *image.NRGBA
}

// Assemble builds the Mapping by looking up each slot's value in FaceValues.
func Assemble(r Resolver) Mapping {
	var m Mapping
	for slot, f := range FaceOrder {
		m[slot] = r.Resolve(FaceValues[f])
	}
	return m
}

// Texture returns the texture bound to face f.
func (m Mapping) Texture(f Face) *image.NRGBA {
	for slot, of := range FaceOrder {
		if of == f {
			return m[slot]
		}
	}
	return nil
}
