// Package scene composes the two-dice scene: dice, camera and lights at
// fixed placements.
package scene

import (
	"image/color"
	"sync"

	"dice-cube-renderer/internal/camera"
	"dice-cube-renderer/internal/dice"
	"dice-cube-renderer/internal/mathutil"
)

// LightKind selects how a light contributes.
type LightKind int

const (
	// Omni radiates from a point in all directions.
	Omni LightKind = iota
	// Ambient lights every surface evenly; position is ignored.
	Ambient
)

func (k LightKind) String() string {
	if k == Ambient {
		return "ambient"
	}
	return "omni"
}

// Light is one scene light. Intensity 1 is full strength.
type Light struct {
	Name      string
	Kind      LightKind
	Color     color.NRGBA
	Intensity float64
	Position  mathutil.Vec3
}

// Scene is everything the renderer and hit-test need.
type Scene struct {
	Background color.NRGBA
	Dice       []*dice.Cube
	Camera     camera.Camera
	Lights     []Light
}

// Fixed placements.
var (
	LeftDiePos  = mathutil.Vec3{-0.6, 0, 0}
	RightDiePos = mathutil.Vec3{0.6, 0, 0}
	CameraPos   = mathutil.Vec3{0, 0, 6}
	OmniPos     = mathutil.Vec3{0, 2, 2}

	Gray  = color.NRGBA{128, 128, 128, 255}
	White = color.NRGBA{255, 255, 255, 255}
)

// Die names.
const (
	LeftDie  = "dice1"
	RightDie = "dice2"
)

// Compose builds the scene. Both dice share the same face mapping.
func Compose(m dice.Mapping) *Scene {
	return &Scene{
		Background: Gray,
		Dice: []*dice.Cube{
			dice.NewCube(LeftDie, m, LeftDiePos),
			dice.NewCube(RightDie, m, RightDiePos),
		},
		Camera: camera.New(CameraPos),
		Lights: []Light{
			{Name: "omni", Kind: Omni, Color: White, Intensity: 1, Position: OmniPos},
			{Name: "ambient", Kind: Ambient, Color: White, Intensity: 1},
		},
	}
}

// Die returns the cube with the given name, or nil.
func (s *Scene) Die(name string) *dice.Cube {
	for _, d := range s.Dice {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Holder keeps the current scene. It is empty until the scene is first
// built and is written once.
type Holder struct {
	mu sync.RWMutex
	sc *Scene
}

// Set stores sc if no scene is held yet. It reports whether sc was stored.
func (h *Holder) Set(sc *Scene) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sc != nil || sc == nil {
		return false
	}
	h.sc = sc
	return true
}

// Get returns the current scene, or nil before it is built.
func (h *Holder) Get() *Scene {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sc
}
