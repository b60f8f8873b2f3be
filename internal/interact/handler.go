// Package interact turns taps into spin requests on the dice under them.
package interact

import (
	"time"

	"github.com/rs/zerolog/log"

	"dice-cube-renderer/internal/anim"
	"dice-cube-renderer/internal/camera"
	"dice-cube-renderer/internal/dice"
	"dice-cube-renderer/internal/hittest"
	"dice-cube-renderer/internal/scene"
)

// Animator accepts animation requests and reports current poses.
type Animator interface {
	Add(node, key string, s anim.Spin, now time.Time)
	Snapshot(now time.Time) anim.Pose
}

// Tap is a tap location in host-view coordinates.
type Tap struct {
	X, Y float64
}

// Handler reacts to taps. It keeps no state between taps.
type Handler struct {
	Animator Animator
	Surface  camera.Viewport
	Now      func() time.Time
}

// NewHandler returns a handler for a surface placed at vp inside the view.
func NewHandler(a Animator, vp camera.Viewport) *Handler {
	return &Handler{Animator: a, Surface: vp, Now: time.Now}
}

// HandleTap hit-tests tap against sc and spins the nearest die struck.
// A nil scene, a tap outside the surface or a miss does nothing.
func (h *Handler) HandleTap(sc *scene.Scene, tap Tap) (*dice.Cube, bool) {
	if sc == nil {
		log.Debug().Msg("tap before scene built")
		return nil, false
	}

	sx, sy, ok := h.Surface.ToSurface(tap.X, tap.Y)
	if !ok {
		return nil, false
	}

	now := h.Now()
	hits := hittest.Surface(sc, h.Animator.Snapshot(now), sx, sy, h.Surface)
	if len(hits) == 0 {
		log.Debug().Float64("x", tap.X).Float64("y", tap.Y).Msg("tap missed")
		return nil, false
	}

	c := hits[0].Cube
	h.Animator.Add(c.Name, anim.TapKey, anim.TapSpin(), now)
	log.Debug().Str("die", c.Name).Stringer("face", hits[0].Face).Msg("tap spin")
	return c, true
}
