// Package hittest finds which dice lie under a point on the rendering
// surface.
package hittest

import (
	"math"
	"sort"

	"dice-cube-renderer/internal/anim"
	"dice-cube-renderer/internal/camera"
	"dice-cube-renderer/internal/dice"
	"dice-cube-renderer/internal/mathutil"
	"dice-cube-renderer/internal/scene"
)

// Hit is one ray/die intersection.
type Hit struct {
	Cube     *dice.Cube
	Face     dice.Face
	Distance float64       // along the ray from its origin
	Point    mathutil.Vec3 // world space
}

// Ray intersects a world-space ray with every die in sc, posed by pose, and
// returns the hits nearest first. dir must be normalized.
func Ray(sc *scene.Scene, pose anim.Pose, origin, dir mathutil.Vec3) []Hit {
	if sc == nil {
		return nil
	}

	var hits []Hit
	for _, c := range sc.Dice {
		inv := c.Transform(pose.Rotation(c.Name)).RigidInverse()
		lo := inv.MulPoint(origin)
		ld := inv.MulDir(dir)

		t, ok := slab(lo, ld, c.HalfExtent())
		if !ok {
			continue
		}
		hits = append(hits, Hit{
			Cube:     c,
			Face:     faceAt(lo.Add(ld.Scale(t))),
			Distance: t,
			Point:    origin.Add(dir.Scale(t)),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// Surface hit-tests the surface point (sx, sy) through the scene camera.
func Surface(sc *scene.Scene, pose anim.Pose, sx, sy float64, vp camera.Viewport) []Hit {
	if sc == nil {
		return nil
	}
	o, d := sc.Camera.Ray(sx, sy, vp)
	return Ray(sc, pose, o, d)
}

// slab returns the entry distance of a ray into the axis-aligned box
// [-h, h]³. A ray starting inside reports its exit distance.
func slab(o, d mathutil.Vec3, h float64) (float64, bool) {
	tMin, tMax := math.Inf(-1), math.Inf(1)
	for k := 0; k < 3; k++ {
		if math.Abs(d[k]) < 1e-12 {
			if o[k] < -h || o[k] > h {
				return 0, false
			}
			continue
		}
		t1 := (-h - o[k]) / d[k]
		t2 := (h - o[k]) / d[k]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return tMax, true
	}
	return tMin, true
}

// faceAt picks the face whose plane a local-space surface point lies on.
func faceAt(p mathutil.Vec3) dice.Face {
	best, bestDot := dice.PosZ, math.Inf(-1)
	for _, f := range dice.FaceOrder {
		if d := p.Dot(f.Normal()); d > bestDot {
			best, bestDot = f, d
		}
	}
	return best
}
