package raster

import (
	"image"

	"dice-cube-renderer/internal/anim"
	"dice-cube-renderer/internal/camera"
	"dice-cube-renderer/internal/dice"
	"dice-cube-renderer/internal/mathutil"
	"dice-cube-renderer/internal/scene"
)

// RenderScene renders sc as seen by its camera, with dice posed by pose, to
// an NRGBA image of width×height multiplied by supersample. A nil scene
// renders an empty transparent frame.
func RenderScene(sc *scene.Scene, pose anim.Pose, width, height, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	rw, rh := width*supersample, height*supersample
	if rw <= 0 || rh <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	fb := NewFrameBuffer(rw, rh)
	if sc == nil {
		return toImage(fb)
	}
	fb.Fill(sc.Background)

	vp := camera.Viewport{Width: float64(rw), Height: float64(rh)}
	lc := NewLightConfig(sc.Lights)

	for _, c := range sc.Dice {
		renderCube(fb, sc.Camera, vp, &lc, c, pose.Rotation(c.Name))
	}

	return toImage(fb)
}

func renderCube(fb *FrameBuffer, cam camera.Camera, vp camera.Viewport, lc *LightConfig, c *dice.Cube, rot mathutil.Mat3) {
	model := c.Transform(rot)

	for _, tri := range c.Mesh() {
		var world [3]mathutil.Vec3
		for k := range tri.V {
			world[k] = model.MulPoint(tri.V[k])
		}

		// Back-face cull: closed box, faces pointing away are never visible.
		normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0])).Normalize()
		if normal.Dot(cam.Position.Sub(world[0])) <= 0 {
			continue
		}

		var verts [3]Vertex
		visible := true
		for k := range world {
			sx, sy, depth, ok := cam.Project(world[k], vp)
			if !ok {
				visible = false
				break
			}
			verts[k] = Vertex{X: sx, Y: sy, InvW: 1 / depth, U: tri.UV[k][0], V: tri.UV[k][1]}
		}
		// No near-plane clipping: dice never cross it in this scene.
		if !visible {
			continue
		}

		sh := Shading{InvGamma: lc.InvGamma}
		if c.Lighting == dice.Lambert {
			centroid := world[0].Add(world[1]).Add(world[2]).Scale(1.0 / 3)
			sh.Lit = true
			sh.Factor = lc.ComputeShade(centroid, normal)
		}

		RasterizeTriangle(fb, verts, c.Faces[tri.Slot], &sh)
	}
}

func toImage(fb *FrameBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
