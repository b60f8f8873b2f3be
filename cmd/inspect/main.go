package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"dice-cube-renderer/internal/anim"
	"dice-cube-renderer/internal/camera"
	"dice-cube-renderer/internal/config"
	"dice-cube-renderer/internal/dice"
	"dice-cube-renderer/internal/facetex"
	"dice-cube-renderer/internal/hittest"
	"dice-cube-renderer/internal/pips"
	"dice-cube-renderer/internal/scene"
	"dice-cube-renderer/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config file (.json or .yaml)")
	at := flag.String("at", "", "Hit-test the view point X,Y")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})

	fmt.Printf("Pip layouts (canvas %d, radius %d):\n", pips.CanvasSize, pips.DotRadius)
	for v := pips.FaceValue(1); v <= 6; v++ {
		dots := pips.Layout(v, pips.CanvasSize)
		parts := make([]string, len(dots))
		for i, d := range dots {
			parts[i] = fmt.Sprintf("(%.0f,%.0f)", d.X, d.Y)
		}
		fmt.Printf("  %d: %s\n", v, strings.Join(parts, " "))
	}

	fmt.Println("Faces:")
	for slot, f := range dice.FaceOrder {
		v := dice.FaceValues[f]
		opp := dice.FaceValues[f.Opposite()]
		mark := ""
		if v+opp != 7 {
			mark = "  <-- opposite faces do not sum to 7"
		}
		fmt.Printf("  [%d] %-2s normal=%v value=%d opposite %s=%d%s\n",
			slot, f, f.Normal(), v, f.Opposite(), opp, mark)
	}

	if *at == "" {
		return
	}
	xs, ys, ok := strings.Cut(*at, ",")
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if !ok || errX != nil || errY != nil {
		fmt.Printf("Error: -at %q: want X,Y\n", *at)
		os.Exit(1)
	}

	sc := scene.Compose(dice.Assemble(texture.NewCache(nil, facetex.DefaultStyle())))
	vp := camera.Viewport{X: cfg.SurfaceX, Y: cfg.SurfaceY, Width: float64(cfg.Width), Height: float64(cfg.Height)}
	sx, sy, inside := vp.ToSurface(x, y)
	fmt.Printf("View (%.1f, %.1f) -> surface (%.1f, %.1f) in %dx%d\n", x, y, sx, sy, cfg.Width, cfg.Height)
	if !inside {
		fmt.Println("  outside the surface")
		return
	}

	hits := hittest.Surface(sc, anim.NewPlayer().Snapshot(time.Now()), sx, sy, vp)
	if len(hits) == 0 {
		fmt.Println("  no hit")
		return
	}
	for i, h := range hits {
		fmt.Printf("  hit[%d] %s face %s (value %d) dist=%.3f point=(%.3f, %.3f, %.3f)\n",
			i, h.Cube.Name, h.Face, dice.FaceValues[h.Face], h.Distance, h.Point[0], h.Point[1], h.Point[2])
	}
}
