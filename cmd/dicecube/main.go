package main

import (
	"flag"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dice-cube-renderer/internal/anim"
	"dice-cube-renderer/internal/batch"
	"dice-cube-renderer/internal/camera"
	"dice-cube-renderer/internal/config"
	"dice-cube-renderer/internal/dice"
	"dice-cube-renderer/internal/facetex"
	"dice-cube-renderer/internal/interact"
	"dice-cube-renderer/internal/pips"
	"dice-cube-renderer/internal/scene"
	"dice-cube-renderer/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json or .yaml)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	skinDir := flag.String("skins", "", "Directory of face skins named 1..6 or face1..face6 (png, jpg, tga, bmp)")
	width := flag.Int("width", 0, "Surface width in pixels (default: 600)")
	height := flag.Int("height", 0, "Surface height in pixels (default: 400)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	fps := flag.Int("fps", 0, "Spin animation frame rate (default: 30)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	writeFaces := flag.Bool("faces", false, "Also write the six face textures")
	verbose := flag.Bool("v", false, "Debug logging")
	var taps tapList
	flag.Var(&taps, "tap", "Tap at view point X,Y[@MS] (repeatable)")

	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatal().Err(err).Msg("loading config")
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		SkinDir:     *skinDir,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		FPS:         *fps,
		Workers:     *workers,
	})

	// Face textures
	skins := texture.BuildIndex(cfg.SkinDir)
	faces := texture.NewCache(skins, facetex.DefaultStyle())
	log.Info().Int("skins", skins.Len()).Str("dir", cfg.SkinDir).Msg("face textures")

	// The scene is built once, when the view appears.
	var current scene.Holder
	appeared := time.Now()
	current.Set(scene.Compose(dice.Assemble(faces)))

	player := anim.NewPlayer()
	vp := camera.Viewport{
		X:      cfg.SurfaceX,
		Y:      cfg.SurfaceY,
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
	}
	handler := interact.NewHandler(player, vp)

	sort.SliceStable(taps, func(i, j int) bool { return taps[i].At < taps[j].At })
	for _, tap := range taps {
		handler.Now = func() time.Time { return appeared.Add(tap.At) }
		if c, ok := handler.HandleTap(current.Get(), tap.Tap); ok {
			log.Info().Str("die", c.Name).Float64("x", tap.X).Float64("y", tap.Y).Msg("spin")
		} else {
			log.Info().Float64("x", tap.X).Float64("y", tap.Y).Msg("tap hit nothing")
		}
	}

	jobs := []batch.Job{batch.StillJob()}
	if *writeFaces {
		var set facetex.Set
		for v := pips.FaceValue(1); v <= 6; v++ {
			set[v] = faces.Resolve(v)
		}
		jobs = append(jobs, batch.FaceJobs(set)...)
	}
	jobs = append(jobs, batch.FrameJobs(player, appeared, cfg.FPS)...)

	log.Info().
		Int("images", len(jobs)).
		Int("workers", cfg.Workers).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Str("output", cfg.OutputDir).
		Msg("dice cube renderer → WebP")

	start := time.Now()

	// Run batch
	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Scene:       current.Get(),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}, jobs)

	// Count results
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			log.Error().Str("image", r.Path).Msg(r.Error)
		}
	}
	log.Info().
		Int("written", len(results)-failed).
		Int("total", len(results)).
		Msgf("done in %.1fs", time.Since(start).Seconds())

	if frames := batch.FrameImages(jobs, results); len(frames) > 0 {
		animPath := filepath.Join(cfg.OutputDir, "spin.webp")
		if err := batch.WriteAnimation(animPath, frames, batch.FrameDelay(cfg.FPS)); err != nil {
			log.Warn().Err(err).Msg("animation write failed")
		} else {
			log.Info().Int("frames", len(frames)).Str("path", animPath).Msg("animation")
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("creating output dir")
	}
	if err := batch.WriteManifest(manifestPath, jobs, results); err != nil {
		log.Warn().Err(err).Msg("manifest write failed")
	} else {
		log.Info().Str("path", manifestPath).Msg("manifest")
	}

	if failed > 0 {
		os.Exit(1)
	}
}
