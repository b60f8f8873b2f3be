package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/rs/zerolog/log"

	"dice-cube-renderer/internal/anim"
	"dice-cube-renderer/internal/postprocess"
	"dice-cube-renderer/internal/raster"
	"dice-cube-renderer/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Scene       *scene.Scene
	Width       int
	Height      int
	Supersample int
	Workers     int
}

// Job kinds.
const (
	KindStill = "still"
	KindFace  = "face"
	KindFrame = "frame"
)

// Job is one image to write. Jobs with Image set are encoded as-is;
// others render the scene with Pose.
type Job struct {
	Name  string
	Kind  string
	Path  string // relative to OutputDir
	Frame int
	At    time.Duration
	Pose  anim.Pose
	Image *image.NRGBA
}

// Result holds the outcome of processing one job. Image is the frame as
// written, kept for assembling animations.
type Result struct {
	Name    string
	Path    string
	Success bool
	Error   string
	Image   *image.NRGBA
}

// Run processes all jobs using a worker pool.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info().Int64("done", p).Int("total", total).Msgf("%.1f images/sec", rate)
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{Name: job.Name, Path: job.Path}

	img := job.Image
	if img == nil {
		img = raster.RenderScene(cfg.Scene, job.Pose, cfg.Width, cfg.Height, cfg.Supersample)
		if cfg.Supersample > 1 {
			img = postprocess.Downsample(img, cfg.Width, cfg.Height)
		}
	}

	if err := WriteWebP(filepath.Join(cfg.OutputDir, job.Path), img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	res.Image = img
	return res
}

// WriteWebP encodes img losslessly to path, creating parent directories.
func WriteWebP(path string, img image.Image) error {
	if img.Bounds().Empty() {
		return fmt.Errorf("batch: %s: empty image", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("batch: mkdir %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("batch: webp encode %s: %w", path, err)
	}
	return f.Close()
}

// WriteAnimation encodes frames as a looping animated WebP, showing each
// frame for frameMS milliseconds. Frames fully cover the canvas, so none are
// cleared between draws.
func WriteAnimation(path string, frames []image.Image, frameMS uint) error {
	if len(frames) == 0 {
		return fmt.Errorf("batch: %s: no frames", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("batch: mkdir %s: %w", filepath.Dir(path), err)
	}

	ani := &nativewebp.Animation{
		Images:    frames,
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
	}
	for i := range ani.Durations {
		ani.Durations[i] = frameMS
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.EncodeAll(f, ani, nil); err != nil {
		return fmt.Errorf("batch: webp animation %s: %w", path, err)
	}
	return f.Close()
}

// FrameDelay returns the per-frame display time in milliseconds for fps,
// never less than 1.
func FrameDelay(fps int) uint {
	if fps <= 0 || fps >= 1000 {
		return 1
	}
	return uint(1000 / fps)
}

// FrameImages collects the images of successful frame jobs in job order.
func FrameImages(jobs []Job, results []Result) []image.Image {
	var frames []image.Image
	for i, j := range jobs {
		if j.Kind != KindFrame || i >= len(results) || !results[i].Success {
			continue
		}
		frames = append(frames, results[i].Image)
	}
	return frames
}
