package batch

import (
	"fmt"
	"time"

	"dice-cube-renderer/internal/anim"
	"dice-cube-renderer/internal/facetex"
	"dice-cube-renderer/internal/pips"
)

// StillJob renders the scene at rest.
func StillJob() Job {
	return Job{Name: "scene", Kind: KindStill, Path: "scene.webp"}
}

// FaceJobs writes one texture per face value.
func FaceJobs(faces facetex.Set) []Job {
	var jobs []Job
	for v := pips.FaceValue(1); v <= 6; v++ {
		jobs = append(jobs, Job{
			Name:  fmt.Sprintf("face %d", v),
			Kind:  KindFace,
			Path:  fmt.Sprintf("faces/%d.webp", v),
			Image: faces.Get(v),
		})
	}
	return jobs
}

// FrameJobs samples p at fps from start until every animation has finished,
// both ends included. It returns nil when nothing is animating.
func FrameJobs(p *anim.Player, start time.Time, fps int) []Job {
	end := p.Until()
	if !end.After(start) || fps <= 0 {
		return nil
	}

	step := time.Second / time.Duration(fps)
	span := end.Sub(start)
	n := int(span / step)
	if time.Duration(n)*step < span {
		n++
	}

	jobs := make([]Job, 0, n+1)
	for i := 0; i <= n; i++ {
		at := time.Duration(i) * step
		if at > span {
			at = span
		}
		jobs = append(jobs, Job{
			Name:  fmt.Sprintf("frame %d", i),
			Kind:  KindFrame,
			Path:  fmt.Sprintf("spin/%03d.webp", i),
			Frame: i,
			At:    at,
			Pose:  p.Snapshot(start.Add(at)),
		})
	}
	return jobs
}
