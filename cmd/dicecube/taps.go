package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dice-cube-renderer/internal/interact"
)

// tapSpec is one scripted tap: view coordinates plus an offset from the
// moment the scene appears.
type tapSpec struct {
	interact.Tap
	At time.Duration
}

// tapList collects repeated -tap flags of the form "X,Y" or "X,Y@MS".
type tapList []tapSpec

func (l *tapList) String() string {
	parts := make([]string, len(*l))
	for i, t := range *l {
		parts[i] = fmt.Sprintf("%g,%g@%d", t.X, t.Y, t.At.Milliseconds())
	}
	return strings.Join(parts, " ")
}

func (l *tapList) Set(s string) error {
	t, err := parseTap(s)
	if err != nil {
		return err
	}
	*l = append(*l, t)
	return nil
}

func parseTap(s string) (tapSpec, error) {
	var spec tapSpec
	coords, at, hasAt := strings.Cut(s, "@")
	if hasAt {
		ms, err := strconv.Atoi(at)
		if err != nil || ms < 0 {
			return spec, fmt.Errorf("tap %q: bad time offset", s)
		}
		spec.At = time.Duration(ms) * time.Millisecond
	}

	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return spec, fmt.Errorf("tap %q: want X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return spec, fmt.Errorf("tap %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return spec, fmt.Errorf("tap %q: %w", s, err)
	}
	spec.X, spec.Y = x, y
	return spec, nil
}
