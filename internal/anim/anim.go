// Package anim plays keyed one-shot rotation animations on scene nodes.
//
// Animations are sampled at caller-supplied times; nothing runs in the
// background. A finished animation is dropped and the node returns to its
// unrotated pose.
package anim

import (
	"math"
	"sync"
	"time"

	"dice-cube-renderer/internal/mathutil"
)

// TapKey is the animation key used for tap-triggered spins.
const TapKey = "spin-tap"

// Spin rotates a node by Angle radians about Axis over Duration, Repeat times,
// at constant speed.
type Spin struct {
	Axis     mathutil.Vec3
	Angle    float64
	Duration time.Duration
	Repeat   int
}

// TapSpin is one full turn about the vertical axis in half a second.
func TapSpin() Spin {
	return Spin{
		Axis:     mathutil.AxisY,
		Angle:    2 * math.Pi,
		Duration: 500 * time.Millisecond,
		Repeat:   1,
	}
}

// Total is the full play time including repeats.
func (s Spin) Total() time.Duration {
	n := s.Repeat
	if n < 1 {
		n = 1
	}
	return s.Duration * time.Duration(n)
}

// at returns the rotation at elapsed time into the animation and whether
// the animation is still playing.
func (s Spin) at(elapsed time.Duration) (mathutil.Mat3, bool) {
	if elapsed < 0 {
		elapsed = 0
	}
	if s.Duration <= 0 || elapsed >= s.Total() {
		return mathutil.Mat3Identity(), false
	}
	frac := float64(elapsed%s.Duration) / float64(s.Duration)
	return mathutil.AxisAngle(s.Axis, s.Angle*frac), true
}

// State is a node's animation state.
type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

type running struct {
	spin  Spin
	start time.Time
}

// Player tracks the animations attached to each node.
type Player struct {
	mu    sync.Mutex
	nodes map[string]map[string]running
}

// NewPlayer returns an empty player.
func NewPlayer() *Player {
	return &Player{nodes: make(map[string]map[string]running)}
}

// Add starts s on node under key at now. An animation already running under
// the same key is replaced.
func (p *Player) Add(node, key string, s Spin, now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys, ok := p.nodes[node]
	if !ok {
		keys = make(map[string]running)
		p.nodes[node] = keys
	}
	keys[key] = running{spin: s, start: now}
}

// State reports whether node has any animation playing at now.
func (p *Player) State(node string, now time.Time) State {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pruneLocked(now)
	if len(p.nodes[node]) > 0 {
		return Animating
	}
	return Idle
}

// Rotation returns node's presentation rotation at now.
func (p *Player) Rotation(node string, now time.Time) mathutil.Mat3 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rotationLocked(node, now)
}

// Snapshot samples every animated node at now.
func (p *Player) Snapshot(now time.Time) Pose {
	p.mu.Lock()
	defer p.mu.Unlock()
	pose := make(Pose, len(p.nodes))
	for node := range p.nodes {
		pose[node] = p.rotationLocked(node, now)
	}
	return pose
}

// Until returns the time at which every current animation has finished, or
// the zero time when nothing is scheduled.
func (p *Player) Until() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	var end time.Time
	for _, keys := range p.nodes {
		for _, r := range keys {
			if e := r.start.Add(r.spin.Total()); e.After(end) {
				end = e
			}
		}
	}
	return end
}

func (p *Player) rotationLocked(node string, now time.Time) mathutil.Mat3 {
	rot := mathutil.Mat3Identity()
	for _, r := range p.nodes[node] {
		m, live := r.spin.at(now.Sub(r.start))
		if live {
			rot = mathutil.Mat3Mul(m, rot)
		}
	}
	return rot
}

func (p *Player) pruneLocked(now time.Time) {
	for node, keys := range p.nodes {
		for key, r := range keys {
			if !now.Before(r.start.Add(r.spin.Total())) {
				delete(keys, key)
			}
		}
		if len(keys) == 0 {
			delete(p.nodes, node)
		}
	}
}

// Pose is an immutable sample of node rotations. Nodes not present are
// unrotated. A nil Pose is valid.
type Pose map[string]mathutil.Mat3

// Rotation returns the rotation of node.
func (p Pose) Rotation(node string) mathutil.Mat3 {
	if m, ok := p[node]; ok {
		return m
	}
	return mathutil.Mat3Identity()
}
