package anim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dice-cube-renderer/internal/mathutil"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTapSpin(t *testing.T) {
	s := TapSpin()
	assert.Equal(t, mathutil.AxisY, s.Axis)
	assert.InDelta(t, 2*math.Pi, s.Angle, 1e-12)
	assert.Equal(t, 500*time.Millisecond, s.Duration)
	assert.Equal(t, 1, s.Repeat)
	assert.Equal(t, 500*time.Millisecond, s.Total())
}

func TestPlayerLifecycle(t *testing.T) {
	p := NewPlayer()
	assert.Equal(t, Idle, p.State("dice1", t0))

	p.Add("dice1", TapKey, TapSpin(), t0)
	assert.Equal(t, Animating, p.State("dice1", t0))
	assert.Equal(t, Idle, p.State("dice2", t0))

	quarter := p.Rotation("dice1", t0.Add(125*time.Millisecond))
	assert.True(t, quarter.ApproxEqual(mathutil.RotY(math.Pi/2), 1e-9))

	half := p.Rotation("dice1", t0.Add(250*time.Millisecond))
	assert.True(t, half.ApproxEqual(mathutil.RotY(math.Pi), 1e-9))

	end := t0.Add(500 * time.Millisecond)
	assert.Equal(t, end, p.Until())
	assert.Equal(t, Idle, p.State("dice1", end))
	assert.Equal(t, mathutil.Mat3Identity(), p.Rotation("dice1", end))
}

func TestAddReplacesSameKey(t *testing.T) {
	p := NewPlayer()
	p.Add("dice1", TapKey, TapSpin(), t0)

	retap := t0.Add(400 * time.Millisecond)
	p.Add("dice1", TapKey, TapSpin(), retap)

	// The first spin would be over at 500ms; the restarted one runs to 900ms.
	assert.Equal(t, Animating, p.State("dice1", t0.Add(600*time.Millisecond)))
	assert.Equal(t, retap.Add(500*time.Millisecond), p.Until())

	rot := p.Rotation("dice1", retap.Add(125*time.Millisecond))
	assert.True(t, rot.ApproxEqual(mathutil.RotY(math.Pi/2), 1e-9), "restarted from zero")
}

func TestRepeat(t *testing.T) {
	s := TapSpin()
	s.Repeat = 2
	p := NewPlayer()
	p.Add("d", "k", s, t0)

	assert.Equal(t, Animating, p.State("d", t0.Add(700*time.Millisecond)))
	rot := p.Rotation("d", t0.Add(625*time.Millisecond))
	assert.True(t, rot.ApproxEqual(mathutil.RotY(math.Pi/2), 1e-9))
	assert.Equal(t, Idle, p.State("d", t0.Add(time.Second)))
}

func TestSnapshot(t *testing.T) {
	p := NewPlayer()
	p.Add("dice2", TapKey, TapSpin(), t0)

	pose := p.Snapshot(t0.Add(250 * time.Millisecond))
	assert.True(t, pose.Rotation("dice2").ApproxEqual(mathutil.RotY(math.Pi), 1e-9))
	assert.Equal(t, mathutil.Mat3Identity(), pose.Rotation("dice1"))

	var empty Pose
	assert.Equal(t, mathutil.Mat3Identity(), empty.Rotation("dice1"))
}

func TestZeroDurationIsInstant(t *testing.T) {
	p := NewPlayer()
	p.Add("d", "k", Spin{Axis: mathutil.AxisY, Angle: 1}, t0)
	assert.Equal(t, Idle, p.State("d", t0))
}
