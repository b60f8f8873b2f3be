package scene

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dice-cube-renderer/internal/camera"
	"dice-cube-renderer/internal/dice"
	"dice-cube-renderer/internal/mathutil"
)

func TestCompose(t *testing.T) {
	var m dice.Mapping
	m[0] = image.NewNRGBA(image.Rect(0, 0, 1, 1))

	sc := Compose(m)
	require.Len(t, sc.Dice, 2)

	left, right := sc.Die(LeftDie), sc.Die(RightDie)
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.Equal(t, mathutil.Vec3{-0.6, 0, 0}, left.Position)
	assert.Equal(t, mathutil.Vec3{0.6, 0, 0}, right.Position)
	assert.Equal(t, left.Faces, right.Faces)
	assert.Equal(t, 0.5, left.Size)
	assert.Nil(t, sc.Die("dice3"))

	assert.Equal(t, mathutil.Vec3{0, 0, 6}, sc.Camera.Position)
	assert.Equal(t, camera.DefaultYFov, sc.Camera.YFov)
	assert.Equal(t, Gray, sc.Background)

	require.Len(t, sc.Lights, 2)
	assert.Equal(t, Omni, sc.Lights[0].Kind)
	assert.Equal(t, mathutil.Vec3{0, 2, 2}, sc.Lights[0].Position)
	assert.Equal(t, Ambient, sc.Lights[1].Kind)
	assert.Equal(t, White, sc.Lights[1].Color)
	assert.Equal(t, 1.0, sc.Lights[1].Intensity)
}

func TestHolderWriteOnce(t *testing.T) {
	var h Holder
	assert.Nil(t, h.Get())
	assert.False(t, h.Set(nil))

	first := Compose(dice.Mapping{})
	assert.True(t, h.Set(first))
	assert.False(t, h.Set(Compose(dice.Mapping{})))
	assert.Same(t, first, h.Get())
}
