package common

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "spot", Coalesce("", "spot", "point"))
	assert.Equal(t, 3, Coalesce(0, 0, 3))
	assert.Equal(t, "", Coalesce("", ""))
}

func TestAssert(t *testing.T) {
	defer SetDebugAssertions(false)
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	SetDebugAssertions(false)
	assert.NotPanics(t, func() { Assert(false, "slot %d", 7) })
	assert.Contains(t, buf.String(), "slot 7")

	SetDebugAssertions(true)
	assert.True(t, DebugAssertions())
	assert.PanicsWithValue(t, "invariant violation: slot 7", func() { Assert(false, "slot %d", 7) })
	assert.NotPanics(t, func() { Assert(true, "never") })
}

func TestSetLoggerNilRestoresSilentDefault(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestViewport(t *testing.T) {
	v := Viewport{X: 0.5, Y: 0, Width: 0.5, Height: 1}.Scaled(640, 480)
	assert.Equal(t, Viewport{X: 320, Y: 0, Width: 320, Height: 480}, v)
	assert.False(t, v.Empty())
	assert.True(t, Viewport{Width: 10}.Empty())
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective(mgl32.DegToRad(60), 1.5, 0.1, 100)

	near := proj.Mul4x1(mgl32.Vec4{0, 0, -0.1, 1})
	far := proj.Mul4x1(mgl32.Vec4{0, 0, -100, 1})
	assert.InDelta(t, 0, near.Z()/near.W(), 1e-5)
	assert.InDelta(t, 1, far.Z()/far.W(), 1e-5)
}

func TestOrthographicDepthRange(t *testing.T) {
	proj := Orthographic(5, 2, 1, 11)

	near := proj.Mul4x1(mgl32.Vec4{10, 5, -1, 1})
	far := proj.Mul4x1(mgl32.Vec4{0, 0, -11, 1})
	assert.InDelta(t, 1, near.X(), 1e-5)
	assert.InDelta(t, 1, near.Y(), 1e-5)
	assert.InDelta(t, 0, near.Z(), 1e-5)
	assert.InDelta(t, 1, far.Z(), 1e-5)
}

func TestLightDirection(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, LightDirection(mgl32.Ident4()))
	assert.Equal(t, mgl32.Vec3{}, LightDirection(mgl32.Scale3D(0, 0, 0)))
}

func TestLinearize(t *testing.T) {
	c := mgl32.Vec3{0.5, 1, 0}
	assert.Equal(t, c, Linearize(c, false))
	assert.Equal(t, mgl32.Vec3{0.25, 1, 0}, Linearize(c, true))
}

func TestNormalMatrix(t *testing.T) {
	assert.Equal(t, mgl32.Ident3(), NormalMatrix(mgl32.Scale3D(0, 1, 1)))

	n := NormalMatrix(mgl32.Scale3D(2, 2, 2))
	assert.InDelta(t, 0.5, n.At(0, 0), 1e-6)
	assert.InDelta(t, 0.5, n.At(2, 2), 1e-6)
}
