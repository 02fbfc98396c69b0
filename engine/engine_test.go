package engine

import (
	"context"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/layer"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/drawcall"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-frame/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mesh string

func (m mesh) Name() string { return string(m) }

func newStage(t *testing.T) (*layer.Composition, scene.Scene) {
	t.Helper()
	world := layer.NewLayer("world")
	comp := layer.NewComposition()
	require.NoError(t, comp.AddSublayer(world, false))
	cam := camera.NewCamera()
	comp.AddCamera(cam, "world")
	world.SetVisible(cam, false, []*drawcall.DrawCall{drawcall.New("box", mesh("box"), nil)})
	return comp, scene.NewScene(scene.WithName("main"))
}

func newRenderer() renderer.Renderer {
	return renderer.NewRenderer(device.NewRecorder(), shader.CompilerFunc(func(def shader.Definition) shader.Shader {
		return shader.NewShader(def)
	}), renderer.WithSize(64, 64))
}

func TestRunWithoutRenderer(t *testing.T) {
	e := NewEngine()
	assert.ErrorIs(t, e.Run(context.Background()), ErrNoRenderer)
}

func TestRunRendersUntilQuit(t *testing.T) {
	comp, s := newStage(t)
	e := NewEngine(WithRenderer(newRenderer()), WithScene(0, s, comp), WithProfiling(true))
	frames := 0
	e.SetRenderCallback(func(float32) {
		frames++
		if frames == 3 {
			e.Quit()
		}
	})

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 3, frames)
	last := e.LastFrame()
	assert.Equal(t, uint64(3), last.Frame)
	assert.Equal(t, 1, last.Draw.DrawCalls)
	assert.Same(t, s, e.Scene(0))
}

func TestRunStopsWithContext(t *testing.T) {
	comp, s := newStage(t)
	e := NewEngine(WithRenderer(newRenderer()), WithScene(0, s, comp), WithRenderFrameLimit(240))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, e.Run(ctx))
	assert.NotZero(t, e.LastFrame().Frame)
}

func TestRenderPanicQuits(t *testing.T) {
	e := NewEngine(WithRenderer(newRenderer()))
	e.SetRenderCallback(func(float32) { panic("boom") })
	require.NoError(t, e.Run(context.Background()))
}

func TestScenes(t *testing.T) {
	comp, s := newStage(t)
	e := NewEngine()
	e.AddScene(2, s, comp)
	e.AddScene(1, scene.NewScene(), layer.NewComposition())
	assert.Len(t, e.Scenes(), 2)
	e.RemoveScene(1)
	assert.Nil(t, e.Scene(1))
	assert.Same(t, s, e.Scene(2))
}
