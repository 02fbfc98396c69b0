package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/layer"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/drawcall"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-frame/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mesh string

func (m mesh) Name() string { return string(m) }

var compiler = shader.CompilerFunc(func(def shader.Definition) shader.Shader {
	return shader.NewShader(def)
})

func TestRenderFrame(t *testing.T) {
	rec := device.NewRecorder()
	r := NewRenderer(rec, compiler, WithSize(320, 240))

	sun := light.NewLight(light.LightTypeDirectional, light.WithName("sun"))
	world := layer.NewLayer("world", layer.WithLights(sun))
	comp := layer.NewComposition()
	require.NoError(t, comp.AddLayer(world))
	cam := camera.NewCamera()
	comp.AddCamera(cam, "world")

	mat := r.NewMaterial("missing")
	world.SetVisible(cam, false, []*drawcall.DrawCall{
		drawcall.New("a", mesh("a"), mat),
		drawcall.New("b", mesh("b"), mat),
		drawcall.New("c", mesh("c"), nil),
	})

	settings := scene.DefaultSettings()
	settings.Exposure = 2
	s := scene.NewScene(scene.WithSettings(settings))

	fs := r.RenderFrame(comp, s)
	assert.Equal(t, uint64(1), fs.Frame)
	assert.Equal(t, 1, fs.Passes)
	assert.Equal(t, 3, fs.Draw.DrawCalls)
	assert.Equal(t, 2, fs.Draw.ShaderBinds)
	assert.Equal(t, 2, fs.Draw.LightDispatches)
	assert.Zero(t, fs.Graph.ActionsSkipped)

	exposure, ok := rec.UniformValue("exposure")
	require.True(t, ok)
	assert.Equal(t, float32(2), exposure)

	draws := rec.Filter(device.OpDraw)
	require.Len(t, draws, 3)
	assert.Equal(t, float32(320), draws[0].Value.(device.DrawArgs).Viewport.Width)

	rec.Reset()
	fs = r.RenderFrame(comp, nil)
	assert.Equal(t, uint64(2), fs.Frame)
	assert.Equal(t, 3, fs.Draw.DrawCalls, "stats are per frame")
}

func TestResize(t *testing.T) {
	rec := device.NewRecorder()
	r := NewRenderer(rec, compiler)
	r.Resize(100, 50)
	w, h := r.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)

	world := layer.NewLayer("world")
	comp := layer.NewComposition()
	require.NoError(t, comp.AddSublayer(world, false))
	cam := camera.NewCamera()
	comp.AddCamera(cam, "world")
	world.SetVisible(cam, false, []*drawcall.DrawCall{drawcall.New("a", mesh("a"), nil)})

	r.RenderFrame(comp, nil)
	draws := rec.Filter(device.OpDraw)
	require.Len(t, draws, 1)
	assert.Equal(t, float32(100), draws[0].Value.(device.DrawArgs).Viewport.Width)
	assert.Equal(t, float32(50), draws[0].Value.(device.DrawArgs).Viewport.Height)
}

func TestSharedPipelines(t *testing.T) {
	r := NewRenderer(device.NewRecorder(), compiler)
	opaque := pipeline.NewPipeline("opaque")
	r.RegisterPipelines(opaque, pipeline.NewPipeline("opaque", pipeline.WithBlendEnabled(true)))
	assert.Same(t, opaque, r.Pipeline("opaque"))
	assert.Len(t, r.Pipelines(), 1)

	a := r.NewMaterial("opaque")
	b := r.NewMaterial("opaque")
	assert.Same(t, a.Pipeline(), b.Pipeline())
	assert.NotSame(t, opaque, r.NewMaterial("unknown").Pipeline())
	assert.NotNil(t, r.DefaultMaterial())
}
