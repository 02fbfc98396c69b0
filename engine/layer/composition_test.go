package layer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postEffects struct{ source device.RenderTarget }

func (p postEffects) Source() device.RenderTarget               { return p.source }
func (postEffects) Render(*device.Context, device.RenderTarget) {}

func TestUpdateBuildsActions(t *testing.T) {
	sun := light.NewLight(light.LightTypeDirectional, light.WithShadows(1024, 0, 0))
	world := NewLayer("world", WithLights(sun, light.NewLight(light.LightTypeOmni, light.WithShadows(256, 0, 0))))
	ui := NewLayer("ui", WithClearFlags(device.ClearDepth))
	hidden := NewLayer("hidden", WithEnabled(false))

	comp := NewComposition()
	require.NoError(t, comp.AddSublayer(world, false))
	require.NoError(t, comp.AddLayer(hidden))
	require.NoError(t, comp.AddSublayer(world, true))
	require.NoError(t, comp.AddLayer(ui))

	rt := device.NewRenderTarget("offscreen", 64, 64, 1)
	main := camera.NewCamera(camera.WithPostEffects(postEffects{}))
	minimap := camera.NewCamera(camera.WithRenderTarget(rt), camera.WithClearFlags(device.ClearColor))
	comp.AddCamera(main, "world", "hidden", "ui")
	comp.AddCamera(minimap, "world")

	actions := comp.Update()
	require.Len(t, actions, 5)

	// main camera: world opaque, world transparent, ui opaque, ui transparent
	a := actions[0]
	assert.Equal(t, 0, a.CameraIndex)
	assert.False(t, a.Transparent)
	assert.True(t, a.FirstCameraUse)
	assert.Equal(t, device.ClearColor|device.ClearDepth|device.ClearStencil, a.ClearFlags)
	assert.Equal(t, []light.Light{sun}, a.DirectionalLights)
	assert.True(t, a.HasDirectionalShadowLights())

	assert.True(t, actions[1].Transparent)
	assert.Zero(t, actions[1].ClearFlags)
	assert.False(t, actions[1].HasDirectionalShadowLights())
	assert.Equal(t, device.ClearDepth, actions[2].ClearFlags)
	assert.Zero(t, actions[3].ClearFlags)
	assert.True(t, actions[3].LastCameraUse)
	assert.True(t, actions[3].TriggerPostprocess)

	m := actions[4]
	assert.Equal(t, 1, m.CameraIndex)
	assert.Same(t, rt, m.RenderTarget)
	assert.True(t, m.FirstCameraUse && m.LastCameraUse)
	assert.False(t, m.TriggerPostprocess)
	assert.Equal(t, device.ClearColor, m.ClearFlags)
}

func TestPostEffectsSourceTarget(t *testing.T) {
	comp := NewComposition()
	require.NoError(t, comp.AddSublayer(NewLayer("world"), false))
	src := device.NewRenderTarget("post-source", 64, 64, 1)
	comp.AddCamera(camera.NewCamera(camera.WithPostEffects(postEffects{source: src})), "world")

	actions := comp.Update()
	require.Len(t, actions, 1)
	assert.Same(t, src, actions[0].RenderTarget)
	assert.True(t, actions[0].TriggerPostprocess)
}

func TestAddSublayerNameClash(t *testing.T) {
	comp := NewComposition()
	require.NoError(t, comp.AddLayer(NewLayer("world")))
	assert.Error(t, comp.AddLayer(NewLayer("world")))

	l, ok := comp.LayerByName("world")
	require.True(t, ok)
	assert.Same(t, l, comp.Layer(0))
	assert.Nil(t, comp.Layer(3))
}

func TestRemoveCamera(t *testing.T) {
	comp := NewComposition()
	require.NoError(t, comp.AddLayer(NewLayer("world")))
	a, b := camera.NewCamera(), camera.NewCamera()
	comp.AddCamera(a, "world")
	comp.AddCamera(b, "world")

	require.True(t, comp.RemoveCamera(a))
	assert.Equal(t, 1, comp.Cameras())
	assert.Same(t, b, comp.Camera(0))
	assert.Len(t, comp.Update(), 2)
}

func TestLightHashFollowsLights(t *testing.T) {
	l := NewLayer("world")
	assert.Zero(t, l.LightHash())
	l.SetLights([]light.Light{light.NewLight(light.LightTypeOmni)})
	assert.NotZero(t, l.LightHash())
}
