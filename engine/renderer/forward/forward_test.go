package forward

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/drawcall"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/lighting"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-frame/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mesh string

func (m mesh) Name() string { return string(m) }

// countingCompiler compiles every definition into a fresh variant and fails the names in
// broken.
type countingCompiler struct {
	compiled int
	broken   map[string]bool
}

func (c *countingCompiler) Compile(def shader.Definition) shader.Shader {
	c.compiled++
	if c.broken[def.Name] {
		return shader.NewShader(def, shader.WithErr(errors.New("compile error")))
	}
	return shader.NewShader(def)
}

type harness struct {
	rec      *device.Recorder
	ctx      *device.Context
	stats    *Stats
	compiler *countingCompiler
	preparer *Preparer
	executor *Executor
}

func newHarness() *harness {
	rec := device.NewRecorder()
	stats := &Stats{}
	def := material.NewMaterial(material.WithName("default"))
	compiler := &countingCompiler{broken: map[string]bool{}}
	return &harness{
		rec:      rec,
		ctx:      device.NewContext(rec),
		stats:    stats,
		compiler: compiler,
		preparer: NewPreparer(compiler, WithDefaultMaterial(def), WithPreparerStats(stats)),
		executor: NewExecutor(rec, lighting.NewDispatcher(rec), WithExecutorDefaultMaterial(def), WithExecutorStats(stats)),
	}
}

func newBatch(cam camera.Camera, lights []light.Light) *Batch {
	return &Batch{
		Camera:    cam,
		Views:     cam.Views(640, 480),
		Pass:      shader.PassForward,
		Settings:  scene.DefaultSettings(),
		Lights:    light.Split(lights),
		LightHash: light.Hash(lights),
	}
}

func TestVariantReuse(t *testing.T) {
	h := newHarness()
	mat := material.NewMaterial(material.WithName("a"))
	a := drawcall.New("a", mesh("m"), mat)
	b := drawcall.New("b", mesh("m"), mat)
	batch := newBatch(camera.NewCamera(), nil)

	h.preparer.Prepare([]*drawcall.DrawCall{a, b}, batch)
	require.NotNil(t, a.Shader(shader.PassForward))
	assert.Same(t, a.Shader(shader.PassForward), b.Shader(shader.PassForward))
	assert.Equal(t, 1, h.compiler.compiled)

	t.Run("defines", func(t *testing.T) {
		c := drawcall.New("c", mesh("m"), mat, drawcall.WithDefines(1<<3))
		h.preparer.Prepare([]*drawcall.DrawCall{c}, batch)
		assert.NotSame(t, a.Shader(shader.PassForward), c.Shader(shader.PassForward))
	})
	t.Run("light hash", func(t *testing.T) {
		lit := newBatch(camera.NewCamera(), []light.Light{light.NewLight(light.LightTypeOmni)})
		d := drawcall.New("d", mesh("m"), mat)
		h.preparer.Prepare([]*drawcall.DrawCall{d}, lit)
		assert.NotSame(t, a.Shader(shader.PassForward), d.Shader(shader.PassForward))
	})
	t.Run("pass", func(t *testing.T) {
		depth := newBatch(camera.NewCamera(), nil)
		depth.Pass = shader.PassDepth
		h.preparer.Prepare([]*drawcall.DrawCall{a}, depth)
		assert.NotSame(t, b.Shader(shader.PassForward), a.Shader(shader.PassDepth))
	})
}

func TestStaticIsolation(t *testing.T) {
	h := newHarness()
	mat := material.NewMaterial(material.WithName("a"))
	dynamic := drawcall.New("dynamic", mesh("m"), mat)
	static := drawcall.New("static", mesh("m"), mat, drawcall.WithStatic())
	batch := newBatch(camera.NewCamera(), nil)

	h.preparer.Prepare([]*drawcall.DrawCall{dynamic, static}, batch)

	// both keys hash an empty light list, yet the static variant stays private
	require.NotNil(t, static.Shader(shader.PassForward))
	assert.NotSame(t, dynamic.Shader(shader.PassForward), static.Shader(shader.PassForward))
	assert.True(t, static.Shader(shader.PassForward).Definition().Static)
	cached, ok := mat.Variant(dynamic.Shader(shader.PassForward).Definition().VariantKey())
	require.True(t, ok)
	assert.Same(t, dynamic.Shader(shader.PassForward), cached)

	compiled := h.compiler.compiled
	h.preparer.Prepare([]*drawcall.DrawCall{dynamic, static}, batch)
	assert.Equal(t, compiled, h.compiler.compiled, "unchanged draw calls keep their variants")
}

func TestViewFanOut(t *testing.T) {
	h := newHarness()
	left := camera.ViewData{Viewport: common.Viewport{Width: 0.5, Height: 1}, Position: mgl32.Vec3{-0.03, 0, 0}}
	right := camera.ViewData{Viewport: common.Viewport{X: 0.5, Width: 0.5, Height: 1}, Position: mgl32.Vec3{0.03, 0, 0}}
	cam := camera.NewCamera(camera.WithXR(&session{views: []camera.ViewData{left, right}}))
	batch := newBatch(cam, nil)
	require.Len(t, batch.Views, 2)

	dc := drawcall.New("dc", mesh("m"), nil, drawcall.WithInstances(3))
	list := h.preparer.Prepare([]*drawcall.DrawCall{dc}, batch)
	require.True(t, h.executor.Execute(h.ctx, list, batch))

	draws := h.rec.Filter(device.OpDraw)
	require.Len(t, draws, 2)
	first := draws[0].Value.(device.DrawArgs)
	second := draws[1].Value.(device.DrawArgs)
	assert.True(t, first.Primary)
	assert.False(t, second.Primary)
	assert.Equal(t, 3, first.Instances)
	assert.Equal(t, common.Viewport{Width: 320, Height: 480}, first.Viewport)
	assert.Equal(t, common.Viewport{X: 320, Width: 320, Height: 480}, second.Viewport)
	assert.Equal(t, 2, h.stats.DrawCalls)

	pos, ok := h.rec.UniformValue("view_position")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.03, 0, 0}, pos, "the last view's matrices are bound last")
}

type session struct {
	views []camera.ViewData
}

func (s *session) Active() bool             { return true }
func (s *session) Views() []camera.ViewData { return s.views }

func TestFailFast(t *testing.T) {
	h := newHarness()
	h.compiler.broken["broken"] = true
	good := material.NewMaterial(material.WithName("good"))
	broken := material.NewMaterial(material.WithName("broken"))
	batch := newBatch(camera.NewCamera(), nil)

	list := h.preparer.Prepare([]*drawcall.DrawCall{
		drawcall.New("first", mesh("first"), good),
		drawcall.New("bad", mesh("bad"), broken),
		drawcall.New("after", mesh("after"), good),
	}, batch)
	require.Equal(t, 3, list.Len(), "failed variants are kept until bind time")

	assert.False(t, h.executor.Execute(h.ctx, list, batch))
	draws := h.rec.Filter(device.OpDraw)
	require.Len(t, draws, 1)
	assert.Equal(t, "first", draws[0].Name)
	assert.Equal(t, 1, h.stats.AbortedBatches)

	// the next batch is unaffected
	next := h.preparer.Prepare([]*drawcall.DrawCall{drawcall.New("later", mesh("later"), good)}, batch)
	assert.True(t, h.executor.Execute(h.ctx, next, batch))
	assert.Equal(t, 2, h.rec.Count(device.OpDraw))
}

func TestEndToEnd(t *testing.T) {
	h := newHarness()
	l1 := light.NewLight(light.LightTypeDirectional, light.WithName("l1"), light.WithMask(0b01))
	l2 := light.NewLight(light.LightTypeOmni, light.WithName("l2"), light.WithMask(0b10))
	lights := []light.Light{l1, l2}
	matA := material.NewMaterial(material.WithName("a"))
	matB := material.NewMaterial(material.WithName("b"))
	dcs := []*drawcall.DrawCall{
		drawcall.New("static-1", mesh("s1"), matA, drawcall.WithMask(0b01), drawcall.WithStatic(lights...)),
		drawcall.New("static-2", mesh("s2"), matA, drawcall.WithMask(0b01), drawcall.WithStatic(lights...)),
		drawcall.New("dynamic", mesh("d"), matB, drawcall.WithMask(0b11)),
	}
	batch := newBatch(camera.NewCamera(), lights)

	list := h.preparer.Prepare(dcs, batch)
	require.Equal(t, 3, list.Len())
	assert.Equal(t, []bool{true, true, true}, list.IsNewMaterial)
	assert.Equal(t, []bool{true, true, true}, list.LightMaskChanged)

	require.True(t, h.executor.Execute(h.ctx, list, batch))
	assert.Equal(t, 3, h.stats.LightDispatches)
	assert.Equal(t, 3, h.stats.DrawCalls)
	assert.Equal(t, 3, h.rec.Count(device.OpSetShader))
}

func TestPrepareVisibilityMaskAndCommands(t *testing.T) {
	h := newHarness()
	ran := 0
	dcs := []*drawcall.DrawCall{
		drawcall.New("hidden", mesh("hidden"), nil, drawcall.WithMask(0b100)),
		drawcall.NewCommand("cmd", func(*device.Context) { ran++ }),
		drawcall.New("shown", mesh("shown"), nil, drawcall.WithMask(0b001)),
	}
	batch := newBatch(camera.NewCamera(), nil)
	batch.VisibilityMask = 0b011

	list := h.preparer.Prepare(dcs, batch)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, "cmd", list.Records[0].Name)
	assert.False(t, list.IsNewMaterial[0])
	assert.Equal(t, 1, h.stats.Culled)

	require.True(t, h.executor.Execute(h.ctx, list, batch))
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, h.stats.Commands)
	assert.Equal(t, 1, h.stats.DrawCalls)
}

func TestSharedMaterialBindsOnce(t *testing.T) {
	h := newHarness()
	mat := material.NewMaterial(material.WithName("a"), material.WithParameter("tint", mgl32.Vec4{1, 1, 1, 1}))
	dcs := []*drawcall.DrawCall{
		drawcall.New("red", mesh("red"), mat, drawcall.WithParameter("tint", mgl32.Vec4{1, 0, 0, 1})),
		drawcall.New("plain", mesh("plain"), mat),
	}
	batch := newBatch(camera.NewCamera(), nil)

	list := h.preparer.Prepare(dcs, batch)
	assert.Equal(t, []bool{true, false}, list.IsNewMaterial)
	assert.Equal(t, []bool{true, false}, list.LightMaskChanged)

	require.True(t, h.executor.Execute(h.ctx, list, batch))
	assert.Equal(t, 1, h.rec.Count(device.OpSetShader))
	assert.Equal(t, 1, h.stats.LightDispatches)
	tint, ok := h.rec.UniformValue("tint")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, tint, "overrides are restored for the next record")
}
