package renderpass

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ops(rec *device.Recorder) []device.Op {
	var out []device.Op
	for _, c := range rec.Commands() {
		out = append(out, c.Op)
	}
	return out
}

func TestInit(t *testing.T) {
	var p RenderPass
	p.Init(nil, device.ClearColor|device.ClearDepth, [4]float64{0.1, 0.2, 0.3, 1})

	assert.Equal(t, device.ClearColor|device.ClearDepth, p.ClearFlags())
	assert.Equal(t, MSAAOff, p.Samples)
	assert.False(t, p.ColorOps.Resolve)
	assert.Equal(t, wgpu.LoadOpClear, p.ColorOps.LoadOp())
	assert.Equal(t, wgpu.StoreOpStore, p.ColorOps.StoreOp())
	assert.Equal(t, wgpu.LoadOpClear, p.DepthStencilOps.DepthLoadOp())
	assert.Equal(t, wgpu.LoadOpLoad, p.DepthStencilOps.StencilLoadOp())
	assert.Equal(t, wgpu.StoreOpDiscard, p.DepthStencilOps.StencilStoreOp())
	assert.Equal(t, float32(1), p.DepthStencilOps.ClearDepthValue)
	assert.Equal(t, 0.2, p.ColorOps.ClearValue.G)
	assert.Zero(t, p.Width)

	p.Init(device.NewRenderTarget("msaa", 64, 64, 6), 0, [4]float64{})
	assert.Equal(t, device.ClearFlags(0), p.ClearFlags())
	assert.Equal(t, MSAA4x, p.Samples)
	assert.Equal(t, [2]int{64, 64}, [2]int{p.Width, p.Height})
	assert.True(t, p.ColorOps.Resolve)
	assert.Equal(t, wgpu.LoadOpLoad, p.ColorOps.LoadOp())
}

func TestRender(t *testing.T) {
	rt := device.NewRenderTarget("scene", 64, 32, 1)

	t.Run("full size clear", func(t *testing.T) {
		rec := device.NewRecorder()
		ctx := device.NewContext(rec)
		var order []string
		p := &RenderPass{Name: "scene/opaque", FullSizeClearRect: true}
		p.Init(rt, device.ClearColor|device.ClearDepth, [4]float64{0, 0, 0, 1})
		p.Executor = ExecutorFuncs{
			BeforeFunc: func(*RenderPass) {
				order = append(order, "before")
				assert.Empty(t, rec.Commands())
			},
			ExecuteFunc: func(*RenderPass) { order = append(order, "execute") },
			AfterFunc: func(*RenderPass) {
				order = append(order, "after")
				assert.Equal(t, device.OpEndPass, rec.Commands()[len(rec.Commands())-1].Op)
			},
		}

		p.Render(ctx)
		assert.Equal(t, []string{"before", "execute", "after"}, order)
		assert.Equal(t, []device.Op{
			device.OpStartPass, device.OpSetRenderTarget, device.OpSetViewport,
			device.OpSetScissor, device.OpClear, device.OpEndPass,
		}, ops(rec))

		full := rec.Filter(device.OpSetViewport)[0].Value.(common.Viewport)
		assert.Equal(t, common.Viewport{Width: 64, Height: 32}, full)
		clear := rec.Filter(device.OpClear)[0].Value.(device.ClearOptions)
		assert.Equal(t, device.ClearColor|device.ClearDepth, clear.Flags)
	})

	t.Run("full size clear on the backbuffer", func(t *testing.T) {
		rec := device.NewRecorder()
		ctx := device.NewContext(rec)
		ctx.SetViewport(common.Viewport{Width: 64, Height: 64})
		p := &RenderPass{Name: "main", FullSizeClearRect: true}
		p.Init(nil, device.ClearColor, [4]float64{})
		p.Width, p.Height = 800, 600

		p.Render(ctx)
		require.Len(t, rec.Filter(device.OpSetViewport), 2)
		assert.Equal(t, common.Viewport{Width: 800, Height: 600}, rec.Filter(device.OpSetViewport)[1].Value)
		assert.Equal(t, []device.Op{
			device.OpSetViewport, device.OpStartPass, device.OpSetRenderTarget,
			device.OpSetViewport, device.OpSetScissor, device.OpClear, device.OpEndPass,
		}, ops(rec))
	})

	t.Run("camera rect clear is left to the executor", func(t *testing.T) {
		rec := device.NewRecorder()
		p := &RenderPass{Name: "split"}
		p.Init(rt, device.ClearColor, [4]float64{})

		p.Render(device.NewContext(rec))
		assert.Equal(t, []device.Op{device.OpStartPass, device.OpSetRenderTarget, device.OpEndPass}, ops(rec))
	})

	t.Run("skip init", func(t *testing.T) {
		rec := device.NewRecorder()
		p := &RenderPass{Name: "copy", SkipInit: true, FullSizeClearRect: true}
		p.Init(rt, device.ClearColor, [4]float64{})
		executed := false
		p.Executor = ExecutorFuncs{ExecuteFunc: func(*RenderPass) { executed = true }}

		p.Render(device.NewContext(rec))
		assert.True(t, executed)
		assert.Equal(t, []device.Op{device.OpStartPass, device.OpEndPass}, ops(rec))
	})
}

func TestPool(t *testing.T) {
	var pool Pool
	a := pool.Get()
	a.Name = "first"
	a.SkipInit = true
	b := pool.Get()
	require.NotSame(t, a, b)
	assert.Equal(t, 2, pool.Capacity())

	pool.Reset()
	again := pool.Get()
	assert.Same(t, a, again)
	assert.Equal(t, RenderPass{}, *again)
	assert.Equal(t, 2, pool.Capacity())
}

func TestSampleCountOf(t *testing.T) {
	cases := map[int]SampleCount{0: MSAAOff, 1: MSAAOff, 3: MSAAOff, 4: MSAA4x, 7: MSAA4x, 8: MSAA8x, 32: MSAA16x}
	for n, want := range cases {
		assert.Equal(t, want, SampleCountOf(n), "samples %d", n)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "main", KindMain.String())
	assert.Equal(t, "grab-render", KindGrabRender.String())
	assert.Equal(t, "custom", KindCustom.String())
}
