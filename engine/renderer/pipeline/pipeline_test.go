package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	p := NewPipeline("opaque")
	assert.Equal(t, device.DefaultDepth, p.Depth())
	assert.False(t, p.Blend().Enabled)
	assert.False(t, p.Bias().Enabled)
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	front, back := p.Stencil()
	assert.Nil(t, front)
	assert.Nil(t, back)
}

func TestApplyBindsMaterialState(t *testing.T) {
	rec := device.NewRecorder()
	ctx := device.NewContext(rec)
	p := NewPipeline("decal",
		WithBlendEnabled(true),
		WithDepthWriteEnabled(false),
		WithDepthBias(-1, -2),
		WithAlphaToCoverage(true),
	)

	Apply(ctx, p)
	require.Equal(t, 4, len(rec.Commands()))
	assert.Equal(t, device.OpSetBlend, rec.Commands()[0].Op)
	assert.Equal(t, device.OpSetDepth, rec.Commands()[1].Op)
	assert.Equal(t, device.OpSetAlphaToCoverage, rec.Commands()[2].Op)
	assert.Equal(t, device.OpSetDepthBias, rec.Commands()[3].Op)

	bound := ctx.Bound()
	assert.True(t, bound.Blend.Enabled)
	assert.False(t, bound.Depth.Write)
	assert.Equal(t, device.DepthBias{Enabled: true, Constant: -1, Slope: -2}, bound.Bias)

	Apply(ctx, p)
	assert.Equal(t, 4, len(rec.Commands()), "re-applying identical state must not reach the device")
}
