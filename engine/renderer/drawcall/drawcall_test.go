package drawcall

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderCacheInvalidation(t *testing.T) {
	dc := New("box", nil, nil)
	fwd := shader.NewShader(shader.Definition{Name: "lit", Pass: shader.PassForward})
	depth := shader.NewShader(shader.Definition{Name: "lit", Pass: shader.PassDepth})

	dc.SetShader(shader.PassForward, 1, 0x1, 7, fwd)
	dc.SetShader(shader.PassDepth, 1, 0x1, 7, depth)

	got, ok := dc.CachedShader(shader.PassForward, 1, 0x1, 7)
	require.True(t, ok)
	assert.Same(t, fwd, got)

	_, ok = dc.CachedShader(shader.PassForward, 1, 0x1, 8)
	assert.False(t, ok, "light hash change")
	_, ok = dc.CachedShader(shader.PassForward, 2, 0x1, 7)
	assert.False(t, ok, "material change")

	dc.SetShader(shader.PassForward, 1, 0x3, 7, fwd)
	assert.Nil(t, dc.Shader(shader.PassDepth), "defines change drops other passes")
}

func TestCullModeFlip(t *testing.T) {
	dc := New("box", nil, nil)
	assert.Equal(t, wgpu.CullModeBack, dc.CullMode(wgpu.CullModeBack, false))
	assert.Equal(t, wgpu.CullModeFront, dc.CullMode(wgpu.CullModeBack, true))
	assert.Equal(t, wgpu.CullModeNone, dc.CullMode(wgpu.CullModeNone, true))

	mirrored := New("mirror", nil, nil, WithFlipFaces(true))
	assert.Equal(t, wgpu.CullModeBack, mirrored.CullMode(wgpu.CullModeBack, true))
	assert.Equal(t, wgpu.CullModeFront, mirrored.CullMode(wgpu.CullModeBack, false))
}

func TestPreparedList(t *testing.T) {
	var l PreparedList
	a, b := New("a", nil, nil), NewCommand("cmd", nil)
	l.Append(a, true, true)
	l.Append(b, false, false)
	require.Equal(t, 2, l.Len())
	assert.Equal(t, []bool{true, false}, l.IsNewMaterial)
	assert.False(t, b.IsCommand(), "nil callback is not a command")

	l.Reset()
	assert.Zero(t, l.Len())
}
