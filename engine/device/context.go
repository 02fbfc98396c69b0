package device

import (
	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// stateField marks which BoundState fields hold a value known to be set on the device.
type stateField uint16

const (
	fieldShader stateField = 1 << iota
	fieldBlend
	fieldDepth
	fieldBias
	fieldAlphaToCoverage
	fieldCull
	fieldStencil
	fieldViewport
	fieldTarget
)

// Context is the explicit device handle passed through the frame pipeline. It diffs every
// state change against the BoundState and forwards only real changes to the Device.
type Context struct {
	dev   Device
	bound BoundState
	known stateField
}

// NewContext wraps a Device in a state-tracking Context. Nothing is assumed bound initially.
//
// Parameters:
//   - dev: the device to drive
//
// Returns:
//   - *Context: the new context
func NewContext(dev Device) *Context {
	return &Context{dev: dev}
}

// Device returns the wrapped device.
func (c *Context) Device() Device {
	return c.dev
}

// Bound returns a copy of the state the context believes is bound.
func (c *Context) Bound() BoundState {
	return c.bound
}

// Invalidate forgets all tracked state so the next setters reach the device. Called at
// render pass boundaries and whenever external code touched the device directly.
func (c *Context) Invalidate() {
	c.known = 0
	c.bound = BoundState{}
}

func (c *Context) has(f stateField) bool {
	return c.known&f != 0
}

// Resolve returns the uniform handle for name.
func (c *Context) Resolve(name string) Uniform {
	return c.dev.Resolve(name)
}

// SetShader binds a shader variant. Rebinding the variant that is already bound succeeds
// without touching the device.
//
// Parameters:
//   - s: the variant to bind
//
// Returns:
//   - bool: false if the variant is nil or failed to bind
func (c *Context) SetShader(s shader.Shader) bool {
	if s == nil {
		return false
	}
	if c.has(fieldShader) && c.bound.Shader == s {
		return true
	}
	if !c.dev.SetShader(s) {
		c.known &^= fieldShader
		c.bound.Shader = nil
		return false
	}
	c.bound.Shader = s
	c.known |= fieldShader
	return true
}

func (c *Context) SetBlendState(b BlendState) {
	if c.has(fieldBlend) && c.bound.Blend == b {
		return
	}
	c.dev.SetBlendState(b)
	c.bound.Blend = b
	c.known |= fieldBlend
}

func (c *Context) SetDepthState(d DepthState) {
	if c.has(fieldDepth) && c.bound.Depth == d {
		return
	}
	c.dev.SetDepthState(d)
	c.bound.Depth = d
	c.known |= fieldDepth
}

func (c *Context) SetDepthBias(b DepthBias) {
	if c.has(fieldBias) && c.bound.Bias == b {
		return
	}
	c.dev.SetDepthBias(b)
	c.bound.Bias = b
	c.known |= fieldBias
}

func (c *Context) SetAlphaToCoverage(enabled bool) {
	if c.has(fieldAlphaToCoverage) && c.bound.AlphaToCoverage == enabled {
		return
	}
	c.dev.SetAlphaToCoverage(enabled)
	c.bound.AlphaToCoverage = enabled
	c.known |= fieldAlphaToCoverage
}

func (c *Context) SetCullMode(mode wgpu.CullMode) {
	if c.has(fieldCull) && c.bound.Cull == mode {
		return
	}
	c.dev.SetCullMode(mode)
	c.bound.Cull = mode
	c.known |= fieldCull
}

// SetStencilState sets per-face stencil state. A nil front disables stencil testing; a nil
// back mirrors front.
func (c *Context) SetStencilState(front, back *StencilParameters) {
	enabled := front != nil
	var f, b StencilParameters
	if enabled {
		f = *front
		b = f
		if back != nil {
			b = *back
		}
	}
	if c.has(fieldStencil) && c.bound.StencilEnabled == enabled && c.bound.StencilFront == f && c.bound.StencilBack == b {
		return
	}
	if enabled {
		c.dev.SetStencilState(&f, &b)
	} else {
		c.dev.SetStencilState(nil, nil)
	}
	c.bound.StencilEnabled = enabled
	c.bound.StencilFront = f
	c.bound.StencilBack = b
	c.known |= fieldStencil
}

func (c *Context) SetViewport(v common.Viewport) {
	if c.has(fieldViewport) && c.bound.Viewport == v {
		return
	}
	c.dev.SetViewport(v)
	c.bound.Viewport = v
	c.known |= fieldViewport
}

// SetScissor is forwarded unconditionally; scissor tracks the viewport in this pipeline.
func (c *Context) SetScissor(v common.Viewport) {
	c.dev.SetScissor(v)
}

// SetRenderTarget binds rt and invalidates the viewport, which backends reset on target change.
func (c *Context) SetRenderTarget(rt RenderTarget) {
	if c.has(fieldTarget) && c.bound.Target == rt {
		return
	}
	c.dev.SetRenderTarget(rt)
	c.bound.Target = rt
	c.known |= fieldTarget
	c.known &^= fieldViewport
}

func (c *Context) Clear(opts ClearOptions) {
	c.dev.Clear(opts)
}

func (c *Context) CopyRenderTarget(src, dst RenderTarget, color, depth bool) bool {
	return c.dev.CopyRenderTarget(src, dst, color, depth)
}

func (c *Context) Draw(mesh Mesh, instances int, primary bool) {
	c.dev.Draw(mesh, instances, primary)
}

// StartRenderPass begins a named pass; all tracked state is forgotten because backends
// reset pipeline state between passes.
func (c *Context) StartRenderPass(name string) {
	c.Invalidate()
	c.dev.StartRenderPass(name)
}

func (c *Context) EndRenderPass(name string) {
	c.dev.EndRenderPass(name)
}
