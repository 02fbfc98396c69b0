// Package device defines the graphics device contract the frame pipeline drives, the render
// state vocabulary it sets, and a Context that tracks bound state so redundant changes are
// never forwarded to the backend.
package device

import (
	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// Texture is a GPU texture owned by the backend.
type Texture interface {
	Name() string
	Width() int
	Height() int
	Cubemap() bool
}

// RenderTarget is a set of color and depth attachments. A nil RenderTarget denotes the
// backbuffer.
type RenderTarget interface {
	Name() string
	Width() int
	Height() int
	Samples() int
	ColorBuffer() Texture
	DepthBuffer() Texture
}

// Mesh is a drawable geometry primitive owned by the backend.
type Mesh interface {
	Name() string
}

// Uniform is a resolved handle to a named shader constant. Handles are resolved once and
// reused; setting a value records it for the next draw submission.
type Uniform interface {
	Name() string
	SetValue(v any)
	Value() any
}

// ClearFlags selects the attachments a Clear touches.
type ClearFlags uint8

const (
	ClearColor ClearFlags = 1 << iota
	ClearDepth
	ClearStencil
)

// ClearOptions describes a render target clear.
type ClearOptions struct {
	Flags   ClearFlags
	Color   wgpu.Color
	Depth   float32
	Stencil uint32
}

// Device is the low-level graphics device. Every method is called from the single frame
// thread, strictly in submission order.
type Device interface {
	// Resolve returns the handle for a named uniform, creating it on first use.
	//
	// Parameters:
	//   - name: the uniform name as declared by the shaders
	//
	// Returns:
	//   - Uniform: the uniform handle
	Resolve(name string) Uniform

	// SetShader binds a compiled shader variant. Returns false when the variant failed to
	// compile or link and cannot be used.
	//
	// Parameters:
	//   - s: the variant to bind
	//
	// Returns:
	//   - bool: true if the variant is bound
	SetShader(s shader.Shader) bool

	// SetBlendState sets color blending and the color write mask.
	SetBlendState(b BlendState)

	// SetDepthState sets depth testing and writing.
	SetDepthState(d DepthState)

	// SetDepthBias sets the constant and slope-scaled depth bias.
	SetDepthBias(b DepthBias)

	// SetAlphaToCoverage toggles alpha-to-coverage.
	SetAlphaToCoverage(enabled bool)

	// SetCullMode sets which triangle faces are culled.
	SetCullMode(mode wgpu.CullMode)

	// SetStencilState sets the per-face stencil operations. A nil front disables the stencil test.
	SetStencilState(front, back *StencilParameters)

	// SetViewport sets the viewport rectangle in pixels.
	SetViewport(v common.Viewport)

	// SetScissor sets the scissor rectangle in pixels.
	SetScissor(v common.Viewport)

	// SetRenderTarget binds the target subsequent draws render into. Nil binds the backbuffer.
	SetRenderTarget(rt RenderTarget)

	// Clear clears the bound target's attachments selected by opts.Flags.
	Clear(opts ClearOptions)

	// CopyRenderTarget copies color and/or depth between targets. Returns false when the
	// backend cannot satisfy the copy.
	CopyRenderTarget(src, dst RenderTarget, color, depth bool) bool

	// Draw submits one draw call. primary is true only on the first submission of a draw
	// call repeated for several views, when per-draw-call buffers must be bound.
	Draw(mesh Mesh, instances int, primary bool)

	// StartRenderPass marks the beginning of a named render pass.
	StartRenderPass(name string)

	// EndRenderPass marks the end of a named render pass.
	EndRenderPass(name string)
}
