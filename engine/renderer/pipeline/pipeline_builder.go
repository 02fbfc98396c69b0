package pipeline

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithDepthTestEnabled sets whether depth testing is enabled.
//
// Parameters:
//   - enabled: a boolean indicating whether depth testing should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth test enabled state
func WithDepthTestEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWriteEnabled sets whether depth writing is enabled.
//
// Parameters:
//   - enabled: a boolean indicating whether depth writing should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth write enabled state
func WithDepthWriteEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthWriteEnabled = enabled
	}
}

// WithDepthFunc sets the depth compare function.
//
// Parameters:
//   - fn: the compare function
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth compare function
func WithDepthFunc(fn wgpu.CompareFunction) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthFunc = fn
	}
}

// WithDepthBias sets the constant depth bias and slope scale.
//
// Parameters:
//   - bias: the constant depth bias
//   - slopeScale: the slope-scaled depth bias
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth bias
func WithDepthBias(bias, slopeScale float32) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthBias = bias
		p.depthBiasSlopeScale = slopeScale
	}
}

// WithBlendEnabled sets whether blending is enabled.
//
// Parameters:
//   - enabled: a boolean indicating whether blending should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the blend enabled state
func WithBlendEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendEnabled = enabled
	}
}

// WithBlendState sets the blend equation. Blending must also be enabled with WithBlendEnabled.
//
// Parameters:
//   - blendState: the blend equation
//
// Returns:
//   - PipelineBuilderOption: a function that sets the blend equation
func WithBlendState(blendState wgpu.BlendState) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendState = blendState
	}
}

// WithWriteMask sets the color write mask.
//
// Parameters:
//   - writeMask: the color write mask (e.g., wgpu.ColorWriteMaskAll)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the color write mask
func WithWriteMask(writeMask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = writeMask
	}
}

// WithCullMode sets the default cull mode.
//
// Parameters:
//   - mode: the cull mode (e.g., wgpu.CullModeNone, wgpu.CullModeFront, wgpu.CullModeBack)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the cull mode
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithAlphaToCoverage sets whether alpha-to-coverage is enabled.
//
// Parameters:
//   - enabled: a boolean indicating whether alpha-to-coverage should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets alpha-to-coverage
func WithAlphaToCoverage(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.alphaToCoverage = enabled
	}
}

// WithStencil sets the default stencil state. A nil back mirrors front.
//
// Parameters:
//   - front: the front face stencil state
//   - back: the back face stencil state, or nil
//
// Returns:
//   - PipelineBuilderOption: a function that sets the stencil state
func WithStencil(front, back *device.StencilParameters) PipelineBuilderOption {
	return func(p *pipeline) {
		p.stencilFront = front
		p.stencilBack = back
	}
}
