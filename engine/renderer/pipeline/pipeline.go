package pipeline

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/cogentcore/webgpu/wgpu"
)

// pipeline is the implementation of the Pipeline interface.
// It holds the fixed-function state a material renders with.
type pipeline struct {
	// pipelineKey is the unique identifier for this state block, used in logs and lookups
	pipelineKey string

	depthTestEnabled    bool
	depthWriteEnabled   bool
	depthFunc           wgpu.CompareFunction
	depthBias           float32
	depthBiasSlopeScale float32
	blendEnabled        bool
	blendState          wgpu.BlendState
	writeMask           wgpu.ColorWriteMask
	cullMode            wgpu.CullMode
	alphaToCoverage     bool

	// stencilFront nil disables stencil testing; stencilBack nil mirrors the front face
	stencilFront *device.StencilParameters
	stencilBack  *device.StencilParameters
}

// Pipeline defines the material-level render state bound once per material switch:
// blending, depth test/write, depth bias, alpha-to-coverage, and the default cull mode and
// stencil state that draw calls may override.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this state block.
	//
	// Returns:
	//   - string: the unique key
	PipelineKey() string

	// Blend returns the blend configuration.
	//
	// Returns:
	//   - device.BlendState: blending enabled flag, blend equation and write mask
	Blend() device.BlendState

	// Depth returns the depth test configuration.
	//
	// Returns:
	//   - device.DepthState: test and write flags with the compare function
	Depth() device.DepthState

	// Bias returns the depth bias.
	//
	// Returns:
	//   - device.DepthBias: enabled when either bias term is non-zero
	Bias() device.DepthBias

	// AlphaToCoverage returns whether alpha-to-coverage is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	AlphaToCoverage() bool

	// CullMode returns the default face culling mode.
	//
	// Returns:
	//   - wgpu.CullMode: the cull mode (e.g., wgpu.CullModeBack)
	CullMode() wgpu.CullMode

	// Stencil returns the default per-face stencil state.
	//
	// Returns:
	//   - front: the front face state, nil when stencil testing is disabled
	//   - back: the back face state, nil to mirror front
	Stencil() (front, back *device.StencilParameters)

	// SetBlend replaces the blend configuration.
	//
	// Parameters:
	//   - b: the new blend configuration
	SetBlend(b device.BlendState)

	// SetDepth replaces the depth configuration.
	//
	// Parameters:
	//   - d: the new depth configuration
	SetDepth(d device.DepthState)

	// SetCullMode replaces the default cull mode.
	//
	// Parameters:
	//   - mode: the new cull mode
	SetCullMode(mode wgpu.CullMode)
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a new opaque, depth-tested, back-face-culled Pipeline state.
//
// Parameters:
//   - pipelineKey: the unique key for this state block
//   - opts: a variadic list of PipelineBuilderOption functions to configure the state
//
// Returns:
//   - Pipeline: a new Pipeline instance
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		depthFunc:         wgpu.CompareFunctionLessEqual,
		blendEnabled:      false,
		cullMode:          wgpu.CullModeBack,
		writeMask:         wgpu.ColorWriteMaskAll,
		blendState:        device.AlphaBlend.State,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Blend() device.BlendState {
	return device.BlendState{
		Enabled:   p.blendEnabled,
		State:     p.blendState,
		WriteMask: p.writeMask,
	}
}

func (p *pipeline) Depth() device.DepthState {
	return device.DepthState{
		Test:  p.depthTestEnabled,
		Write: p.depthWriteEnabled,
		Func:  p.depthFunc,
	}
}

func (p *pipeline) Bias() device.DepthBias {
	return device.DepthBias{
		Enabled:  p.depthBias != 0 || p.depthBiasSlopeScale != 0,
		Constant: p.depthBias,
		Slope:    p.depthBiasSlopeScale,
	}
}

func (p *pipeline) AlphaToCoverage() bool {
	return p.alphaToCoverage
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Stencil() (front, back *device.StencilParameters) {
	return p.stencilFront, p.stencilBack
}

func (p *pipeline) SetBlend(b device.BlendState) {
	p.blendEnabled = b.Enabled
	p.blendState = b.State
	p.writeMask = b.WriteMask
}

func (p *pipeline) SetDepth(d device.DepthState) {
	p.depthTestEnabled = d.Test
	p.depthWriteEnabled = d.Write
	p.depthFunc = d.Func
}

func (p *pipeline) SetCullMode(mode wgpu.CullMode) {
	p.cullMode = mode
}

// Apply binds the material-level state of p: blend, depth test/write, alpha-to-coverage
// and depth bias. Cull mode and stencil are per draw call and bound by the caller.
//
// Parameters:
//   - ctx: the device context
//   - p: the state to bind
func Apply(ctx *device.Context, p Pipeline) {
	ctx.SetBlendState(p.Blend())
	ctx.SetDepthState(p.Depth())
	ctx.SetAlphaToCoverage(p.AlphaToCoverage())
	ctx.SetDepthBias(p.Bias())
}
