package device

import (
	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// BlendState is the color blend configuration of a draw call.
type BlendState struct {
	Enabled   bool
	State     wgpu.BlendState
	WriteMask wgpu.ColorWriteMask
}

// NoBlend is opaque rendering with all color channels written.
var NoBlend = BlendState{Enabled: false, WriteMask: wgpu.ColorWriteMaskAll}

// AlphaBlend is standard premultiplied-style alpha blending.
var AlphaBlend = BlendState{
	Enabled: true,
	State: wgpu.BlendState{
		Color: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorSrcAlpha,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
		Alpha: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
	},
	WriteMask: wgpu.ColorWriteMaskAll,
}

// DepthState is the depth test configuration of a draw call.
type DepthState struct {
	Test  bool
	Write bool
	Func  wgpu.CompareFunction
}

// DefaultDepth tests with less-equal and writes depth.
var DefaultDepth = DepthState{Test: true, Write: true, Func: wgpu.CompareFunctionLessEqual}

// DepthBias is the rasterizer depth offset.
type DepthBias struct {
	Enabled  bool
	Constant float32
	Slope    float32
}

// StencilParameters describes the stencil test and operations of one face.
type StencilParameters struct {
	Func      wgpu.CompareFunction
	Ref       uint32
	ReadMask  uint32
	WriteMask uint32
	Fail      wgpu.StencilOperation
	ZFail     wgpu.StencilOperation
	ZPass     wgpu.StencilOperation
}

// BoundState is the render state the Context believes is currently set on the device.
type BoundState struct {
	Shader          shader.Shader
	Blend           BlendState
	Depth           DepthState
	Bias            DepthBias
	AlphaToCoverage bool
	Cull            wgpu.CullMode
	StencilEnabled  bool
	StencilFront    StencilParameters
	StencilBack     StencilParameters
	Viewport        common.Viewport
	Target          RenderTarget
}
