package renderpass

import "github.com/cogentcore/webgpu/wgpu"

// ColorAttachmentOps describes what happens to the color attachment at the start and end of
// a render pass.
type ColorAttachmentOps struct {
	// Clear clears the attachment to ClearValue when the pass starts; otherwise it is loaded.
	Clear bool
	// ClearValue is the clear color.
	ClearValue wgpu.Color
	// Store keeps the rendered result at the end of the pass.
	Store bool
	// Resolve resolves a multisampled attachment into its single-sample texture.
	Resolve bool
	// Mipmaps regenerates the mip chain after the pass.
	Mipmaps bool
}

// LoadOp returns the WebGPU load operation implied by the ops.
func (o ColorAttachmentOps) LoadOp() wgpu.LoadOp {
	if o.Clear {
		return wgpu.LoadOpClear
	}
	return wgpu.LoadOpLoad
}

// StoreOp returns the WebGPU store operation implied by the ops.
func (o ColorAttachmentOps) StoreOp() wgpu.StoreOp {
	if o.Store {
		return wgpu.StoreOpStore
	}
	return wgpu.StoreOpDiscard
}

// DepthStencilAttachmentOps describes what happens to the depth/stencil attachment at the
// start and end of a render pass.
type DepthStencilAttachmentOps struct {
	ClearDepth        bool
	ClearDepthValue   float32
	ClearStencil      bool
	ClearStencilValue uint32
	StoreDepth        bool
	StoreStencil      bool
}

// DepthLoadOp returns the WebGPU load operation for the depth aspect.
func (o DepthStencilAttachmentOps) DepthLoadOp() wgpu.LoadOp {
	if o.ClearDepth {
		return wgpu.LoadOpClear
	}
	return wgpu.LoadOpLoad
}

// DepthStoreOp returns the WebGPU store operation for the depth aspect.
func (o DepthStencilAttachmentOps) DepthStoreOp() wgpu.StoreOp {
	if o.StoreDepth {
		return wgpu.StoreOpStore
	}
	return wgpu.StoreOpDiscard
}

// StencilLoadOp returns the WebGPU load operation for the stencil aspect.
func (o DepthStencilAttachmentOps) StencilLoadOp() wgpu.LoadOp {
	if o.ClearStencil {
		return wgpu.LoadOpClear
	}
	return wgpu.LoadOpLoad
}

// StencilStoreOp returns the WebGPU store operation for the stencil aspect.
func (o DepthStencilAttachmentOps) StencilStoreOp() wgpu.StoreOp {
	if o.StoreStencil {
		return wgpu.StoreOpStore
	}
	return wgpu.StoreOpDiscard
}
