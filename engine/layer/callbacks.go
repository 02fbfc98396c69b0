package layer

import "github.com/Carmen-Shannon/oxy-frame/engine/renderer/drawcall"

// Callbacks receives a layer's frame notifications. cameraPass is the 0-based index of
// the camera within the layer's cameras for this frame.
//
// OnPreRender and OnPostRender fire once per (layer, camera) per frame. The opaque and
// transparent variants bracket each part of the layer. OnDrawCall fires before each mesh
// draw call is submitted.
type Callbacks interface {
	OnPreRender(cameraPass int)
	OnPostRender(cameraPass int)
	OnPreRenderOpaque(cameraPass int)
	OnPreRenderTransparent(cameraPass int)
	OnPostRenderOpaque(cameraPass int)
	OnPostRenderTransparent(cameraPass int)
	OnDrawCall(dc *drawcall.DrawCall)
}

// NopCallbacks implements Callbacks with no-ops. Embed it to override a subset.
type NopCallbacks struct{}

func (NopCallbacks) OnPreRender(int)               {}
func (NopCallbacks) OnPostRender(int)              {}
func (NopCallbacks) OnPreRenderOpaque(int)         {}
func (NopCallbacks) OnPreRenderTransparent(int)    {}
func (NopCallbacks) OnPostRenderOpaque(int)        {}
func (NopCallbacks) OnPostRenderTransparent(int)   {}
func (NopCallbacks) OnDrawCall(*drawcall.DrawCall) {}
