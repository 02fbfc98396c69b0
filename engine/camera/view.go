package camera

import (
	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ViewData is one simultaneous view of a camera: the whole camera normally, one eye for XR.
type ViewData struct {
	// Viewport is in pixels when returned from Camera.Views. XR sessions report it as
	// [0, 1] fractions of the target.
	Viewport       common.Viewport
	Projection     mgl32.Mat4
	View           mgl32.Mat4
	ViewInverse    mgl32.Mat4
	ViewProjection mgl32.Mat4
	Position       mgl32.Vec3
}

// XRSession is the multi-view collaborator. It owns device tracking and fills the per-eye
// view data for the frame; the renderer only reads it.
type XRSession interface {
	// Active reports whether the session is presenting.
	Active() bool

	// Views returns this frame's views, viewports as normalized fractions.
	Views() []ViewData
}

// Callbacks receives a camera's frame notifications. Pre-render fires before the camera's
// first pass of the frame and post-render after its last.
type Callbacks interface {
	OnPreRender()
	OnPostRender()
}

// NopCallbacks implements Callbacks with no-ops. Embed it to override a subset.
type NopCallbacks struct{}

func (NopCallbacks) OnPreRender()  {}
func (NopCallbacks) OnPostRender() {}
