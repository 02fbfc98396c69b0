// Package framegraph turns a frame's RenderAction list into the ordered RenderPass list the
// device executes: shadow and cookie passes, merged main passes, scene grabs and
// postprocessing.
package framegraph

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderpass"
)

// DepthClearColor is the reserved clear color of depth re-render grabs. It encodes the far
// plane.
var DepthClearColor = [4]float64{1, 1, 1, 1}

// ShadowRenderer is the shadow map collaborator. Passes it returns are inserted into the
// frame graph verbatim.
type ShadowRenderer interface {
	// DirectionalPasses appends the passes rendering the directional shadow maps of cam.
	DirectionalPasses(dst []*renderpass.RenderPass, cam camera.Camera, lights []light.Light) []*renderpass.RenderPass

	// LocalPasses appends the passes rendering the shadow map of one local light.
	LocalPasses(dst []*renderpass.RenderPass, l light.Light) []*renderpass.RenderPass

	// RenderLocal renders the shadow maps of every local light into the shared atlas used
	// by clustered lighting.
	RenderLocal(ctx *device.Context, lights []light.Light)
}

// CookieRenderer renders light cookies into the cookie atlas used by clustered lighting.
type CookieRenderer interface {
	RenderCookies(ctx *device.Context, lights []light.Light)
}

// SceneGrabber owns the textures cameras read the captured scene color and depth from.
type SceneGrabber interface {
	// NeedsDepthRerender reports whether depth can only be captured by rendering the scene
	// again, encoded as color.
	NeedsDepthRerender() bool

	// ColorTarget returns the scene color grab target of cam.
	ColorTarget(cam camera.Camera) device.RenderTarget

	// DepthTarget returns the scene depth grab target of cam.
	DepthTarget(cam camera.Camera) device.RenderTarget
}

// Stats counts frame graph work for one frame.
type Stats struct {
	// PassesBuilt counts every pass in the graph, external ones included.
	PassesBuilt int
	// ActionsMerged counts actions that joined an already open main pass.
	ActionsMerged int
	// ActionsSkipped counts actions dropped for a missing camera or XR session.
	ActionsSkipped int
}

// Reset zeroes the counters.
func (s *Stats) Reset() {
	*s = Stats{}
}
