package layer

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
)

// LightClusters is the clustered lighting collaborator of one camera: it bins local lights
// into space cells and binds the result for shading.
type LightClusters interface {
	// Update assigns the local lights to clusters. Called once per frame after local
	// shadows are rendered.
	Update(lights []light.Light)

	// Activate binds the cluster data for the draw calls of one render action.
	Activate(ctx *device.Context)
}

// RenderAction is one (layer part, camera) unit of frame work.
type RenderAction struct {
	// LayerIndex indexes Composition.Layer.
	LayerIndex int
	// CameraIndex indexes Composition.Camera; negative when the camera is gone.
	CameraIndex int
	// Transparent selects the transparent part of the layer.
	Transparent bool
	// RenderTarget is the target rendered into, nil for the backbuffer.
	RenderTarget device.RenderTarget
	// ClearFlags are the buffers cleared before the action renders.
	ClearFlags device.ClearFlags
	// FirstCameraUse and LastCameraUse mark the camera's first and last action of the frame.
	FirstCameraUse bool
	LastCameraUse  bool
	// TriggerPostprocess runs the camera's post effects after this action.
	TriggerPostprocess bool
	// DirectionalLights are the shadow casting directional lights whose shadow maps the
	// camera needs, set on its first action.
	DirectionalLights []light.Light
	// LightClusters is set when lighting is clustered.
	LightClusters LightClusters
}

// HasDirectionalShadowLights reports whether directional shadows must render before the action.
func (a *RenderAction) HasDirectionalShadowLights() bool {
	return len(a.DirectionalLights) > 0
}
