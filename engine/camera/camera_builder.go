package camera

import (
	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraBuilderOption is a function that configures a camera during construction.
type CameraBuilderOption func(*cameraImpl)

// WithName sets the camera name used in logs.
//
// Parameters:
//   - name: the camera name
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's name
func WithName(name string) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.name = name
	}
}

// WithLookAt places the camera.
//
// Parameters:
//   - eye: world-space eye position
//   - target: world-space look-at point
//   - up: the up vector
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's placement
func WithLookAt(eye, target, up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.eye = eye
		c.target = target
		c.up = up
	}
}

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the clip planes
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}

// WithOrthographic switches the camera to an orthographic projection.
//
// Parameters:
//   - halfHeight: half the vertical extent of the view volume
//
// Returns:
//   - CameraBuilderOption: a function that sets the orthographic projection
func WithOrthographic(halfHeight float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = ProjectionOrthographic
		c.orthoHeight = halfHeight
	}
}

// WithRect sets the camera viewport as [0, 1] fractions of its render target.
//
// Parameters:
//   - rect: the normalized viewport
//
// Returns:
//   - CameraBuilderOption: a function that sets the viewport
func WithRect(rect common.Viewport) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rect = rect
	}
}

// WithFlipFaces marks the camera as mirrored, inverting cull modes of everything it draws.
//
// Parameters:
//   - flip: true for a mirrored camera
//
// Returns:
//   - CameraBuilderOption: a function that sets the flip flag
func WithFlipFaces(flip bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.flipFaces = flip
	}
}

// WithRenderTarget sets the target the camera renders into.
//
// Parameters:
//   - rt: the render target, nil for the backbuffer
//
// Returns:
//   - CameraBuilderOption: a function that sets the render target
func WithRenderTarget(rt device.RenderTarget) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.renderTarget = rt
	}
}

// WithClearFlags sets the buffers the camera clears before its first layer.
//
// Parameters:
//   - flags: the clear flags
//
// Returns:
//   - CameraBuilderOption: a function that sets the clear flags
func WithClearFlags(flags device.ClearFlags) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.clearFlags = flags
	}
}

// WithClearColor sets the color the camera clears its target to.
//
// Parameters:
//   - color: the clear color
//
// Returns:
//   - CameraBuilderOption: a function that sets the clear color
func WithClearColor(color wgpu.Color) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.clearColor = color
	}
}

// WithSceneGrab requests copies of the scene color and/or depth for depth/capture layers.
//
// Parameters:
//   - color: request the scene color map
//   - depth: request the scene depth map
//
// Returns:
//   - CameraBuilderOption: a function that sets the scene grab requests
func WithSceneGrab(color, depth bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.sceneColor = color
		c.sceneDepth = depth
	}
}

// WithXR attaches an XR session. While the session is active the camera renders one view
// per eye.
//
// Parameters:
//   - session: the XR session
//
// Returns:
//   - CameraBuilderOption: a function that sets the XR session
func WithXR(session XRSession) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.xr = session
	}
}

// WithCallbacks sets the camera's frame callbacks.
//
// Parameters:
//   - callbacks: the callbacks, nil resets to no-ops
//
// Returns:
//   - CameraBuilderOption: a function that sets the callbacks
func WithCallbacks(callbacks Callbacks) CameraBuilderOption {
	return func(c *cameraImpl) {
		if callbacks == nil {
			callbacks = NopCallbacks{}
		}
		c.callbacks = callbacks
	}
}

// WithPostEffects sets the camera's post-process hook.
//
// Parameters:
//   - effects: the post-process hook
//
// Returns:
//   - CameraBuilderOption: a function that sets the post-process hook
func WithPostEffects(effects PostEffects) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.postEffects = effects
	}
}
