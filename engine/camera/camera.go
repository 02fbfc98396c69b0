package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection selects the camera projection model.
type Projection int

const (
	// ProjectionPerspective is a pinhole perspective projection.
	ProjectionPerspective Projection = iota
	// ProjectionOrthographic is a parallel projection sized by the ortho height.
	ProjectionOrthographic
)

type cameraImpl struct {
	mu *sync.Mutex

	name string

	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3

	projection  Projection
	fov         float32
	aspect      float32
	near        float32
	far         float32
	orthoHeight float32

	rect         common.Viewport
	flipFaces    bool
	renderTarget device.RenderTarget
	clearFlags   device.ClearFlags
	clearColor   wgpu.Color
	clearDepth   float32

	sceneColor bool
	sceneDepth bool

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
	viewInverse          mgl32.Mat4

	xr          XRSession
	callbacks   Callbacks
	postEffects PostEffects

	views []ViewData
}

// Camera defines the interface for a scene camera.
// The camera holds projection settings and a look-at placement, computes its view and
// projection matrices, and expands into one ViewData per simultaneous view each frame.
type Camera interface {
	// Name returns the camera name used in logs.
	//
	// Returns:
	//   - string: the camera name
	Name() string

	// Projection returns the projection model.
	//
	// Returns:
	//   - Projection: perspective or orthographic
	Projection() Projection

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Position returns the world-space eye position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the combined view-projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// ViewInverse returns the camera's world transform (the inverse view matrix).
	//
	// Returns:
	//   - mgl32.Mat4: the inverse view matrix
	ViewInverse() mgl32.Mat4

	// Rect returns the camera viewport as [0, 1] fractions of its render target.
	//
	// Returns:
	//   - common.Viewport: the normalized viewport
	Rect() common.Viewport

	// FlipFaces reports whether the camera mirrors geometry, inverting cull modes.
	//
	// Returns:
	//   - bool: true for a mirrored camera
	FlipFaces() bool

	// RenderTarget returns the target the camera renders into, nil for the backbuffer.
	//
	// Returns:
	//   - device.RenderTarget: the render target
	RenderTarget() device.RenderTarget

	// ClearFlags returns the buffers the camera clears before its first layer.
	//
	// Returns:
	//   - device.ClearFlags: the clear flags
	ClearFlags() device.ClearFlags

	// ClearColor returns the color the camera clears its target to.
	//
	// Returns:
	//   - wgpu.Color: the clear color
	ClearColor() wgpu.Color

	// ClearDepth returns the depth the camera clears its target to.
	//
	// Returns:
	//   - float32: the clear depth
	ClearDepth() float32

	// RequestsSceneColor reports whether the camera needs a copy of the scene color.
	RequestsSceneColor() bool

	// RequestsSceneDepth reports whether the camera needs a copy of the scene depth.
	RequestsSceneDepth() bool

	// XR returns the XR session driving the camera, or nil.
	XR() XRSession

	// Callbacks returns the camera's frame callbacks. Never nil.
	Callbacks() Callbacks

	// PostEffects returns the camera's post-process hook, or nil.
	PostEffects() PostEffects

	// Views expands the camera into one ViewData per simultaneous view for a target of
	// the given pixel size. A camera without an XR session yields a single view. The
	// returned slice is pooled and valid until the next call.
	//
	// Parameters:
	//   - width: target width in pixels
	//   - height: target height in pixels
	//
	// Returns:
	//   - []ViewData: the views
	Views(width, height int) []ViewData

	// SetLookAt places the camera at eye looking at target and recomputes matrices.
	//
	// Parameters:
	//   - eye: world-space eye position
	//   - target: world-space look-at point
	//   - up: the up vector
	SetLookAt(eye, target, up mgl32.Vec3)

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	SetFov(fov float32)

	// SetAspect sets the aspect ratio and recomputes matrices.
	SetAspect(aspect float32)

	// SetNear sets the near plane distance and recomputes matrices.
	SetNear(near float32)

	// SetFar sets the far plane distance and recomputes matrices.
	SetFar(far float32)

	// SetRect sets the normalized viewport.
	SetRect(rect common.Viewport)

	// SetXR attaches or detaches (nil) an XR session.
	SetXR(session XRSession)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new perspective Camera at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:          &sync.Mutex{},
		name:        "camera",
		target:      mgl32.Vec3{0, 0, -1},
		up:          mgl32.Vec3{0, 1, 0},
		fov:         45.0 * (math.Pi / 180.0),
		aspect:      1.0,
		near:        0.1,
		far:         1000.0,
		orthoHeight: 10,
		rect:        common.Viewport{Width: 1, Height: 1},
		clearFlags:  device.ClearColor | device.ClearDepth | device.ClearStencil,
		clearColor:  wgpu.Color{R: 0.25, G: 0.25, B: 0.25, A: 1},
		clearDepth:  1,
		callbacks:   NopCallbacks{},
		views:       make([]ViewData, 0, 2),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Name() string {
	return c.name
}

func (c *cameraImpl) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) ViewInverse() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewInverse
}

func (c *cameraImpl) Rect() common.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rect
}

func (c *cameraImpl) FlipFaces() bool {
	return c.flipFaces
}

func (c *cameraImpl) RenderTarget() device.RenderTarget {
	return c.renderTarget
}

func (c *cameraImpl) ClearFlags() device.ClearFlags {
	return c.clearFlags
}

func (c *cameraImpl) ClearColor() wgpu.Color {
	return c.clearColor
}

func (c *cameraImpl) ClearDepth() float32 {
	return c.clearDepth
}

func (c *cameraImpl) RequestsSceneColor() bool {
	return c.sceneColor
}

func (c *cameraImpl) RequestsSceneDepth() bool {
	return c.sceneDepth
}

func (c *cameraImpl) XR() XRSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.xr
}

func (c *cameraImpl) Callbacks() Callbacks {
	return c.callbacks
}

func (c *cameraImpl) PostEffects() PostEffects {
	return c.postEffects
}

func (c *cameraImpl) Views(width, height int) []ViewData {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.views = c.views[:0]
	if c.xr != nil && c.xr.Active() {
		for _, v := range c.xr.Views() {
			v.Viewport = v.Viewport.Scaled(width, height)
			c.views = append(c.views, v)
		}
		return c.views
	}

	c.views = append(c.views, ViewData{
		Viewport:       c.rect.Scaled(width, height),
		Projection:     c.projectionMatrix,
		View:           c.viewMatrix,
		ViewInverse:    c.viewInverse,
		ViewProjection: c.viewProjectionMatrix,
		Position:       c.eye,
	})
	return c.views
}

func (c *cameraImpl) SetLookAt(eye, target, up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eye = eye
	c.target = target
	c.up = up
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetRect(rect common.Viewport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rect = rect
}

func (c *cameraImpl) SetXR(session XRSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.xr = session
}

// updateMatrices recalculates the view, projection, view-projection and inverse view matrices.
// Caller must hold the mutex (or be the constructor).
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = mgl32.LookAtV(c.eye, c.target, c.up)
	c.viewInverse = c.viewMatrix.Inv()

	if c.projection == ProjectionOrthographic {
		c.projectionMatrix = common.Orthographic(c.orthoHeight, c.aspect, c.near, c.far)
	} else {
		c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
	}
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}

// Params packs the camera_params uniform: (1/far, far, near, orthographic flag).
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - []float32: four packed values
func Params(c Camera) []float32 {
	var ortho float32
	if c.Projection() == ProjectionOrthographic {
		ortho = 1
	}
	far := c.Far()
	return []float32{1 / far, far, c.Near(), ortho}
}

// PostEffects renders a camera's post-process chain into the target after its layers.
type PostEffects interface {
	// Source returns the intermediate target the camera's layers render into, which the
	// chain reads back. Nil renders the layers straight into the camera target.
	//
	// Returns:
	//   - device.RenderTarget: the source target, or nil
	Source() device.RenderTarget

	// Render runs the post-process chain.
	//
	// Parameters:
	//   - ctx: the device context
	//   - target: the camera's render target, nil for the backbuffer
	Render(ctx *device.Context, target device.RenderTarget)
}
