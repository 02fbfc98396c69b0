package layer

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/drawcall"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
)

// layerIDs generates unique layer identifiers.
var layerIDs atomic.Uint64

// Kind selects how the frame graph treats a layer.
type Kind int

const (
	// KindWorld is a regular layer of draw calls.
	KindWorld Kind = iota
	// KindDepth is the scene capture layer: when a camera requests the scene color or depth
	// map, the frame graph grabs it at this layer's position.
	KindDepth
)

// visibleLists holds the pre-culled, sorted draw calls of one camera.
type visibleLists struct {
	opaque      []*drawcall.DrawCall
	transparent []*drawcall.DrawCall
}

type layerImpl struct {
	id         uint64
	name       string
	kind       Kind
	enabled    bool
	pass       shader.Pass
	clearFlags device.ClearFlags
	callbacks  Callbacks

	lights    []light.Light
	lightHash uint64

	visible map[camera.Camera]*visibleLists
}

// Layer is an ordered group of draw calls rendered by one or more cameras. Culling and
// sorting happen outside the frame pipeline: the layer receives per-camera visible lists
// already split into opaque and transparent parts.
type Layer interface {
	// ID returns the unique layer identifier.
	ID() uint64

	// Name returns the layer name, unique within a Composition.
	Name() string

	// Kind returns how the frame graph treats the layer.
	Kind() Kind

	// Enabled reports whether the layer renders.
	Enabled() bool

	// SetEnabled enables or disables the layer.
	SetEnabled(enabled bool)

	// ShaderPass returns the pass the layer's draw calls render with.
	ShaderPass() shader.Pass

	// ClearFlags returns the buffers cleared before the layer renders, in addition to the
	// camera's clears on its first layer.
	ClearFlags() device.ClearFlags

	// Callbacks returns the layer's frame callbacks. Never nil.
	Callbacks() Callbacks

	// Lights returns the lights affecting the layer.
	//
	// Returns:
	//   - []light.Light: the lights
	Lights() []light.Light

	// LightHash returns the hash of Lights, recomputed when the list changes.
	//
	// Returns:
	//   - uint64: the light hash
	LightHash() uint64

	// SetLights replaces the layer's lights.
	//
	// Parameters:
	//   - lights: the lights
	SetLights(lights []light.Light)

	// Visible returns the culled, sorted draw calls of one camera.
	//
	// Parameters:
	//   - cam: the camera
	//   - transparent: true for the transparent part
	//
	// Returns:
	//   - []*drawcall.DrawCall: the draw calls in render order
	Visible(cam camera.Camera, transparent bool) []*drawcall.DrawCall

	// SetVisible stores the culled, sorted draw calls of one camera.
	//
	// Parameters:
	//   - cam: the camera
	//   - transparent: true for the transparent part
	//   - list: the draw calls in render order
	SetVisible(cam camera.Camera, transparent bool, list []*drawcall.DrawCall)
}

var _ Layer = &layerImpl{}

// NewLayer creates an enabled world Layer rendering with the forward pass.
//
// Parameters:
//   - name: the layer name
//   - opts: variadic list of LayerBuilderOption functions
//
// Returns:
//   - Layer: the new layer
func NewLayer(name string, opts ...LayerBuilderOption) Layer {
	l := &layerImpl{
		id:        layerIDs.Add(1),
		name:      name,
		enabled:   true,
		pass:      shader.PassForward,
		callbacks: NopCallbacks{},
		visible:   make(map[camera.Camera]*visibleLists),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lightHash = light.Hash(l.lights)
	return l
}

func (l *layerImpl) ID() uint64 {
	return l.id
}

func (l *layerImpl) Name() string {
	return l.name
}

func (l *layerImpl) Kind() Kind {
	return l.kind
}

func (l *layerImpl) Enabled() bool {
	return l.enabled
}

func (l *layerImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *layerImpl) ShaderPass() shader.Pass {
	return l.pass
}

func (l *layerImpl) ClearFlags() device.ClearFlags {
	return l.clearFlags
}

func (l *layerImpl) Callbacks() Callbacks {
	return l.callbacks
}

func (l *layerImpl) Lights() []light.Light {
	return l.lights
}

func (l *layerImpl) LightHash() uint64 {
	return l.lightHash
}

func (l *layerImpl) SetLights(lights []light.Light) {
	l.lights = lights
	l.lightHash = light.Hash(lights)
}

func (l *layerImpl) Visible(cam camera.Camera, transparent bool) []*drawcall.DrawCall {
	v, ok := l.visible[cam]
	if !ok {
		return nil
	}
	if transparent {
		return v.transparent
	}
	return v.opaque
}

func (l *layerImpl) SetVisible(cam camera.Camera, transparent bool, list []*drawcall.DrawCall) {
	v, ok := l.visible[cam]
	if !ok {
		v = &visibleLists{}
		l.visible[cam] = v
	}
	if transparent {
		v.transparent = list
	} else {
		v.opaque = list
	}
}
