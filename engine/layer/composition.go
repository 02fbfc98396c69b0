package layer

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/keylist"
	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
)

// sublayer is one part of a layer at its position in the render order.
type sublayer struct {
	layer       int
	transparent bool
}

// cameraEntry is a camera and the names of the layers it renders.
type cameraEntry struct {
	cam      camera.Camera
	layers   []string
	clusters LightClusters
}

// Composition orders layers and cameras and derives the frame's RenderAction list. Layers
// are looked up by name; their opaque and transparent parts may be placed independently.
type Composition struct {
	layers  *keylist.List[string, Layer]
	order   []sublayer
	cameras []cameraEntry
	actions []RenderAction
}

// NewComposition creates an empty Composition.
//
// Returns:
//   - *Composition: the composition
func NewComposition() *Composition {
	return &Composition{layers: keylist.New[string, Layer]()}
}

// AddLayer appends both parts of a layer, opaque first.
//
// Parameters:
//   - l: the layer
//
// Returns:
//   - error: an error if a different layer with the same name exists
func (c *Composition) AddLayer(l Layer) error {
	if err := c.AddSublayer(l, false); err != nil {
		return err
	}
	return c.AddSublayer(l, true)
}

// AddSublayer appends one part of a layer to the render order.
//
// Parameters:
//   - l: the layer
//   - transparent: true for the transparent part
//
// Returns:
//   - error: an error if a different layer with the same name exists
func (c *Composition) AddSublayer(l Layer, transparent bool) error {
	idx := c.layers.IndexByKey(l.Name())
	if idx < 0 {
		if err := c.layers.Add(l.Name(), l); err != nil {
			return err
		}
		idx = c.layers.Len() - 1
	} else if c.layers.Values[idx] != l {
		return fmt.Errorf("layer name %q already used by another layer", l.Name())
	}
	c.order = append(c.order, sublayer{layer: idx, transparent: transparent})
	return nil
}

// Layer returns the layer at index i.
func (c *Composition) Layer(i int) Layer {
	if i < 0 || i >= c.layers.Len() {
		return nil
	}
	return c.layers.Values[i]
}

// LayerByName returns the named layer.
func (c *Composition) LayerByName(name string) (Layer, bool) {
	return c.layers.AtTry(name)
}

// AddCamera appends a camera rendering the named layers.
//
// Parameters:
//   - cam: the camera
//   - layers: the names of the layers it renders
//
// Returns:
//   - int: the camera index
func (c *Composition) AddCamera(cam camera.Camera, layers ...string) int {
	c.cameras = append(c.cameras, cameraEntry{cam: cam, layers: layers})
	return len(c.cameras) - 1
}

// RemoveCamera drops a camera. Indexes of later cameras shift down.
func (c *Composition) RemoveCamera(cam camera.Camera) bool {
	i := slices.IndexFunc(c.cameras, func(e cameraEntry) bool { return e.cam == cam })
	if i < 0 {
		return false
	}
	c.cameras = slices.Delete(c.cameras, i, i+1)
	return true
}

// SetClusters sets the clustered lighting collaborator of a camera.
func (c *Composition) SetClusters(cameraIndex int, clusters LightClusters) {
	if cameraIndex >= 0 && cameraIndex < len(c.cameras) {
		c.cameras[cameraIndex].clusters = clusters
	}
}

// Camera returns the camera at index i, or nil.
func (c *Composition) Camera(i int) camera.Camera {
	if i < 0 || i >= len(c.cameras) {
		return nil
	}
	return c.cameras[i].cam
}

// Cameras returns the number of cameras.
func (c *Composition) Cameras() int {
	return len(c.cameras)
}

// Update rebuilds the RenderAction list: for each camera in order, one action per enabled
// layer part it renders, in layer order. A camera's first action carries its clears and
// directional shadow lights; its last triggers post effects. Cameras whose post effects
// supply a source target render their layers into it.
//
// Returns:
//   - []RenderAction: the actions, valid until the next Update
func (c *Composition) Update() []RenderAction {
	c.actions = c.actions[:0]
	for ci, entry := range c.cameras {
		start := len(c.actions)
		target := entry.cam.RenderTarget()
		if fx := entry.cam.PostEffects(); fx != nil && fx.Source() != nil {
			target = fx.Source()
		}
		for _, sl := range c.order {
			l := c.layers.Values[sl.layer]
			if !l.Enabled() || !slices.Contains(entry.layers, l.Name()) {
				continue
			}
			flags := l.ClearFlags()
			if sl.transparent {
				flags = 0
			}
			c.actions = append(c.actions, RenderAction{
				LayerIndex:    sl.layer,
				CameraIndex:   ci,
				Transparent:   sl.transparent,
				RenderTarget:  target,
				ClearFlags:    flags,
				LightClusters: entry.clusters,
			})
		}
		if len(c.actions) == start {
			continue
		}

		first := &c.actions[start]
		first.FirstCameraUse = true
		first.ClearFlags |= entry.cam.ClearFlags()
		first.DirectionalLights = c.shadowDirectionals(entry)

		last := &c.actions[len(c.actions)-1]
		last.LastCameraUse = true
		last.TriggerPostprocess = entry.cam.PostEffects() != nil
	}
	return c.actions
}

// Actions returns the list built by the last Update.
func (c *Composition) Actions() []RenderAction {
	return c.actions
}

// shadowDirectionals collects the enabled shadow casting directional lights of the layers
// a camera renders, without duplicates.
func (c *Composition) shadowDirectionals(entry cameraEntry) []light.Light {
	var out []light.Light
	for _, name := range entry.layers {
		l, ok := c.layers.AtTry(name)
		if !ok || !l.Enabled() {
			continue
		}
		for _, lt := range l.Lights() {
			if lt.Type() == light.LightTypeDirectional && lt.Enabled() && lt.CastsShadows() && !slices.Contains(out, lt) {
				out = append(out, lt)
			}
		}
	}
	return out
}
