package forward

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/layer"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-frame/engine/scene"
)

// Batch is everything the preparer and executor need to know about one
// (camera, layer part, pass) draw list.
type Batch struct {
	Camera camera.Camera
	// Views are the camera's simultaneous views for the target; one normally, one per eye for XR.
	Views []camera.ViewData
	Pass  shader.Pass

	Settings scene.Settings
	// Lights are the enabled lights of the layer and LightHash their hash.
	Lights    light.Sets
	LightHash uint64
	// Clustered skips per-draw local light dispatch; cluster data is bound per render action.
	Clustered bool

	// VisibilityMask, when non-zero, skips draw calls whose mask does not intersect it.
	VisibilityMask uint32

	// Callbacks receive OnDrawCall; nil for none.
	Callbacks layer.Callbacks
}
