package framegraph

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/layer"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/forward"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/lighting"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderpass"
	"github.com/Carmen-Shannon/oxy-frame/engine/scene"
)

var fullRect = common.Viewport{Width: 1, Height: 1}

// frame is the per-frame input the pass executor reads while the graph runs.
type frame struct {
	comp     *layer.Composition
	actions  []layer.RenderAction
	settings scene.Settings

	skip       []bool
	layerFirst []bool
	layerLast  []bool
	// firstPass and lastPass are the passes whose hooks carry an action's camera callbacks.
	firstPass []*renderpass.RenderPass
	lastPass  []*renderpass.RenderPass

	locals   []light.Light
	clusters []layer.LightClusters
}

// Builder builds and owns the frame graph. Passes, descriptors and per-frame bookkeeping
// are reused across frames; the graph returned by Build is valid until the next Build.
type Builder struct {
	ctx        *device.Context
	preparer   *forward.Preparer
	executor   *forward.Executor
	dispatcher *lighting.Dispatcher

	shadows ShadowRenderer
	cookies CookieRenderer
	grabber SceneGrabber

	width, height int

	pool   renderpass.Pool
	passes []*renderpass.RenderPass
	exec   *passExecutor
	batch  forward.Batch
	stats  Stats
	frame  frame
}

// NewBuilder creates a Builder whose main passes draw through preparer and executor.
//
// Parameters:
//   - ctx: the device context passes render with
//   - preparer: the draw call preparer
//   - executor: the draw call executor
//   - dispatcher: the light uniform dispatcher shared with executor
//   - opts: variadic list of FrameGraphBuilderOption functions
//
// Returns:
//   - *Builder: the builder
func NewBuilder(ctx *device.Context, preparer *forward.Preparer, executor *forward.Executor, dispatcher *lighting.Dispatcher, opts ...FrameGraphBuilderOption) *Builder {
	b := &Builder{
		ctx:        ctx,
		preparer:   preparer,
		executor:   executor,
		dispatcher: dispatcher,
	}
	b.exec = &passExecutor{b: b}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetBackbufferSize sets the size used for actions rendering to the backbuffer.
func (b *Builder) SetBackbufferSize(width, height int) {
	b.width, b.height = width, height
}

// Stats returns the counters of the last Build.
func (b *Builder) Stats() Stats {
	return b.stats
}

// Build turns the frame's render actions into the ordered pass list. Consecutive actions
// sharing a target merge into one main pass unless a directional shadow or grab pass must
// be inserted between them. Post-process passes follow the main pass holding the camera's
// last action.
//
// Parameters:
//   - comp: the layer composition the actions index into
//   - actions: the render actions, usually comp.Update()
//   - settings: the scene settings of the frame
//
// Returns:
//   - []*renderpass.RenderPass: the passes in submission order
func (b *Builder) Build(comp *layer.Composition, actions []layer.RenderAction, settings scene.Settings) []*renderpass.RenderPass {
	b.pool.Reset()
	b.passes = b.passes[:0]
	b.stats.Reset()
	b.prepareFrame(comp, actions, settings)

	if settings.ClusteredLighting {
		b.addClusteredPasses()
	} else if settings.ShadowsEnabled && b.shadows != nil {
		for _, l := range b.frame.locals {
			if l.CastsShadows() {
				b.passes = b.shadows.LocalPasses(b.passes, l)
			}
		}
	}

	shadowsOn := settings.ShadowsEnabled && b.shadows != nil
	start := -1
	for i := range actions {
		if b.frame.skip[i] {
			continue
		}
		a := &actions[i]
		cam := comp.Camera(a.CameraIndex)
		grab := b.isGrab(a, cam)

		if start < 0 {
			start = i
			// an action needing directional shadows always opens a range
			if shadowsOn && a.HasDirectionalShadowLights() {
				b.passes = b.shadows.DirectionalPasses(b.passes, cam, a.DirectionalLights)
			}
		} else {
			b.stats.ActionsMerged++
		}

		flush := grab
		if next := b.nextAction(i); next < 0 {
			flush = true
		} else if !flush {
			n := &actions[next]
			flush = n.RenderTarget != a.RenderTarget ||
				(shadowsOn && n.HasDirectionalShadowLights()) ||
				b.isGrab(n, comp.Camera(n.CameraIndex))
		}
		if !flush {
			continue
		}

		if grab {
			b.addGrabPasses(i, cam)
		} else {
			b.addMainPass(start, i+1)
		}
		for j := start; j <= i; j++ {
			if !b.frame.skip[j] && actions[j].TriggerPostprocess && comp.Camera(actions[j].CameraIndex).PostEffects() != nil {
				b.addPostprocessPass(j)
			}
		}
		start = -1
	}

	b.stats.PassesBuilt = len(b.passes)
	return b.passes
}

// Run renders every pass of the graph in order.
//
// Parameters:
//   - passes: the graph returned by Build
func (b *Builder) Run(passes []*renderpass.RenderPass) {
	for _, p := range passes {
		p.Render(b.ctx)
	}
}

// prepareFrame resets the per-frame bookkeeping and marks the actions to skip.
func (b *Builder) prepareFrame(comp *layer.Composition, actions []layer.RenderAction, settings scene.Settings) {
	f := &b.frame
	f.comp = comp
	f.actions = actions
	f.settings = settings
	f.skip = resize(f.skip, len(actions))
	f.layerFirst = resize(f.layerFirst, len(actions))
	f.layerLast = resize(f.layerLast, len(actions))
	f.firstPass = resize(f.firstPass, len(actions))
	f.lastPass = resize(f.lastPass, len(actions))
	f.locals = f.locals[:0]
	f.clusters = f.clusters[:0]

	log := common.Logger()
	for i := range actions {
		a := &actions[i]
		cam := comp.Camera(a.CameraIndex)
		l := comp.Layer(a.LayerIndex)
		switch {
		case cam == nil:
			log.Warn("render action skipped: camera missing", "action", i, "camera", a.CameraIndex)
		case l == nil:
			log.Warn("render action skipped: layer missing", "action", i, "layer", a.LayerIndex)
		case cam.XR() != nil && !cam.XR().Active():
			log.Warn("render action skipped: XR session inactive", "action", i, "camera", cam.Name())
		default:
			continue
		}
		f.skip[i] = true
		b.stats.ActionsSkipped++
	}

	for i := range actions {
		if f.skip[i] {
			continue
		}
		a := &actions[i]
		f.layerFirst[i] = !slices.ContainsFunc(actions[:i], func(o layer.RenderAction) bool {
			return sameLayerCamera(&o, a)
		})
		f.layerLast[i] = !slices.ContainsFunc(actions[i+1:], func(o layer.RenderAction) bool {
			return sameLayerCamera(&o, a)
		})

		if a.LightClusters != nil && !slices.Contains(f.clusters, a.LightClusters) {
			f.clusters = append(f.clusters, a.LightClusters)
		}
		if !f.layerFirst[i] {
			continue
		}
		for _, l := range comp.Layer(a.LayerIndex).Lights() {
			if l == nil || !l.Enabled() || !l.Visible() || l.Type() == light.LightTypeDirectional {
				continue
			}
			if !slices.Contains(f.locals, l) {
				f.locals = append(f.locals, l)
			}
		}
	}
}

// sameLayerCamera reports whether two actions render the same layer for the same camera.
func sameLayerCamera(a, o *layer.RenderAction) bool {
	return a.LayerIndex == o.LayerIndex && a.CameraIndex == o.CameraIndex
}

func resize[T any](s []T, n int) []T {
	s = slices.Grow(s[:0], n)[:n]
	clear(s)
	return s
}

// nextAction returns the index of the next action that is not skipped, or -1.
func (b *Builder) nextAction(i int) int {
	for j := i + 1; j < len(b.frame.actions); j++ {
		if !b.frame.skip[j] {
			return j
		}
	}
	return -1
}

// isGrab reports whether the action captures the scene for its camera.
func (b *Builder) isGrab(a *layer.RenderAction, cam camera.Camera) bool {
	if b.grabber == nil || cam == nil {
		return false
	}
	l := b.frame.comp.Layer(a.LayerIndex)
	return l != nil && l.Kind() == layer.KindDepth && (cam.RequestsSceneColor() || cam.RequestsSceneDepth())
}

func (b *Builder) newPass(name string, d renderpass.Descriptor) *renderpass.RenderPass {
	rp := b.pool.Get()
	rp.Name = name
	rp.Descriptor = d
	rp.Executor = b.exec
	b.passes = append(b.passes, rp)
	return rp
}

// addClusteredPasses adds the cookie pass and the shared local shadow pass, whose After
// hook updates the light clusters.
func (b *Builder) addClusteredPasses() {
	cookies := b.newPass("cookies", renderpass.Descriptor{Kind: renderpass.KindCookies, CameraIndex: -1})
	cookies.SkipInit = true
	shadows := b.newPass("local-shadows", renderpass.Descriptor{Kind: renderpass.KindLocalShadows, CameraIndex: -1})
	shadows.SkipInit = true
}

// addMainPass adds the pass rendering actions [start, end). Only the first action's clear
// flags are honored.
func (b *Builder) addMainPass(start, end int) {
	a := &b.frame.actions[start]
	cam := b.frame.comp.Camera(a.CameraIndex)
	rp := b.newPass(cam.Name()+"/"+b.frame.comp.Layer(a.LayerIndex).Name(), renderpass.Descriptor{
		Kind:        renderpass.KindMain,
		CameraIndex: a.CameraIndex,
		Start:       start,
		End:         end,
	})
	c := cam.ClearColor()
	rp.Init(a.RenderTarget, a.ClearFlags, [4]float64{c.R, c.G, c.B, c.A})
	rp.Width, rp.Height = b.targetSize(a.RenderTarget)
	rp.DepthStencilOps.ClearDepthValue = cam.ClearDepth()
	rp.FullSizeClearRect = cam.Rect() == fullRect
	for i := start; i < end; i++ {
		b.frame.firstPass[i] = rp
		b.frame.lastPass[i] = rp
	}
}

// addGrabPasses adds the passes capturing scene color and depth for the grab action i:
// a depth re-render when the grabber needs one, and a copy for everything else.
func (b *Builder) addGrabPasses(i int, cam camera.Camera) {
	d := renderpass.Descriptor{CameraIndex: b.frame.actions[i].CameraIndex, Start: i, End: i + 1}
	copyDepth := cam.RequestsSceneDepth()

	if copyDepth && b.grabber.NeedsDepthRerender() {
		copyDepth = false
		d.Kind = renderpass.KindGrabRender
		rp := b.newPass(cam.Name()+"/grab-depth", d)
		rp.Init(b.grabber.DepthTarget(cam), device.ClearColor|device.ClearDepth, DepthClearColor)
		rp.FullSizeClearRect = true
		b.frame.firstPass[i] = rp
		b.frame.lastPass[i] = rp
	}
	if cam.RequestsSceneColor() || copyDepth {
		d.Kind = renderpass.KindGrabCopy
		rp := b.newPass(cam.Name()+"/grab-copy", d)
		rp.SkipInit = true
		if b.frame.firstPass[i] == nil {
			b.frame.firstPass[i] = rp
		}
		b.frame.lastPass[i] = rp
	}
}

// addPostprocessPass adds the pass running the post effects of action i's camera.
func (b *Builder) addPostprocessPass(i int) {
	a := &b.frame.actions[i]
	cam := b.frame.comp.Camera(a.CameraIndex)
	rp := b.newPass(cam.Name()+"/postprocess", renderpass.Descriptor{
		Kind:        renderpass.KindPostprocess,
		CameraIndex: a.CameraIndex,
		Start:       i,
		End:         i,
	})
	rp.SkipInit = true
}
