package framegraph

import (
	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/layer"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderpass"
)

// passExecutor runs every pass the Builder creates by interpreting its Descriptor against
// the current frame.
type passExecutor struct {
	b *Builder
}

var _ renderpass.Executor = &passExecutor{}

func (e *passExecutor) Before(p *renderpass.RenderPass) {
	e.b.cameraCallbacks(p, true)
}

func (e *passExecutor) Execute(p *renderpass.RenderPass) {
	b := e.b
	f := &b.frame
	switch p.Descriptor.Kind {
	case renderpass.KindMain:
		b.renderRange(p)
	case renderpass.KindGrabRender:
		b.renderDepth(p)
	case renderpass.KindGrabCopy:
		b.copyGrab(p)
	case renderpass.KindPostprocess:
		cam := f.comp.Camera(p.Descriptor.CameraIndex)
		cam.PostEffects().Render(b.ctx, cam.RenderTarget())
	case renderpass.KindCookies:
		if f.settings.CookiesEnabled && b.cookies != nil {
			b.cookies.RenderCookies(b.ctx, f.locals)
		}
	case renderpass.KindLocalShadows:
		if f.settings.ShadowsEnabled && b.shadows != nil {
			b.shadows.RenderLocal(b.ctx, f.locals)
		}
	}
}

func (e *passExecutor) After(p *renderpass.RenderPass) {
	b := e.b
	if p.Descriptor.Kind == renderpass.KindLocalShadows {
		for _, c := range b.frame.clusters {
			c.Update(b.frame.locals)
		}
		return
	}
	b.cameraCallbacks(p, false)
}

// cameraCallbacks fires the pre or post render callback of every camera whose first or
// last use of the frame is in p.
func (b *Builder) cameraCallbacks(p *renderpass.RenderPass, pre bool) {
	f := &b.frame
	switch p.Descriptor.Kind {
	case renderpass.KindMain, renderpass.KindGrabRender, renderpass.KindGrabCopy:
	default:
		return
	}
	for i := p.Descriptor.Start; i < p.Descriptor.End; i++ {
		if f.skip[i] {
			continue
		}
		a := &f.actions[i]
		switch {
		case pre && a.FirstCameraUse && f.firstPass[i] == p:
			f.comp.Camera(a.CameraIndex).Callbacks().OnPreRender()
		case !pre && a.LastCameraUse && f.lastPass[i] == p:
			f.comp.Camera(a.CameraIndex).Callbacks().OnPostRender()
		}
	}
}

// targetSize returns the pixel size of rt, the backbuffer when nil.
func (b *Builder) targetSize(rt device.RenderTarget) (int, int) {
	if rt == nil {
		return b.width, b.height
	}
	return rt.Width(), rt.Height()
}

// renderRange draws the actions of a main pass with their layer callbacks.
func (b *Builder) renderRange(p *renderpass.RenderPass) {
	f := &b.frame
	b.dispatcher.DispatchGlobal(f.settings)
	w, h := b.targetSize(p.Target)
	pending := p.ClearFlags()
	if p.FullSizeClearRect {
		pending = 0
	}

	for i := p.Descriptor.Start; i < p.Descriptor.End; i++ {
		if f.skip[i] {
			continue
		}
		a := &f.actions[i]
		cam := f.comp.Camera(a.CameraIndex)
		l := f.comp.Layer(a.LayerIndex)

		// the first action clears inside its camera rect; later ones never clear
		if rect := cam.Rect().Scaled(w, h); pending != 0 && !rect.Empty() {
			b.ctx.SetViewport(rect)
			b.ctx.SetScissor(rect)
			b.ctx.Clear(device.ClearOptions{
				Flags:   pending,
				Color:   p.ColorOps.ClearValue,
				Depth:   p.DepthStencilOps.ClearDepthValue,
				Stencil: p.DepthStencilOps.ClearStencilValue,
			})
			pending = 0
		}

		if a.LightClusters != nil && f.settings.ClusteredLighting {
			a.LightClusters.Activate(b.ctx)
		}

		cb := l.Callbacks()
		cameraPass := a.CameraIndex
		if f.layerFirst[i] {
			cb.OnPreRender(cameraPass)
		}
		if a.Transparent {
			cb.OnPreRenderTransparent(cameraPass)
		} else {
			cb.OnPreRenderOpaque(cameraPass)
		}

		b.draw(cam, l, a.Transparent, l.ShaderPass(), w, h)

		if a.Transparent {
			cb.OnPostRenderTransparent(cameraPass)
		} else {
			cb.OnPostRenderOpaque(cameraPass)
		}
		if f.layerLast[i] {
			cb.OnPostRender(cameraPass)
		}
	}
}

// renderDepth re-renders the opaque world layers the camera drew before the grab action
// with the depth pass.
func (b *Builder) renderDepth(p *renderpass.RenderPass) {
	f := &b.frame
	grab := &f.actions[p.Descriptor.Start]
	cam := f.comp.Camera(grab.CameraIndex)
	w, h := b.targetSize(p.Target)
	for i := range p.Descriptor.Start {
		a := &f.actions[i]
		if f.skip[i] || a.CameraIndex != grab.CameraIndex || a.Transparent {
			continue
		}
		if l := f.comp.Layer(a.LayerIndex); l.Kind() == layer.KindWorld {
			b.draw(cam, l, false, shader.PassDepth, w, h)
		}
	}
}

// draw prepares and executes the visible list of one layer part.
func (b *Builder) draw(cam camera.Camera, l layer.Layer, transparent bool, pass shader.Pass, w, h int) {
	lights := l.Lights()
	b.batch.Camera = cam
	b.batch.Views = cam.Views(w, h)
	b.batch.Pass = pass
	b.batch.Settings = b.frame.settings
	b.batch.Lights = light.Split(lights)
	b.batch.LightHash = l.LightHash()
	b.batch.Clustered = b.frame.settings.ClusteredLighting
	b.batch.Callbacks = l.Callbacks()

	list := b.preparer.Prepare(l.Visible(cam, transparent), &b.batch)
	b.executor.Execute(b.ctx, list, &b.batch)
}

// copyGrab copies the camera target into the grab targets.
func (b *Builder) copyGrab(p *renderpass.RenderPass) {
	cam := b.frame.comp.Camera(p.Descriptor.CameraIndex)
	src := cam.RenderTarget()
	log := common.Logger()
	if cam.RequestsSceneColor() && !b.ctx.CopyRenderTarget(src, b.grabber.ColorTarget(cam), true, false) {
		log.Warn("scene color grab failed", "camera", cam.Name())
	}
	if cam.RequestsSceneDepth() && !b.grabber.NeedsDepthRerender() &&
		!b.ctx.CopyRenderTarget(src, b.grabber.DepthTarget(cam), false, true) {
		log.Warn("scene depth grab failed", "camera", cam.Name())
	}
}
