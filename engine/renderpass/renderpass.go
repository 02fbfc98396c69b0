// Package renderpass defines the unit of GPU work scheduled by the frame graph: a named pass
// with an optional render target, attachment clear/store operations and execution hooks.
package renderpass

import (
	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
)

// Kind classifies the work a pass performs.
type Kind int

const (
	// KindCustom passes are supplied by external subsystems and carry their own Executor.
	KindCustom Kind = iota
	// KindMain renders the geometry of a contiguous range of render actions.
	KindMain
	// KindPostprocess runs a camera's post-process hook.
	KindPostprocess
	// KindGrabCopy captures scene color or depth with a GPU copy instead of re-rendering.
	KindGrabCopy
	// KindGrabRender re-renders a range into the grab target, encoding depth as color.
	KindGrabRender
	// KindCookies renders cookie textures of visible local lights.
	KindCookies
	// KindLocalShadows renders shadow maps of every shadow-casting local light.
	KindLocalShadows
)

// Descriptor is the immutable description of the work a pass represents, interpreted by the
// pass Executor. For frame-graph passes it replaces closures capturing camera and range state.
type Descriptor struct {
	Kind Kind
	// CameraIndex is the composition camera index, or -1.
	CameraIndex int
	// Start and End delimit the half-open render-action range [Start, End).
	Start, End int
}

// Executor runs a pass. Before and After run outside the GPU pass scope; Execute runs inside it
// once the target is bound and cleared.
type Executor interface {
	Before(p *RenderPass)
	Execute(p *RenderPass)
	After(p *RenderPass)
}

// ExecutorFuncs adapts optional functions to the Executor interface. Nil members are no-ops.
type ExecutorFuncs struct {
	BeforeFunc  func(p *RenderPass)
	ExecuteFunc func(p *RenderPass)
	AfterFunc   func(p *RenderPass)
}

func (e ExecutorFuncs) Before(p *RenderPass) {
	if e.BeforeFunc != nil {
		e.BeforeFunc(p)
	}
}

func (e ExecutorFuncs) Execute(p *RenderPass) {
	if e.ExecuteFunc != nil {
		e.ExecuteFunc(p)
	}
}

func (e ExecutorFuncs) After(p *RenderPass) {
	if e.AfterFunc != nil {
		e.AfterFunc(p)
	}
}

// RenderPass is one unit of GPU work in the frame graph. Passes are rebuilt every frame and
// executed strictly in list order.
type RenderPass struct {
	// Name labels the pass in logs and debug markers.
	Name string
	// Target is the render target; nil renders to the backbuffer.
	Target device.RenderTarget
	// Width and Height are the pixel size of Target. Init copies them from Target; for the
	// backbuffer the builder sets them.
	Width, Height int
	// Samples is the MSAA sample count of Target.
	Samples SampleCount
	// ColorOps and DepthStencilOps describe attachment clears and stores.
	ColorOps        ColorAttachmentOps
	DepthStencilOps DepthStencilAttachmentOps
	// RequiresCubemaps marks passes that must refresh reflection cubemaps before rendering.
	RequiresCubemaps bool
	// FullSizeClearRect clears the whole target at init. Otherwise the executor clears only
	// the camera viewport.
	FullSizeClearRect bool
	// SkipInit leaves the target unbound and uncleared (copy-only passes).
	SkipInit bool
	// Descriptor describes the work for the Executor.
	Descriptor Descriptor
	// Executor runs the pass. A nil Executor makes the pass a no-op.
	Executor Executor
}

// Init configures the pass target and the clear flags of its attachments.
//
// Parameters:
//   - target: the render target, or nil for the backbuffer
//   - clear: the attachments to clear when the pass starts
//   - clearColor: the clear color used when clear includes device.ClearColor
func (p *RenderPass) Init(target device.RenderTarget, clear device.ClearFlags, clearColor [4]float64) {
	p.Target = target
	p.Width, p.Height = 0, 0
	p.Samples = MSAAOff
	if target != nil {
		p.Width, p.Height = target.Width(), target.Height()
		p.Samples = SampleCountOf(target.Samples())
	}
	p.ColorOps = ColorAttachmentOps{
		Clear: clear&device.ClearColor != 0,
		Store: true,
	}
	p.ColorOps.ClearValue.R, p.ColorOps.ClearValue.G, p.ColorOps.ClearValue.B, p.ColorOps.ClearValue.A =
		clearColor[0], clearColor[1], clearColor[2], clearColor[3]
	p.ColorOps.Resolve = p.Samples > MSAAOff
	p.DepthStencilOps = DepthStencilAttachmentOps{
		ClearDepth:        clear&device.ClearDepth != 0,
		ClearDepthValue:   1,
		ClearStencil:      clear&device.ClearStencil != 0,
		ClearStencilValue: 0,
		StoreDepth:        true,
	}
}

// ClearFlags returns the attachments this pass clears when it starts.
func (p *RenderPass) ClearFlags() device.ClearFlags {
	var f device.ClearFlags
	if p.ColorOps.Clear {
		f |= device.ClearColor
	}
	if p.DepthStencilOps.ClearDepth {
		f |= device.ClearDepth
	}
	if p.DepthStencilOps.ClearStencil {
		f |= device.ClearStencil
	}
	return f
}

// Render executes the pass: Before, then (unless SkipInit) target bind and full-size clear,
// Execute, and After.
//
// Parameters:
//   - ctx: the device context
func (p *RenderPass) Render(ctx *device.Context) {
	exec := p.Executor
	if exec == nil {
		exec = ExecutorFuncs{}
	}
	common.Logger().Debug("render pass", "name", p.Name, "kind", p.Descriptor.Kind, "start", p.Descriptor.Start, "end", p.Descriptor.End)

	exec.Before(p)
	ctx.StartRenderPass(p.Name)
	if !p.SkipInit {
		ctx.SetRenderTarget(p.Target)
		if flags := p.ClearFlags(); flags != 0 && p.FullSizeClearRect {
			common.Assert(p.Width > 0 && p.Height > 0, "full-size clear of pass %q without a target size", p.Name)
			full := common.Viewport{Width: float32(p.Width), Height: float32(p.Height)}
			ctx.SetViewport(full)
			ctx.SetScissor(full)
			ctx.Clear(device.ClearOptions{
				Flags:   flags,
				Color:   p.ColorOps.ClearValue,
				Depth:   p.DepthStencilOps.ClearDepthValue,
				Stencil: p.DepthStencilOps.ClearStencilValue,
			})
		}
	}
	exec.Execute(p)
	ctx.EndRenderPass(p.Name)
	exec.After(p)
}

// Reset returns the pass to its zero state for reuse from a Pool.
func (p *RenderPass) Reset() {
	*p = RenderPass{}
}

func (k Kind) String() string {
	switch k {
	case KindMain:
		return "main"
	case KindPostprocess:
		return "postprocess"
	case KindGrabCopy:
		return "grab-copy"
	case KindGrabRender:
		return "grab-render"
	case KindCookies:
		return "cookies"
	case KindLocalShadows:
		return "local-shadows"
	default:
		return "custom"
	}
}
