package forward

import (
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/drawcall"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/lighting"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/pipeline"
)

// viewUniforms are the per-view camera uniform handles.
type viewUniforms struct {
	view           device.Uniform
	projection     device.Uniform
	viewInverse    device.Uniform
	viewProjection device.Uniform
	position       device.Uniform
	params         device.Uniform
}

// Executor submits a PreparedList: it binds shaders and material state at material
// boundaries, dispatches lights at light mask boundaries, and draws each mesh record once
// per view.
type Executor struct {
	dispatcher      *lighting.Dispatcher
	defaultMaterial material.Material
	stats           *Stats

	camera      viewUniforms
	model       device.Uniform
	normal      device.Uniform
	overrideBuf []string
}

// NewExecutor creates an Executor resolving its uniforms from dev.
//
// Parameters:
//   - dev: the device
//   - dispatcher: the light uniform dispatcher
//   - opts: variadic list of ExecutorBuilderOption functions
//
// Returns:
//   - *Executor: the executor
func NewExecutor(dev device.Device, dispatcher *lighting.Dispatcher, opts ...ExecutorBuilderOption) *Executor {
	e := &Executor{
		dispatcher: dispatcher,
		camera: viewUniforms{
			view:           dev.Resolve("matrix_view"),
			projection:     dev.Resolve("matrix_projection"),
			viewInverse:    dev.Resolve("matrix_viewInverse"),
			viewProjection: dev.Resolve("matrix_viewProjection"),
			position:       dev.Resolve("view_position"),
			params:         dev.Resolve("camera_params"),
		},
		model:  dev.Resolve("matrix_model"),
		normal: dev.Resolve("matrix_normal"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.defaultMaterial == nil {
		e.defaultMaterial = material.NewMaterial(material.WithName("default"))
	}
	if e.stats == nil {
		e.stats = &Stats{}
	}
	return e
}

// Stats returns the counters the executor adds to.
func (e *Executor) Stats() *Stats {
	return e.stats
}

// SetCamera writes the camera uniforms of one view.
//
// Parameters:
//   - cam: the camera, for its clip parameters
//   - v: the view
func (e *Executor) SetCamera(cam camera.Camera, v *camera.ViewData) {
	e.camera.view.SetValue(v.View)
	e.camera.projection.SetValue(v.Projection)
	e.camera.viewInverse.SetValue(v.ViewInverse)
	e.camera.viewProjection.SetValue(v.ViewProjection)
	e.camera.position.SetValue(v.Position)
	if cam != nil {
		e.camera.params.SetValue(camera.Params(cam))
	}
}

// Execute submits the list. A record whose shader fails to bind aborts the rest of the
// list; the failure is logged and Execute returns normally.
//
// Parameters:
//   - ctx: the device context
//   - list: the prepared list
//   - b: the batch the list was prepared for
//
// Returns:
//   - bool: false if the list was cut short by a shader failure
func (e *Executor) Execute(ctx *device.Context, list *drawcall.PreparedList, b *Batch) bool {
	if len(b.Views) == 0 {
		return true
	}
	multiView := len(b.Views) > 1
	if !multiView {
		e.SetCamera(b.Camera, &b.Views[0])
	}
	flip := b.Camera != nil && b.Camera.FlipFaces()

	for i, dc := range list.Records {
		if dc.IsCommand() {
			dc.Command(ctx)
			e.stats.Commands++
			continue
		}

		mat := dc.Material
		if mat == nil {
			mat = e.defaultMaterial
		}

		if list.IsNewMaterial[i] {
			s := dc.Shader(b.Pass)
			common.Assert(s != nil, "draw call %q has no shader for pass %s", dc.Name, b.Pass)
			if s != nil {
				if !ctx.SetShader(s) {
					common.Logger().Error("shader bind failed, skipping remaining draw calls of the batch",
						"shader", s.Label(),
						"material", mat.Name(),
						"pass", b.Pass.String(),
						"defines", fmt.Sprintf("%#x", s.Definition().Defines),
						"error", s.Err(),
					)
					e.stats.AbortedBatches++
					return false
				}
				e.stats.ShaderBinds++
			}
			mat.ApplyParameters(ctx)
			pipeline.Apply(ctx, mat.Pipeline())
		}

		if list.LightMaskChanged[i] {
			e.stats.LightDispatches++
			used := e.dispatcher.DispatchDirectional(b.Lights.Directional, b.Settings, dc.Mask, b.Camera)
			if !b.Clustered {
				static := dc.StaticLights
				if !dc.Static {
					static = nil
				}
				e.dispatcher.DispatchLocal(b.Lights, static, b.Settings, dc.Mask, used)
			}
		}

		e.applyOverrides(ctx, dc)
		ctx.SetCullMode(dc.CullMode(mat.Pipeline().CullMode(), flip))
		if dc.StencilFront != nil {
			ctx.SetStencilState(dc.StencilFront, dc.StencilBack)
		} else {
			ctx.SetStencilState(mat.Pipeline().Stencil())
		}

		if b.Callbacks != nil {
			b.Callbacks.OnDrawCall(dc)
		}

		instances := max(dc.Instances, 1)
		for v := range b.Views {
			view := &b.Views[v]
			ctx.SetViewport(view.Viewport)
			ctx.SetScissor(view.Viewport)
			if multiView {
				e.SetCamera(b.Camera, view)
			}
			primary := v == 0
			if primary {
				e.model.SetValue(dc.Model)
				e.normal.SetValue(common.NormalMatrix(dc.Model))
			}
			ctx.Draw(dc.Mesh, instances, primary)
			e.stats.DrawCalls++
		}

		// the next record skips the material bind, so undo this record's overrides
		if i+1 < len(list.Records) && !list.IsNewMaterial[i+1] {
			e.restoreOverrides(ctx, dc, mat)
		}
	}
	return true
}

// applyOverrides writes the draw call's parameter overrides in name order.
func (e *Executor) applyOverrides(ctx *device.Context, dc *drawcall.DrawCall) {
	if len(dc.Parameters) == 0 {
		return
	}
	e.overrideBuf = e.overrideBuf[:0]
	for name := range dc.Parameters {
		e.overrideBuf = append(e.overrideBuf, name)
	}
	slices.Sort(e.overrideBuf)
	for _, name := range e.overrideBuf {
		ctx.Resolve(name).SetValue(dc.Parameters[name])
	}
}

// restoreOverrides resets the uniforms the draw call overrode to the material's values.
// applyOverrides must have filled overrideBuf for dc.
func (e *Executor) restoreOverrides(ctx *device.Context, dc *drawcall.DrawCall, mat material.Material) {
	if len(dc.Parameters) == 0 {
		return
	}
	for _, name := range e.overrideBuf {
		if v, ok := mat.Parameter(name); ok {
			ctx.Resolve(name).SetValue(v)
		}
	}
}
