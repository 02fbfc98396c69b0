package drawcall

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawCall is one submittable unit: a mesh drawn with a material and a model transform,
// or a command entry that runs a callback in draw order.
//
// DrawCalls are owned by the scene. The frame pipeline reads the exported fields and
// maintains the per-pass shader cache; it never reorders or removes draw calls.
type DrawCall struct {
	Name     string
	Mesh     device.Mesh
	Material material.Material
	// Model is the world transform uploaded as matrix_model.
	Model mgl32.Mat4
	// Instances is the instance count, 1 when zero.
	Instances int

	// Mask is intersected with light masks and the optional visibility mask.
	Mask uint32
	// Static draw calls are lit only by StaticLights and compile private shader variants.
	Static       bool
	StaticLights []light.Light
	// Defines holds object-level shader define bits (skinning, instancing, lightmaps...).
	Defines uint64

	// FlipFaces marks a mirrored model transform; it inverts culling like a mirrored camera.
	FlipFaces bool
	// StencilFront overrides the material's stencil state when non-nil. A nil StencilBack
	// mirrors StencilFront.
	StencilFront *device.StencilParameters
	StencilBack  *device.StencilParameters
	// Parameters override material parameters for this draw call only.
	Parameters map[string]any

	// Command, when set, makes this a command entry: it is run in place of a draw.
	Command func(ctx *device.Context)

	shaders    map[shader.Pass]shader.Shader
	shaderDefs uint64
	lightHash  uint64
	materialID uint64
}

// New creates a mesh draw call with the given options applied.
//
// Parameters:
//   - name: the draw call name used in logs
//   - mesh: the mesh to draw
//   - mat: the material, nil for the renderer's default material
//   - opts: variadic list of DrawCallBuilderOption functions
//
// Returns:
//   - *DrawCall: the new draw call
func New(name string, mesh device.Mesh, mat material.Material, opts ...DrawCallBuilderOption) *DrawCall {
	dc := &DrawCall{
		Name:      name,
		Mesh:      mesh,
		Material:  mat,
		Model:     mgl32.Ident4(),
		Instances: 1,
		Mask:      light.MaskAffectDynamic,
	}
	for _, opt := range opts {
		opt(dc)
	}
	return dc
}

// NewCommand creates a command entry that runs fn at its position in the draw order.
//
// Parameters:
//   - name: the entry name used in logs
//   - fn: the callback
//
// Returns:
//   - *DrawCall: the command entry
func NewCommand(name string, fn func(ctx *device.Context)) *DrawCall {
	return &DrawCall{Name: name, Command: fn}
}

// IsCommand reports whether the draw call is a command entry.
func (dc *DrawCall) IsCommand() bool {
	return dc.Command != nil
}

// Shader returns the variant resolved for pass by the last preparation, or nil.
//
// Parameters:
//   - pass: the shader pass
//
// Returns:
//   - shader.Shader: the resolved variant
func (dc *DrawCall) Shader(pass shader.Pass) shader.Shader {
	return dc.shaders[pass]
}

// CachedShader returns the variant cached for pass when it was resolved with the same
// material, defines and light hash.
//
// Parameters:
//   - pass: the shader pass
//   - materialID: the id of the material in use
//   - defs: the combined define bits
//   - lightHash: the hash of the lights affecting the draw call
//
// Returns:
//   - shader.Shader: the cached variant
//   - bool: false when nothing valid is cached
func (dc *DrawCall) CachedShader(pass shader.Pass, materialID, defs, lightHash uint64) (shader.Shader, bool) {
	s, ok := dc.shaders[pass]
	if !ok || dc.materialID != materialID || dc.shaderDefs != defs || dc.lightHash != lightHash {
		return nil, false
	}
	return s, true
}

// SetShader caches the variant resolved for pass. A change of material, defines or light
// hash drops the variants cached for other passes.
//
// Parameters:
//   - pass: the shader pass
//   - materialID: the id of the material in use
//   - defs: the combined define bits
//   - lightHash: the hash of the lights affecting the draw call
//   - s: the resolved variant
func (dc *DrawCall) SetShader(pass shader.Pass, materialID, defs, lightHash uint64, s shader.Shader) {
	if dc.shaders == nil {
		dc.shaders = make(map[shader.Pass]shader.Shader)
	}
	if dc.materialID != materialID || dc.shaderDefs != defs || dc.lightHash != lightHash {
		clear(dc.shaders)
		dc.materialID = materialID
		dc.shaderDefs = defs
		dc.lightHash = lightHash
	}
	dc.shaders[pass] = s
}

// ClearShaders drops every cached variant.
func (dc *DrawCall) ClearShaders() {
	clear(dc.shaders)
}

// CullMode returns the cull mode to draw with: the material's mode, with front and back
// swapped when exactly one of the camera and the draw call is mirrored.
//
// Parameters:
//   - mode: the material cull mode
//   - flipCamera: whether the camera mirrors geometry
//
// Returns:
//   - wgpu.CullMode: the effective cull mode
func (dc *DrawCall) CullMode(mode wgpu.CullMode, flipCamera bool) wgpu.CullMode {
	if dc.FlipFaces == flipCamera {
		return mode
	}
	switch mode {
	case wgpu.CullModeFront:
		return wgpu.CullModeBack
	case wgpu.CullModeBack:
		return wgpu.CullModeFront
	default:
		return mode
	}
}
