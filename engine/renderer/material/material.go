package material

import (
	"slices"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
)

// materialIDs generates unique material identifiers.
var materialIDs atomic.Uint64

// material is the implementation of the Material interface.
type material struct {
	id         uint64
	name       string
	shaderName string
	defines    uint64
	pipeline   pipeline.Pipeline
	parameters map[string]any
	names      []string
	variants   map[shader.VariantKey]shader.Shader
	dirty      bool
}

// Material defines the interface for a render material: the shader family it renders
// with, its fixed-function state, its default parameter values and the compiled shader
// variants shared by every non-static draw call using it.
//
// Parameter and define changes mark the material dirty; the draw call preparer calls
// Update on dirty materials before their first use in a frame.
type Material interface {
	// ID retrieves the unique material identifier.
	//
	// Returns:
	//   - uint64: the material id
	ID() uint64

	// Name retrieves the material name used in logs.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// ShaderName retrieves the shader family variants are generated from.
	//
	// Returns:
	//   - string: the shader name
	ShaderName() string

	// Defines retrieves the material-level shader define bits.
	//
	// Returns:
	//   - uint64: the define bits
	Defines() uint64

	// Pipeline retrieves the fixed-function state of the material.
	//
	// Returns:
	//   - pipeline.Pipeline: the render state
	Pipeline() pipeline.Pipeline

	// Parameter retrieves a default parameter value.
	//
	// Parameters:
	//   - name: the uniform name
	//
	// Returns:
	//   - any: the value
	//   - bool: false if the material has no such parameter
	Parameter(name string) (any, bool)

	// SetParameter sets a default parameter value and marks the material dirty.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value
	SetParameter(name string, value any)

	// SetDefines replaces the define bits, drops every cached variant and marks the
	// material dirty.
	//
	// Parameters:
	//   - defines: the new define bits
	SetDefines(defines uint64)

	// ApplyParameters writes every default parameter to the device in name order.
	//
	// Parameters:
	//   - ctx: the device context
	ApplyParameters(ctx *device.Context)

	// Variant looks up a cached shader variant.
	//
	// Parameters:
	//   - key: the variant key
	//
	// Returns:
	//   - shader.Shader: the cached variant
	//   - bool: false on a cache miss
	Variant(key shader.VariantKey) (shader.Shader, bool)

	// SetVariant caches a compiled variant, failed or not.
	//
	// Parameters:
	//   - key: the variant key
	//   - s: the compiled variant
	SetVariant(key shader.VariantKey, s shader.Shader)

	// ClearVariants drops every cached variant.
	ClearVariants()

	// Dirty reports whether parameters or defines changed since the last Update.
	//
	// Returns:
	//   - bool: true if dirty
	Dirty() bool

	// Update rebuilds derived state after changes and clears the dirty flag.
	Update()
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Materials default to the "standard" shader family and opaque pipeline state.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		id:         materialIDs.Add(1),
		shaderName: "standard",
		parameters: make(map[string]any),
		variants:   make(map[shader.VariantKey]shader.Shader),
		dirty:      true,
	}
	for _, opt := range options {
		opt(m)
	}
	if m.name == "" {
		m.name = m.shaderName
	}
	if m.pipeline == nil {
		m.pipeline = pipeline.NewPipeline(m.name)
	}
	m.Update()
	return m
}

func (m *material) ID() uint64 {
	return m.id
}

func (m *material) Name() string {
	return m.name
}

func (m *material) ShaderName() string {
	return m.shaderName
}

func (m *material) Defines() uint64 {
	return m.defines
}

func (m *material) Pipeline() pipeline.Pipeline {
	return m.pipeline
}

func (m *material) Parameter(name string) (any, bool) {
	v, ok := m.parameters[name]
	return v, ok
}

func (m *material) SetParameter(name string, value any) {
	m.parameters[name] = value
	m.dirty = true
}

func (m *material) SetDefines(defines uint64) {
	if m.defines == defines {
		return
	}
	m.defines = defines
	m.ClearVariants()
	m.dirty = true
}

func (m *material) ApplyParameters(ctx *device.Context) {
	for _, name := range m.names {
		ctx.Resolve(name).SetValue(m.parameters[name])
	}
}

func (m *material) Variant(key shader.VariantKey) (shader.Shader, bool) {
	s, ok := m.variants[key]
	return s, ok
}

func (m *material) SetVariant(key shader.VariantKey, s shader.Shader) {
	m.variants[key] = s
}

func (m *material) ClearVariants() {
	clear(m.variants)
}

func (m *material) Dirty() bool {
	return m.dirty
}

func (m *material) Update() {
	m.names = m.names[:0]
	for name := range m.parameters {
		m.names = append(m.names, name)
	}
	slices.Sort(m.names)
	m.dirty = false
}
