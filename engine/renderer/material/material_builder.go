package material

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/pipeline"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithShader is an option builder that sets the shader family variants are generated from.
//
// Parameters:
//   - name: the shader name
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shader option to a material
func WithShader(name string) MaterialBuilderOption {
	return func(m *material) {
		m.shaderName = name
	}
}

// WithDefines is an option builder that sets the material-level shader define bits.
//
// Parameters:
//   - defines: the define bits
//
// Returns:
//   - MaterialBuilderOption: a function that applies the defines option to a material
func WithDefines(defines uint64) MaterialBuilderOption {
	return func(m *material) {
		m.defines = defines
	}
}

// WithPipeline is an option builder that sets the fixed-function state of the material.
//
// Parameters:
//   - p: the render state
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline option to a material
func WithPipeline(p pipeline.Pipeline) MaterialBuilderOption {
	return func(m *material) {
		m.pipeline = p
	}
}

// WithParameter is an option builder that sets a default parameter value.
//
// Parameters:
//   - name: the uniform name
//   - value: the default value
//
// Returns:
//   - MaterialBuilderOption: a function that applies the parameter to a material
func WithParameter(name string, value any) MaterialBuilderOption {
	return func(m *material) {
		m.parameters[name] = value
	}
}
