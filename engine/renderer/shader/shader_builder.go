package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a function that configures a shader variant during construction.
type ShaderBuilderOption func(*shader)

// WithLabel is an option builder that overrides the generated variant label.
//
// Parameters:
//   - label: the label used in logs and debug markers
//
// Returns:
//   - ShaderBuilderOption: a function that applies the label option to a shader
func WithLabel(label string) ShaderBuilderOption {
	return func(s *shader) {
		s.label = label
	}
}

// WithSource is an option builder that attaches generated WGSL source to the variant.
//
// Parameters:
//   - code: the WGSL source code
//
// Returns:
//   - ShaderBuilderOption: a function that applies the source option to a shader
func WithSource(code string) ShaderBuilderOption {
	return func(s *shader) {
		s.module = &wgpu.ShaderModuleDescriptor{
			Label: s.key,
			WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
				Code: code,
			},
		}
	}
}

// WithErr is an option builder that marks the variant as failed at creation.
//
// Parameters:
//   - err: the compilation failure
//
// Returns:
//   - ShaderBuilderOption: a function that applies the error option to a shader
func WithErr(err error) ShaderBuilderOption {
	return func(s *shader) {
		s.err = err
	}
}
