package shader

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// shader is the implementation of the Shader interface.
// It holds one compiled variant of a material's shader for a single (pass, defines, lights) combination.
type shader struct {
	key        string
	label      string
	definition Definition
	module     *wgpu.ShaderModuleDescriptor
	err        error
}

// Shader defines the interface for a compiled shader variant. A variant is produced by a
// Compiler for a Definition and is cached by materials (non-static draw calls) or by the
// draw call itself (static draw calls). Compilation failures are recorded on the variant
// and surface when the executor binds it, never while preparing draw calls.
type Shader interface {
	// Key retrieves the unique identifier for this variant, derived from its Definition.
	//
	// Returns:
	//   - string: the variant's unique key
	Key() string

	// Label retrieves the human readable name used in logs and GPU debug markers.
	//
	// Returns:
	//   - string: the variant label
	Label() string

	// Definition retrieves the inputs this variant was compiled from.
	//
	// Returns:
	//   - Definition: the variant definition
	Definition() Definition

	// Module returns the shader module descriptor handed to the compilation backend.
	// Nil when the variant was created without generated source.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the module descriptor, or nil
	Module() *wgpu.ShaderModuleDescriptor

	// Failed reports whether compilation or linking of this variant failed.
	//
	// Returns:
	//   - bool: true if the variant cannot be bound
	Failed() bool

	// Err returns the compilation error, or nil if the variant compiled.
	//
	// Returns:
	//   - error: the recorded failure
	Err() error

	// SetErr records a compilation or link failure reported by the backend.
	//
	// Parameters:
	//   - err: the failure, or nil to clear it
	SetErr(err error)
}

var _ Shader = &shader{}

// NewShader creates a new Shader variant for the given definition with all options applied.
//
// Parameters:
//   - def: the definition the variant is compiled from
//   - options: variadic list of ShaderBuilderOption functions to configure the variant
//
// Returns:
//   - Shader: a new Shader instance
func NewShader(def Definition, options ...ShaderBuilderOption) Shader {
	s := &shader{
		key:        def.Key(),
		definition: def,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.label == "" {
		s.label = fmt.Sprintf("%s-%s", def.Name, def.Pass)
	}
	return s
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Label() string {
	return s.label
}

func (s *shader) Definition() Definition {
	return s.definition
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) Failed() bool {
	return s.err != nil
}

func (s *shader) Err() error {
	return s.err
}

func (s *shader) SetErr(err error) {
	s.err = err
}
