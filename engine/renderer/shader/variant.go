package shader

import "fmt"

// Pass identifies the kind of render pass a variant is compiled for.
type Pass int

const (
	// PassForward is the main lit forward pass.
	PassForward Pass = iota
	// PassDepth renders linear depth into a color target, used by the depth grab pass.
	PassDepth
	// PassShadow renders shadow map depth.
	PassShadow
	// PassPicker renders object ids for picking.
	PassPicker
)

func (p Pass) String() string {
	switch p {
	case PassForward:
		return "forward"
	case PassDepth:
		return "depth"
	case PassShadow:
		return "shadow"
	case PassPicker:
		return "picker"
	default:
		return fmt.Sprintf("pass(%d)", int(p))
	}
}

// VariantKey identifies a shader variant inside a material's variant cache. Two non-static
// draw calls with equal keys share the same compiled variant.
type VariantKey struct {
	Pass      Pass
	Defines   uint64
	LightHash uint64
}

// Definition is the complete input handed to a Compiler for one variant.
type Definition struct {
	// Name is the owning material name.
	Name string
	// Pass is the render pass the variant targets.
	Pass Pass
	// Defines is the object-level shader defines bitset (skinning, morphing, instancing, ...).
	Defines uint64
	// LightHash summarizes the light configuration compiled into the variant.
	LightHash uint64
	// LightCount is the number of lights the variant loops over.
	LightCount int
	// Static marks variants compiled for a single static draw call's private light list.
	Static bool
	// Clustered marks variants that read local lights from the light cluster buffers.
	Clustered bool
}

// VariantKey returns the cache key of the definition.
//
// Returns:
//   - VariantKey: the (pass, defines, light hash) triple
func (d Definition) VariantKey() VariantKey {
	return VariantKey{Pass: d.Pass, Defines: d.Defines, LightHash: d.LightHash}
}

// Key returns a unique string identifier for the definition, used as the shader key.
//
// Returns:
//   - string: the variant key string
func (d Definition) Key() string {
	static := ""
	if d.Static {
		static = "-static"
	}
	return fmt.Sprintf("%s/%s/%x/%x%s", d.Name, d.Pass, d.Defines, d.LightHash, static)
}

// Compiler compiles shader variants. Implementations are provided by the graphics backend.
// Compile must always return a variant; failures are recorded with SetErr or WithErr so
// they surface when the executor binds the variant.
type Compiler interface {
	Compile(def Definition) Shader
}

// CompilerFunc adapts a plain function to the Compiler interface.
type CompilerFunc func(def Definition) Shader

// Compile calls f(def).
func (f CompilerFunc) Compile(def Definition) Shader {
	return f(def)
}
