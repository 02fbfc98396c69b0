package drawcall

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawCallBuilderOption is a function that configures a DrawCall during construction.
type DrawCallBuilderOption func(*DrawCall)

// WithModel sets the world transform.
//
// Parameters:
//   - m: the model matrix
//
// Returns:
//   - DrawCallBuilderOption: a function that sets the model matrix
func WithModel(m mgl32.Mat4) DrawCallBuilderOption {
	return func(dc *DrawCall) {
		dc.Model = m
	}
}

// WithInstances sets the instance count.
//
// Parameters:
//   - n: the instance count
//
// Returns:
//   - DrawCallBuilderOption: a function that sets the instance count
func WithInstances(n int) DrawCallBuilderOption {
	return func(dc *DrawCall) {
		dc.Instances = n
	}
}

// WithMask sets the light and visibility mask.
//
// Parameters:
//   - mask: the mask bits
//
// Returns:
//   - DrawCallBuilderOption: a function that sets the mask
func WithMask(mask uint32) DrawCallBuilderOption {
	return func(dc *DrawCall) {
		dc.Mask = mask
	}
}

// WithStatic marks the draw call static and sets the lights it is baked with.
//
// Parameters:
//   - lights: the static lights affecting the draw call
//
// Returns:
//   - DrawCallBuilderOption: a function that marks the draw call static
func WithStatic(lights ...light.Light) DrawCallBuilderOption {
	return func(dc *DrawCall) {
		dc.Static = true
		dc.StaticLights = lights
	}
}

// WithDefines sets object-level shader define bits.
//
// Parameters:
//   - defines: the define bits
//
// Returns:
//   - DrawCallBuilderOption: a function that sets the defines
func WithDefines(defines uint64) DrawCallBuilderOption {
	return func(dc *DrawCall) {
		dc.Defines = defines
	}
}

// WithFlipFaces marks the model transform as mirrored.
//
// Parameters:
//   - flip: true for a mirrored transform
//
// Returns:
//   - DrawCallBuilderOption: a function that sets the flip flag
func WithFlipFaces(flip bool) DrawCallBuilderOption {
	return func(dc *DrawCall) {
		dc.FlipFaces = flip
	}
}

// WithStencil overrides the material's stencil state.
//
// Parameters:
//   - front: the front face state
//   - back: the back face state, nil to mirror front
//
// Returns:
//   - DrawCallBuilderOption: a function that sets the stencil override
func WithStencil(front, back *device.StencilParameters) DrawCallBuilderOption {
	return func(dc *DrawCall) {
		dc.StencilFront = front
		dc.StencilBack = back
	}
}

// WithParameter overrides a material parameter for this draw call.
//
// Parameters:
//   - name: the uniform name
//   - value: the value
//
// Returns:
//   - DrawCallBuilderOption: a function that sets the override
func WithParameter(name string, value any) DrawCallBuilderOption {
	return func(dc *DrawCall) {
		if dc.Parameters == nil {
			dc.Parameters = make(map[string]any)
		}
		dc.Parameters[name] = value
	}
}
