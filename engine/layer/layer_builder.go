package layer

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
)

// LayerBuilderOption is a function that configures a layer during construction.
type LayerBuilderOption func(*layerImpl)

// WithKind sets how the frame graph treats the layer.
//
// Parameters:
//   - kind: the layer kind
//
// Returns:
//   - LayerBuilderOption: a function that sets the kind
func WithKind(kind Kind) LayerBuilderOption {
	return func(l *layerImpl) {
		l.kind = kind
	}
}

// WithShaderPass sets the pass the layer's draw calls render with.
//
// Parameters:
//   - pass: the shader pass
//
// Returns:
//   - LayerBuilderOption: a function that sets the pass
func WithShaderPass(pass shader.Pass) LayerBuilderOption {
	return func(l *layerImpl) {
		l.pass = pass
	}
}

// WithClearFlags sets the buffers cleared before the layer renders.
//
// Parameters:
//   - flags: the clear flags
//
// Returns:
//   - LayerBuilderOption: a function that sets the clear flags
func WithClearFlags(flags device.ClearFlags) LayerBuilderOption {
	return func(l *layerImpl) {
		l.clearFlags = flags
	}
}

// WithCallbacks sets the layer's frame callbacks.
//
// Parameters:
//   - callbacks: the callbacks, nil resets to no-ops
//
// Returns:
//   - LayerBuilderOption: a function that sets the callbacks
func WithCallbacks(callbacks Callbacks) LayerBuilderOption {
	return func(l *layerImpl) {
		if callbacks == nil {
			callbacks = NopCallbacks{}
		}
		l.callbacks = callbacks
	}
}

// WithLights sets the lights affecting the layer.
//
// Parameters:
//   - lights: the lights
//
// Returns:
//   - LayerBuilderOption: a function that sets the lights
func WithLights(lights ...light.Light) LayerBuilderOption {
	return func(l *layerImpl) {
		l.lights = lights
	}
}

// WithEnabled sets whether the layer renders.
//
// Parameters:
//   - enabled: false to skip the layer
//
// Returns:
//   - LayerBuilderOption: a function that sets the enabled flag
func WithEnabled(enabled bool) LayerBuilderOption {
	return func(l *layerImpl) {
		l.enabled = enabled
	}
}
