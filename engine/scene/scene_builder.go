package scene

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithSettings replaces the default settings.
//
// Parameters:
//   - settings: the initial settings
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSettings(settings Settings) SceneBuilderOption {
	return func(s *scene) {
		s.settings.Store(&settings)
	}
}

// WithLights adds initial lights to the scene.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lights = append(s.lights, lights...)
	}
}

// WithSkybox sets the skybox cubemap.
//
// Parameters:
//   - tex: the skybox cubemap
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSkybox(tex device.Texture) SceneBuilderOption {
	return func(s *scene) {
		s.skybox = tex
	}
}
