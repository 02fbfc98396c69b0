package scene

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
)

type scene struct {
	mu *sync.Mutex

	name     string
	settings atomic.Pointer[Settings]
	lights   []light.Light
	skybox   device.Texture
}

// Scene holds the lights and scene-wide settings a frame is rendered with.
// Settings may be replaced from another goroutine (see Watch); lights and the skybox are
// mutated between frames by the owning loop.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Settings returns a snapshot of the current settings.
	//
	// Returns:
	//   - Settings: the settings
	Settings() Settings

	// SetSettings replaces the settings. Safe for concurrent use.
	//
	// Parameters:
	//   - s: the new settings
	SetSettings(s Settings)

	// Lights returns the scene lights in insertion order.
	//
	// Returns:
	//   - []light.Light: the lights
	Lights() []light.Light

	// AddLight appends a light.
	//
	// Parameters:
	//   - l: the light to add
	AddLight(l light.Light)

	// RemoveLight removes the light with the given id.
	//
	// Parameters:
	//   - id: the light id
	//
	// Returns:
	//   - bool: false if no light had the id
	RemoveLight(id uint64) bool

	// Skybox returns the skybox cubemap, or nil.
	Skybox() device.Texture

	// SetSkybox sets the skybox cubemap.
	SetSkybox(tex device.Texture)

	// Watch loads the settings file and keeps the scene's settings in sync with it until
	// ctx is done.
	//
	// Parameters:
	//   - ctx: cancels the watch
	//   - path: the HCL settings file
	//
	// Returns:
	//   - error: the initial load error or a watcher setup error
	Watch(ctx context.Context, path string) error
}

var _ Scene = &scene{}

// NewScene creates a new Scene with DefaultSettings and the given options applied.
//
// Parameters:
//   - options: variadic list of SceneBuilderOption functions
//
// Returns:
//   - Scene: the new scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:   &sync.Mutex{},
		name: "scene",
	}
	defaults := DefaultSettings()
	s.settings.Store(&defaults)
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Settings() Settings {
	return *s.settings.Load()
}

func (s *scene) SetSettings(settings Settings) {
	s.settings.Store(&settings)
}

func (s *scene) Lights() []light.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lights
}

func (s *scene) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *scene) RemoveLight(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.lights, func(l light.Light) bool { return l.ID() == id })
	if i < 0 {
		return false
	}
	s.lights = slices.Delete(s.lights, i, i+1)
	return true
}

func (s *scene) Skybox() device.Texture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skybox
}

func (s *scene) SetSkybox(tex device.Texture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skybox = tex
}

func (s *scene) Watch(ctx context.Context, path string) error {
	settings, err := LoadSettings(path)
	if err != nil {
		return err
	}
	s.SetSettings(settings)
	return WatchSettings(ctx, path, s.SetSettings)
}
