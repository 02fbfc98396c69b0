package scene

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// settingsFile is the HCL layout of a settings file:
//
//	gamma_correction = true
//	physical_units   = false
//	exposure         = 1.0
//
//	ambient {
//	  color     = [0.2, 0.2, 0.2]
//	  luminance = 20000
//	}
//
//	skybox {
//	  intensity = 1.0
//	  rotation  = [0, 90, 0]
//	}
//
//	lighting {
//	  clustered = true
//	  cookies   = true
//	  shadows   = true
//	}
type settingsFile struct {
	GammaCorrection *bool          `hcl:"gamma_correction,optional"`
	PhysicalUnits   *bool          `hcl:"physical_units,optional"`
	Exposure        *float32       `hcl:"exposure,optional"`
	Ambient         *ambientBlock  `hcl:"ambient,block"`
	Skybox          *skyboxBlock   `hcl:"skybox,block"`
	Lighting        *lightingBlock `hcl:"lighting,block"`
}

type ambientBlock struct {
	Color     []float32 `hcl:"color,optional"`
	Luminance *float32  `hcl:"luminance,optional"`
}

type skyboxBlock struct {
	Intensity *float32  `hcl:"intensity,optional"`
	Luminance *float32  `hcl:"luminance,optional"`
	Rotation  []float32 `hcl:"rotation,optional"`
}

type lightingBlock struct {
	Clustered *bool `hcl:"clustered,optional"`
	Cookies   *bool `hcl:"cookies,optional"`
	Shadows   *bool `hcl:"shadows,optional"`
}

// LoadSettings reads an HCL settings file. Values absent from the file keep their
// DefaultSettings value.
//
// Parameters:
//   - path: the settings file path, with a .hcl extension
//
// Returns:
//   - Settings: the decoded settings
//   - error: a parse or decode error, or one wrapping ErrInvalidSettings
func LoadSettings(path string) (Settings, error) {
	var f settingsFile
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings file %s: %w", path, err)
	}
	return f.apply(DefaultSettings())
}

// ParseSettings decodes settings from HCL source held in memory.
//
// Parameters:
//   - filename: the name used in diagnostics, with a .hcl extension
//   - src: the HCL source
//
// Returns:
//   - Settings: the decoded settings
//   - error: a parse or decode error, or one wrapping ErrInvalidSettings
func ParseSettings(filename string, src []byte) (Settings, error) {
	var f settingsFile
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings %s: %w", filename, err)
	}
	return f.apply(DefaultSettings())
}

func (f *settingsFile) apply(s Settings) (Settings, error) {
	setIf(&s.GammaCorrection, f.GammaCorrection)
	setIf(&s.PhysicalUnits, f.PhysicalUnits)
	setIf(&s.Exposure, f.Exposure)

	if a := f.Ambient; a != nil {
		if a.Color != nil {
			c, err := vec3("ambient.color", a.Color)
			if err != nil {
				return Settings{}, err
			}
			s.AmbientColor = c
		}
		setIf(&s.AmbientLuminance, a.Luminance)
	}
	if sb := f.Skybox; sb != nil {
		setIf(&s.SkyboxIntensity, sb.Intensity)
		setIf(&s.SkyboxLuminance, sb.Luminance)
		if sb.Rotation != nil {
			r, err := vec3("skybox.rotation", sb.Rotation)
			if err != nil {
				return Settings{}, err
			}
			s.SkyboxRotation = r
		}
	}
	if l := f.Lighting; l != nil {
		setIf(&s.ClusteredLighting, l.Clustered)
		setIf(&s.CookiesEnabled, l.Cookies)
		setIf(&s.ShadowsEnabled, l.Shadows)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func vec3(name string, v []float32) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidSettings, name, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}

// WatchSettings reloads the settings file whenever it is written and passes the result to
// onChange. Decode failures are logged and skipped; the previous settings stay in effect.
// The watch runs until ctx is done.
//
// Parameters:
//   - ctx: cancels the watch
//   - path: the settings file path
//   - onChange: receives each successfully reloaded Settings
//
// Returns:
//   - error: an error if the watcher could not be started
func WatchSettings(ctx context.Context, path string, onChange func(Settings)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create settings watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of writing it in place.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	target := filepath.Clean(path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				s, err := LoadSettings(path)
				if err != nil {
					common.Logger().Warn("settings reload failed", "path", path, "error", err)
					continue
				}
				common.Logger().Debug("settings reloaded", "path", path)
				onChange(s)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				common.Logger().Warn("settings watcher error", "path", path, "error", err)
			}
		}
	}()
	return nil
}
