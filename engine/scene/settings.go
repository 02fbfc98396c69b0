package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidSettings is returned when a settings file decodes but holds out-of-range values.
var ErrInvalidSettings = errors.New("invalid scene settings")

// Settings holds the scene-wide values the renderer reads every frame.
type Settings struct {
	// GammaCorrection squares light and ambient colors into linear space before upload.
	GammaCorrection bool
	// PhysicalUnits scales lights and ambient by luminance instead of intensity.
	PhysicalUnits bool
	// Exposure is the camera exposure multiplier.
	Exposure float32

	AmbientColor     mgl32.Vec3
	AmbientLuminance float32

	SkyboxIntensity float32
	SkyboxLuminance float32
	// SkyboxRotation is the skybox orientation as XYZ euler angles in degrees.
	SkyboxRotation mgl32.Vec3

	// ClusteredLighting bins local lights into clusters instead of forwarding them per draw call.
	ClusteredLighting bool
	// CookiesEnabled enables the cookie atlas pass of clustered lighting.
	CookiesEnabled bool
	// ShadowsEnabled enables directional and local light shadow passes.
	ShadowsEnabled bool
}

// DefaultSettings returns the settings a new scene starts with.
//
// Returns:
//   - Settings: the defaults
func DefaultSettings() Settings {
	return Settings{
		GammaCorrection:  true,
		Exposure:         1,
		AmbientColor:     mgl32.Vec3{0, 0, 0},
		AmbientLuminance: 0,
		SkyboxIntensity:  1,
		SkyboxLuminance:  0,
		ShadowsEnabled:   true,
	}
}

// SkyboxRotationMatrix returns the skybox rotation as a 3x3 matrix.
//
// Returns:
//   - mgl32.Mat3: the rotation matrix, identity for a zero rotation
func (s Settings) SkyboxRotationMatrix() mgl32.Mat3 {
	if s.SkyboxRotation == (mgl32.Vec3{}) {
		return mgl32.Ident3()
	}
	q := mgl32.AnglesToQuat(
		mgl32.DegToRad(s.SkyboxRotation.X()),
		mgl32.DegToRad(s.SkyboxRotation.Y()),
		mgl32.DegToRad(s.SkyboxRotation.Z()),
		mgl32.XYZ,
	)
	return q.Mat4().Mat3()
}

// Validate checks value ranges.
//
// Returns:
//   - error: wraps ErrInvalidSettings on the first bad value
func (s Settings) Validate() error {
	switch {
	case s.Exposure < 0:
		return fmt.Errorf("%w: exposure %v is negative", ErrInvalidSettings, s.Exposure)
	case s.AmbientLuminance < 0:
		return fmt.Errorf("%w: ambient luminance %v is negative", ErrInvalidSettings, s.AmbientLuminance)
	case s.SkyboxIntensity < 0 || s.SkyboxLuminance < 0:
		return fmt.Errorf("%w: skybox intensity and luminance must not be negative", ErrInvalidSettings)
	}
	return nil
}
