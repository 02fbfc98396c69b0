package scene

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSettings = `
gamma_correction = false
physical_units   = true
exposure         = 2

ambient {
  color     = [0.5, 0.25, 1]
  luminance = 100
}

skybox {
  luminance = 3000
  rotation  = [0, 90, 0]
}

lighting {
  clustered = true
  cookies   = true
}
`

func TestParseSettings(t *testing.T) {
	s, err := ParseSettings("scene.hcl", []byte(sampleSettings))
	require.NoError(t, err)

	want := DefaultSettings()
	want.GammaCorrection = false
	want.PhysicalUnits = true
	want.Exposure = 2
	want.AmbientColor = mgl32.Vec3{0.5, 0.25, 1}
	want.AmbientLuminance = 100
	want.SkyboxLuminance = 3000
	want.SkyboxRotation = mgl32.Vec3{0, 90, 0}
	want.ClusteredLighting = true
	want.CookiesEnabled = true
	assert.Equal(t, want, s)
}

func TestParseSettingsEmptyKeepsDefaults(t *testing.T) {
	s, err := ParseSettings("empty.hcl", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestParseSettingsInvalid(t *testing.T) {
	_, err := ParseSettings("bad.hcl", []byte("exposure = -1\n"))
	require.ErrorIs(t, err, ErrInvalidSettings)

	_, err = ParseSettings("bad.hcl", []byte("ambient {\n  color = [1, 2]\n}\n"))
	require.ErrorIs(t, err, ErrInvalidSettings)

	_, err = ParseSettings("bad.hcl", []byte("unknown_key = 1\n"))
	require.Error(t, err)
}

func TestSkyboxRotationMatrix(t *testing.T) {
	assert.Equal(t, mgl32.Ident3(), DefaultSettings().SkyboxRotationMatrix())

	s := DefaultSettings()
	s.SkyboxRotation = mgl32.Vec3{0, 90, 0}
	got := s.SkyboxRotationMatrix().Mul3x1(mgl32.Vec3{1, 0, 0})
	assert.True(t, got.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5), "got %v", got)
}

func TestSceneWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.hcl")
	require.NoError(t, os.WriteFile(path, []byte("exposure = 1.5\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewScene()
	require.NoError(t, s.Watch(ctx, path))
	assert.Equal(t, float32(1.5), s.Settings().Exposure)

	require.NoError(t, os.WriteFile(path, []byte("exposure = 3\n"), 0o644))
	assert.Eventually(t, func() bool {
		return s.Settings().Exposure == 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRemoveLight(t *testing.T) {
	a := light.NewLight(light.LightTypeOmni)
	b := light.NewLight(light.LightTypeSpot)
	s := NewScene(WithLights(a, b))

	assert.True(t, s.RemoveLight(a.ID()))
	assert.False(t, s.RemoveLight(a.ID()))
	assert.Equal(t, []light.Light{b}, s.Lights())
}
