package lighting

import (
	"fmt"
	"testing"

	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotNames(s *Slots, n int) []string {
	out := make([]string, n)
	for i := range n {
		if l := s.Light(i); l != nil {
			out[i] = l.Name()
		}
	}
	return out
}

func TestSlotOrdering(t *testing.T) {
	named := func(typ light.LightType, name string, static bool) light.Light {
		return light.NewLight(typ, light.WithName(name), light.WithStatic(static))
	}
	so := named(light.LightTypeOmni, "omni-static", true)
	ss1 := named(light.LightTypeSpot, "spot-static-1", true)
	ss2 := named(light.LightTypeSpot, "spot-static-2", true)
	all := []light.Light{
		named(light.LightTypeSpot, "spot-0", false),
		named(light.LightTypeDirectional, "dir-0", false),
		named(light.LightTypeOmni, "omni-0", false),
		so,
		named(light.LightTypeDirectional, "dir-1", false),
		named(light.LightTypeOmni, "omni-1", false),
		ss1,
		ss2,
	}
	sets := light.Split(all)
	rec := device.NewRecorder()
	d := NewDispatcher(rec)
	settings := scene.DefaultSettings()

	dirs := d.DispatchDirectional(sets.Directional, settings, light.MaskAffectDynamic, camera.NewCamera())
	locals := d.DispatchLocal(sets, []light.Light{so, ss1, ss2}, settings, light.MaskAffectDynamic, dirs)

	require.Equal(t, 2, dirs)
	require.Equal(t, 6, locals)
	want := []string{"dir-0", "dir-1", "omni-0", "omni-1", "omni-static", "spot-0", "spot-static-1", "spot-static-2"}
	if diff := cmp.Diff(want, slotNames(d.Slots(), dirs+locals)); diff != "" {
		t.Errorf("slot order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 8, d.Slots().Capacity())
}

func TestDirectionalMaskAndGrowth(t *testing.T) {
	rec := device.NewRecorder()
	d := NewDispatcher(rec)
	dirs := []light.Light{
		light.NewLight(light.LightTypeDirectional, light.WithName("a"), light.WithMask(light.MaskAffectLightmapped)),
		light.NewLight(light.LightTypeDirectional, light.WithName("b")),
	}
	n := d.DispatchDirectional(dirs, scene.DefaultSettings(), light.MaskAffectDynamic, nil)
	require.Equal(t, 1, n)
	assert.Equal(t, "b", d.Slots().Light(0).Name())

	d.Slots().EnsureCapacity(4)
	d.Slots().EnsureCapacity(2)
	assert.Equal(t, 4, d.Slots().Capacity(), "the arena never shrinks")
	resolved := rec.ResolvedUniforms()
	d.DispatchDirectional(dirs, scene.DefaultSettings(), light.MaskAffectDynamic|light.MaskAffectLightmapped, nil)
	assert.Equal(t, resolved, rec.ResolvedUniforms(), "existing slots are reused")
}

func TestColorSpace(t *testing.T) {
	l := light.NewLight(light.LightTypeOmni, light.WithColor(0.5, 1, 0), light.WithIntensity(2), light.WithLuminance(100))
	sets := light.Split([]light.Light{l})

	for _, tc := range []struct {
		name     string
		gamma    bool
		physical bool
		want     mgl32.Vec3
	}{
		{"linear", false, false, mgl32.Vec3{1, 2, 0}},
		{"gamma", true, false, mgl32.Vec3{0.5, 2, 0}},
		{"physical", true, true, mgl32.Vec3{25, 100, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := device.NewRecorder()
			d := NewDispatcher(rec)
			s := scene.DefaultSettings()
			s.GammaCorrection = tc.gamma
			s.PhysicalUnits = tc.physical

			d.DispatchLocal(sets, nil, s, light.MaskAffectDynamic, 0)
			got, ok := rec.UniformValue("light0_color")
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSpotCookieWithoutShadow(t *testing.T) {
	world := mgl32.Translate3D(0, 5, 0)
	cookie := device.NewTexture("cookie", 64, 64)
	spot := light.NewLight(light.LightTypeSpot,
		light.WithWorldTransform(world),
		light.WithSpotCone(20, 30),
		light.WithRange(12),
		light.WithCookie(cookie, 0.5, ""),
	)
	rec := device.NewRecorder()
	d := NewDispatcher(rec)

	n := d.DispatchLocal(light.Split([]light.Light{spot}), nil, scene.DefaultSettings(), light.MaskAffectDynamic, 0)
	require.Equal(t, 1, n)

	m, ok := rec.UniformValue("light0_cookieMatrix")
	require.True(t, ok)
	assert.Equal(t, common.SpotProjectionMatrix(world, 30, light.DefaultShadowNear, 12), m)
	_, ok = rec.UniformValue("light0_shadowMap")
	assert.False(t, ok)

	inner, _ := rec.UniformValue("light0_innerConeAngle")
	assert.Equal(t, spot.InnerCone(), inner)
	dir, _ := rec.UniformValue("light0_direction")
	assert.True(t, dir.(mgl32.Vec3).ApproxEqual(mgl32.Vec3{0, 1, 0}))
}

func TestDirectionalShadowAndAreaShape(t *testing.T) {
	cam := camera.NewCamera(camera.WithClipPlanes(0.1, 100))
	shadowMap := device.NewTexture("shadow", 2048, 2048)
	l := light.NewLight(light.LightTypeDirectional,
		light.WithShape(light.LightShapeDisk),
		light.WithShadows(2048, 0.1, 0.2),
		light.WithCascades(2, 0.5),
		light.WithPenumbraSize(4),
	)
	l.SetShadowData(cam, light.ShadowData{Map: shadowMap, Resolution: 2048, Distances: [light.MaxCascades]float32{10, 100}})

	rec := device.NewRecorder()
	d := NewDispatcher(rec)
	d.DispatchDirectional([]light.Light{l}, scene.DefaultSettings(), light.MaskAffectDynamic, cam)

	expect := map[string]any{
		"light0_shadowMap":              shadowMap,
		"light0_shadowCascadeCount":     2,
		"light0_shadowCascadeDistances": [light.MaxCascades]float32{10, 100},
		"light0_shadowSearchArea":       float32(4) / 2048,
		"light0_shadowParams":           []float32{2048, 0.2, 0.1, 0},
		"light0_position":               mgl32.Vec3{0, 100, 0},
	}
	for name, want := range expect {
		got, ok := rec.UniformValue(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestDispatchGlobal(t *testing.T) {
	rec := device.NewRecorder()
	d := NewDispatcher(rec)
	s := scene.DefaultSettings()
	s.AmbientColor = mgl32.Vec3{0.5, 0.5, 0.5}
	s.AmbientLuminance = 10
	s.SkyboxIntensity = 0.7
	s.SkyboxLuminance = 500

	d.DispatchGlobal(s)
	v, _ := rec.UniformValue("light_globalAmbient")
	assert.Equal(t, mgl32.Vec3{0.25, 0.25, 0.25}, v)
	v, _ = rec.UniformValue("skyboxIntensity")
	assert.Equal(t, float32(0.7), v)

	s.PhysicalUnits = true
	d.DispatchGlobal(s)
	v, _ = rec.UniformValue("light_globalAmbient")
	assert.Equal(t, mgl32.Vec3{2.5, 2.5, 2.5}, v)
	v, _ = rec.UniformValue("skyboxIntensity")
	assert.Equal(t, float32(500), v)
	v, _ = rec.UniformValue("cubeMapRotationMatrix")
	assert.Equal(t, mgl32.Ident3(), v)
}

func ExampleSlots_EnsureCapacity() {
	s := NewSlots(device.NewRecorder())
	s.EnsureCapacity(3)
	fmt.Println(s.Capacity())
	// Output: 3
}
