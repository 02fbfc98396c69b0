package light

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(seq []Light) []string {
	out := make([]string, len(seq))
	for i, l := range seq {
		out[i] = l.Name()
	}
	return out
}

func TestSplitSkipsDisabled(t *testing.T) {
	lights := []Light{
		NewLight(LightTypeOmni, WithName("o1")),
		NewLight(LightTypeDirectional, WithName("d1")),
		NewLight(LightTypeSpot, WithName("s1"), WithEnabled(false)),
		NewLight(LightTypeSpot, WithName("s2")),
		nil,
	}
	s := Split(lights)
	assert.Equal(t, []string{"d1"}, names(s.Directional))
	assert.Equal(t, []string{"o1"}, names(s.Omni))
	assert.Equal(t, []string{"s2"}, names(s.Spot))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"d1", "o1", "s2"}, names(s.All()))
}

func TestLocalSequenceOrder(t *testing.T) {
	so1 := NewLight(LightTypeOmni, WithName("so1"), WithStatic(true))
	ss1 := NewLight(LightTypeSpot, WithName("ss1"), WithStatic(true))
	frame := Split([]Light{
		NewLight(LightTypeSpot, WithName("ds1")),
		NewLight(LightTypeOmni, WithName("do1")),
		so1,
		NewLight(LightTypeOmni, WithName("do2")),
		ss1,
		NewLight(LightTypeOmni, WithName("masked"), WithMask(MaskBake)),
	})

	got := slices.Collect(LocalSequence(frame, []Light{ss1, so1}, MaskAffectDynamic))
	assert.Equal(t, []string{"do1", "do2", "so1", "ds1", "ss1"}, names(got))
}

func TestLocalSequenceStopsEarly(t *testing.T) {
	frame := Split([]Light{
		NewLight(LightTypeOmni, WithName("a")),
		NewLight(LightTypeOmni, WithName("b")),
	})
	var seen []string
	for l := range LocalSequence(frame, nil, MaskAffectDynamic) {
		seen = append(seen, l.Name())
		break
	}
	assert.Equal(t, []string{"a"}, seen)
}

func TestHash(t *testing.T) {
	a := NewLight(LightTypeOmni)
	b := NewLight(LightTypeSpot, WithShadows(512, 0.1, 0))

	assert.Zero(t, Hash(nil))
	assert.Equal(t, Hash([]Light{a, b}), Hash([]Light{NewLight(LightTypeOmni), NewLight(LightTypeSpot, WithShadows(256, 0, 0))}))
	assert.NotEqual(t, Hash([]Light{a, b}), Hash([]Light{b, a}))
	assert.NotEqual(t, Hash([]Light{a}), Hash([]Light{NewLight(LightTypeOmni, WithStatic(true))}))
}

func TestDirectionFollowsNegativeY(t *testing.T) {
	l := NewLight(LightTypeDirectional, WithWorldTransform(mgl32.HomogRotate3DX(mgl32.DegToRad(90))))
	dir := l.Direction()
	require.InDelta(t, 0, dir.X(), 1e-5)
	require.InDelta(t, 0, dir.Y(), 1e-5)
	require.InDelta(t, -1, dir.Z(), 1e-5)
}

func TestConeCosines(t *testing.T) {
	l := NewLight(LightTypeSpot, WithSpotCone(0, 60))
	assert.InDelta(t, 1, l.InnerCone(), 1e-6)
	assert.InDelta(t, 0.5, l.OuterCone(), 1e-6)
}

func TestShadowDataPerKey(t *testing.T) {
	l := NewLight(LightTypeDirectional)
	cam := "main"
	l.SetShadowData(cam, ShadowData{Resolution: 1024})

	d, ok := l.ShadowData(cam)
	require.True(t, ok)
	assert.Equal(t, 1024, d.Resolution)
	_, ok = l.ShadowData(nil)
	assert.False(t, ok)

	l.ClearShadowData()
	_, ok = l.ShadowData(cam)
	assert.False(t, ok)
}
