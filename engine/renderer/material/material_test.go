package material

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyParametersInNameOrder(t *testing.T) {
	rec := device.NewRecorder()
	m := NewMaterial(
		WithName("brick"),
		WithParameter("material_roughness", float32(0.5)),
		WithParameter("material_diffuse", [3]float32{1, 0, 0}),
	)
	require.False(t, m.Dirty())

	m.ApplyParameters(device.NewContext(rec))
	sets := rec.Filter(device.OpSetUniform)
	require.Len(t, sets, 2)
	assert.Equal(t, "material_diffuse", sets[0].Name)
	assert.Equal(t, "material_roughness", sets[1].Name)
}

func TestSetParameterMarksDirty(t *testing.T) {
	m := NewMaterial()
	m.SetParameter("material_opacity", float32(1))
	assert.True(t, m.Dirty())

	m.Update()
	assert.False(t, m.Dirty())
	v, ok := m.Parameter("material_opacity")
	require.True(t, ok)
	assert.Equal(t, float32(1), v)
}

func TestSetDefinesDropsVariants(t *testing.T) {
	m := NewMaterial(WithShader("lit"))
	key := shader.VariantKey{Pass: shader.PassForward}
	m.SetVariant(key, shader.NewShader(shader.Definition{Name: "lit"}))

	_, ok := m.Variant(key)
	require.True(t, ok)

	m.SetDefines(m.Defines())
	_, ok = m.Variant(key)
	assert.True(t, ok, "unchanged defines keep variants")

	m.SetDefines(0x4)
	_, ok = m.Variant(key)
	assert.False(t, ok)
	assert.True(t, m.Dirty())
}

func TestDefaults(t *testing.T) {
	m := NewMaterial()
	assert.Equal(t, "standard", m.Name())
	assert.Equal(t, "standard", m.ShaderName())
	assert.NotNil(t, m.Pipeline())
	assert.NotEqual(t, m.ID(), NewMaterial().ID())
}
