package light

// MaxCascades is the maximum number of directional shadow cascades.
const MaxCascades = 4

// DefaultShadowResolution is the default width and height in texels of a light's
// shadow depth texture.
const DefaultShadowResolution = 1024

// DefaultShadowNear is the near plane used for local light shadow projections.
const DefaultShadowNear float32 = 0.1

// DefaultShadowBias is the constant depth bias applied to shadow comparisons
// to reduce shadow acne artifacts.
const DefaultShadowBias float32 = 0.05

// DefaultNormalBias is the normal-offset bias applied to shadow lookups. Higher values
// push the sample point further along the surface normal, reducing self-shadowing on
// concave geometry at the cost of slight shadow detachment from contact points.
const DefaultNormalBias float32 = 0

// ShadowParams packs the shadow parameters consumed by lit shaders:
// (resolution, normal bias, depth bias, 1/range). Directional lights report a zero range term.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - []float32: four packed values
func ShadowParams(l Light) []float32 {
	var invRange float32
	if l.Type() != LightTypeDirectional && l.Range() > 0 {
		invRange = 1 / l.Range()
	}
	return []float32{
		float32(l.ShadowResolution()),
		l.NormalBias(),
		l.ShadowBias(),
		invRange,
	}
}
