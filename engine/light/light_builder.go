package light

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/go-gl/mathgl/mgl32"
)

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithName is an option builder that sets the name used in logs.
//
// Parameters:
//   - name: the light name
//
// Returns:
//   - LightBuilderOption: a function that applies the name option to a lightImpl
func WithName(name string) LightBuilderOption {
	return func(l *lightImpl) {
		l.name = name
	}
}

// WithWorldTransform is an option builder that sets the light's world matrix. The light
// emits along the matrix's local -Y axis.
//
// Parameters:
//   - m: the world transform
//
// Returns:
//   - LightBuilderOption: a function that applies the transform option to a lightImpl
func WithWorldTransform(m mgl32.Mat4) LightBuilderOption {
	return func(l *lightImpl) {
		l.world = m
	}
}

// WithPosition is an option builder that sets the world-space translation of the light.
//
// Parameters:
//   - x: the x position component
//   - y: the y position component
//   - z: the z position component
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.world.SetCol(3, mgl32.Vec4{x, y, z, 1})
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - r: the red color component
//   - g: the green color component
//   - b: the blue color component
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = mgl32.Vec3{r, g, b}
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithLuminance is an option builder that sets the physical luminance.
//
// Parameters:
//   - luminance: the luminance in lumens
//
// Returns:
//   - LightBuilderOption: a function that applies the luminance option to a lightImpl
func WithLuminance(luminance float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.luminance = luminance
	}
}

// WithRange is an option builder that sets the maximum attenuation distance for
// omni and spot lights.
//
// Parameters:
//   - lightRange: the range value
//
// Returns:
//   - LightBuilderOption: a function that applies the range option to a lightImpl
func WithRange(lightRange float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.range_ = lightRange
	}
}

// WithSpotCone is an option builder that sets the inner and outer cone half-angles of a
// spot light, in degrees.
//
// Parameters:
//   - innerDeg: the inner half-angle where attenuation begins
//   - outerDeg: the outer half-angle where the light reaches zero
//
// Returns:
//   - LightBuilderOption: a function that applies the cone option to a lightImpl
func WithSpotCone(innerDeg, outerDeg float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.innerDeg = innerDeg
		l.outerDeg = outerDeg
	}
}

// WithShape is an option builder that sets the emitter shape.
//
// Parameters:
//   - shape: the emitter shape
//
// Returns:
//   - LightBuilderOption: a function that applies the shape option to a lightImpl
func WithShape(shape LightShape) LightBuilderOption {
	return func(l *lightImpl) {
		l.shape = shape
	}
}

// WithEnabled is an option builder that sets whether the light is active.
//
// Parameters:
//   - enabled: true to enable the light
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

// WithStatic is an option builder that marks the light static. Static lights are listed
// privately by the static draw calls they affect.
//
// Parameters:
//   - static: true for a static light
//
// Returns:
//   - LightBuilderOption: a function that applies the static option to a lightImpl
func WithStatic(static bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.static = static
	}
}

// WithMask is an option builder that sets the light mask.
//
// Parameters:
//   - mask: a combination of MaskAffectDynamic, MaskAffectLightmapped and MaskBake
//
// Returns:
//   - LightBuilderOption: a function that applies the mask option to a lightImpl
func WithMask(mask uint32) LightBuilderOption {
	return func(l *lightImpl) {
		l.mask = mask
	}
}

// WithShadows is an option builder that enables shadow casting with the given resolution,
// depth bias and normal bias.
//
// Parameters:
//   - resolution: the shadow map resolution in texels
//   - bias: the constant depth bias
//   - normalBias: the normal-offset bias
//
// Returns:
//   - LightBuilderOption: a function that applies the shadow options to a lightImpl
func WithShadows(resolution int, bias, normalBias float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.castsShadows = true
		l.shadowResolution = resolution
		l.shadowBias = bias
		l.normalBias = normalBias
	}
}

// WithShadowIntensity is an option builder that sets the shadow darkening factor.
//
// Parameters:
//   - intensity: the factor in [0, 1]
//
// Returns:
//   - LightBuilderOption: a function that applies the shadow intensity option to a lightImpl
func WithShadowIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.shadowIntensity = intensity
	}
}

// WithPenumbraSize is an option builder that sets the soft-shadow penumbra size.
//
// Parameters:
//   - size: the penumbra size
//
// Returns:
//   - LightBuilderOption: a function that applies the penumbra option to a lightImpl
func WithPenumbraSize(size float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.penumbraSize = size
	}
}

// WithCascades is an option builder that sets the directional cascade count and split
// distribution. The count is clamped to [1, MaxCascades].
//
// Parameters:
//   - count: the number of cascades
//   - distribution: 0 for linear splits, 1 for logarithmic
//
// Returns:
//   - LightBuilderOption: a function that applies the cascade options to a lightImpl
func WithCascades(count int, distribution float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.numCascades = min(max(count, 1), MaxCascades)
		l.cascadeDistribution = distribution
	}
}

// WithCookie is an option builder that sets a projected cookie texture.
//
// Parameters:
//   - tex: the cookie texture (a cubemap for omni lights)
//   - intensity: the modulation strength
//   - channel: the sampled channels, "rgb" or a single channel name
//
// Returns:
//   - LightBuilderOption: a function that applies the cookie options to a lightImpl
func WithCookie(tex device.Texture, intensity float32, channel string) LightBuilderOption {
	return func(l *lightImpl) {
		l.cookie = tex
		l.cookieIntensity = intensity
		if channel != "" {
			l.cookieChannel = channel
		}
	}
}

// WithCookieTransform is an option builder that sets the cookie 2x2 transform and offset.
//
// Parameters:
//   - transform: the transform packed as (m00, m01, m10, m11)
//   - offset: the texture offset
//
// Returns:
//   - LightBuilderOption: a function that applies the cookie transform to a lightImpl
func WithCookieTransform(transform mgl32.Vec4, offset mgl32.Vec2) LightBuilderOption {
	return func(l *lightImpl) {
		l.cookieTransform = transform
		l.cookieOffset = offset
	}
}
