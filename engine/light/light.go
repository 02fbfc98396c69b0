package light

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun or moon. Affects all fragments
	// uniformly with no distance attenuation.
	LightTypeDirectional LightType = iota

	// LightTypeOmni represents a light that emits in all directions from a position.
	// Attenuates with distance up to a configurable range.
	LightTypeOmni

	// LightTypeSpot represents a light that emits in a cone from a position along its
	// local -Y axis. Attenuates with both distance and angle from the cone axis.
	LightTypeSpot
)

func (t LightType) String() string {
	switch t {
	case LightTypeDirectional:
		return "directional"
	case LightTypeOmni:
		return "omni"
	case LightTypeSpot:
		return "spot"
	default:
		return "unknown"
	}
}

// LightShape identifies the emitting surface of an area light.
type LightShape int

const (
	// LightShapePunctual is an infinitely small emitter.
	LightShapePunctual LightShape = iota
	// LightShapeRect is a rectangular emitter sized by the light's local X/Z scale.
	LightShapeRect
	// LightShapeDisk is a disk emitter sized by the light's local X/Z scale.
	LightShapeDisk
	// LightShapeSphere is a spherical emitter.
	LightShapeSphere
)

// Light masks select which draw calls a light affects.
const (
	// MaskAffectDynamic affects dynamic (non-lightmapped) draw calls.
	MaskAffectDynamic uint32 = 1
	// MaskAffectLightmapped affects lightmapped draw calls at runtime.
	MaskAffectLightmapped uint32 = 2
	// MaskBake contributes only to lightmap baking.
	MaskBake uint32 = 4
)

// lightIDs generates unique light identifiers.
var lightIDs atomic.Uint64

// ShadowData is the per-frame output of the shadow subsystem for one light (and, for
// directional lights, one camera). The dispatcher only reads it.
type ShadowData struct {
	// Map is the shadow map texture.
	Map device.Texture
	// Matrix transforms world space into shadow map space (first cascade for directionals).
	Matrix mgl32.Mat4
	// Palette holds one matrix per cascade.
	Palette [MaxCascades]mgl32.Mat4
	// Distances holds the far split distance of each cascade.
	Distances [MaxCascades]float32
	// Resolution is the shadow map width in texels.
	Resolution int
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	id        uint64
	name      string
	lightType LightType
	shape     LightShape
	world     mgl32.Mat4
	color     mgl32.Vec3
	intensity float32
	luminance float32
	range_    float32
	innerDeg  float32
	outerDeg  float32
	enabled   bool
	static    bool
	visible   bool
	mask      uint32

	castsShadows        bool
	shadowIntensity     float32
	shadowBias          float32
	normalBias          float32
	shadowResolution    int
	penumbraSize        float32
	numCascades         int
	cascadeDistribution float32

	cookie          device.Texture
	cookieIntensity float32
	cookieChannel   string
	cookieTransform mgl32.Vec4
	cookieOffset    mgl32.Vec2

	shadowData map[any]ShadowData
}

// Light defines the interface for a light source in the scene.
//
// Lights are scene-level entities. All light types (directional, omni, spot) share this
// interface; type-specific properties (e.g. cone angles for spot lights) are ignored when
// not applicable. Light orientation comes from the world transform maintained by the scene
// graph: lights emit along their local -Y axis.
type Light interface {
	// ID returns the unique identifier of the light.
	//
	// Returns:
	//   - uint64: the light id
	ID() uint64

	// Name returns the light name used in logs.
	//
	// Returns:
	//   - string: the light name
	Name() string

	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (directional, omni, or spot)
	Type() LightType

	// Shape returns the emitting surface shape.
	//
	// Returns:
	//   - LightShape: punctual, rect, disk or sphere
	Shape() LightShape

	// WorldTransform returns the light's world matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the world transform
	WorldTransform() mgl32.Mat4

	// Position returns the world-space position of the light.
	// Meaningless for directional lights.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Direction returns the normalized emission direction: the local -Y axis of the world
	// transform. Meaningless for omni lights.
	//
	// Returns:
	//   - mgl32.Vec3: the direction
	Direction() mgl32.Vec3

	// Color returns the RGB color of the light in gamma space.
	//
	// Returns:
	//   - mgl32.Vec3: the color
	Color() mgl32.Vec3

	// Intensity returns the scalar intensity multiplier used in non-physical mode.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Luminance returns the physical luminance used when the scene renders in physical units.
	//
	// Returns:
	//   - float32: the luminance in lumens
	Luminance() float32

	// Range returns the attenuation radius for omni and spot lights.
	//
	// Returns:
	//   - float32: the range value
	Range() float32

	// InnerConeAngle returns the inner cone half-angle of spot lights in degrees.
	//
	// Returns:
	//   - float32: the inner half-angle
	InnerConeAngle() float32

	// OuterConeAngle returns the outer cone half-angle of spot lights in degrees.
	//
	// Returns:
	//   - float32: the outer half-angle
	OuterConeAngle() float32

	// InnerCone returns the cosine of the inner cone half-angle, the form shaders consume.
	//
	// Returns:
	//   - float32: cos(inner half-angle)
	InnerCone() float32

	// OuterCone returns the cosine of the outer cone half-angle, the form shaders consume.
	//
	// Returns:
	//   - float32: cos(outer half-angle)
	OuterCone() float32

	// Enabled returns whether this light is active for rendering.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// Static returns whether the light is baked into static draw calls' private light lists.
	//
	// Returns:
	//   - bool: true if static
	Static() bool

	// Visible returns whether the light passed visibility culling this frame.
	//
	// Returns:
	//   - bool: true if visible
	Visible() bool

	// Mask returns the light mask intersected with draw call masks.
	//
	// Returns:
	//   - uint32: the mask bits
	Mask() uint32

	// CastsShadows returns whether this light renders a shadow map.
	//
	// Returns:
	//   - bool: true if the light casts shadows
	CastsShadows() bool

	// ShadowIntensity returns the shadow darkening factor in [0, 1].
	ShadowIntensity() float32

	// ShadowBias returns the constant depth bias of shadow comparisons.
	ShadowBias() float32

	// NormalBias returns the normal-offset bias of shadow lookups.
	NormalBias() float32

	// ShadowResolution returns the shadow map resolution in texels.
	ShadowResolution() int

	// PenumbraSize returns the soft-shadow penumbra size used by PCSS filtering.
	PenumbraSize() float32

	// NumCascades returns the number of directional shadow cascades (1 to MaxCascades).
	NumCascades() int

	// CascadeDistribution returns the blend between linear (0) and logarithmic (1) cascade splits.
	CascadeDistribution() float32

	// Cookie returns the projected cookie texture, or nil.
	Cookie() device.Texture

	// CookieIntensity returns the cookie modulation strength.
	CookieIntensity() float32

	// CookieChannel returns the texture channels sampled from the cookie ("rgb", "a", ...).
	CookieChannel() string

	// CookieTransform returns the cookie 2x2 transform packed as (m00, m01, m10, m11).
	CookieTransform() mgl32.Vec4

	// CookieOffset returns the cookie texture offset.
	CookieOffset() mgl32.Vec2

	// ShadowData returns the shadow subsystem output for the given key. Directional lights
	// key by camera; local lights use a nil key.
	//
	// Parameters:
	//   - key: the camera for directional lights, nil otherwise
	//
	// Returns:
	//   - ShadowData: the shadow data
	//   - bool: false if no shadow was rendered for key this frame
	ShadowData(key any) (ShadowData, bool)

	// Key returns a hash of every property that changes shader code generated for the light.
	//
	// Returns:
	//   - uint64: the light shader key
	Key() uint64

	SetWorldTransform(m mgl32.Mat4)
	SetColor(r, g, b float32)
	SetIntensity(intensity float32)
	SetRange(lightRange float32)
	SetSpotCone(innerDeg, outerDeg float32)
	SetEnabled(enabled bool)
	SetVisible(visible bool)
	SetMask(mask uint32)
	SetCastsShadows(castsShadows bool)
	SetCookie(tex device.Texture)

	// SetShadowData stores the shadow subsystem output for key. Called by the shadow renderer.
	SetShadowData(key any, d ShadowData)

	// ClearShadowData drops all shadow outputs; called at the start of each frame.
	ClearShadowData()
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (directional, omni, or spot)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		id:                  lightIDs.Add(1),
		lightType:           lightType,
		world:               mgl32.Ident4(),
		color:               mgl32.Vec3{1, 1, 1},
		intensity:           1.0,
		luminance:           0,
		range_:              10.0,
		innerDeg:            25,
		outerDeg:            35,
		enabled:             true,
		visible:             true,
		mask:                MaskAffectDynamic,
		shadowIntensity:     1,
		shadowBias:          DefaultShadowBias,
		normalBias:          DefaultNormalBias,
		shadowResolution:    DefaultShadowResolution,
		penumbraSize:        1,
		numCascades:         1,
		cascadeDistribution: 0.5,
		cookieIntensity:     1,
		cookieChannel:       "rgb",
		cookieTransform:     mgl32.Vec4{1, 0, 0, 1},
		shadowData:          make(map[any]ShadowData),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.name = common.Coalesce(l.name, l.lightType.String())
	return l
}

func (l *lightImpl) ID() uint64 {
	return l.id
}

func (l *lightImpl) Name() string {
	return l.name
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Shape() LightShape {
	return l.shape
}

func (l *lightImpl) WorldTransform() mgl32.Mat4 {
	return l.world
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.world.Col(3).Vec3()
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	return common.LightDirection(l.world)
}

func (l *lightImpl) Color() mgl32.Vec3 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Luminance() float32 {
	return l.luminance
}

func (l *lightImpl) Range() float32 {
	return l.range_
}

func (l *lightImpl) InnerConeAngle() float32 {
	return l.innerDeg
}

func (l *lightImpl) OuterConeAngle() float32 {
	return l.outerDeg
}

func (l *lightImpl) InnerCone() float32 {
	return cosDeg(l.innerDeg)
}

func (l *lightImpl) OuterCone() float32 {
	return cosDeg(l.outerDeg)
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) Static() bool {
	return l.static
}

func (l *lightImpl) Visible() bool {
	return l.visible
}

func (l *lightImpl) Mask() uint32 {
	return l.mask
}

func (l *lightImpl) CastsShadows() bool {
	return l.castsShadows
}

func (l *lightImpl) ShadowIntensity() float32 {
	return l.shadowIntensity
}

func (l *lightImpl) ShadowBias() float32 {
	return l.shadowBias
}

func (l *lightImpl) NormalBias() float32 {
	return l.normalBias
}

func (l *lightImpl) ShadowResolution() int {
	return l.shadowResolution
}

func (l *lightImpl) PenumbraSize() float32 {
	return l.penumbraSize
}

func (l *lightImpl) NumCascades() int {
	return l.numCascades
}

func (l *lightImpl) CascadeDistribution() float32 {
	return l.cascadeDistribution
}

func (l *lightImpl) Cookie() device.Texture {
	return l.cookie
}

func (l *lightImpl) CookieIntensity() float32 {
	return l.cookieIntensity
}

func (l *lightImpl) CookieChannel() string {
	return l.cookieChannel
}

func (l *lightImpl) CookieTransform() mgl32.Vec4 {
	return l.cookieTransform
}

func (l *lightImpl) CookieOffset() mgl32.Vec2 {
	return l.cookieOffset
}

func (l *lightImpl) ShadowData(key any) (ShadowData, bool) {
	d, ok := l.shadowData[key]
	return d, ok
}

func (l *lightImpl) Key() uint64 {
	// bit layout: type(2) shape(2) shadows(1) cookie(1) static(1) cascades(3) channel-alpha(1)
	k := uint64(l.lightType) | uint64(l.shape)<<2
	if l.castsShadows {
		k |= 1 << 4
	}
	if l.cookie != nil {
		k |= 1 << 5
	}
	if l.static {
		k |= 1 << 6
	}
	k |= uint64(l.numCascades&7) << 7
	if l.cookieChannel == "a" {
		k |= 1 << 10
	}
	return k
}

func (l *lightImpl) SetWorldTransform(m mgl32.Mat4) {
	l.world = m
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = mgl32.Vec3{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetRange(lightRange float32) {
	l.range_ = lightRange
}

func (l *lightImpl) SetSpotCone(innerDeg, outerDeg float32) {
	l.innerDeg = innerDeg
	l.outerDeg = outerDeg
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *lightImpl) SetVisible(visible bool) {
	l.visible = visible
}

func (l *lightImpl) SetMask(mask uint32) {
	l.mask = mask
}

func (l *lightImpl) SetCastsShadows(castsShadows bool) {
	l.castsShadows = castsShadows
}

func (l *lightImpl) SetCookie(tex device.Texture) {
	l.cookie = tex
}

func (l *lightImpl) SetShadowData(key any, d ShadowData) {
	l.shadowData[key] = d
}

func (l *lightImpl) ClearShadowData() {
	clear(l.shadowData)
}

// cosDeg converts an angle in degrees to the cosine of that angle.
func cosDeg(deg float32) float32 {
	return math32.Cos(mgl32.DegToRad(deg))
}
