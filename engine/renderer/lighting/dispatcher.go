package lighting

import (
	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/camera"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Dispatcher writes scene and light values into the fixed light uniform namespace.
//
// Slots are assigned in a fixed order that compiled shader variants rely on: directionals
// first, then dynamic omnis, static omnis, dynamic spots and static spots.
type Dispatcher struct {
	slots *Slots

	ambient         device.Uniform
	skyboxIntensity device.Uniform
	skyboxRotation  device.Uniform
	exposure        device.Uniform
}

// NewDispatcher creates a Dispatcher resolving its uniforms from dev.
//
// Parameters:
//   - dev: the device the uniforms belong to
//
// Returns:
//   - *Dispatcher: the dispatcher
func NewDispatcher(dev device.Device) *Dispatcher {
	return &Dispatcher{
		slots:           NewSlots(dev),
		ambient:         dev.Resolve("light_globalAmbient"),
		skyboxIntensity: dev.Resolve("skyboxIntensity"),
		skyboxRotation:  dev.Resolve("cubeMapRotationMatrix"),
		exposure:        dev.Resolve("exposure"),
	}
}

// Slots returns the slot arena.
func (d *Dispatcher) Slots() *Slots {
	return d.slots
}

// DispatchGlobal writes the ambient color, skybox intensity and rotation, and exposure.
//
// Parameters:
//   - s: the scene settings
func (d *Dispatcher) DispatchGlobal(s scene.Settings) {
	ambient := common.Linearize(s.AmbientColor, s.GammaCorrection)
	if s.PhysicalUnits {
		ambient = ambient.Mul(s.AmbientLuminance)
	}
	d.ambient.SetValue(ambient)

	if s.PhysicalUnits {
		d.skyboxIntensity.SetValue(s.SkyboxLuminance)
	} else {
		d.skyboxIntensity.SetValue(s.SkyboxIntensity)
	}
	d.skyboxRotation.SetValue(s.SkyboxRotationMatrix())
	d.exposure.SetValue(s.Exposure)
}

// DispatchDirectional writes every directional light intersecting mask, in list order,
// into consecutive slots starting at 0.
//
// Parameters:
//   - dirs: the frame's directional lights
//   - s: the scene settings
//   - mask: the draw call's light mask
//   - cam: the camera rendering the draw call; shadow data and area shapes depend on it
//
// Returns:
//   - int: the number of slots written
func (d *Dispatcher) DispatchDirectional(dirs []light.Light, s scene.Settings, mask uint32, cam camera.Camera) int {
	n := 0
	for _, l := range dirs {
		if l.Mask()&mask == 0 {
			continue
		}
		sl := d.slots.at(n, l)
		world := l.WorldTransform()
		dir := l.Direction()

		sl.color.SetValue(finalColor(l, s))
		// shaders expect the vector pointing towards the light
		sl.direction.SetValue(dir.Mul(-1))

		if l.Shape() != light.LightShapePunctual && cam != nil {
			// area directionals are approximated by a disk placed at the far clip
			far := cam.Far()
			sl.position.SetValue(cam.Position().Sub(dir.Mul(far)))
			sl.halfWidth.SetValue(world.Mul4x1(mgl32.Vec4{-0.5, 0, 0, 0}).Vec3().Mul(far))
			sl.halfHeight.SetValue(world.Mul4x1(mgl32.Vec4{0, 0, 0.5, 0}).Vec3().Mul(far))
		}

		if l.CastsShadows() {
			if sd, ok := l.ShadowData(cam); ok {
				sl.shadowMap.SetValue(sd.Map)
				sl.shadowMatrix.SetValue(sd.Matrix)
				sl.shadowMatrixPalette.SetValue(sd.Palette)
				sl.shadowCascadeDistances.SetValue(sd.Distances)
				sl.shadowCascadeCount.SetValue(l.NumCascades())
				sl.shadowParams.SetValue(light.ShadowParams(l))
				sl.shadowIntensity.SetValue(l.ShadowIntensity())
				sl.shadowSearchArea.SetValue(searchArea(l, sd))
			} else {
				common.Logger().Debug("directional light has no shadow data for camera", "light", l.Name())
			}
		}
		n++
	}
	return n
}

// DispatchLocal writes the local lights affecting a draw call into consecutive slots
// starting at start: dynamic omnis, static omnis, dynamic spots, static spots.
//
// Parameters:
//   - sets: the frame's lights; dynamic locals are taken from it
//   - static: the draw call's static light list
//   - s: the scene settings
//   - mask: the draw call's light mask
//   - start: the first free slot, the directional count
//
// Returns:
//   - int: the number of slots written
func (d *Dispatcher) DispatchLocal(sets light.Sets, static []light.Light, s scene.Settings, mask uint32, start int) int {
	n := start
	for l := range light.LocalSequence(sets, static, mask) {
		sl := d.slots.at(n, l)
		if l.Type() == light.LightTypeSpot {
			d.writeSpot(sl, l, s)
		} else {
			d.writeOmni(sl, l, s)
		}
		n++
	}
	return n - start
}

func (d *Dispatcher) writeOmni(sl *slot, l light.Light, s scene.Settings) {
	sl.color.SetValue(finalColor(l, s))
	sl.radius.SetValue(l.Range())
	sl.position.SetValue(l.Position())
	writeAreaShape(sl, l)

	if l.CastsShadows() {
		if sd, ok := l.ShadowData(nil); ok {
			sl.shadowMap.SetValue(sd.Map)
			sl.shadowParams.SetValue(light.ShadowParams(l))
			sl.shadowIntensity.SetValue(l.ShadowIntensity())
			sl.shadowSearchArea.SetValue(searchArea(l, sd))
		}
	}
	if l.Cookie() != nil {
		// omni cookies are cubemaps oriented by the light transform
		sl.cookie.SetValue(l.Cookie())
		sl.cookieMatrix.SetValue(l.WorldTransform())
		sl.cookieIntensity.SetValue(l.CookieIntensity())
	}
}

func (d *Dispatcher) writeSpot(sl *slot, l light.Light, s scene.Settings) {
	sl.color.SetValue(finalColor(l, s))
	sl.radius.SetValue(l.Range())
	sl.position.SetValue(l.Position())
	sl.direction.SetValue(l.Direction().Mul(-1))
	writeAreaShape(sl, l)

	var shadowMatrix mgl32.Mat4
	shadowed := false
	if l.CastsShadows() {
		if sd, ok := l.ShadowData(nil); ok {
			shadowed = true
			shadowMatrix = sd.Matrix
			sl.shadowMap.SetValue(sd.Map)
			sl.shadowMatrix.SetValue(sd.Matrix)
			sl.shadowParams.SetValue(light.ShadowParams(l))
			sl.shadowIntensity.SetValue(l.ShadowIntensity())
			sl.shadowSearchArea.SetValue(searchArea(l, sd))
		}
	}

	if l.Cookie() != nil {
		if !shadowed {
			shadowMatrix = common.SpotProjectionMatrix(l.WorldTransform(), l.OuterConeAngle(), light.DefaultShadowNear, l.Range())
		}
		sl.cookie.SetValue(l.Cookie())
		sl.cookieMatrix.SetValue(shadowMatrix)
		sl.cookieIntensity.SetValue(l.CookieIntensity())
		sl.cookieTransform.SetValue(l.CookieTransform())
		sl.cookieOffset.SetValue(l.CookieOffset())
	}

	sl.innerCone.SetValue(l.InnerCone())
	sl.outerCone.SetValue(l.OuterCone())
}

func writeAreaShape(sl *slot, l light.Light) {
	if l.Shape() == light.LightShapePunctual {
		return
	}
	world := l.WorldTransform()
	sl.halfWidth.SetValue(world.Mul4x1(mgl32.Vec4{-0.5, 0, 0, 0}).Vec3())
	sl.halfHeight.SetValue(world.Mul4x1(mgl32.Vec4{0, 0, 0.5, 0}).Vec3())
}

// finalColor is the light color in shader space: linearized under gamma correction and
// scaled by luminance in physical-units mode, by intensity otherwise.
func finalColor(l light.Light, s scene.Settings) mgl32.Vec3 {
	c := common.Linearize(l.Color(), s.GammaCorrection)
	if s.PhysicalUnits {
		return c.Mul(l.Luminance())
	}
	return c.Mul(l.Intensity())
}

// searchArea is the PCSS blocker search radius in shadow map UV space.
func searchArea(l light.Light, sd light.ShadowData) float32 {
	res := sd.Resolution
	if res <= 0 {
		res = l.ShadowResolution()
	}
	if res <= 0 {
		return 0
	}
	return l.PenumbraSize() / float32(res)
}
