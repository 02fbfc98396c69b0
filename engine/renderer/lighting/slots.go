package lighting

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
)

// slot holds the uniform handles of one light slot. Slot n resolves "light{n}_*" names.
type slot struct {
	color      device.Uniform
	direction  device.Uniform
	position   device.Uniform
	radius     device.Uniform
	innerCone  device.Uniform
	outerCone  device.Uniform
	halfWidth  device.Uniform
	halfHeight device.Uniform

	shadowMap              device.Uniform
	shadowMatrix           device.Uniform
	shadowParams           device.Uniform
	shadowIntensity        device.Uniform
	shadowSearchArea       device.Uniform
	shadowCascadeCount     device.Uniform
	shadowCascadeDistances device.Uniform
	shadowMatrixPalette    device.Uniform

	cookie          device.Uniform
	cookieIntensity device.Uniform
	cookieMatrix    device.Uniform
	cookieTransform device.Uniform
	cookieOffset    device.Uniform
}

func resolveSlot(dev device.Device, n int) slot {
	name := func(field string) device.Uniform {
		return dev.Resolve(fmt.Sprintf("light%d_%s", n, field))
	}
	return slot{
		color:                  name("color"),
		direction:              name("direction"),
		position:               name("position"),
		radius:                 name("radius"),
		innerCone:              name("innerConeAngle"),
		outerCone:              name("outerConeAngle"),
		halfWidth:              name("halfWidth"),
		halfHeight:             name("halfHeight"),
		shadowMap:              name("shadowMap"),
		shadowMatrix:           name("shadowMatrix"),
		shadowParams:           name("shadowParams"),
		shadowIntensity:        name("shadowIntensity"),
		shadowSearchArea:       name("shadowSearchArea"),
		shadowCascadeCount:     name("shadowCascadeCount"),
		shadowCascadeDistances: name("shadowCascadeDistances"),
		shadowMatrixPalette:    name("shadowMatrixPalette"),
		cookie:                 name("cookie"),
		cookieIntensity:        name("cookieIntensity"),
		cookieMatrix:           name("cookieMatrix"),
		cookieTransform:        name("cookieMatrixTransform"),
		cookieOffset:           name("cookieOffset"),
	}
}

// Slots is the light uniform arena. Slot handles are resolved on first use and kept for
// the lifetime of the device; slot n always maps to the same names.
type Slots struct {
	dev   device.Device
	slots []slot
	// lights records the light last written to each slot.
	lights []light.Light
}

// NewSlots creates an empty arena resolving handles from dev.
//
// Parameters:
//   - dev: the device the uniforms belong to
//
// Returns:
//   - *Slots: the arena
func NewSlots(dev device.Device) *Slots {
	return &Slots{dev: dev}
}

// EnsureCapacity resolves handles until at least n slots exist. It never shrinks.
//
// Parameters:
//   - n: the required slot count
func (s *Slots) EnsureCapacity(n int) {
	for i := len(s.slots); i < n; i++ {
		s.slots = append(s.slots, resolveSlot(s.dev, i))
		s.lights = append(s.lights, nil)
	}
}

// Capacity returns the number of resolved slots.
func (s *Slots) Capacity() int {
	return len(s.slots)
}

// Light returns the light last written to slot n, or nil.
//
// Parameters:
//   - n: the slot index
//
// Returns:
//   - light.Light: the light
func (s *Slots) Light(n int) light.Light {
	if n < 0 || n >= len(s.lights) {
		return nil
	}
	return s.lights[n]
}

func (s *Slots) at(n int, l light.Light) *slot {
	s.EnsureCapacity(n + 1)
	s.lights[n] = l
	return &s.slots[n]
}
