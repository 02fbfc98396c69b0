package light

import (
	"encoding/binary"
	"hash/fnv"
	"iter"
)

// Sets holds the frame's enabled lights split by type, each in scene order.
type Sets struct {
	Directional []Light
	Omni        []Light
	Spot        []Light
}

// Split partitions the enabled lights by type, preserving order.
//
// Parameters:
//   - lights: the candidate lights
//
// Returns:
//   - Sets: the lights split by type
func Split(lights []Light) Sets {
	var s Sets
	for _, l := range lights {
		if l == nil || !l.Enabled() {
			continue
		}
		switch l.Type() {
		case LightTypeDirectional:
			s.Directional = append(s.Directional, l)
		case LightTypeOmni:
			s.Omni = append(s.Omni, l)
		case LightTypeSpot:
			s.Spot = append(s.Spot, l)
		}
	}
	return s
}

// All returns every light in the set in slot order: directionals, omnis, spots.
func (s Sets) All() []Light {
	out := make([]Light, 0, len(s.Directional)+len(s.Omni)+len(s.Spot))
	out = append(out, s.Directional...)
	out = append(out, s.Omni...)
	return append(out, s.Spot...)
}

// Len returns the number of lights in the set.
func (s Sets) Len() int {
	return len(s.Directional) + len(s.Omni) + len(s.Spot)
}

// LocalSequence yields the local lights affecting a draw call in uniform slot order:
// dynamic omnis, static omnis, dynamic spots, static spots.
//
// Dynamic lights come from the frame sets, skip static lights and must intersect mask.
// Static lights come from the draw call's own list and are yielded as given.
//
// Parameters:
//   - dynamic: the frame's light sets
//   - static: the draw call's private static light list
//   - mask: the draw call's light mask
//
// Returns:
//   - iter.Seq[Light]: the ordered sequence
func LocalSequence(dynamic Sets, static []Light, mask uint32) iter.Seq[Light] {
	return func(yield func(Light) bool) {
		for _, t := range [...]LightType{LightTypeOmni, LightTypeSpot} {
			src := dynamic.Omni
			if t == LightTypeSpot {
				src = dynamic.Spot
			}
			for _, l := range src {
				if l.Static() || l.Mask()&mask == 0 {
					continue
				}
				if !yield(l) {
					return
				}
			}
			for _, l := range static {
				if l.Type() != t {
					continue
				}
				if !yield(l) {
					return
				}
			}
		}
	}
}

// Hash returns an order-sensitive FNV-1a hash of the lights' shader keys. An empty list
// hashes to 0.
//
// Parameters:
//   - lights: the lights affecting a shader variant
//
// Returns:
//   - uint64: the light hash
func Hash(lights []Light) uint64 {
	if len(lights) == 0 {
		return 0
	}
	h := fnv.New64a()
	var buf [8]byte
	for _, l := range lights {
		binary.LittleEndian.PutUint64(buf[:], l.Key())
		h.Write(buf[:])
	}
	return h.Sum64()
}
