package renderpass

// SampleCount is the number of samples used for multisample anti-aliasing of a pass target.
// Only specific power-of-two values are valid for GPU hardware. WebGPU guarantees support for
// 1 (off) and 4; higher values (8, 16) are adapter-dependent and may not be available.
type SampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff SampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing.
	MSAA4x SampleCount = 4

	// MSAA8x enables 8× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA8x SampleCount = 8

	// MSAA16x enables 16× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA16x SampleCount = 16
)

// SampleCountOf clamps an arbitrary sample count to the nearest supported value at or below it.
//
// Parameters:
//   - n: the requested sample count
//
// Returns:
//   - SampleCount: the supported sample count
func SampleCountOf(n int) SampleCount {
	switch {
	case n >= 16:
		return MSAA16x
	case n >= 8:
		return MSAA8x
	case n >= 4:
		return MSAA4x
	default:
		return MSAAOff
	}
}
