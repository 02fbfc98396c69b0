// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Viewport is a pixel rectangle on a render target.
type Viewport struct {
	// X and Y are the top-left corner in pixels.
	X, Y float32
	// Width and Height are the rectangle size in pixels.
	Width, Height float32
}

// Empty reports whether the viewport covers no pixels.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Scaled returns the viewport expressed as normalized rectangle fractions applied to a target
// of the given pixel size. Used when cameras store their rect as [0, 1] fractions.
//
// Parameters:
//   - width: target width in pixels
//   - height: target height in pixels
//
// Returns:
//   - Viewport: the pixel-space viewport
func (v Viewport) Scaled(width, height int) Viewport {
	return Viewport{
		X:      v.X * float32(width),
		Y:      v.Y * float32(height),
		Width:  v.Width * float32(width),
		Height: v.Height * float32(height),
	}
}
