package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Perspective creates a perspective projection matrix mapping depth into the WebGPU
// clip range [0, 1] (mgl32.Perspective targets the OpenGL [-1, 1] range).
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / math32.Tan(fovY/2.0)
	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// clipToTexture remaps clip-space xy in [-1, 1] to texture space [0, 1] with v pointing down.
var clipToTexture = mgl32.Mat4{
	0.5, 0, 0, 0,
	0, -0.5, 0, 0,
	0, 0, 1, 0,
	0.5, 0.5, 0, 1,
}

// SpotProjectionMatrix derives the texture-space projection of a spot light cone from the
// light's world transform. Spot lights emit along their local -Y axis, so the light
// camera is rotated to look down local -Y before inverting. The result is used both for
// cookie projection (even when the light has no shadow pass) and as the fallback shadow
// matrix basis.
//
// Parameters:
//   - world: the light's world transform
//   - outerConeDeg: the outer cone half-angle in degrees
//   - near: the light camera near plane
//   - far: the light camera far plane (the attenuation range)
//
// Returns:
//   - mgl32.Mat4: world-space to cookie texture-space matrix
func SpotProjectionMatrix(world mgl32.Mat4, outerConeDeg, near, far float32) mgl32.Mat4 {
	lookDown := mgl32.HomogRotate3DX(-math32.Pi / 2)
	view := world.Mul4(lookDown).Inv()
	proj := Perspective(mgl32.DegToRad(outerConeDeg*2), 1, near, far)
	return clipToTexture.Mul4(proj).Mul4(view)
}

// LightDirection returns the normalized emission direction of a light from its world
// transform: the local -Y axis.
//
// Parameters:
//   - world: the light's world transform
//
// Returns:
//   - mgl32.Vec3: the normalized direction, or the zero vector for a degenerate transform
func LightDirection(world mgl32.Mat4) mgl32.Vec3 {
	d := world.Col(1).Vec3().Mul(-1)
	if d.Len() == 0 {
		return mgl32.Vec3{}
	}
	return d.Normalize()
}

// Linearize converts an sRGB-ish color to linear space using the squared approximation of
// the 2.2 gamma curve. The color is returned unchanged when gammaCorrect is false.
//
// Parameters:
//   - c: the color to convert
//   - gammaCorrect: whether the scene renders with gamma correction
//
// Returns:
//   - mgl32.Vec3: the converted color
func Linearize(c mgl32.Vec3, gammaCorrect bool) mgl32.Vec3 {
	if !gammaCorrect {
		return c
	}
	return mgl32.Vec3{c[0] * c[0], c[1] * c[1], c[2] * c[2]}
}

// NormalMatrix computes the inverse-transpose of the upper 3x3 of a model matrix.
//
// Parameters:
//   - model: the model matrix
//
// Returns:
//   - mgl32.Mat3: the normal matrix, or the identity for a singular model matrix
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	m := model.Mat3()
	if math32.Abs(m.Det()) < 1e-12 {
		return mgl32.Ident3()
	}
	return m.Inv().Transpose()
}

// Orthographic creates an orthographic projection matrix mapping depth into the WebGPU
// clip range [0, 1].
//
// Parameters:
//   - halfHeight: half the vertical extent of the view volume
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Orthographic(halfHeight, aspect, near, far float32) mgl32.Mat4 {
	halfWidth := halfHeight * aspect
	var out mgl32.Mat4
	out[0] = 1 / halfWidth
	out[5] = 1 / halfHeight
	out[10] = 1 / (near - far)
	out[14] = near / (near - far)
	out[15] = 1
	return out
}
