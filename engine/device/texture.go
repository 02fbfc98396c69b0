package device

// texture is a plain Texture description used by recorders and by engine code that needs a
// handle before the backend allocates storage.
type texture struct {
	name          string
	width, height int
	cubemap       bool
}

func (t *texture) Name() string  { return t.name }
func (t *texture) Width() int    { return t.width }
func (t *texture) Height() int   { return t.height }
func (t *texture) Cubemap() bool { return t.cubemap }

// NewTexture creates a 2D texture description.
//
// Parameters:
//   - name: the texture name
//   - width, height: the size in texels
//
// Returns:
//   - Texture: the texture handle
func NewTexture(name string, width, height int) Texture {
	return &texture{name: name, width: width, height: height}
}

// NewCubemap creates a cubemap texture description with square faces.
//
// Parameters:
//   - name: the texture name
//   - size: the face size in texels
//
// Returns:
//   - Texture: the texture handle
func NewCubemap(name string, size int) Texture {
	return &texture{name: name, width: size, height: size, cubemap: true}
}

// renderTarget is a plain RenderTarget description.
type renderTarget struct {
	name          string
	width, height int
	samples       int
	color, depth  Texture
}

func (r *renderTarget) Name() string         { return r.name }
func (r *renderTarget) Width() int           { return r.width }
func (r *renderTarget) Height() int          { return r.height }
func (r *renderTarget) Samples() int         { return r.samples }
func (r *renderTarget) ColorBuffer() Texture { return r.color }
func (r *renderTarget) DepthBuffer() Texture { return r.depth }

// NewRenderTarget creates a render target description with a color and a depth attachment.
//
// Parameters:
//   - name: the target name
//   - width, height: the size in pixels
//   - samples: the MSAA sample count (values below 1 are treated as 1)
//
// Returns:
//   - RenderTarget: the render target handle
func NewRenderTarget(name string, width, height, samples int) RenderTarget {
	return &renderTarget{
		name:    name,
		width:   width,
		height:  height,
		samples: max(samples, 1),
		color:   NewTexture(name+"-color", width, height),
		depth:   NewTexture(name+"-depth", width, height),
	}
}
