package framegraph

// FrameGraphBuilderOption is a function that configures a Builder during construction.
type FrameGraphBuilderOption func(*Builder)

// WithShadowRenderer sets the shadow map collaborator. Without one no shadow passes are built.
//
// Parameters:
//   - s: the shadow renderer
//
// Returns:
//   - FrameGraphBuilderOption: a function that sets the shadow renderer
func WithShadowRenderer(s ShadowRenderer) FrameGraphBuilderOption {
	return func(b *Builder) {
		b.shadows = s
	}
}

// WithCookieRenderer sets the clustered cookie collaborator.
//
// Parameters:
//   - c: the cookie renderer
//
// Returns:
//   - FrameGraphBuilderOption: a function that sets the cookie renderer
func WithCookieRenderer(c CookieRenderer) FrameGraphBuilderOption {
	return func(b *Builder) {
		b.cookies = c
	}
}

// WithSceneGrabber sets the scene capture collaborator. Without one depth layers render as
// ordinary layers.
//
// Parameters:
//   - g: the scene grabber
//
// Returns:
//   - FrameGraphBuilderOption: a function that sets the scene grabber
func WithSceneGrabber(g SceneGrabber) FrameGraphBuilderOption {
	return func(b *Builder) {
		b.grabber = g
	}
}

// WithBackbufferSize sets the initial backbuffer size.
//
// Parameters:
//   - width: the width in pixels
//   - height: the height in pixels
//
// Returns:
//   - FrameGraphBuilderOption: a function that sets the size
func WithBackbufferSize(width, height int) FrameGraphBuilderOption {
	return func(b *Builder) {
		b.width, b.height = width, height
	}
}
