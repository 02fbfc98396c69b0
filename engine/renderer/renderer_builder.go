package renderer

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/framegraph"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/pipeline"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPipeline pre-registers a single Pipeline in the renderer's pipeline cache under the given key.
//
// Parameters:
//   - key: the unique identifier for the pipeline
//   - p: the Pipeline to cache
//
// Returns:
//   - RendererBuilderOption: a function that applies the pipeline option to a renderer
func WithPipeline(key string, p pipeline.Pipeline) RendererBuilderOption {
	return func(r *renderer) {
		r.pipelineCache[key] = p
	}
}

// WithPipelines replaces the renderer's entire pipeline cache with the provided map.
//
// Parameters:
//   - pipelines: a map of pipeline keys to their corresponding Pipeline objects
//
// Returns:
//   - RendererBuilderOption: a function that applies the pipelines option to a renderer
func WithPipelines(pipelines map[string]pipeline.Pipeline) RendererBuilderOption {
	return func(r *renderer) {
		r.pipelineCache = pipelines
	}
}

// WithDefaultMaterial sets the material used by draw calls without one.
//
// Parameters:
//   - m: the default material
//
// Returns:
//   - RendererBuilderOption: a function that applies the default material option to a renderer
func WithDefaultMaterial(m material.Material) RendererBuilderOption {
	return func(r *renderer) {
		r.defaultMaterial = m
	}
}

// WithSize sets the initial backbuffer size.
//
// Parameters:
//   - width: the width in pixels
//   - height: the height in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the size option to a renderer
func WithSize(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		r.width, r.height = width, height
	}
}

// WithShadowRenderer sets the shadow map collaborator of the frame graph.
//
// Parameters:
//   - s: the shadow renderer
//
// Returns:
//   - RendererBuilderOption: a function that applies the shadow renderer option to a renderer
func WithShadowRenderer(s framegraph.ShadowRenderer) RendererBuilderOption {
	return func(r *renderer) {
		r.graphOptions = append(r.graphOptions, framegraph.WithShadowRenderer(s))
	}
}

// WithCookieRenderer sets the clustered cookie collaborator of the frame graph.
//
// Parameters:
//   - c: the cookie renderer
//
// Returns:
//   - RendererBuilderOption: a function that applies the cookie renderer option to a renderer
func WithCookieRenderer(c framegraph.CookieRenderer) RendererBuilderOption {
	return func(r *renderer) {
		r.graphOptions = append(r.graphOptions, framegraph.WithCookieRenderer(c))
	}
}

// WithSceneGrabber sets the scene capture collaborator of the frame graph.
//
// Parameters:
//   - g: the scene grabber
//
// Returns:
//   - RendererBuilderOption: a function that applies the scene grabber option to a renderer
func WithSceneGrabber(g framegraph.SceneGrabber) RendererBuilderOption {
	return func(r *renderer) {
		r.graphOptions = append(r.graphOptions, framegraph.WithSceneGrabber(g))
	}
}
