package renderer

import (
	"maps"
	"sync"

	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/device"
	"github.com/Carmen-Shannon/oxy-frame/engine/layer"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/forward"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/framegraph"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/lighting"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-frame/engine/scene"
)

// FrameStats summarizes the work of one rendered frame.
type FrameStats struct {
	// Frame is the 1-based frame number.
	Frame uint64
	// Passes is the number of render passes executed.
	Passes int
	// Draw holds the draw call counters of every batch of the frame.
	Draw forward.Stats
	// Graph holds the frame graph counters.
	Graph framegraph.Stats
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline

	dev             device.Device
	ctx             *device.Context
	compiler        shader.Compiler
	defaultMaterial material.Material
	dispatcher      *lighting.Dispatcher
	preparer        *forward.Preparer
	executor        *forward.Executor
	graph           *framegraph.Builder
	graphOptions    []framegraph.FrameGraphBuilderOption

	stats  forward.Stats
	width  int
	height int
	frames uint64
}

// Renderer defines the interface for the frame rendering system.
//
// A Renderer owns the device context, the draw call preparer and executor, the light uniform
// dispatcher and the frame graph builder. Each RenderFrame turns a layer composition into
// render passes and executes them in order on the device.
type Renderer interface {
	// Pipeline retrieves the cached Pipeline associated with the given key.
	// If the Pipeline does not exist, this will return nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to retrieve
	//
	// Returns:
	//   - pipeline.Pipeline: the Pipeline associated with the key, or nil if not found
	Pipeline(key string) pipeline.Pipeline

	// Pipelines retrieves a copy of the entire cache of Pipelines.
	//
	// Returns:
	//   - map[string]pipeline.Pipeline: a map of pipeline keys to their corresponding Pipeline objects
	Pipelines() map[string]pipeline.Pipeline

	// RegisterPipelines caches pipelines by their PipelineKey so materials can share them.
	// Pipelines whose keys are already registered are skipped.
	//
	// Parameters:
	//   - pipelines: the Pipelines to register
	RegisterPipelines(pipelines ...pipeline.Pipeline)

	// NewMaterial creates a material whose pipeline is the cached pipeline registered under
	// pipelineKey. An unknown key leaves the material with its own default pipeline.
	//
	// Parameters:
	//   - pipelineKey: the key of the shared pipeline
	//   - options: variadic list of MaterialBuilderOption functions
	//
	// Returns:
	//   - material.Material: the new material
	NewMaterial(pipelineKey string, options ...material.MaterialBuilderOption) material.Material

	// DefaultMaterial returns the material used by draw calls without one.
	DefaultMaterial() material.Material

	// Device returns the device the renderer submits to.
	Device() device.Device

	// Context returns the state-tracking device context shared by every pass.
	Context() *device.Context

	// Resize sets the backbuffer size used by cameras rendering to the backbuffer.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// Size returns the backbuffer size.
	Size() (width, height int)

	// RenderFrame renders one frame of the composition: it updates the render actions, builds
	// the frame graph and executes every pass in order. Failures inside the frame are logged
	// and absorbed; the frame always completes.
	//
	// Parameters:
	//   - comp: the layer composition to render
	//   - s: the scene providing the frame settings, or nil for the defaults
	//
	// Returns:
	//   - FrameStats: the counters of the frame
	RenderFrame(comp *layer.Composition, s scene.Scene) FrameStats
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer submitting to dev and compiling shader variants with
// compiler.
//
// Parameters:
//   - dev: the device to render with
//   - compiler: the shader variant compiler
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new Renderer
func NewRenderer(dev device.Device, compiler shader.Compiler, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		dev:           dev,
		ctx:           device.NewContext(dev),
		compiler:      compiler,
	}
	for _, opt := range options {
		opt(r)
	}
	if r.defaultMaterial == nil {
		r.defaultMaterial = material.NewMaterial(material.WithName("default"))
	}

	r.dispatcher = lighting.NewDispatcher(dev)
	r.preparer = forward.NewPreparer(compiler,
		forward.WithDefaultMaterial(r.defaultMaterial),
		forward.WithPreparerStats(&r.stats),
	)
	r.executor = forward.NewExecutor(dev, r.dispatcher,
		forward.WithExecutorDefaultMaterial(r.defaultMaterial),
		forward.WithExecutorStats(&r.stats),
	)
	opts := append([]framegraph.FrameGraphBuilderOption{framegraph.WithBackbufferSize(r.width, r.height)}, r.graphOptions...)
	r.graph = framegraph.NewBuilder(r.ctx, r.preparer, r.executor, r.dispatcher, opts...)
	return r
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) Pipelines() map[string]pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.pipelineCache)
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pipelines {
		if _, ok := r.pipelineCache[p.PipelineKey()]; ok {
			continue
		}
		r.pipelineCache[p.PipelineKey()] = p
	}
}

func (r *renderer) NewMaterial(pipelineKey string, options ...material.MaterialBuilderOption) material.Material {
	if p := r.Pipeline(pipelineKey); p != nil {
		options = append(options, material.WithPipeline(p))
	} else {
		common.Logger().Debug("material pipeline not registered", "pipeline", pipelineKey)
	}
	return material.NewMaterial(options...)
}

func (r *renderer) DefaultMaterial() material.Material {
	return r.defaultMaterial
}

func (r *renderer) Device() device.Device {
	return r.dev
}

func (r *renderer) Context() *device.Context {
	return r.ctx
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
	r.graph.SetBackbufferSize(width, height)
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) RenderFrame(comp *layer.Composition, s scene.Scene) FrameStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings := scene.DefaultSettings()
	if s != nil {
		settings = s.Settings()
	}

	r.stats.Reset()
	r.ctx.Invalidate()
	passes := r.graph.Build(comp, comp.Update(), settings)
	r.graph.Run(passes)
	r.frames++

	fs := FrameStats{
		Frame:  r.frames,
		Passes: len(passes),
		Draw:   r.stats,
		Graph:  r.graph.Stats(),
	}
	common.Logger().Debug("frame rendered",
		"frame", fs.Frame,
		"passes", fs.Passes,
		"drawCalls", fs.Draw.DrawCalls,
		"shaderBinds", fs.Draw.ShaderBinds,
		"skippedActions", fs.Graph.ActionsSkipped,
	)
	return fs
}
