package profiler

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/forward"
)

// Report is one interval of profiling data, averaged per frame where noted.
type Report struct {
	FPS float64
	// Passes, DrawCalls, ShaderBinds and LightDispatches are per-frame averages.
	Passes          float64
	DrawCalls       float64
	ShaderBinds     float64
	LightDispatches float64
	// AbortedBatches and SkippedActions are totals over the interval.
	AbortedBatches int
	SkippedActions int

	HeapMB      float64
	AllocRateMB float64
	SysMB       float64
	GCCount     uint32
	LastPauseUs uint64
	MaxPauseUs  uint64
}

// Profiler tracks frame rate, render statistics and memory for performance monitoring.
// Logs a Report at a configurable interval.
type Profiler struct {
	mu             sync.Mutex
	frameCount     int
	renderedFrames int
	passes         int
	draw           forward.Stats
	skipped        int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	now            func() time.Time
	last           Report
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: variadic list of ProfilerBuilderOption functions
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Record adds the statistics of one rendered frame to the current interval.
//
// Parameters:
//   - fs: the frame statistics
func (p *Profiler) Record(fs renderer.FrameStats) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renderedFrames++
	p.passes += fs.Passes
	p.draw.Add(fs.Draw)
	p.skipped += fs.Graph.ActionsSkipped
}

// Last returns the most recently logged Report.
func (p *Profiler) Last() Report {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Tick should be called once per frame to track frame timing.
// Logs a Report when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	r := Report{
		FPS:            float64(p.frameCount) / elapsed.Seconds(),
		AbortedBatches: p.draw.AbortedBatches,
		SkippedActions: p.skipped,
	}
	if p.renderedFrames > 0 {
		n := float64(p.renderedFrames)
		r.Passes = float64(p.passes) / n
		r.DrawCalls = float64(p.draw.DrawCalls) / n
		r.ShaderBinds = float64(p.draw.ShaderBinds) / n
		r.LightDispatches = float64(p.draw.LightDispatches) / n
	}

	runtime.ReadMemStats(&p.memStats)
	// Alloc is live heap, TotalAlloc grows forever and tracks churn, Sys is the process footprint
	r.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
	r.SysMB = float64(p.memStats.Sys) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	r.AllocRateMB = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	r.GCCount = gcCount
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		r.LastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			r.MaxPauseUs = max(r.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	common.Logger().Info("profiler",
		"fps", r.FPS,
		"passes", r.Passes,
		"drawCalls", r.DrawCalls,
		"shaderBinds", r.ShaderBinds,
		"lightDispatches", r.LightDispatches,
		"abortedBatches", r.AbortedBatches,
		"skippedActions", r.SkippedActions,
		"heapMB", r.HeapMB,
		"allocRateMB", r.AllocRateMB,
		"gc", r.GCCount,
		"lastPauseUs", r.LastPauseUs,
		"maxPauseUs", r.MaxPauseUs,
		"sysMB", r.SysMB,
	)

	p.last = r
	p.frameCount = 0
	p.renderedFrames = 0
	p.passes = 0
	p.draw.Reset()
	p.skipped = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
