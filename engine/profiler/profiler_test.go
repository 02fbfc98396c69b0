package profiler

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-frame/engine/renderer"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/forward"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/framegraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickReportsAverages(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewProfiler(WithInterval(time.Second), WithClock(func() time.Time { return now }))

	p.Record(renderer.FrameStats{Passes: 2, Draw: forward.Stats{DrawCalls: 10, ShaderBinds: 4}})
	p.Record(renderer.FrameStats{
		Passes: 4,
		Draw:   forward.Stats{DrawCalls: 20, ShaderBinds: 2, AbortedBatches: 1},
		Graph:  framegraph.Stats{ActionsSkipped: 3},
	})
	now = now.Add(500 * time.Millisecond)
	require.False(t, p.Tick())
	now = now.Add(500 * time.Millisecond)
	require.True(t, p.Tick())

	r := p.Last()
	assert.InDelta(t, 2.0, r.FPS, 1e-9)
	assert.InDelta(t, 3.0, r.Passes, 1e-9)
	assert.InDelta(t, 15.0, r.DrawCalls, 1e-9)
	assert.InDelta(t, 3.0, r.ShaderBinds, 1e-9)
	assert.Equal(t, 1, r.AbortedBatches)
	assert.Equal(t, 3, r.SkippedActions)

	now = now.Add(time.Second)
	require.True(t, p.Tick())
	assert.Zero(t, p.Last().DrawCalls, "counters reset each interval")
}
