package forward

// Stats counts the work of the forward path. The renderer resets it every frame.
type Stats struct {
	// DrawCalls counts draw submissions, one per view of each mesh record.
	DrawCalls int
	// ShaderBinds counts records that bound their shader and material state.
	ShaderBinds int
	// MaterialSwitches counts prepared records whose material differs from the previous one.
	MaterialSwitches int
	// LightDispatches counts light uniform dispatches.
	LightDispatches int
	// Commands counts command entries run.
	Commands int
	// Culled counts draw calls skipped by the visibility mask.
	Culled int
	// AbortedBatches counts lists cut short by a failed shader.
	AbortedBatches int
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	*s = Stats{}
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.DrawCalls += o.DrawCalls
	s.ShaderBinds += o.ShaderBinds
	s.MaterialSwitches += o.MaterialSwitches
	s.LightDispatches += o.LightDispatches
	s.Commands += o.Commands
	s.Culled += o.Culled
	s.AbortedBatches += o.AbortedBatches
}
