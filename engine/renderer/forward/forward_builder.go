package forward

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/material"
)

// PreparerBuilderOption is a function that configures a Preparer during construction.
type PreparerBuilderOption func(*Preparer)

// WithDefaultMaterial sets the material used by draw calls without one.
//
// Parameters:
//   - m: the default material
//
// Returns:
//   - PreparerBuilderOption: a function that sets the default material
func WithDefaultMaterial(m material.Material) PreparerBuilderOption {
	return func(p *Preparer) {
		p.defaultMaterial = m
	}
}

// WithPreparerStats makes the preparer add to stats, usually shared with an Executor.
//
// Parameters:
//   - stats: the counters
//
// Returns:
//   - PreparerBuilderOption: a function that sets the stats
func WithPreparerStats(stats *Stats) PreparerBuilderOption {
	return func(p *Preparer) {
		p.stats = stats
	}
}

// ExecutorBuilderOption is a function that configures an Executor during construction.
type ExecutorBuilderOption func(*Executor)

// WithExecutorStats makes the executor add to stats, usually shared with a Preparer.
//
// Parameters:
//   - stats: the counters
//
// Returns:
//   - ExecutorBuilderOption: a function that sets the stats
func WithExecutorStats(stats *Stats) ExecutorBuilderOption {
	return func(e *Executor) {
		e.stats = stats
	}
}

// WithExecutorDefaultMaterial sets the material used by draw calls without one. It must
// match the preparer's default material.
//
// Parameters:
//   - m: the default material
//
// Returns:
//   - ExecutorBuilderOption: a function that sets the default material
func WithExecutorDefaultMaterial(m material.Material) ExecutorBuilderOption {
	return func(e *Executor) {
		e.defaultMaterial = m
	}
}
