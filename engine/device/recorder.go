package device

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-frame/common"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// Op identifies a recorded device command.
type Op int

const (
	OpSetShader Op = iota
	OpSetBlend
	OpSetDepth
	OpSetDepthBias
	OpSetAlphaToCoverage
	OpSetCull
	OpSetStencil
	OpSetViewport
	OpSetScissor
	OpSetRenderTarget
	OpClear
	OpCopy
	OpDraw
	OpStartPass
	OpEndPass
	OpSetUniform
)

var opNames = [...]string{
	OpSetShader:          "SetShader",
	OpSetBlend:           "SetBlend",
	OpSetDepth:           "SetDepth",
	OpSetDepthBias:       "SetDepthBias",
	OpSetAlphaToCoverage: "SetAlphaToCoverage",
	OpSetCull:            "SetCull",
	OpSetStencil:         "SetStencil",
	OpSetViewport:        "SetViewport",
	OpSetScissor:         "SetScissor",
	OpSetRenderTarget:    "SetRenderTarget",
	OpClear:              "Clear",
	OpCopy:               "Copy",
	OpDraw:               "Draw",
	OpStartPass:          "StartPass",
	OpEndPass:            "EndPass",
	OpSetUniform:         "SetUniform",
}

func (o Op) String() string {
	if int(o) >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is one recorded device call. Name carries the shader label, uniform name, pass
// name, target name or mesh name depending on Op; Value carries the argument.
type Command struct {
	Op    Op
	Name  string
	Value any
}

// DrawArgs is the Value recorded for OpDraw.
type DrawArgs struct {
	Instances int
	Primary   bool
	Viewport  common.Viewport
}

// recordedUniform is the Uniform implementation of the Recorder.
type recordedUniform struct {
	name  string
	value any
	rec   *Recorder
}

func (u *recordedUniform) Name() string {
	return u.name
}

func (u *recordedUniform) SetValue(v any) {
	u.value = v
	if u.rec.recordUniforms {
		u.rec.commands = append(u.rec.commands, Command{Op: OpSetUniform, Name: u.name, Value: v})
	}
}

func (u *recordedUniform) Value() any {
	return u.value
}

// Recorder is a Device that records every call instead of driving a GPU. It backs frame
// capture tooling and the pipeline's tests.
type Recorder struct {
	commands       []Command
	uniforms       map[string]*recordedUniform
	recordUniforms bool
	copySupported  bool
	viewport       common.Viewport
}

var _ Device = &Recorder{}

// NewRecorder creates a new Recorder with all options applied.
//
// Parameters:
//   - options: variadic list of RecorderBuilderOption functions
//
// Returns:
//   - *Recorder: the new recorder
func NewRecorder(options ...RecorderBuilderOption) *Recorder {
	r := &Recorder{
		uniforms:       make(map[string]*recordedUniform),
		recordUniforms: true,
		copySupported:  true,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Commands returns the recorded command log.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Filter returns the recorded commands with the given op, in order.
func (r *Recorder) Filter(op Op) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many commands with the given op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// UniformValue returns the last value set on the named uniform.
func (r *Recorder) UniformValue(name string) (any, bool) {
	u, ok := r.uniforms[name]
	if !ok || u.value == nil {
		return nil, false
	}
	return u.value, true
}

// ResolvedUniforms returns the number of distinct uniform handles resolved so far.
func (r *Recorder) ResolvedUniforms() int {
	return len(r.uniforms)
}

// Reset clears the command log. Uniform handles and their values persist, as they do on a
// real device.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

func (r *Recorder) record(op Op, name string, value any) {
	r.commands = append(r.commands, Command{Op: op, Name: name, Value: value})
}

func (r *Recorder) Resolve(name string) Uniform {
	if u, ok := r.uniforms[name]; ok {
		return u
	}
	u := &recordedUniform{name: name, rec: r}
	r.uniforms[name] = u
	return u
}

func (r *Recorder) SetShader(s shader.Shader) bool {
	if s == nil || s.Failed() {
		return false
	}
	r.record(OpSetShader, s.Label(), s)
	return true
}

func (r *Recorder) SetBlendState(b BlendState) {
	r.record(OpSetBlend, "", b)
}

func (r *Recorder) SetDepthState(d DepthState) {
	r.record(OpSetDepth, "", d)
}

func (r *Recorder) SetDepthBias(b DepthBias) {
	r.record(OpSetDepthBias, "", b)
}

func (r *Recorder) SetAlphaToCoverage(enabled bool) {
	r.record(OpSetAlphaToCoverage, "", enabled)
}

func (r *Recorder) SetCullMode(mode wgpu.CullMode) {
	r.record(OpSetCull, "", mode)
}

func (r *Recorder) SetStencilState(front, back *StencilParameters) {
	if front == nil {
		r.record(OpSetStencil, "", nil)
		return
	}
	if back == nil {
		back = front
	}
	r.record(OpSetStencil, "", [2]StencilParameters{*front, *back})
}

func (r *Recorder) SetViewport(v common.Viewport) {
	r.viewport = v
	r.record(OpSetViewport, "", v)
}

func (r *Recorder) SetScissor(v common.Viewport) {
	r.record(OpSetScissor, "", v)
}

func (r *Recorder) SetRenderTarget(rt RenderTarget) {
	r.record(OpSetRenderTarget, targetName(rt), rt)
}

func (r *Recorder) Clear(opts ClearOptions) {
	r.record(OpClear, "", opts)
}

func (r *Recorder) CopyRenderTarget(src, dst RenderTarget, color, depth bool) bool {
	if !r.copySupported {
		return false
	}
	r.record(OpCopy, targetName(src)+"->"+targetName(dst), [2]bool{color, depth})
	return true
}

func (r *Recorder) Draw(mesh Mesh, instances int, primary bool) {
	name := ""
	if mesh != nil {
		name = mesh.Name()
	}
	r.record(OpDraw, name, DrawArgs{Instances: instances, Primary: primary, Viewport: r.viewport})
}

func (r *Recorder) StartRenderPass(name string) {
	r.record(OpStartPass, name, nil)
}

func (r *Recorder) EndRenderPass(name string) {
	r.record(OpEndPass, name, nil)
}

func targetName(rt RenderTarget) string {
	if rt == nil {
		return "backbuffer"
	}
	return rt.Name()
}

// RecorderBuilderOption is a function that configures a Recorder during construction.
type RecorderBuilderOption func(*Recorder)

// WithUniformRecording is an option builder that controls whether uniform writes are added
// to the command log. Values are always retained on the handles.
//
// Parameters:
//   - enabled: true to log uniform writes
//
// Returns:
//   - RecorderBuilderOption: a function that applies the option to a Recorder
func WithUniformRecording(enabled bool) RecorderBuilderOption {
	return func(r *Recorder) {
		r.recordUniforms = enabled
	}
}

// WithCopySupport is an option builder that controls whether CopyRenderTarget succeeds.
//
// Parameters:
//   - supported: false to make every copy fail
//
// Returns:
//   - RecorderBuilderOption: a function that applies the option to a Recorder
func WithCopySupport(supported bool) RecorderBuilderOption {
	return func(r *Recorder) {
		r.copySupported = supported
	}
}
