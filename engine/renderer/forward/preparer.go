package forward

import (
	"github.com/Carmen-Shannon/oxy-frame/engine/light"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/drawcall"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-frame/engine/renderer/shader"
)

// Preparer turns a visible draw call list into a PreparedList: it filters by visibility
// mask, resolves materials and shader variants, and marks material and light mask
// boundaries. It never reorders or drops mesh draw calls; shader failures surface when the
// list executes.
type Preparer struct {
	compiler        shader.Compiler
	defaultMaterial material.Material
	stats           *Stats
	list            drawcall.PreparedList
}

// NewPreparer creates a Preparer compiling variants with compiler.
//
// Parameters:
//   - compiler: the shader variant compiler
//   - opts: variadic list of PreparerBuilderOption functions
//
// Returns:
//   - *Preparer: the preparer
func NewPreparer(compiler shader.Compiler, opts ...PreparerBuilderOption) *Preparer {
	p := &Preparer{compiler: compiler}
	for _, opt := range opts {
		opt(p)
	}
	if p.defaultMaterial == nil {
		p.defaultMaterial = material.NewMaterial(material.WithName("default"))
	}
	if p.stats == nil {
		p.stats = &Stats{}
	}
	return p
}

// DefaultMaterial returns the material used by draw calls without one.
func (p *Preparer) DefaultMaterial() material.Material {
	return p.defaultMaterial
}

// Stats returns the counters the preparer adds to.
func (p *Preparer) Stats() *Stats {
	return p.stats
}

// Prepare builds the PreparedList for one batch. The returned list is reused by the next
// call.
//
// Parameters:
//   - drawCalls: the culled, sorted draw calls
//   - b: the batch
//
// Returns:
//   - *drawcall.PreparedList: the prepared list
func (p *Preparer) Prepare(drawCalls []*drawcall.DrawCall, b *Batch) *drawcall.PreparedList {
	p.list.Reset()

	var (
		prevMaterial  material.Material
		prevDefs      uint64
		prevLightMask uint32
		prevStatic    bool
	)
	for _, dc := range drawCalls {
		if b.VisibilityMask != 0 && dc.Mask&b.VisibilityMask == 0 {
			p.stats.Culled++
			continue
		}
		if dc.IsCommand() {
			p.list.Append(dc, false, false)
			continue
		}

		mat := dc.Material
		if mat == nil {
			mat = p.defaultMaterial
		}
		if mat != prevMaterial {
			p.stats.MaterialSwitches++
		}
		if mat.Dirty() {
			mat.Update()
		}

		defs := dc.Defines | mat.Defines()
		p.resolveShader(dc, mat, defs, b)

		// static draw calls carry private variants, so they always start a new bind boundary
		isNewMaterial := mat != prevMaterial || defs != prevDefs || dc.Static || prevStatic
		lightMaskChanged := isNewMaterial || dc.Mask != prevLightMask
		p.list.Append(dc, isNewMaterial, lightMaskChanged)

		prevMaterial = mat
		prevDefs = defs
		prevLightMask = dc.Mask
		prevStatic = dc.Static
	}
	return &p.list
}

// resolveShader makes sure dc has a variant for the batch pass. Non-static draw calls share
// the material's variant cache keyed by (pass, defines, light hash); static draw calls
// compile privately against their own light list.
func (p *Preparer) resolveShader(dc *drawcall.DrawCall, mat material.Material, defs uint64, b *Batch) {
	lightHash := b.LightHash
	lightCount := b.Lights.Len()
	if dc.Static {
		lightHash = light.Hash(dc.StaticLights)
		lightCount = len(b.Lights.Directional) + len(dc.StaticLights)
	}
	if _, ok := dc.CachedShader(b.Pass, mat.ID(), defs, lightHash); ok {
		return
	}

	def := shader.Definition{
		Name:       mat.ShaderName(),
		Pass:       b.Pass,
		Defines:    defs,
		LightHash:  lightHash,
		LightCount: lightCount,
		Static:     dc.Static,
		Clustered:  b.Clustered,
	}

	var s shader.Shader
	if dc.Static {
		s = p.compiler.Compile(def)
	} else {
		key := def.VariantKey()
		var ok bool
		if s, ok = mat.Variant(key); !ok {
			s = p.compiler.Compile(def)
			mat.SetVariant(key, s)
		}
	}
	dc.SetShader(b.Pass, mat.ID(), defs, lightHash, s)
}
