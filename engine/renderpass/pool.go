package renderpass

// Pool recycles RenderPass values across frames so building the frame graph does not allocate
// once the pool has grown to the frame's pass count.
type Pool struct {
	passes []*RenderPass
	used   int
}

// Get returns a zeroed pass owned by the pool until the next Reset.
func (p *Pool) Get() *RenderPass {
	if p.used == len(p.passes) {
		p.passes = append(p.passes, &RenderPass{})
	}
	rp := p.passes[p.used]
	p.used++
	rp.Reset()
	return rp
}

// Reset makes every pass handed out since the previous Reset available again.
func (p *Pool) Reset() {
	p.used = 0
}

// Capacity returns how many passes the pool has allocated in total.
func (p *Pool) Capacity() int {
	return len(p.passes)
}
