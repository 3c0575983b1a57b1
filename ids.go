package splitview

// idPool hands out sequential controller ids. Released ids are returned
// first, most recently released first.
type idPool struct {
	current  uint32
	reusable []uint32
}

// New returns an id that is not currently in use.
func (p *idPool) New() uint32 {
	if n := len(p.reusable); n > 0 {
		id := p.reusable[n-1]
		p.reusable = p.reusable[:n-1]
		return id
	}
	p.current++
	return p.current
}

// Reuse marks id as free.
func (p *idPool) Reuse(id uint32) {
	p.reusable = append(p.reusable, id)
}
