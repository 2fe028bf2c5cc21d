package prompt

// Pagination tracks which fixed-size window of the match list is visible.
// Paging wraps around at both ends.
type Pagination struct {
	index int
	size  int
	count int
}

// NewPagination creates pagination with the given page size
func NewPagination(size int) Pagination {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Pagination{size: size}
}

// Reset recomputes the page count for n items and returns to the first page
func (p *Pagination) Reset(n int) {
	p.count = (n + p.size - 1) / p.size
	p.index = 0
}

// Forward moves to the next page, wrapping to the first
func (p *Pagination) Forward() {
	if p.count <= 1 {
		return
	}
	p.index = (p.index + 1) % p.count
}

// Backward moves to the previous page, wrapping to the last
func (p *Pagination) Backward() {
	if p.count <= 1 {
		return
	}
	p.index = (p.index - 1 + p.count) % p.count
}

func (p Pagination) Index() int { return p.index }
func (p Pagination) Count() int { return p.count }
func (p Pagination) Size() int  { return p.size }

// Window returns the items on the current page
func (p Pagination) Window(items []string) []string {
	start := p.index * p.size
	if start >= len(items) {
		return nil
	}
	end := start + p.size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
