package wave

import "sync"

// band is a half-open row range [y0, y1).
type band struct{ y0, y1 int }

// workerBands collects the bands assigned to one worker goroutine.
type workerBands struct {
	bands []band
}

// Pool renders frames with a fixed set of worker goroutines. Each call to
// Render bumps a generation counter; workers wake, render their bands and
// report back through the same condition variable.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	workers int
	step    int
	pending int
	closed  bool
	wg      sync.WaitGroup

	bandRows int
	assigned []workerBands

	// frame inputs, valid while pending > 0
	dst   []float32
	width int
	ts    []term
}

// DefaultBandRows is the number of rows handed out per band.
const DefaultBandRows = 8

// NewPool starts workers goroutines. Values below one are treated as one.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		workers:  workers,
		bandRows: DefaultBandRows,
	}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.workerLoop(i)
	}
	return p
}

// Workers reports the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// assignBands distributes bands across workers in round robin fashion.
func assignBands(workerCount, height, rowsPerBand int) []workerBands {
	if workerCount < 1 {
		workerCount = 1
	}
	if rowsPerBand < 1 {
		rowsPerBand = 1
	}
	assigned := make([]workerBands, workerCount)
	idx := 0
	for y := 0; y < height; y += rowsPerBand {
		y1 := y + rowsPerBand
		if y1 > height {
			y1 = height
		}
		w := idx % workerCount
		assigned[w].bands = append(assigned[w].bands, band{y0: y, y1: y1})
		idx++
	}
	return assigned
}

func (p *Pool) workerLoop(index int) {
	defer p.wg.Done()
	lastStep := 0
	p.mu.Lock()
	for {
		for p.step == lastStep && !p.closed {
			p.cond.Wait()
		}
		if p.closed {
			p.mu.Unlock()
			return
		}
		lastStep = p.step
		var work workerBands
		if index < len(p.assigned) {
			work = p.assigned[index]
		}
		dst, width, ts := p.dst, p.width, p.ts
		p.mu.Unlock()

		for _, b := range work.bands {
			renderRows(dst, width, b.y0, b.y1, ts)
		}

		p.mu.Lock()
		p.pending--
		if p.pending == 0 {
			p.cond.Broadcast()
		}
	}
}

// Render fills dst with one frame and returns once every worker is done.
// Render must not be called concurrently or after Close.
func (p *Pool) Render(dst []float32, width, height int, params Params) {
	if width <= 0 || height <= 0 {
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic("wave: Render on closed Pool")
	}
	if len(p.assigned) != p.workers || p.rowsCovered() != height {
		p.assigned = assignBands(p.workers, height, p.bandRows)
	}
	p.dst, p.width, p.ts = dst[:width*height], width, terms(&params)
	p.pending = p.workers
	p.step++
	p.cond.Broadcast()
	for p.pending > 0 {
		p.cond.Wait()
	}
	p.dst, p.ts = nil, nil
	p.mu.Unlock()
}

// rowsCovered returns the last row covered by the current assignment.
func (p *Pool) rowsCovered() int {
	end := 0
	for _, w := range p.assigned {
		if n := len(w.bands); n > 0 && w.bands[n-1].y1 > end {
			end = w.bands[n-1].y1
		}
	}
	return end
}

// Close stops the workers and waits for them to exit.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
	p.wg.Wait()
}
