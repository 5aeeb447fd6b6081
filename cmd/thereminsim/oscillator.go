package main

import (
	"math"
	"sync"
	"time"
)

// Plate is a simulated sensing plate: an oscillator whose frequency drops
// as the hand gets closer.
type Plate struct {
	mu sync.Mutex

	rest  float64 // edges per second with no hand near
	depth float64 // frequency drop with the hand touching
	near  float64 // 0 far away .. 1 touching

	spikeUntil time.Time

	now  func() time.Time
	last time.Time
	acc  float64
}

func NewPlate(rest, depth float64, now func() time.Time) *Plate {
	return &Plate{rest: rest, depth: depth, now: now, last: now()}
}

// advance integrates the edge rate up to now. Caller holds mu.
func (p *Plate) advance() {
	at := p.now()
	from := p.last
	if at.After(from) {
		if from.Before(p.spikeUntil) {
			end := p.spikeUntil
			if at.Before(end) {
				end = at
			}
			p.acc += (p.rest - p.depth) * end.Sub(from).Seconds()
			from = end
		}
		p.acc += (p.rest - p.depth*p.near) * at.Sub(from).Seconds()
	}
	p.last = at
}

// Move changes the hand distance by delta, clamped to 0..1.
func (p *Plate) Move(delta float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.advance()
	p.near = math.Min(1, math.Max(0, p.near+delta))
	return p.near
}

// Spike brings the hand to the plate for d.
func (p *Plate) Spike(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.advance()
	p.spikeUntil = p.now().Add(d)
}

func (p *Plate) Read() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.advance()
	return uint32(p.acc)
}

func (p *Plate) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.advance()
	p.acc = 0
}

// ReadAndReset keeps the fractional edge so no count is lost between
// periods.
func (p *Plate) ReadAndReset() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.advance()
	n := math.Floor(p.acc)
	p.acc -= n
	return uint32(n)
}
