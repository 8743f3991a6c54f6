// SPDX-License-Identifier: MIT
// Package: lvspread/sketch
//
// tracker.go — per-tick state of the spread sketch.
//
// Each Step:
//  1. asks the generator for the position of the current iteration,
//  2. appends it to the PositionSet,
//  3. updates the step distance (shorter arc to the previous position),
//     its running mean and the uniformity of the whole set.
//
// Uniformity is maintained incrementally: adding a point adds its n
// pair terms to a running sum, so a Step costs O(n) rather than O(n²).

package sketch

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/lvspread/spread"
)

// Generator maps an iteration index to a position in [0, 1).
type Generator func(index int) (float64, error)

// Undefined marks statistics that have no value yet (e.g. the step
// distance before the second position exists).
const Undefined = -1.0

// Stats is the status-line view of a Tracker.
type Stats struct {
	Iteration       int     // number of completed steps
	Current         float64 // latest position, Undefined before the first step
	Previous        float64 // position before Current, Undefined if none
	Distance        float64 // shorter arc Previous→Current, Undefined if none
	AverageDistance float64 // running mean of Distance, Undefined if none
	Uniformity      float64 // spread.Uniformity of all positions, 0 before two exist
}

// Product is AverageDistance × Uniformity, the sketch's combined score.
// It is 0 while AverageDistance is undefined.
func (s Stats) Product() float64 {
	if s.AverageDistance == Undefined {
		return 0
	}

	return s.AverageDistance * s.Uniformity
}

// Label formats s as the sketch's status line.
func (s Stats) Label() string {
	return fmt.Sprintf("%d, distance=%.4f, average_distance=%.4f, uniformity=%.4f, product: %.4f",
		s.Iteration, s.Distance, s.AverageDistance, s.Uniformity, s.Product())
}

// Snapshot is a copy of the tracker state safe to hand to a renderer.
type Snapshot struct {
	Stats
	Points []float64 // PositionSet in generation order
}

// TrackerOption customizes a Tracker.
type TrackerOption func(*Tracker)

// WithGenerator replaces spread.Generate as the position source.
// Panics on nil.
func WithGenerator(g Generator) TrackerOption {
	if g == nil {
		panic("sketch: WithGenerator(nil)")
	}
	return func(t *Tracker) {
		t.gen = g
	}
}

// WithStride uses the naive generator index·step mod 1, the baseline the
// spread sequence is compared against. Panics unless 0 < step < 1.
func WithStride(step float64) TrackerOption {
	if !(step > 0 && step < 1) {
		panic("sketch: WithStride(step outside (0,1))")
	}
	return WithGenerator(func(index int) (float64, error) {
		return math.Mod(float64(index)*step, 1), nil
	})
}

// Tracker accumulates positions and statistics; safe for concurrent use.
type Tracker struct {
	mu       sync.RWMutex
	gen      Generator
	points   []float64
	stats    Stats
	pairSum  float64 // Σ √Distance over all unordered pairs
	distSum  float64 // Σ Distance over successive positions
	distSeen int     // number of successive pairs in distSum
}

// NewTracker returns an empty tracker driven by spread.Generate unless a
// generator option says otherwise.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{gen: spread.Generate}
	for _, opt := range opts {
		opt(t)
	}
	t.resetLocked()

	return t
}

// Step samples the next position and returns the updated stats.
// On error the tracker is left unchanged.
func (t *Tracker) Step() (Stats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.stats.Iteration
	p, err := t.gen(idx)
	if err != nil {
		return t.stats, fmt.Errorf("sketch: step %d: %w", idx, err)
	}
	if !(p >= 0 && p < 1) {
		return t.stats, fmt.Errorf("step %d: position %g: %w", idx, p, ErrBadPosition)
	}

	for _, q := range t.points {
		t.pairSum += math.Sqrt(spread.Distance(p, q))
	}
	t.points = append(t.points, p)

	s := &t.stats
	s.Previous = s.Current
	s.Current = p
	if s.Previous != Undefined {
		s.Distance = spread.Distance(s.Previous, s.Current)
		t.distSum += s.Distance
		t.distSeen++
		s.AverageDistance = t.distSum / float64(t.distSeen)
	}
	if n := len(t.points); n > 1 {
		s.Uniformity = 2 * t.pairSum / float64(n*(n-1))
	}
	s.Iteration++

	return *s, nil
}

// Stats returns the current statistics.
func (t *Tracker) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.stats
}

// Label returns the current status line.
func (t *Tracker) Label() string {
	return t.Stats().Label()
}

// Points returns a copy of the PositionSet.
func (t *Tracker) Points() []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]float64(nil), t.points...)
}

// Snapshot returns a consistent copy of stats and points.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Snapshot{Stats: t.stats, Points: append([]float64(nil), t.points...)}
}

// Reset discards every position and restarts at iteration 0.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resetLocked()
}

func (t *Tracker) resetLocked() {
	t.points = nil
	t.pairSum, t.distSum, t.distSeen = 0, 0, 0
	t.stats = Stats{
		Current:         Undefined,
		Previous:        Undefined,
		Distance:        Undefined,
		AverageDistance: Undefined,
	}
}
