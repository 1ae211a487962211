// Package sim holds the state of one Buffon's Needle run: the drop and hit
// counters, the needle history, and the rate policy that paces how many
// needles are generated per rendered frame.
package sim

import (
	"math/rand"

	"chosenoffset.com/buffon/board"
	"chosenoffset.com/buffon/needle"
)

// Run owns the counters and needle history for a simulation. The driving
// loop mutates it one frame at a time; there is no shared or global needle
// registry. Display-length truncation of the history is the caller's
// concern (see Truncate).
type Run struct {
	Board  *board.Board
	Length float64 // needle length in pixels

	Needles     []*needle.Needle // most recent last
	Drops       int              // needles generated so far
	Hits        int              // needles that crossed a column
	TargetDrops int              // total drops requested so far

	dropper *needle.Dropper
}

// NewRun creates a run on the given board with the given needle length and
// random source.
func NewRun(b *board.Board, length float64, rng *rand.Rand) *Run {
	return &Run{
		Board:   b,
		Length:  length,
		dropper: needle.NewDropper(rng),
	}
}

// DropsLeft returns how many requested drops have not been generated yet.
func (r *Run) DropsLeft() int {
	return r.TargetDrops - r.Drops
}

// Add requests n more drops. Negative values are ignored.
func (r *Run) Add(n int) {
	if n > 0 {
		r.TargetDrops += n
	}
}

// Step generates up to perFrame needles, bounded by the remaining backlog,
// and updates the counters and history. It returns the needles generated
// this step.
func (r *Run) Step(perFrame int) []*needle.Needle {
	left := r.DropsLeft()
	if perFrame > left {
		perFrame = left
	}
	if perFrame <= 0 {
		return nil
	}

	batch := make([]*needle.Needle, 0, perFrame)
	for i := 0; i < perFrame; i++ {
		n := r.dropper.Drop(r.Board, r.Length)
		r.Drops++
		if n.Hit != nil {
			r.Hits++
		}
		batch = append(batch, n)
	}
	r.Needles = append(r.Needles, batch...)
	return batch
}

// Stop cancels all pending drops. Needles already generated and the counters
// are unaffected.
func (r *Run) Stop() {
	r.TargetDrops = r.Drops
}

// Clear erases all needles and resets every counter to zero.
func (r *Run) Clear() {
	r.Needles = nil
	r.Drops = 0
	r.Hits = 0
	r.TargetDrops = 0
}

// Truncate keeps only the most recent limit needles in the history. A
// negative limit keeps everything. Counters are untouched; the history only
// exists for rendering.
func (r *Run) Truncate(limit int) {
	if limit < 0 || len(r.Needles) <= limit {
		return
	}
	r.Needles = append(r.Needles[:0:0], r.Needles[len(r.Needles)-limit:]...)
}

// Pi returns the running estimate 2*length*drops / (hits*columnSpace), or 0
// before the first hit.
func (r *Run) Pi() float64 {
	if r.Hits == 0 {
		return 0
	}
	return (2 * float64(r.Drops) * r.Length) / (float64(r.Hits) * r.Board.ColumnSpace)
}
