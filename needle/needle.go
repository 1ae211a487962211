// Package needle implements needle generation and column hit testing for the
// Buffon's Needle experiment. A needle is a fixed-length segment with a
// uniformly random center and orientation; it is a hit when it crosses one of
// the board's vertical column lines.
package needle

import (
	"math"
	"math/rand"

	"chosenoffset.com/buffon/board"
)

// Point is an (x, y) coordinate pair on the board.
type Point struct {
	X float64
	Y float64
}

// Needle is one dropped segment. Needles are immutable once dropped: the hit
// result is computed at construction from the endpoints and the board's
// column values, and never changes afterwards.
type Needle struct {
	Center Point
	Angle  float64 // radians in [0, 2π)
	P1     Point
	P2     Point
	Hit    *Point // column crossing location, nil on a miss
}

// Dropper generates needles from a configurable random source.
type Dropper struct {
	rng *rand.Rand
}

// NewDropper creates a Dropper with the given random source.
func NewDropper(rng *rand.Rand) *Dropper {
	return &Dropper{rng: rng}
}

// Drop generates one needle of the given length on the board. The center is
// uniform over the board rectangle and the angle uniform over [0, 2π); the
// endpoints sit symmetrically about the center along the angle's direction.
// Callers are expected to keep length at or below the column spacing; a
// longer needle still works but may span more than one column line, and only
// the first crossing in column order is reported.
func (d *Dropper) Drop(b *board.Board, length float64) *Needle {
	center := Point{
		X: d.rng.Float64() * b.Width,
		Y: d.rng.Float64() * b.Height,
	}
	angle := d.rng.Float64() * 2 * math.Pi

	dx := length / 2 * math.Cos(angle)
	dy := length / 2 * math.Sin(angle)

	n := &Needle{
		Center: center,
		Angle:  angle,
		P1:     Point{X: center.X + dx, Y: center.Y + dy},
		P2:     Point{X: center.X - dx, Y: center.Y - dy},
	}
	n.Hit = HitPoint(n.P1, n.P2, b.Columns)
	return n
}

// HitPoint returns the point where the segment p1-p2 crosses a column line,
// or nil if it crosses none. Columns are tested in order and the first x
// value inside the segment's closed x range wins; the search stops there. A
// perfectly vertical segment has zero x extent, so a column can only match it
// by exact coincidence, in which case the crossing is reported at p1's y
// rather than solved from an undefined slope.
func HitPoint(p1, p2 Point, columns []float64) *Point {
	for _, c := range columns {
		if (p1.X <= c && c <= p2.X) || (p2.X <= c && c <= p1.X) {
			if p1.X == p2.X {
				return &Point{X: c, Y: p1.Y}
			}
			slope := (p2.Y - p1.Y) / (p2.X - p1.X)
			yInt := p1.Y - slope*p1.X
			return &Point{X: c, Y: slope*c + yInt}
		}
	}
	return nil
}
