package needle

import (
	"math"
	"math/rand"
	"testing"

	"chosenoffset.com/buffon/board"
)

const tolerance = 1e-9

func TestDropGeometry(t *testing.T) {
	b := board.New(100, 8, 400)
	d := NewDropper(rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		n := d.Drop(b, 75)

		dx := n.P1.X - n.P2.X
		dy := n.P1.Y - n.P2.Y
		length := math.Hypot(dx, dy)
		if math.Abs(length-75) > tolerance {
			t.Fatalf("needle %d: endpoint distance %v, want 75", i, length)
		}

		midX := (n.P1.X + n.P2.X) / 2
		midY := (n.P1.Y + n.P2.Y) / 2
		if math.Abs(midX-n.Center.X) > tolerance || math.Abs(midY-n.Center.Y) > tolerance {
			t.Fatalf("needle %d: midpoint (%v, %v) != center (%v, %v)",
				i, midX, midY, n.Center.X, n.Center.Y)
		}

		if n.Center.X < 0 || n.Center.X >= b.Width || n.Center.Y < 0 || n.Center.Y >= b.Height {
			t.Fatalf("needle %d: center (%v, %v) outside board", i, n.Center.X, n.Center.Y)
		}
		if n.Angle < 0 || n.Angle >= 2*math.Pi {
			t.Fatalf("needle %d: angle %v outside [0, 2pi)", i, n.Angle)
		}
	}
}

func TestHitPointCrossing(t *testing.T) {
	columns := []float64{0, 100, 200}

	// Crosses x=100 on the line y = x - 20.
	hit := HitPoint(Point{X: 80, Y: 60}, Point{X: 120, Y: 100}, columns)
	if hit == nil {
		t.Fatal("expected a hit, got nil")
	}
	if hit.X != 100 {
		t.Errorf("hit x = %v, want 100", hit.X)
	}
	if math.Abs(hit.Y-80) > tolerance {
		t.Errorf("hit y = %v, want 80", hit.Y)
	}

	// Same needle with the endpoints swapped.
	swapped := HitPoint(Point{X: 120, Y: 100}, Point{X: 80, Y: 60}, columns)
	if swapped == nil || swapped.X != 100 || math.Abs(swapped.Y-80) > tolerance {
		t.Errorf("swapped endpoints: got %v, want (100, 80)", swapped)
	}
}

func TestHitPointMiss(t *testing.T) {
	columns := []float64{0, 100, 200}
	if hit := HitPoint(Point{X: 110, Y: 10}, Point{X: 190, Y: 50}, columns); hit != nil {
		t.Errorf("expected a miss, got %v", hit)
	}
}

func TestHitPointEndpointTouch(t *testing.T) {
	// The column range test is closed: an endpoint exactly on a column counts.
	columns := []float64{100}
	hit := HitPoint(Point{X: 100, Y: 30}, Point{X: 160, Y: 70}, columns)
	if hit == nil {
		t.Fatal("endpoint on a column should count as a hit")
	}
	if hit.X != 100 || math.Abs(hit.Y-30) > tolerance {
		t.Errorf("got (%v, %v), want (100, 30)", hit.X, hit.Y)
	}
}

func TestHitPointFirstMatchWins(t *testing.T) {
	// A degenerate needle spanning two columns reports the first in column
	// order, not the nearest.
	columns := []float64{0, 100, 200}
	hit := HitPoint(Point{X: 50, Y: 0}, Point{X: 250, Y: 0}, columns)
	if hit == nil {
		t.Fatal("expected a hit, got nil")
	}
	if hit.X != 100 {
		t.Errorf("hit x = %v, want first matching column 100", hit.X)
	}
}

func TestHitPointVerticalNeedle(t *testing.T) {
	columns := []float64{0, 100, 200}

	// Zero x extent away from any column: always a miss.
	if hit := HitPoint(Point{X: 50, Y: 10}, Point{X: 50, Y: 90}, columns); hit != nil {
		t.Errorf("vertical needle off-column: expected a miss, got %v", hit)
	}

	// Exactly on a column: a hit at the first endpoint's y, no slope involved.
	hit := HitPoint(Point{X: 100, Y: 10}, Point{X: 100, Y: 90}, columns)
	if hit == nil {
		t.Fatal("vertical needle on a column should be a hit")
	}
	if hit.X != 100 || hit.Y != 10 {
		t.Errorf("got (%v, %v), want (100, 10)", hit.X, hit.Y)
	}
}

func TestHitMatchesXRange(t *testing.T) {
	// The hit result is present exactly when some column lies in the closed
	// x range of the endpoints, and when present it is collinear with them.
	b := board.New(100, 8, 400)
	d := NewDropper(rand.New(rand.NewSource(2)))

	for i := 0; i < 5000; i++ {
		n := d.Drop(b, 75)

		inRange := false
		for _, c := range b.Columns {
			lo, hi := n.P1.X, n.P2.X
			if lo > hi {
				lo, hi = hi, lo
			}
			if lo <= c && c <= hi {
				inRange = true
				break
			}
		}

		if inRange != (n.Hit != nil) {
			t.Fatalf("needle %d: column in x range %v but hit = %v", i, inRange, n.Hit)
		}

		if n.Hit != nil {
			// Cross product of (P2-P1) and (Hit-P1) should vanish. Scale the
			// tolerance since the coordinates run to a few hundred pixels.
			cross := (n.P2.X-n.P1.X)*(n.Hit.Y-n.P1.Y) - (n.P2.Y-n.P1.Y)*(n.Hit.X-n.P1.X)
			if math.Abs(cross) > 1e-6 {
				t.Fatalf("needle %d: hit %v not collinear with endpoints (cross %v)", i, n.Hit, cross)
			}
		}
	}
}
