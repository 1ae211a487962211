package sim

import (
	"log"
	"math"
)

// Uncapped is the target FPS value meaning no frame-rate ceiling at all.
const Uncapped = 0

// RateController decides, per frame, how many needles to drop and what frame
// rate to aim for, based on how much pending work remains. Small backlogs are
// rendered one drop per frame under the default cap so the animation stays
// readable; large backlogs batch drops and lift the cap so bulk generation is
// not throttled by rendering.
type RateController struct {
	DefaultTargetFPS float64
}

// Rates returns the drops to generate this frame and the frame-rate target
// for dropsLeft pending drops.
//
// Drops per frame: 0 when nothing is pending, 1 up to a backlog of 100, and
// a tenth of the backlog beyond that. The FPS target is
// defaultTargetFPS^(0.75*dropsLeft - 100/dropsLeft) + 9 truncated to an
// integer: it decays to just above the floor of 9 for tiny backlogs and
// explodes as the backlog grows. When the power overflows a float64 the
// ceiling is removed entirely (Uncapped); when dropsLeft is zero the exponent
// term is undefined and the default cap applies.
func (rc RateController) Rates(dropsLeft int) (dropsPerFrame, targetFPS int) {
	if dropsLeft == 0 {
		return 0, int(rc.DefaultTargetFPS)
	}

	if dropsLeft <= 100 {
		dropsPerFrame = 1
	} else {
		dropsPerFrame = dropsLeft / 10
	}

	exp := 0.75*float64(dropsLeft) - 100/float64(dropsLeft)
	v := math.Pow(rc.DefaultTargetFPS, exp) + 9
	switch {
	case math.IsInf(v, 1):
		targetFPS = Uncapped
		log.Printf("target fps is too large, removing fps limit")
	case v >= math.MaxInt:
		// Finite but beyond int range; clamp rather than overflow.
		targetFPS = math.MaxInt
	default:
		targetFPS = int(v)
	}

	if dropsPerFrame != 0 {
		log.Printf("set drops per frame to %d and target fps to %d", dropsPerFrame, targetFPS)
	}

	return dropsPerFrame, targetFPS
}
