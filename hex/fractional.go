package hex

import (
	"fmt"
	"math"
)

// FractionalHex is a real-valued cube coordinate, produced when mapping
// continuous space (pixels, interpolation) back onto the grid.
type FractionalHex struct {
	q, r, s float64
}

// NewFractional builds a fractional coordinate. The sum q+r+s only has to
// round to zero, which leaves room for floating point drift.
func NewFractional(q, r, s float64) (FractionalHex, error) {
	if math.Round(q+r+s) != 0 {
		return FractionalHex{}, fmt.Errorf("%w: got (%g, %g, %g)", ErrInvariantViolation, q, r, s)
	}
	return FractionalHex{q: q, r: r, s: s}, nil
}

func newFractionalAxial(q, r float64) FractionalHex {
	return FractionalHex{q: q, r: r, s: -q - r}
}

func (f FractionalHex) Q() float64 { return f.q }
func (f FractionalHex) R() float64 { return f.r }
func (f FractionalHex) S() float64 { return f.s }

func (f FractionalHex) String() string {
	return fmt.Sprintf("FractionalHex(%g, %g, %g)", f.q, f.r, f.s)
}

// Round returns the hex containing f.
//
// Each axis is rounded on its own, then the axis with the largest rounding
// error is recomputed from the other two. On equal errors q is corrected
// before r, and r before s.
//
// f must be finite; NaN or infinite components have no containing hex.
func (f FractionalHex) Round() Hex {
	q := math.Round(f.q)
	r := math.Round(f.r)
	s := math.Round(f.s)
	dq := math.Abs(q - f.q)
	dr := math.Abs(r - f.r)
	ds := math.Abs(s - f.s)
	if dq >= dr && dq >= ds {
		q = -r - s
	} else if dr >= ds {
		r = -q - s
	} else {
		s = -q - r
	}
	return Hex{q: int(q), r: int(r), s: int(s)}
}

// Lerp interpolates linearly between f and b; t=0 yields f, t=1 yields b.
func (f FractionalHex) Lerp(b FractionalHex, t float64) FractionalHex {
	return FractionalHex{
		q: f.q*(1-t) + b.q*t,
		r: f.r*(1-t) + b.r*t,
		s: f.s*(1-t) + b.s*t,
	}
}

// nudge shifts f off hex edges so Line never lands exactly on a boundary.
func (f FractionalHex) nudge() FractionalHex {
	const eps = 1e-6
	return FractionalHex{f.q + eps, f.r + eps, f.s - 2*eps}
}
