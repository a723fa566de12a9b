// Package hex implements cube, axial, fractional and offset coordinates for
// hexagonal grids, and the layout math that projects them to pixels.
//
// Every type is an immutable value; all functions are safe for concurrent use.
package hex

import "fmt"

// Hex is a cube coordinate (q, r, s) with q+r+s=0.
// The zero value is the origin.
type Hex struct {
	q, r, s int
}

// Axial represents axial coordinates (q, r); s is implied as -q-r.
type Axial struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// New builds a cube coordinate, failing if q+r+s != 0.
func New(q, r, s int) (Hex, error) {
	if q+r+s != 0 {
		return Hex{}, fmt.Errorf("%w: got (%d, %d, %d)", ErrInvariantViolation, q, r, s)
	}
	return Hex{q: q, r: r, s: s}, nil
}

// MustNew is like New but panics on an invalid coordinate.
func MustNew(q, r, s int) Hex {
	h, err := New(q, r, s)
	if err != nil {
		panic(err)
	}
	return h
}

// NewAxial builds a cube coordinate from axial (q, r).
func NewAxial(q, r int) Hex {
	return Hex{q: q, r: r, s: -q - r}
}

// Hex converts axial to cube.
func (a Axial) Hex() Hex { return NewAxial(a.Q, a.R) }

// Axial converts cube to axial.
func (h Hex) Axial() Axial { return Axial{Q: h.q, R: h.r} }

func (h Hex) Q() int { return h.q }
func (h Hex) R() int { return h.r }
func (h Hex) S() int { return h.s }

func (h Hex) String() string {
	return fmt.Sprintf("Hex(%d, %d, %d)", h.q, h.r, h.s)
}

// Add returns h+b.
func (h Hex) Add(b Hex) Hex { return Hex{h.q + b.q, h.r + b.r, h.s + b.s} }

// Subtract returns h-b.
func (h Hex) Subtract(b Hex) Hex { return Hex{h.q - b.q, h.r - b.r, h.s - b.s} }

// Mul scales h by k.
func (h Hex) Mul(k int) Hex { return Hex{h.q * k, h.r * k, h.s * k} }

// Length returns the distance from h to the origin.
// |q|+|r|+|s| is always even for a valid coordinate, so the division is exact.
func (h Hex) Length() int {
	return (abs(h.q) + abs(h.r) + abs(h.s)) / 2
}

// Distance returns the hex distance between h and b.
func (h Hex) Distance(b Hex) int {
	return h.Subtract(b).Length()
}

// Neighbor returns the adjacent hex in direction d.
func (h Hex) Neighbor(d Direction) Hex {
	return h.Add(d.Hex())
}

// Neighbors returns the six adjacent hexes in direction order.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, d := range directions {
		out[i] = h.Add(d)
	}
	return out
}

// RotateLeft rotates h 60° counter-clockwise about the origin.
func (h Hex) RotateLeft() Hex { return Hex{-h.s, -h.q, -h.r} }

// RotateRight rotates h 60° clockwise about the origin.
func (h Hex) RotateRight() Hex { return Hex{-h.r, -h.s, -h.q} }

// Fractional widens h to a fractional coordinate with the same value.
func (h Hex) Fractional() FractionalHex {
	return FractionalHex{float64(h.q), float64(h.r), float64(h.s)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
