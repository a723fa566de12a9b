package hex

import (
	"fmt"
	"math"
)

// Layout projects hexes to pixels and back.
// Size is the hex radius along each axis; Origin is the pixel position of
// Hex(0, 0, 0).
type Layout struct {
	Orientation Orientation
	Size        Point
	Origin      Point
}

// NewLayout returns a layout for o. It does not check its arguments; see
// Validate.
func NewLayout(o Orientation, size, origin Point) Layout {
	return Layout{Orientation: o, Size: size, Origin: origin}
}

// Validate reports whether l can map pixels back to hexes: both size
// components must be positive and every component finite.
func (l Layout) Validate() error {
	for _, v := range []float64{l.Size.X, l.Size.Y, l.Origin.X, l.Origin.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: size %v origin %v", ErrInvalidLayout, l.Size, l.Origin)
		}
	}
	if l.Size.X <= 0 || l.Size.Y <= 0 {
		return fmt.Errorf("%w: size %v", ErrInvalidLayout, l.Size)
	}
	return nil
}

// PointyLayout returns a pointy-top layout.
func PointyLayout(size, origin Point) Layout { return NewLayout(Pointy, size, origin) }

// FlatLayout returns a flat-top layout.
func FlatLayout(size, origin Point) Layout { return NewLayout(Flat, size, origin) }

// ToPixel returns the pixel center of h.
func (l Layout) ToPixel(h Hex) Point {
	m := l.Orientation
	q, r := float64(h.q), float64(h.r)
	x := (m.f0*q + m.f1*r) * l.Size.X
	y := (m.f2*q + m.f3*r) * l.Size.Y
	return Point{x + l.Origin.X, y + l.Origin.Y}
}

// ToFractionalHex maps a pixel back to grid space. The point is moved into
// layout-local space (origin removed, size divided out) before the inverse
// matrix is applied.
func (l Layout) ToFractionalHex(p Point) FractionalHex {
	m := l.Orientation
	pt := p.Sub(l.Origin).Div(l.Size)
	q := m.b0*pt.X + m.b1*pt.Y
	r := m.b2*pt.X + m.b3*pt.Y
	return newFractionalAxial(q, r)
}

// HexAt returns the hex containing pixel p. l must pass Validate and p must
// be finite, otherwise the result is not a valid hex.
func (l Layout) HexAt(p Point) Hex {
	return l.ToFractionalHex(p).Round()
}

// CornerOffset returns the offset of corner i from a hex center.
func (l Layout) CornerOffset(corner int) Point {
	angle := 2 * math.Pi * (l.Orientation.startAngle + float64(corner)) / 6
	return Point{l.Size.X * math.Cos(angle), l.Size.Y * math.Sin(angle)}
}

// PolygonCorners returns the six corners of h in order 0..5, and its center.
func (l Layout) PolygonCorners(h Hex) (corners [6]Point, center Point) {
	center = l.ToPixel(h)
	for i := range corners {
		corners[i] = center.Add(l.CornerOffset(i))
	}
	return corners, center
}
