package hex

import "math"

// Orientation holds the forward (hex to pixel) and inverse (pixel to hex)
// matrices of a layout, and the angle of corner 0 as a fraction of 60°.
//
// Only Pointy and Flat are meaningful. They are never modified.
type Orientation struct {
	name           string
	f0, f1, f2, f3 float64
	b0, b1, b2, b3 float64
	startAngle     float64
}

var sqrt3 = math.Sqrt(3)

var (
	// Pointy has a corner at the top; rows are straight.
	Pointy = Orientation{
		name: "pointy",
		f0: sqrt3, f1: sqrt3 / 2, f2: 0, f3: 3.0 / 2,
		b0: sqrt3 / 3, b1: -1.0 / 3, b2: 0, b3: 2.0 / 3,
		startAngle: 0.5,
	}

	// Flat has an edge at the top; columns are straight.
	Flat = Orientation{
		name: "flat",
		f0: 3.0 / 2, f1: 0, f2: sqrt3 / 2, f3: sqrt3,
		b0: 2.0 / 3, b1: 0, b2: -1.0 / 3, b3: sqrt3 / 3,
		startAngle: 0,
	}
)

// Forward returns f0..f3.
func (o Orientation) Forward() [4]float64 { return [4]float64{o.f0, o.f1, o.f2, o.f3} }

// Inverse returns b0..b3.
func (o Orientation) Inverse() [4]float64 { return [4]float64{o.b0, o.b1, o.b2, o.b3} }

func (o Orientation) StartAngle() float64 { return o.startAngle }

func (o Orientation) String() string {
	if o.name == "" {
		return "orientation(unset)"
	}
	return o.name
}
