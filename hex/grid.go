package hex

// Ring returns the hexes at exact distance k from center, starting from
// center + SouthWest*k and walking the sides in direction order.
// If k==0, returns [center].
func Ring(center Hex, k int) []Hex {
	if k <= 0 {
		return []Hex{center}
	}
	res := make([]Hex, 0, 6*k)
	cur := center.Add(SouthWest.Hex().Mul(k))
	for side := range directions {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(directions[side])
		}
	}
	return res
}

// Spiral returns center followed by rings 1..radius.
func Spiral(center Hex, radius int) []Hex {
	res := make([]Hex, 0, 1+3*radius*(radius+1))
	res = append(res, center)
	for k := 1; k <= radius; k++ {
		res = append(res, Ring(center, k)...)
	}
	return res
}

// Disk returns all hexes at distance <= radius from center, ordered by q
// then r.
func Disk(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	res := make([]Hex, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			res = append(res, center.Add(NewAxial(q, r)))
		}
	}
	return res
}

// Edge returns the R hexes of one side of the ring at distance R, in ring
// order. The side is the segment Ring walks while stepping in direction side.
func Edge(center Hex, R int, side Direction) []Hex {
	if R <= 0 {
		return []Hex{center}
	}
	ring := Ring(center, R)
	start := int(side.Normalize()) * R
	return ring[start : start+R : start+R]
}

// Line returns the hexes on the straight line from a to b, inclusive.
// Both endpoints are nudged off hex edges so the result does not depend on
// which way exact ties round.
func Line(a, b Hex) []Hex {
	n := a.Distance(b)
	if n == 0 {
		return []Hex{a}
	}
	fa := a.Fractional().nudge()
	fb := b.Fractional().nudge()
	step := 1.0 / float64(n)
	res := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		res = append(res, fa.Lerp(fb, step*float64(i)).Round())
	}
	return res
}

// Rectangle returns the hexes of a cols x rows offset grid in row-major
// order, the cell at (col, row) resolved under scheme.
func Rectangle(cols, rows int, scheme OffsetScheme) ([]Hex, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	if cols <= 0 || rows <= 0 {
		return nil, nil
	}
	res := make([]Hex, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			h, err := scheme.ToHex(Offset{Col: col, Row: row})
			if err != nil {
				return nil, err
			}
			res = append(res, h)
		}
	}
	return res, nil
}
