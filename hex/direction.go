package hex

// Direction indexes the six unit neighbors of a hex.
// Any integer is accepted and reduced into [0, 6) before use:
// Direction(-1) is South and Direction(6) is SouthEast.
type Direction int

const (
	SouthEast Direction = iota
	NorthEast
	North
	NorthWest
	SouthWest
	South
)

var directions = [6]Hex{
	{+1, 0, -1},
	{+1, -1, 0},
	{0, -1, +1},
	{-1, 0, +1},
	{-1, +1, 0},
	{0, +1, -1},
}

var directionNames = [6]string{
	"southeast", "northeast", "north", "northwest", "southwest", "south",
}

// Normalize reduces d into [0, 6) with floor-modulo.
func (d Direction) Normalize() Direction {
	return ((d % 6) + 6) % 6
}

// Hex returns the unit vector for d.
func (d Direction) Hex() Hex {
	return directions[d.Normalize()]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 3).Normalize()
}

func (d Direction) String() string {
	return directionNames[d.Normalize()]
}
