package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonZeroSum(t *testing.T) {
	_, err := New(1, 1, 1)
	require.ErrorIs(t, err, ErrInvariantViolation)

	h, err := New(1, -3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Q())
	assert.Equal(t, -3, h.R())
	assert.Equal(t, 2, h.S())
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(0, 0, 1) })
	assert.NotPanics(t, func() { MustNew(0, 0, 0) })
}

func TestAxialDerivesS(t *testing.T) {
	h := NewAxial(4, -10)
	assert.Equal(t, 6, h.S())
	assert.Equal(t, 10, h.Length())
	assert.Equal(t, Axial{Q: 4, R: -10}, h.Axial())
	assert.Equal(t, h, Axial{Q: 4, R: -10}.Hex())

	assert.Equal(t, 7, NewAxial(3, -7).Length())
}

func TestArithmetic(t *testing.T) {
	a := MustNew(1, -3, 2)
	b := MustNew(3, -7, 4)

	assert.Equal(t, MustNew(4, -10, 6), a.Add(b))
	assert.Equal(t, MustNew(-2, 4, -2), a.Subtract(b))
	assert.Equal(t, MustNew(2, -6, 4), a.Mul(2))
	assert.Equal(t, MustNew(-1, 3, -2), a.Mul(-1))
}

func TestAddSubtractInverse(t *testing.T) {
	for _, a := range Disk(Hex{}, 3) {
		for _, b := range Disk(NewAxial(2, -1), 2) {
			assert.Equal(t, a, a.Add(b).Subtract(b), "a=%v b=%v", a, b)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Hex
		expected int
	}{
		{"origin to itself", Hex{}, Hex{}, 0},
		{"to origin", MustNew(3, -7, 4), Hex{}, 7},
		{"from origin", Hex{}, MustNew(3, -7, 4), 7},
		{"neighbors", MustNew(1, -2, 1), MustNew(1, -3, 2), 1},
		{"arbitrary", MustNew(-2, 4, -2), MustNew(3, -1, -2), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Distance(tc.b))
		})
	}
}

func TestDirectionNormalization(t *testing.T) {
	for _, n := range []int{-13, -12, -7, -6, -1, 0, 1, 5, 6, 7, 12, 100} {
		want := Direction(((n % 6) + 6) % 6)
		assert.Equal(t, want.Hex(), Direction(n).Hex(), "n=%d", n)
	}
	assert.Equal(t, Direction(0).Hex(), Direction(6).Hex())
	assert.Equal(t, Direction(0).Hex(), Direction(-6).Hex())
	assert.Equal(t, Direction(0).Hex(), Direction(-12).Hex())
	assert.Equal(t, Direction(5).Hex(), Direction(-1).Hex())
	assert.Equal(t, "south", Direction(-1).String())
}

func TestDirectionsAreUnitVectors(t *testing.T) {
	for d := SouthEast; d <= South; d++ {
		assert.Equal(t, 1, d.Hex().Length(), d.String())
		assert.Equal(t, Hex{}, d.Hex().Add(d.Opposite().Hex()), d.String())
	}
}

func TestNeighbor(t *testing.T) {
	assert.Equal(t, MustNew(1, -3, 2), MustNew(1, -2, 1).Neighbor(2))
	assert.Equal(t, MustNew(1, -3, 2), MustNew(1, -2, 1).Neighbor(North))

	h := MustNew(2, -1, -1)
	ns := h.Neighbors()
	for i, n := range ns {
		assert.Equal(t, h.Neighbor(Direction(i)), n)
		assert.Equal(t, 1, h.Distance(n))
	}
}

func TestRotation(t *testing.T) {
	h := MustNew(1, -3, 2)
	assert.Equal(t, MustNew(-2, -1, 3), h.RotateLeft())
	assert.Equal(t, MustNew(3, -2, -1), h.RotateRight())

	for _, a := range Disk(Hex{}, 4) {
		assert.Equal(t, a, a.RotateLeft().RotateRight())
		assert.Equal(t, a, a.RotateRight().RotateLeft())

		full := a
		for i := 0; i < 6; i++ {
			full = full.RotateLeft()
		}
		assert.Equal(t, a, full)
	}
}

func TestRotationPreservesInvariant(t *testing.T) {
	for _, a := range Disk(NewAxial(1, 1), 3) {
		for _, r := range []Hex{a.RotateLeft(), a.RotateRight()} {
			assert.Zero(t, r.Q()+r.R()+r.S())
			assert.Equal(t, a.Length(), r.Length())
		}
	}
}
