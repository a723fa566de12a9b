package hex

import "errors"

var (
	// ErrInvariantViolation is returned when a cube or fractional coordinate
	// is built from components whose sum is not zero.
	ErrInvariantViolation = errors.New("hex: q+r+s must be 0")

	// ErrInvalidParity is returned by offset conversions given a parity
	// other than Even or Odd.
	ErrInvalidParity = errors.New("hex: parity must be Even or Odd")

	// ErrInvalidFamily is returned by offset conversions given a family
	// other than QFamily or RFamily.
	ErrInvalidFamily = errors.New("hex: offset family must be QFamily or RFamily")

	// ErrInvalidLayout is returned by Layout.Validate for a size or origin
	// that cannot be projected back onto the grid.
	ErrInvalidLayout = errors.New("hex: layout needs a positive size and finite origin")
)
