package hex

import "fmt"

// Parity selects which rows or columns are shoved in an offset grid.
type Parity int

const (
	Even Parity = 1
	Odd  Parity = -1
)

func (p Parity) valid() error {
	if p != Even && p != Odd {
		return fmt.Errorf("%w: got %d", ErrInvalidParity, int(p))
	}
	return nil
}

func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	}
	return fmt.Sprintf("Parity(%d)", int(p))
}

// Family selects the offset axis. QFamily offsets columns and suits
// flat-top layouts; RFamily offsets rows and suits pointy-top layouts.
// The two are not interchangeable.
type Family int

const (
	QFamily Family = iota
	RFamily
)

func (f Family) String() string {
	switch f {
	case QFamily:
		return "q"
	case RFamily:
		return "r"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Offset is a rectangular (col, row) address. The parity and family used to
// interpret it are supplied at conversion time.
type Offset struct {
	Col int `json:"col" yaml:"col"`
	Row int `json:"row" yaml:"row"`
}

func (o Offset) String() string {
	return fmt.Sprintf("Offset(%d, %d)", o.Col, o.Row)
}

// QOffsetFromHex converts h to a column-offset address.
func QOffsetFromHex(p Parity, h Hex) (Offset, error) {
	if err := p.valid(); err != nil {
		return Offset{}, err
	}
	col := h.q
	row := h.r + (h.q+int(p)*(h.q&1))/2
	return Offset{Col: col, Row: row}, nil
}

// QOffsetToHex converts a column-offset address to a cube coordinate.
func QOffsetToHex(o Offset, p Parity) (Hex, error) {
	if err := p.valid(); err != nil {
		return Hex{}, err
	}
	q := o.Col
	r := o.Row - (o.Col+int(p)*(o.Col&1))/2
	return NewAxial(q, r), nil
}

// ROffsetFromHex converts h to a row-offset address.
func ROffsetFromHex(p Parity, h Hex) (Offset, error) {
	if err := p.valid(); err != nil {
		return Offset{}, err
	}
	col := h.q + (h.r+int(p)*(h.r&1))/2
	row := h.r
	return Offset{Col: col, Row: row}, nil
}

// ROffsetToHex converts a row-offset address to a cube coordinate.
func ROffsetToHex(o Offset, p Parity) (Hex, error) {
	if err := p.valid(); err != nil {
		return Hex{}, err
	}
	q := o.Col - (o.Row+int(p)*(o.Row&1))/2
	r := o.Row
	return NewAxial(q, r), nil
}

// OffsetScheme pairs a family with a parity.
type OffsetScheme struct {
	Family Family
	Parity Parity
}

// The four valid offset schemes.
var (
	EvenQ = OffsetScheme{Family: QFamily, Parity: Even}
	OddQ  = OffsetScheme{Family: QFamily, Parity: Odd}
	EvenR = OffsetScheme{Family: RFamily, Parity: Even}
	OddR  = OffsetScheme{Family: RFamily, Parity: Odd}
)

func (s OffsetScheme) String() string {
	return s.Parity.String() + "-" + s.Family.String()
}

// Validate reports whether s names one of the four valid schemes.
func (s OffsetScheme) Validate() error {
	if s.Family != QFamily && s.Family != RFamily {
		return fmt.Errorf("%w: got %d", ErrInvalidFamily, int(s.Family))
	}
	return s.Parity.valid()
}

// ToHex converts o to a cube coordinate under s.
func (s OffsetScheme) ToHex(o Offset) (Hex, error) {
	switch s.Family {
	case QFamily:
		return QOffsetToHex(o, s.Parity)
	case RFamily:
		return ROffsetToHex(o, s.Parity)
	}
	return Hex{}, s.Validate()
}

// FromHex converts h to an offset address under s.
func (s OffsetScheme) FromHex(h Hex) (Offset, error) {
	switch s.Family {
	case QFamily:
		return QOffsetFromHex(s.Parity, h)
	case RFamily:
		return ROffsetFromHex(s.Parity, h)
	}
	return Offset{}, s.Validate()
}

// Hex converts o to a cube coordinate under s.
func (o Offset) Hex(s OffsetScheme) (Hex, error) { return s.ToHex(o) }

// Offset converts h to an offset address under s.
func (h Hex) Offset(s OffsetScheme) (Offset, error) { return s.FromHex(h) }
