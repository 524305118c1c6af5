// Package sizefmt scales byte counts into T/G/M/K units.
package sizefmt

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

type threshold struct {
	bytes float64
	unit  byte
}

var (
	binaryThresholds = []threshold{
		{humanize.TiByte, 'T'},
		{humanize.GiByte, 'G'},
		{humanize.MiByte, 'M'},
		{humanize.KiByte, 'K'},
	}
	// Decimal thousands use a lowercase k.
	decimalThresholds = []threshold{
		{humanize.TByte, 'T'},
		{humanize.GByte, 'G'},
		{humanize.MByte, 'M'},
		{humanize.KByte, 'k'},
	}
)

// Size is a byte count ready for display.
type Size struct {
	Bytes  uint64
	Value  float64
	Unit   byte // 0 when the count is not scaled
	Binary bool
	Raw    bool
}

// Format scales n by the largest threshold it meets. With raw set the count is
// never scaled. Binary selects 1024-based thresholds, otherwise 1000-based.
func Format(n uint64, raw, binary bool) Size {
	s := Size{Bytes: n, Value: float64(n), Binary: binary, Raw: raw}
	if raw {
		return s
	}
	thresholds := decimalThresholds
	if binary {
		thresholds = binaryThresholds
	}
	for _, t := range thresholds {
		if s.Value >= t.bytes {
			s.Value /= t.bytes
			s.Unit = t.unit
			break
		}
	}
	return s
}

// Scaled reports whether a unit was assigned.
func (s Size) Scaled() bool {
	return s.Unit != 0
}

// Number renders the value with two decimals when scaled, as an integer otherwise.
func (s Size) Number() string {
	if s.Scaled() {
		return strconv.FormatFloat(s.Value, 'f', 2, 64)
	}
	return strconv.FormatUint(s.Bytes, 10)
}

// UnitLabel returns the unit as printed, e.g. "Ki", "M" or "k". Empty when not scaled.
func (s Size) UnitLabel() string {
	if !s.Scaled() {
		return ""
	}
	if s.Binary {
		return string(s.Unit) + "i"
	}
	return string(s.Unit)
}

// Suffix returns the text printed after the number: the unit column, padded
// to a constant width when there is no unit, followed by "B" unless raw.
func (s Size) Suffix() string {
	var b []byte
	if s.Scaled() {
		b = append(b, ' ', s.Unit)
		if s.Binary {
			b = append(b, 'i')
		}
	} else {
		b = append(b, ' ', ' ')
		if s.Binary {
			b = append(b, ' ')
		}
	}
	if !s.Raw {
		b = append(b, 'B')
	}
	return string(b)
}

func (s Size) String() string {
	return s.Number() + s.Suffix()
}
