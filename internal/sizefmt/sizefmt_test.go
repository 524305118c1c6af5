package sizefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_binary(t *testing.T) {
	tests := []struct {
		name   string
		bytes  uint64
		unit   byte
		number string
	}{
		{"zero", 0, 0, "0"},
		{"below kibi", 1023, 0, "1023"},
		{"exactly kibi", 1024, 'K', "1.00"},
		{"1100 bytes", 1100, 'K', "1.07"},
		{"just below mebi", 1<<20 - 1, 'K', "1024.00"},
		{"exactly mebi", 1 << 20, 'M', "1.00"},
		{"gibi and a half", 3 << 29, 'G', "1.50"},
		{"exactly tebi", 1 << 40, 'T', "1.00"},
		{"beyond tebi stays T", 5 << 50, 'T', "5120.00"},
		{"beyond 32 bits", 5_000_000_000, 'G', "4.66"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Format(tt.bytes, false, true)
			assert.Equal(t, tt.unit, s.Unit)
			assert.Equal(t, tt.number, s.Number())
			assert.Equal(t, tt.bytes, s.Bytes)
		})
	}
}

func TestFormat_decimal(t *testing.T) {
	tests := []struct {
		name   string
		bytes  uint64
		unit   byte
		number string
	}{
		{"below kilo", 999, 0, "999"},
		{"exactly kilo is lowercase", 1000, 'k', "1.00"},
		{"1100 bytes", 1100, 'k', "1.10"},
		{"mega", 2_500_000, 'M', "2.50"},
		{"giga", 1_000_000_000, 'G', "1.00"},
		{"tera", 7_250_000_000_000, 'T', "7.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Format(tt.bytes, false, false)
			assert.Equal(t, tt.unit, s.Unit)
			assert.Equal(t, tt.number, s.Number())
		})
	}
}

func TestFormat_rawNeverScales(t *testing.T) {
	for _, n := range []uint64{0, 999, 1000, 1024, 1 << 30, 1 << 45, 1<<64 - 1} {
		for _, binary := range []bool{true, false} {
			s := Format(n, true, binary)
			assert.False(t, s.Scaled(), "n=%d binary=%v", n, binary)
			assert.Equal(t, float64(n), s.Value)
			assert.Empty(t, s.UnitLabel())
			assert.NotContains(t, s.Suffix(), "B")
		}
	}
	assert.Equal(t, "18446744073709551615", Format(1<<64-1, true, true).Number())
}

func TestFormat_stable(t *testing.T) {
	for _, n := range []uint64{0, 1, 1023, 1024, 1100, 1 << 33, 1<<64 - 1} {
		assert.Equal(t, Format(n, false, true), Format(n, false, true))
		assert.Equal(t, Format(n, false, false), Format(n, false, false))
	}
}

func TestSize_UnitLabel(t *testing.T) {
	assert.Equal(t, "Ki", Format(1024, false, true).UnitLabel())
	assert.Equal(t, "Mi", Format(1<<20, false, true).UnitLabel())
	assert.Equal(t, "k", Format(1000, false, false).UnitLabel())
	assert.Equal(t, "", Format(10, false, true).UnitLabel())
}

func TestSize_Suffix(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want string
	}{
		{"binary unit", Format(1100, false, true), " KiB"},
		{"decimal unit", Format(1100, false, false), " kB"},
		{"binary no unit", Format(10, false, true), "   B"},
		{"decimal no unit", Format(10, false, false), "  B"},
		{"raw binary", Format(1000, true, true), "   "},
		{"raw decimal", Format(1000, true, false), "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.size.Suffix())
		})
	}
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "1.07 KiB", Format(1100, false, true).String())
	assert.Equal(t, "1.10 kB", Format(1100, false, false).String())
	assert.Equal(t, "1000   ", Format(1000, true, true).String())
}
