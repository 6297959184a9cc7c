package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		decimals int
		want     string
	}{
		{name: "zero", bytes: 0, decimals: 2, want: "0 Bytes"},
		{name: "below one kilobyte", bytes: 512, decimals: 2, want: "512 Bytes"},
		{name: "exact kilobyte", bytes: 1024, decimals: 2, want: "1 KB"},
		{name: "one and a half kilobytes", bytes: 1536, decimals: 1, want: "1.5 KB"},
		{name: "exact gigabyte", bytes: GiB, decimals: 2, want: "1 GB"},
		{name: "rounds half up", bytes: GiB + GiB/4, decimals: 1, want: "1.3 GB"},
		{name: "negative decimals behave as zero", bytes: 1536, decimals: -3, want: "2 KB"},
		{name: "clamps to terabytes", bytes: 2048 * TiB, decimals: 2, want: "2048 TB"},
		{name: "keeps sign of overrun", bytes: -1536, decimals: 1, want: "-1.5 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes, tt.decimals, EnglishSizeLabels))
		})
	}
}

func TestFormatBytesPersianLabels(t *testing.T) {
	assert.Equal(t, "0 بایت", FormatBytes(0, 2, PersianSizeLabels))
	assert.Equal(t, "1.5 کیلوبایت", FormatBytes(1536, 1, PersianSizeLabels))
}

func TestToBytes(t *testing.T) {
	assert.Equal(t, int64(1073741824), ToBytes(1, UnitGB))
	assert.Equal(t, int64(2621440), ToBytes(2.5, UnitMB))
	assert.Equal(t, int64(1536), ToBytes(1.5, UnitKB))
	assert.Equal(t, TiB, ToBytes(1, UnitTB))
	assert.Equal(t, int64(42), ToBytes(42, Unit("PB")))
}

func TestParseUnit(t *testing.T) {
	unit, ok := ParseUnit(" gb ")
	assert.True(t, ok)
	assert.Equal(t, UnitGB, unit)

	unit, ok = ParseUnit("bytes")
	assert.True(t, ok)
	assert.Equal(t, UnitBytes, unit)

	_, ok = ParseUnit("PB")
	assert.False(t, ok)
}
