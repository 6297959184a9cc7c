package domain

import (
	"math"
	"math/bits"
	"strings"

	"github.com/dustin/go-humanize"
)

type Unit string

const (
	UnitBytes Unit = "Bytes"
	UnitKB    Unit = "KB"
	UnitMB    Unit = "MB"
	UnitGB    Unit = "GB"
	UnitTB    Unit = "TB"
)

const (
	KiB int64 = 1 << 10
	MiB int64 = 1 << 20
	GiB int64 = 1 << 30
	TiB int64 = 1 << 40
)

// maxFormatDecimals bounds the precision humanize keeps when trimming zeros.
const maxFormatDecimals = 6

// SizeLabels are the unit names used by FormatBytes, indexed by power of 1024.
type SizeLabels [5]string

var (
	EnglishSizeLabels = SizeLabels{"Bytes", "KB", "MB", "GB", "TB"}
	PersianSizeLabels = SizeLabels{"بایت", "کیلوبایت", "مگابایت", "گیگابایت", "ترابایت"}
)

func (u Unit) Multiplier() int64 {
	switch u {
	case UnitKB:
		return KiB
	case UnitMB:
		return MiB
	case UnitGB:
		return GiB
	case UnitTB:
		return TiB
	default:
		return 1
	}
}

func ParseUnit(raw string) (Unit, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "B", "BYTE", "BYTES":
		return UnitBytes, true
	case "KB":
		return UnitKB, true
	case "MB":
		return UnitMB, true
	case "GB":
		return UnitGB, true
	case "TB":
		return UnitTB, true
	default:
		return "", false
	}
}

// ToBytes converts value in unit to whole bytes. Unknown units count as raw bytes.
func ToBytes(value float64, unit Unit) int64 {
	return int64(math.Round(value * float64(unit.Multiplier())))
}

// FormatBytes renders bytes with the largest unit that keeps the mantissa >= 1,
// rounded to decimals places with trailing zeros dropped ("1.5 KB", "1 GB").
func FormatBytes(bytes int64, decimals int, labels SizeLabels) string {
	if bytes == 0 {
		return "0 " + labels[0]
	}

	dm := decimals
	if dm < 0 {
		dm = 0
	}
	if dm > maxFormatDecimals {
		dm = maxFormatDecimals
	}

	magnitude := uint64(bytes)
	if bytes < 0 {
		magnitude = uint64(-bytes)
	}

	i := (bits.Len64(magnitude) - 1) / 10
	if i >= len(labels) {
		i = len(labels) - 1
	}

	scaled := float64(bytes) / math.Pow(1024, float64(i))
	pow := math.Pow(10, float64(dm))
	rounded := math.Round(scaled*pow) / pow

	return humanize.FtoaWithDigits(rounded, dm) + " " + labels[i]
}
