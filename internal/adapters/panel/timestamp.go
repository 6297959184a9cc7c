package panel

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/vpnadm/internal/domain"
	json "github.com/goccy/go-json"
)

// The backend serializes naive UTC datetimes, with or without fractional
// seconds and offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
}

type timestamp struct {
	value time.Time
	set   bool
}

func (ts *timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ts = timestamp{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*ts = timestamp{}
		return nil
	}

	parsed, err := parseTimestamp(raw)
	if err != nil {
		return err
	}
	*ts = timestamp{value: parsed, set: true}
	return nil
}

func (ts timestamp) optional() domain.Optional[time.Time] {
	if !ts.set {
		return domain.None[time.Time]()
	}
	return domain.Some(ts.value)
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

func formatTimestamp(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}

func optionalBytes(raw *float64) domain.Optional[int64] {
	if raw == nil {
		return domain.None[int64]()
	}
	return domain.Some(int64(math.Round(*raw)))
}

func optionalInt(raw *int) domain.Optional[int] {
	if raw == nil {
		return domain.None[int]()
	}
	return domain.Some(*raw)
}

func optionalFloat(raw *float64) domain.Optional[float64] {
	if raw == nil {
		return domain.None[float64]()
	}
	return domain.Some(*raw)
}

func derefString(raw *string) string {
	if raw == nil {
		return ""
	}
	return *raw
}

func nullableString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
