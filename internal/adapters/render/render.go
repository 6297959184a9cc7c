// Package render holds the pieces shared by the terminal views: the label
// source, the palette, and the usage bar.
package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Labels localizes everything a view prints.
type Labels interface {
	T(key string, params ...string) string
	Bytes(bytes int64) string
	Number(n int64) string
	Price(amount float64) string
	Date(at time.Time) string
	Clock(at time.Time) string
	StatusLabel(status domain.Status) string
	TagLabel(tag domain.Tag) string
}

type Palette struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Key       lipgloss.Style
	Value     lipgloss.Style
	Faint     lipgloss.Style
	Warning   lipgloss.Style
	Section   lipgloss.Style
	Bracket   lipgloss.Style
	BarEmpty  lipgloss.Style
	Border    lipgloss.Style
	Highlight lipgloss.Style
}

func NewPalette() Palette {
	return Palette{
		Title:     lipgloss.NewStyle().Bold(true),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Key:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Faint:     lipgloss.NewStyle().Faint(true),
		Warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Section:   lipgloss.NewStyle().MarginTop(1),
		Bracket:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		BarEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Border:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
}

func TierColor(tier domain.UsageTier) lipgloss.Color {
	switch tier {
	case domain.UsageTierCritical:
		return lipgloss.Color("203")
	case domain.UsageTierWarning:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("42")
	}
}

func StatusColor(status domain.Status) lipgloss.Color {
	switch status {
	case domain.StatusDisabled:
		return lipgloss.Color("245")
	case domain.StatusExpired:
		return lipgloss.Color("203")
	case domain.StatusDataLimitReached:
		return lipgloss.Color("208")
	default:
		return lipgloss.Color("42")
	}
}

// UsageBar draws the used share of a quota, colored by tier.
func UsageBar(fraction float64, tier domain.UsageTier, width int, p Palette) string {
	if width <= 0 {
		return ""
	}

	fraction = math.Max(0, math.Min(1, fraction))
	filled := int(math.Round(float64(width) * fraction))
	fill := lipgloss.NewStyle().Foreground(TierColor(tier))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		p.Bracket.Render("["),
		fill.Render(strings.Repeat("=", filled)),
		p.BarEmpty.Render(strings.Repeat("-", width-filled)),
		p.Bracket.Render("]"),
	)
}

// DaysColor fades from grey for a long runway to bright white as expiry nears.
func DaysColor(days, horizon int) lipgloss.Color {
	if days <= 0 {
		return lipgloss.Color("203")
	}
	return interpolateColor(float64(horizon-days), 0, float64(horizon))
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// 240..255 is the brighter half of the 256-color greyscale ramp.
	const base, target = 240.0, 255.0
	return lipgloss.Color(fmt.Sprintf("%d", int(base+(target-base)*normalized)))
}

// Percent formats a [0,1] fraction as a whole percentage.
func Percent(fraction float64) string {
	return fmt.Sprintf("%.0f%%", math.Max(0, math.Min(1, fraction))*100)
}
