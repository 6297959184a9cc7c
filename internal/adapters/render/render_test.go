package render

import (
	"testing"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestUsageBarFillsUsedShare(t *testing.T) {
	p := NewPalette()

	bar := UsageBar(0.5, domain.UsageTierNormal, 10, p)
	assert.Contains(t, bar, "=====")
	assert.Contains(t, bar, "-----")

	full := UsageBar(1.4, domain.UsageTierCritical, 4, p)
	assert.Contains(t, full, "====")
	assert.NotContains(t, full, "-")

	assert.Empty(t, UsageBar(0.5, domain.UsageTierNormal, 0, p))
}

func TestTierColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("42"), TierColor(domain.UsageTierNormal))
	assert.Equal(t, lipgloss.Color("214"), TierColor(domain.UsageTierWarning))
	assert.Equal(t, lipgloss.Color("203"), TierColor(domain.UsageTierCritical))
}

func TestDaysColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("203"), DaysColor(0, 30))
	assert.Equal(t, lipgloss.Color("240"), DaysColor(30, 30))
	assert.Equal(t, lipgloss.Color("240"), DaysColor(90, 30))
	assert.Equal(t, lipgloss.Color("254"), DaysColor(1, 30))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0%", Percent(-1))
	assert.Equal(t, "73%", Percent(0.731))
	assert.Equal(t, "100%", Percent(2))
}
