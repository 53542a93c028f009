package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Gauge renders a static ratio bar, e.g. the share of queries that succeeded.
func (u *UI) Gauge(label string, ratio float64) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	if !u.shouldStyle() {
		return fmt.Sprintf("%-14s %.0f%%", label+":", ratio*100)
	}

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	labelStyle := lipgloss.NewStyle().Width(16).Foreground(ColorMuted)
	pctStyle := lipgloss.NewStyle().Bold(true)

	return fmt.Sprintf("  %s %s %s",
		labelStyle.Render(label),
		bar.ViewAs(ratio),
		pctStyle.Render(fmt.Sprintf("%.0f%%", ratio*100)),
	)
}
