package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"studentlife/internal/sim"
)

// Studentlife theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSparkle = "✨"
	IconClock   = "🕗"
	IconDay     = "📅"
	IconFitness = "💪"
	IconBooks   = "📚"
	IconSocial  = "👥"
	IconMind    = "🧠"
	IconMoney   = "💰"
	IconBolt    = "⚡"
	IconShop    = "🛒"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconTrophy  = "🏆"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeGameOver = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("TERM OVER")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// FieldIcon returns the emoji for an attribute.
func FieldIcon(f sim.Field) string {
	switch f {
	case sim.FieldFitness:
		return IconFitness
	case sim.FieldAcademics:
		return IconBooks
	case sim.FieldSocial:
		return IconSocial
	case sim.FieldMentalHealth:
		return IconMind
	case sim.FieldFinances:
		return IconMoney
	default:
		return ""
	}
}

// StatBar renders one attribute as a fixed-width bar on the 0–20 scale.
func StatBar(value float64, width int) string {
	if width <= 3 {
		width = 3
	}
	ratio := value / sim.StatMax
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// DeltaText renders a signed stat change, colored by direction.
func DeltaText(amount float64) string {
	s := fmt.Sprintf("%+.1f", amount)
	if amount < 0 {
		return Bad.Render(s)
	}
	return Good.Render(s)
}
