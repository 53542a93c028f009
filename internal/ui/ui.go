// Package ui renders flightdb's console output. Styles are applied only when
// stdout is a terminal and colour is allowed; otherwise every helper returns
// plain, grep-friendly text.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// UI decides between styled and plain rendering
type UI struct {
	IsTTY   bool
	NoColor bool
}

// KV is one row of a summary box
type KV struct {
	Key   string
	Value string
}

// New inspects stdout and NO_COLOR
func New() *UI {
	return &UI{
		IsTTY:   term.IsTerminal(int(os.Stdout.Fd())),
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// Plain returns a UI that never styles output (pipes, tests).
func Plain() *UI {
	return &UI{NoColor: true}
}

// SetNoColor turns styling and spinner animation off or back on
func (u *UI) SetNoColor(noColor bool) {
	u.NoColor = noColor
}

func (u *UI) shouldStyle() bool {
	return u.IsTTY && !u.NoColor
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)

	keyStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	valueStyle = lipgloss.NewStyle().Bold(true)

	boxTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	boxStyle      = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Padding(0, 1)
)

// level is a kind of status line. On plain output the tag replaces the symbol.
type level struct {
	tag    string
	symbol string
	style  lipgloss.Style
	// whole styles the message too, not just the symbol
	whole bool
}

var (
	levelOK     = level{tag: "[OK]", symbol: SymbolSuccess, style: StyleSuccess}
	levelFailed = level{tag: "[FAILED]", symbol: SymbolError, style: StyleError, whole: true}
	levelWarn   = level{tag: "[WARN]", symbol: SymbolWarning, style: StyleWarning, whole: true}
)

func (u *UI) status(l level, msg string) string {
	switch {
	case !u.shouldStyle():
		return l.tag + " " + msg
	case l.whole:
		return l.style.Render(l.symbol + " " + msg)
	default:
		return l.style.Render(l.symbol) + " " + msg
	}
}

// Success renders "[OK] msg" or a green check
func (u *UI) Success(msg string) string { return u.status(levelOK, msg) }

// Error renders "[FAILED] msg" or a red cross
func (u *UI) Error(msg string) string { return u.status(levelFailed, msg) }

// Warning renders "[WARN] msg"; prompts use it for "Try again..."
func (u *UI) Warning(msg string) string { return u.status(levelWarn, msg) }

// Header renders a title, boxed on a terminal
func (u *UI) Header(title string) string {
	if !u.shouldStyle() {
		return fmt.Sprintf("=== %s ===", title)
	}
	return headerStyle.Render(title)
}

// KeyValue renders one aligned "key: value" line
func (u *UI) KeyValue(key, value string) string {
	if !u.shouldStyle() {
		return fmt.Sprintf("%-10s %s", key+":", value)
	}
	return "  " + keyStyle.Width(12).Render(key) + " " + valueStyle.Render(value)
}

// Bold renders emphasised text
func (u *UI) Bold(msg string) string {
	if !u.shouldStyle() {
		return msg
	}
	return valueStyle.Render(msg)
}

// MenuItem renders one numbered menu entry
func (u *UI) MenuItem(n int, label string) string {
	if !u.shouldStyle() {
		return fmt.Sprintf("%d. %s", n, label)
	}
	return StyleAccent.Render(fmt.Sprintf("%d.", n)) + " " + label
}

// SummaryBox renders the --stats summary: a title over aligned rows
func (u *UI) SummaryBox(title string, items []KV) string {
	var sb strings.Builder

	if !u.shouldStyle() {
		fmt.Fprintf(&sb, "\n=== %s ===\n", title)
		for _, item := range items {
			fmt.Fprintf(&sb, "%-14s %s\n", item.Key+":", item.Value)
		}
		return sb.String()
	}

	width := 0
	for _, item := range items {
		width = max(width, lipgloss.Width(item.Key))
	}

	rows := make([]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, "  "+keyStyle.Width(width+2).Render(item.Key)+" "+valueStyle.Render(item.Value))
	}

	sb.WriteString("\n")
	sb.WriteString(boxTitleStyle.Render("  " + title))
	sb.WriteString("\n")
	sb.WriteString(boxStyle.Render(strings.Join(rows, "\n")))
	return sb.String()
}
