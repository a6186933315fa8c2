// Package toaster shows short notices over the top right of the screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/inkwell/internal/ui/overlay"
	"github.com/zjrosen/inkwell/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota // ✅ green border
	StyleError                // ❌ red border
	StyleInfo                 // ℹ️ blue border
	StyleWarn                 // ⚠️ yellow border
)

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	seq     int // bumped per Show so stale dismissals are ignored
	width   int
	height  int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message until Hide or a matching DismissMsg.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	return m
}

// ShowFor displays message and schedules its own dismissal after d. A
// newer toast is not hidden by an older toast's timer.
func (m Model) ShowFor(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m = m.Show(message, style)
	return m, ScheduleDismiss(d, m.seq)
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Update handles DismissMsg.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.Seq == m.seq {
		return m.Hide()
	}
	return m
}

// SetSize updates the screen dimensions for positioning.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var icon string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
		icon = "❌ "
	case StyleInfo:
		style = style.BorderForeground(styles.ToastBorderInfoColor)
		icon = "ℹ️ "
	case StyleWarn:
		style = style.BorderForeground(styles.ToastBorderWarnColor)
		icon = "⚠️ "
	default: // StyleSuccess
		style = style.BorderForeground(styles.ToastBorderSuccessColor)
		icon = "✅ "
	}

	message := m.message
	// border and padding take 4 cells; keep 2 more clear of the screen edge
	if limit := m.width - 6 - lipgloss.Width(icon); m.width > 0 && limit > 0 {
		message = truncate.StringWithTail(message, uint(limit), "…")
	}
	return style.Render(icon + message)
}

// Overlay renders the toast on top of bg.
func (m Model) Overlay(bg string) string {
	if !m.visible || m.message == "" {
		return bg
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.TopRight,
		PadX:     1,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg hides the toast shown with the same Seq.
type DismissMsg struct {
	Seq int
}

// ScheduleDismiss returns a command that dismisses toast seq after d.
func ScheduleDismiss(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}
