package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/jam/internal/journal"
	"github.com/faizmokh/jam/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Model owns Bubble Tea state for the day browser. It is read-only over
// sections the caller already parsed and filtered of empty days.
type Model struct {
	sections []journal.DaySection
	rate     float64

	selected int
	jumping  bool
	input    textinput.Model
	errLine  string
}

// NewModel seeds the browser positioned on the most recent day.
func NewModel(sections []journal.DaySection, rate float64) Model {
	input := textinput.New()
	input.Placeholder = "YYYY-MM-DD"
	input.CharLimit = 10
	input.Width = 12

	return Model{
		sections: sections,
		rate:     rate,
		selected: len(sections) - 1,
		input:    input,
	}
}

// Init does nothing; all data is loaded before the program starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation and the jump-to-date prompt.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.jumping {
		return m.handleJumpKey(key)
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}
		m.errLine = ""
	case "right", "l":
		if m.selected < len(m.sections)-1 {
			m.selected++
		}
		m.errLine = ""
	case "g":
		m.jumping = true
		m.errLine = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) handleJumpKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.jumping = false
		m.input.Blur()
		return m, nil
	case "enter":
		target, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(m.input.Value()), time.Local)
		if err != nil {
			m.errLine = "invalid date, use YYYY-MM-DD"
			return m, nil
		}
		m.selected = indexOnOrAfter(m.sections, target)
		m.jumping = false
		m.errLine = ""
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// indexOnOrAfter returns the first section on or after target, or the last
// section when the whole journal precedes it.
func indexOnOrAfter(sections []journal.DaySection, target time.Time) int {
	for i, section := range sections {
		if !section.Date.Before(target) {
			return i
		}
	}
	return len(sections) - 1
}

// View renders the selected day with its intervals and running totals.
func (m Model) View() string {
	if len(m.sections) == 0 {
		return dimStyle.Render("No hours recorded.") + "\n"
	}

	section := m.sections[m.selected]
	elapsed := journal.Sum(section.Intervals)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  (day %d of %d)",
		section.Date.Format("2006-01-02"), m.selected+1, len(m.sections))))
	b.WriteString("\n\n")

	for _, iv := range section.Intervals {
		b.WriteString(fmt.Sprintf("  %s - %s  %s\n",
			iv.Start.Format("03:04 PM"),
			iv.End.Format("03:04 PM"),
			report.FormatDuration(iv.Duration())))
	}

	b.WriteString("\n")
	dayLine := fmt.Sprintf("Day total: %s", report.FormatDuration(elapsed))
	if m.rate > 0 {
		dayLine += fmt.Sprintf("  ($%.2f)", elapsed.Hours()*m.rate)
	}
	b.WriteString(totalStyle.Render(dayLine))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("All days:  %s", report.FormatDuration(journal.Total(m.sections)))))
	b.WriteString("\n")

	if m.jumping {
		b.WriteString("\nJump to date: " + m.input.View() + "\n")
	}
	if m.errLine != "" {
		b.WriteString(errStyle.Render(m.errLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("h/l: prev/next day · g: jump to date · q: quit"))
	b.WriteString("\n")
	return b.String()
}
