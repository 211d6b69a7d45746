package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"charfreq/internal/domain"
)

// TablePort is the TUI-facing view of a finished frequency run.
type TablePort interface {
	Characters() []string
	Records(character string) domain.FrequencyTable
	Selected(character string) bool
}

// Model is the Bubble Tea model for browsing character frequencies.
type Model struct {
	table      TablePort
	input      textinput.Model
	viewport   viewport.Model
	all        []string
	characters []string
	summary    string
	status     string
	cursor     int
	ready      bool
}

// New creates a browser over table. summary is shown under the header.
func New(table TablePort, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Filter characters and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	all := table.Characters()
	return Model{
		table:      table,
		input:      ti,
		viewport:   vp,
		all:        all,
		characters: all,
		summary:    summary,
		status:     fmt.Sprintf("%d characters. Up/down to browse.", len(all)),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, dh := detailBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + summary, status, input box, spacer
		vh := msg.Height - reserved
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-dh)
		m.viewport.SetContent(m.renderCurrent())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			m.applyFilter(strings.TrimSpace(m.input.Value()))
			m.viewport.SetContent(m.renderCurrent())
			return m, nil
		case "down":
			if len(m.characters) > 0 {
				m.cursor = (m.cursor + 1) % len(m.characters)
				m.viewport.SetContent(m.renderCurrent())
				return m, nil
			}
		case "up":
			if len(m.characters) > 0 {
				m.cursor = (m.cursor - 1 + len(m.characters)) % len(m.characters)
				m.viewport.SetContent(m.renderCurrent())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the header, current character and filter input.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Character Frequencies")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	detail := detailBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + detail + "\n" + input + "\n" + status
}

// Current returns the character under the cursor, or "" when none match.
func (m Model) Current() string {
	if len(m.characters) == 0 {
		return ""
	}
	return m.characters[m.cursor]
}

func (m *Model) applyFilter(q string) {
	m.cursor = 0
	if q == "" {
		m.characters = m.all
		m.status = fmt.Sprintf("%d characters.", len(m.all))
		return
	}
	q = strings.ToLower(q)
	var out []string
	for _, c := range m.all {
		if strings.Contains(strings.ToLower(c), q) {
			out = append(out, c)
		}
	}
	m.characters = out
	m.status = fmt.Sprintf("%d of %d characters match %q", len(out), len(m.all), q)
}

func (m Model) renderCurrent() string {
	character := m.Current()
	if character == "" {
		return "No matching characters."
	}
	records := m.table.Records(character)
	peak := 0
	width := 0
	for _, r := range records {
		if r.Frequency.Valid && r.Frequency.Value > peak {
			peak = r.Frequency.Value
		}
		width = max(width, len(r.Novel))
	}

	var b strings.Builder
	title := fmt.Sprintf("%s  %d/%d", character, m.cursor+1, len(m.characters))
	if m.table.Selected(character) {
		title += "  " + selectedStyle.Render("top-changing")
	}
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, r := range records {
		count := "-"
		bar := ""
		if r.Frequency.Valid {
			count = fmt.Sprint(r.Frequency.Value)
			bar = barStyle.Render(strings.Repeat("█", barLength(r.Frequency.Value, peak)))
		}
		fmt.Fprintf(&b, "%-*s %7s %s\n", width, r.Novel, count, bar)
	}
	return b.String()
}

func barLength(value, peak int) int {
	if peak <= 0 || value <= 0 {
		return 0
	}
	return max(1, value*barWidth/peak)
}

const barWidth = 40

var (
	detailBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
