// Package tui implements the interactive category assignment screen: a
// keyboard-driven list of discovered files where each row is assigned one of
// the configured categories before export.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harrison/filecat/internal/category"
	"github.com/harrison/filecat/internal/fileutil"
)

var (
	lbl      = lipgloss.NewStyle().Faint(true)
	val      = lipgloss.NewStyle().Bold(true)
	assigned = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fff87")).Bold(true)
	missing  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	acc      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))
)

// visibleRows is how many file rows fit on screen before scrolling.
const visibleRows = 15

// Model is the bubbletea model for the assignment screen.
type Model struct {
	records []fileutil.FileRecord
	set     *category.Set
	choices map[string]string

	visible []int // indexes into records after filtering
	cursor  int
	offset  int

	filter    textinput.Model
	filtering bool

	saved    bool
	quitting bool
}

// New creates an assignment screen over the enumerated records. Existing
// assignments, when provided, pre-populate the per-file choices.
func New(records []fileutil.FileRecord, set *category.Set, existing *category.Assignments) Model {
	filter := textinput.New()
	filter.Prompt = "Filter: "
	filter.Placeholder = "name substring"

	choices := make(map[string]string)
	if existing != nil {
		for _, e := range existing.Entries() {
			choices[e.Path] = e.Category
		}
	}

	m := Model{
		records: records,
		set:     set,
		choices: choices,
		filter:  filter,
	}
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.updateFilter(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "s":
			m.saved = true
			m.quitting = true
			return m, tea.Quit
		case "/":
			m.filtering = true
			m.filter.Focus()
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case "left", "h":
			m.cycle(-1)
		case "right", "l", " ":
			m.cycle(1)
		case "x", "backspace":
			if rec, ok := m.current(); ok {
				delete(m.choices, rec.DisplayPath)
			}
		default:
			// Digits pick a category by its position in the canonical list
			if len(msg.String()) == 1 && msg.String()[0] >= '1' && msg.String()[0] <= '9' {
				idx := int(msg.String()[0] - '1')
				labels := m.set.Labels()
				if idx < len(labels) {
					if rec, ok := m.current(); ok {
						m.choices[rec.DisplayPath] = labels[idx]
					}
				}
			}
		}
	}

	m.scroll()
	return m, nil
}

func (m Model) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.applyFilter()
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter recomputes the visible rows from the filter text.
func (m *Model) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, rec := range m.records {
		if needle == "" || strings.Contains(strings.ToLower(rec.Name), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
	m.offset = 0
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}
}

func (m Model) current() (fileutil.FileRecord, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return fileutil.FileRecord{}, false
	}
	return m.records[m.visible[m.cursor]], true
}

// cycle steps the current file's category forward or backward through the
// canonical list; an unassigned file starts at the first label.
func (m *Model) cycle(step int) {
	rec, ok := m.current()
	if !ok {
		return
	}
	labels := m.set.Labels()
	current, has := m.choices[rec.DisplayPath]
	if !has {
		m.choices[rec.DisplayPath] = labels[0]
		return
	}
	for i, label := range labels {
		if label == current {
			next := (i + step + len(labels)) % len(labels)
			m.choices[rec.DisplayPath] = labels[next]
			return
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(val.Render("Assign Categories"))
	fmt.Fprintf(&b, "  %s\n", lbl.Render(fmt.Sprintf("%d/%d assigned", len(m.choices), len(m.records))))

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	end := m.offset + visibleRows
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		rec := m.records[m.visible[i]]

		cursor := "  "
		if i == m.cursor {
			cursor = acc.Render("> ")
		}

		cat, has := m.choices[rec.DisplayPath]
		catCell := missing.Render("[unassigned]")
		if has {
			catCell = assigned.Render("[" + cat + "]")
		}

		name := rec.Name
		if i == m.cursor {
			name = val.Render(name)
		}

		fmt.Fprintf(&b, "%s%-40s %s %s  %s\n",
			cursor, name, lbl.Render(rec.Modified), catCell, lbl.Render(rec.DisplayPath))
	}

	if len(m.visible) == 0 {
		b.WriteString(lbl.Render("  no files match the filter\n"))
	}

	b.WriteString("\n")
	b.WriteString(lbl.Render("←/→ cycle category · 1-9 pick · x clear · / filter · s save · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Saved reports whether the user chose to save on exit.
func (m Model) Saved() bool {
	return m.saved
}

// Assignments builds the assignment map from the screen's choices, in
// enumeration order.
func (m Model) Assignments() (*category.Assignments, error) {
	a := category.NewAssignments(m.set)
	for _, rec := range m.records {
		cat, ok := m.choices[rec.DisplayPath]
		if !ok {
			continue
		}
		if err := a.Assign(rec, cat); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Run drives the assignment screen to completion and returns the resulting
// assignments. The boolean reports whether the user saved; quitting without
// saving returns (nil, false, nil).
func Run(records []fileutil.FileRecord, set *category.Set, existing *category.Assignments) (*category.Assignments, bool, error) {
	final, err := tea.NewProgram(New(records, set, existing)).Run()
	if err != nil {
		return nil, false, fmt.Errorf("assignment screen failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok || !m.Saved() {
		return nil, false, nil
	}

	a, err := m.Assignments()
	if err != nil {
		return nil, false, err
	}
	return a, true, nil
}
