// Package ui provides the terminal site browser using Bubble Tea.
package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-telsite/internal/telescope"
	"github.com/litescript/ls-telsite/internal/version"
)

// inputMode says what keystrokes are being collected for.
type inputMode int

const (
	modeBrowse inputMode = iota
	modeFilter
	modeCode
)

// Styles for the browser panes.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	listHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the root Bubble Tea model for the site browser.
type Model struct {
	resolver  *telescope.Resolver
	separator string

	names    []string // full sorted catalog
	visible  []string // names passing the current filter
	cursor   int
	mode     inputMode
	input    string // filter or code text being typed
	selected *telescope.Record
	errMsg   string

	width  int
	height int
}

// New creates the browser model over a resolver. The separator is used for
// sexagesimal display in the detail pane.
func New(resolver *telescope.Resolver, separator string) Model {
	names := resolver.Names()
	m := Model{
		resolver:  resolver,
		separator: separator,
		names:     names,
		visible:   names,
	}
	m.selectCurrent()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeFilter, modeCode:
			return m.updateInput(msg), nil
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.selectCurrent()
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			m.selectCurrent()
		}
	case "home":
		m.cursor = 0
		m.selectCurrent()
	case "end":
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
			m.selectCurrent()
		}
	case "/":
		m.mode = modeFilter
		m.input = ""
	case ":":
		m.mode = modeCode
		m.input = ""
	}
	return m, nil
}

// updateInput collects filter or observatory-code text.
func (m Model) updateInput(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		if m.mode == modeFilter {
			m.applyFilter("")
		}
		m.mode = modeBrowse
		m.input = ""
	case "enter":
		if m.mode == modeCode {
			m.resolveCode(m.input)
		}
		m.mode = modeBrowse
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
			if m.mode == modeFilter {
				m.applyFilter(m.input)
			}
		}
	default:
		if len(msg.String()) == 1 {
			m.input += msg.String()
			if m.mode == modeFilter {
				m.applyFilter(m.input)
			}
		}
	}
	return m
}

// applyFilter narrows the visible list to mnemonics containing the query.
func (m *Model) applyFilter(query string) {
	query = strings.ToUpper(query)
	if query == "" {
		m.visible = m.names
	} else {
		var out []string
		for _, n := range m.names {
			if strings.Contains(n, query) {
				out = append(out, n)
			}
		}
		m.visible = out
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
	m.selectCurrent()
}

// selectCurrent resolves the record under the cursor for the detail pane.
func (m *Model) selectCurrent() {
	m.errMsg = ""
	if len(m.visible) == 0 {
		m.selected = nil
		return
	}
	rec, err := m.resolver.ResolveName(m.visible[m.cursor])
	if err != nil {
		m.selected = nil
		m.errMsg = err.Error()
		return
	}
	m.selected = rec
}

// resolveCode jumps the detail pane to an arbitrary observatory code.
func (m *Model) resolveCode(code string) {
	m.errMsg = ""
	rec, err := m.resolver.ResolveCode(strings.TrimSpace(code))
	if err != nil {
		m.errMsg = "code " + code + ": not found"
		return
	}
	m.selected = rec
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ls-telsite " + version.Version))
	b.WriteString("\n\n")

	list := m.renderList()
	detail := m.renderDetail()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	b.WriteString("\n")

	switch m.mode {
	case modeFilter:
		b.WriteString(promptStyle.Render("/" + m.input))
	case modeCode:
		b.WriteString(promptStyle.Render(":" + m.input))
	default:
		b.WriteString(helpStyle.Render("j/k move  / filter  : code  q quit"))
	}
	if m.errMsg != "" {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("SITES"))
	b.WriteByte('\n')

	rows := m.listHeight()
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	for i := start; i < len(m.visible) && i < start+rows; i++ {
		style := rowStyle
		if i == m.cursor {
			style = selectedRowStyle
		}
		b.WriteString(style.Render(m.visible[i]))
		b.WriteByte('\n')
	}
	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("(no match)"))
		b.WriteByte('\n')
	}
	return b.String()
}

// listHeight is how many site rows fit beside the detail pane.
func (m Model) listHeight() int {
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}
