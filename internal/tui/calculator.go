package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cgpa/internal/logging"
	"github.com/muurk/cgpa/internal/semester"
)

// Placeholder is shown in empty SGPA inputs
const Placeholder = "Enter SGPA (0-10)"

// CalculatorModel is the CGPA form screen.
//
// Form holds the authoritative state. Inputs mirrors it with one text
// input per entry, keyed by entry ID; after every keystroke the input's
// value is copied into Form with UpdateEntry.
type CalculatorModel struct {
	Form   semester.Form
	Inputs map[semester.EntryID]textinput.Model

	// Cursor walks the rows first, then the Add and Calculate buttons:
	// 0..n-1 rows, n Add Semester, n+1 Calculate CGPA
	Cursor int

	// UI state
	Width  int
	Height int

	// Help
	Help help.Model
	Keys keyMap
}

// NewCalculatorModel creates the form with one empty, focused row.
func NewCalculatorModel() CalculatorModel {
	return newCalculatorModel(semester.NewForm())
}

// NewCalculatorModelWithValues creates the form prefilled with values, one
// row per value. Nothing is computed until the user asks.
func NewCalculatorModelWithValues(values []string) CalculatorModel {
	return newCalculatorModel(semester.FromValues(values))
}

func newCalculatorModel(form semester.Form) CalculatorModel {
	m := CalculatorModel{
		Form:   form,
		Inputs: make(map[semester.EntryID]textinput.Model, form.Len()),
		Help:   help.New(),
		Keys:   newKeyMap(),
	}
	for _, e := range form.Entries() {
		in := newSGPAInput()
		in.SetValue(e.Raw)
		m.Inputs[e.ID] = in
	}
	m.focusCursor()
	return m
}

func newSGPAInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = Placeholder
	in.Prompt = ""
	in.Width = InputWidth
	return in
}

// Init starts the cursor blinking in the first row
func (m CalculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil

		case key.Matches(msg, m.Keys.Add):
			return m.addEntry()

		case matchesKeys(msg, m.Keys.Remove):
			// Checked by key name: the binding is disabled while one row
			// remains, but ctrl+d must still not reach the input
			return m.removeFocused()

		case key.Matches(msg, m.Keys.Up):
			m.Cursor--
			if m.Cursor < 0 {
				m.Cursor = m.lastCursor()
			}
			return m, m.focusCursor()

		case key.Matches(msg, m.Keys.Down):
			m.Cursor++
			if m.Cursor > m.lastCursor() {
				m.Cursor = 0
			}
			return m, m.focusCursor()

		case key.Matches(msg, m.Keys.Compute):
			if m.Cursor == m.addButton() {
				return m.addEntry()
			}
			return m.compute(), nil
		}
	}

	return m.updateFocusedInput(msg)
}

func matchesKeys(msg tea.KeyMsg, b key.Binding) bool {
	for _, k := range b.Keys() {
		if msg.String() == k {
			return true
		}
	}
	return false
}

// updateFocusedInput passes msg to the focused row's input and copies the
// resulting text into the form verbatim
func (m CalculatorModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	id, ok := m.focusedID()
	if !ok {
		return m, nil
	}

	in, cmd := m.Inputs[id].Update(msg)
	m.setInput(id, in)

	if entry, _ := m.Form.Entry(id); entry.Raw != in.Value() {
		m.Form = m.Form.UpdateEntry(id, in.Value())
	}

	return m, cmd
}

// addEntry appends a row and moves focus into it
func (m CalculatorModel) addEntry() (tea.Model, tea.Cmd) {
	var id semester.EntryID
	m.Form, id = m.Form.AddEntry()
	m.setInput(id, newSGPAInput())
	m.Cursor = m.Form.Index(id)

	logging.LogEntryEvent("add", id, m.Form.Len())

	return m, m.focusCursor()
}

// removeFocused drops the focused row. It does nothing when the cursor is
// on a button or only one row is left.
func (m CalculatorModel) removeFocused() (tea.Model, tea.Cmd) {
	id, ok := m.focusedID()
	if !ok || !m.Form.CanRemove() {
		return m, nil
	}

	m.Form = m.Form.RemoveEntry(id)
	m.deleteInput(id)
	if m.Cursor >= m.Form.Len() {
		m.Cursor = m.Form.Len() - 1
	}

	logging.LogEntryEvent("remove", id, m.Form.Len())

	return m, m.focusCursor()
}

// compute runs the aggregation over the current rows
func (m CalculatorModel) compute() CalculatorModel {
	m.Form = m.Form.Compute()
	logging.LogComputation("tui", m.Form.Result())
	return m
}

// focusCursor focuses the input under the cursor, if any, and blurs the rest
func (m *CalculatorModel) focusCursor() tea.Cmd {
	focused, _ := m.focusedID()

	var cmd tea.Cmd
	inputs := make(map[semester.EntryID]textinput.Model, len(m.Inputs))
	for id, in := range m.Inputs {
		if id == focused {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
		inputs[id] = in
	}
	m.Inputs = inputs

	// Reflect the remove guard in the help footer
	m.Keys.Remove.SetEnabled(m.Form.CanRemove())

	return cmd
}

func (m CalculatorModel) focusedID() (semester.EntryID, bool) {
	entries := m.Form.Entries()
	if m.Cursor < 0 || m.Cursor >= len(entries) {
		return 0, false
	}
	return entries[m.Cursor].ID, true
}

// setInput stores in under id on a copy of the map so earlier snapshots
// of the model keep their own inputs
func (m *CalculatorModel) setInput(id semester.EntryID, in textinput.Model) {
	inputs := make(map[semester.EntryID]textinput.Model, len(m.Inputs)+1)
	for k, v := range m.Inputs {
		inputs[k] = v
	}
	inputs[id] = in
	m.Inputs = inputs
}

func (m *CalculatorModel) deleteInput(id semester.EntryID) {
	inputs := make(map[semester.EntryID]textinput.Model, len(m.Inputs))
	for k, v := range m.Inputs {
		if k != id {
			inputs[k] = v
		}
	}
	m.Inputs = inputs
}

func (m CalculatorModel) addButton() int {
	return m.Form.Len()
}

func (m CalculatorModel) computeButton() int {
	return m.Form.Len() + 1
}

func (m CalculatorModel) lastCursor() int {
	return m.computeButton()
}

// View renders the calculator
func (m CalculatorModel) View() string {
	content := m.renderContent()
	helpText := m.Help.View(m.Keys)
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// renderContent renders the form (without container)
func (m CalculatorModel) renderContent() string {
	parts := []string{RenderTitle("CGPA Calculator")}

	for i, e := range m.Form.Entries() {
		parts = append(parts, m.renderRow(i, e), "")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderButton("+ Add Semester", m.Cursor == m.addButton()),
		"   ",
		RenderButton("= Calculate CGPA", m.Cursor == m.computeButton()),
	)
	parts = append(parts, buttons)

	if panel := m.renderResult(); panel != "" {
		parts = append(parts, panel)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderRow renders one entry: label line, then input and remove control
func (m CalculatorModel) renderRow(index int, e semester.Entry) string {
	focused := m.Cursor == index

	labelStyle := LabelStyle
	arrow := "  "
	if focused {
		labelStyle = FocusedLabelStyle
		arrow = "→ "
	}
	label := labelStyle.Render(fmt.Sprintf("Semester %d SGPA", index+1))

	inputView := lipgloss.NewStyle().
		Width(InputWidth + 2).
		Render(m.Inputs[e.ID].View())

	remove := ButtonStyle.Render("[−]")
	if !m.Form.CanRemove() {
		remove = DisabledStyle.Render("[−]")
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, arrow, inputView, " ", remove)

	return lipgloss.JoinVertical(lipgloss.Left, "  "+label, line)
}

// renderResult renders the result panel, or nothing before the first computation
func (m CalculatorModel) renderResult() string {
	result := m.Form.Result()
	if !result.Present() {
		return ""
	}

	if result.IsError() {
		return ErrorBoxStyle.Render(result.Text)
	}
	return ResultBoxStyle.Render("Your CGPA: " + result.Text)
}
