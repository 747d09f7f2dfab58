package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/cgpa/internal/semester"
)

func send(t *testing.T, m CalculatorModel, msg tea.Msg) CalculatorModel {
	t.Helper()
	updated, _ := m.Update(msg)
	cm, ok := updated.(CalculatorModel)
	if !ok {
		t.Fatalf("Update returned %T, want CalculatorModel", updated)
	}
	return cm
}

func press(t *testing.T, m CalculatorModel, k tea.KeyType) CalculatorModel {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: k})
}

func typeText(t *testing.T, m CalculatorModel, text string) CalculatorModel {
	t.Helper()
	for _, r := range text {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// fill types one value per row, adding rows as needed
func fill(t *testing.T, values ...string) CalculatorModel {
	t.Helper()
	m := NewCalculatorModel()
	for i, v := range values {
		if i > 0 {
			m = press(t, m, tea.KeyCtrlN)
		}
		m = typeText(t, m, v)
	}
	return m
}

func TestNewCalculatorModel(t *testing.T) {
	m := NewCalculatorModel()

	if m.Form.Len() != 1 {
		t.Fatalf("Form.Len() = %d, want 1", m.Form.Len())
	}
	if len(m.Inputs) != 1 {
		t.Errorf("len(Inputs) = %d, want 1", len(m.Inputs))
	}
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}

	id := m.Form.Entries()[0].ID
	if !m.Inputs[id].Focused() {
		t.Error("first row should be focused")
	}
	if m.Keys.Remove.Enabled() {
		t.Error("remove should be disabled with a single row")
	}
	if m.Init() == nil {
		t.Error("Init() should start the cursor blink")
	}
}

func TestCalculatorScenarios(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		wantText string
		wantErr  bool
	}{
		{"Two valid values", []string{"8", "9"}, "8.50", false},
		{"Invalid entry excluded", []string{"8", "abc"}, "8.00", false},
		{"None valid", []string{"11", "-1"}, semester.ErrNoValidSGPA, true},
		{"Rounded mean", []string{"7.333", "8.667"}, "8.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fill(t, tt.values...)

			if got := m.Form.Values(); !reflect.DeepEqual(got, tt.values) {
				t.Fatalf("Form.Values() = %q, want %q", got, tt.values)
			}

			m = press(t, m, tea.KeyEnter)

			result := m.Form.Result()
			if result.Text != tt.wantText {
				t.Errorf("Result().Text = %q, want %q", result.Text, tt.wantText)
			}
			if result.IsError() != tt.wantErr {
				t.Errorf("Result().IsError() = %v, want %v", result.IsError(), tt.wantErr)
			}

			view := m.View()
			want := "Your CGPA: " + tt.wantText
			if tt.wantErr {
				want = tt.wantText
			}
			if !strings.Contains(view, want) {
				t.Errorf("View() does not contain %q", want)
			}
		})
	}
}

func TestNoResultPanelBeforeCompute(t *testing.T) {
	m := fill(t, "8", "9")

	view := m.View()
	if strings.Contains(view, "Your CGPA") {
		t.Error("View() should not show a result before calculating")
	}
	if !strings.Contains(view, "Semester 2 SGPA") {
		t.Error("View() should label the second row")
	}
	if !strings.Contains(view, "Calculate CGPA") || !strings.Contains(view, "Add Semester") {
		t.Error("View() should show both buttons")
	}
}

func TestRemoveSingleRowIsNoop(t *testing.T) {
	m := typeText(t, NewCalculatorModel(), "8")
	m = press(t, m, tea.KeyHome)

	m = press(t, m, tea.KeyCtrlD)

	if m.Form.Len() != 1 {
		t.Fatalf("Form.Len() = %d, want 1", m.Form.Len())
	}
	// ctrl+d must not reach the input as delete-forward either
	if got := m.Form.Values(); !reflect.DeepEqual(got, []string{"8"}) {
		t.Errorf("Form.Values() = %q, want [8]", got)
	}
}

func TestRemoveFocusedRow(t *testing.T) {
	m := NewCalculatorModelWithValues([]string{"7", "8", "9"})
	if !m.Keys.Remove.Enabled() {
		t.Fatal("remove should be enabled with three rows")
	}

	m = press(t, m, tea.KeyDown)
	m = press(t, m, tea.KeyCtrlD)

	if got := m.Form.Values(); !reflect.DeepEqual(got, []string{"7", "9"}) {
		t.Errorf("Form.Values() = %q, want [7 9]", got)
	}
	if len(m.Inputs) != 2 {
		t.Errorf("len(Inputs) = %d, want 2", len(m.Inputs))
	}
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", m.Cursor)
	}

	// removing the last row moves the cursor up
	m = press(t, m, tea.KeyCtrlD)
	if m.Form.Len() != 1 || m.Cursor != 0 {
		t.Errorf("Len() = %d, Cursor = %d; want 1, 0", m.Form.Len(), m.Cursor)
	}
	if m.Keys.Remove.Enabled() {
		t.Error("remove should be disabled again with one row")
	}
}

func TestRemoveOnButtonIsNoop(t *testing.T) {
	m := NewCalculatorModelWithValues([]string{"7", "8"})
	m = press(t, m, tea.KeyShiftTab) // wraps to Calculate

	if m.Cursor != m.computeButton() {
		t.Fatalf("Cursor = %d, want %d", m.Cursor, m.computeButton())
	}

	m = press(t, m, tea.KeyCtrlD)
	if m.Form.Len() != 2 {
		t.Errorf("Form.Len() = %d, want 2", m.Form.Len())
	}
}

func TestAddKeepsExistingRows(t *testing.T) {
	m := fill(t, "8", "9")
	m = press(t, m, tea.KeyCtrlN)

	if got := m.Form.Values(); !reflect.DeepEqual(got, []string{"8", "9", ""}) {
		t.Errorf("Form.Values() = %q, want [8 9 \"\"]", got)
	}
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 (new row)", m.Cursor)
	}
}

func TestLongInputStoredVerbatim(t *testing.T) {
	long := "  8.250000000000000000001 semester one"
	m := fill(t, long)

	if got := m.Form.Values(); !reflect.DeepEqual(got, []string{long}) {
		t.Errorf("Form.Values() = %q, want [%q]", got, long)
	}
	id := m.Form.Entries()[0].ID
	if got := m.Inputs[id].Value(); got != long {
		t.Errorf("input value = %q, want %q", got, long)
	}
}

func TestEnterOnAddButtonAdds(t *testing.T) {
	m := NewCalculatorModel()
	m = press(t, m, tea.KeyTab)

	if m.Cursor != m.addButton() {
		t.Fatalf("Cursor = %d, want Add button %d", m.Cursor, m.addButton())
	}

	m = press(t, m, tea.KeyEnter)
	if m.Form.Len() != 2 {
		t.Errorf("Form.Len() = %d, want 2", m.Form.Len())
	}
	if m.Form.Result().Present() {
		t.Error("Add button should not calculate")
	}
}

func TestEnterOnComputeButton(t *testing.T) {
	m := fill(t, "6")
	m = press(t, m, tea.KeyTab)
	m = press(t, m, tea.KeyTab)

	if m.Cursor != m.computeButton() {
		t.Fatalf("Cursor = %d, want Calculate button %d", m.Cursor, m.computeButton())
	}

	m = press(t, m, tea.KeyEnter)
	if got := m.Form.Result().Text; got != "6.00" {
		t.Errorf("Result().Text = %q, want 6.00", got)
	}
}

func TestCursorWraps(t *testing.T) {
	m := NewCalculatorModel()

	m = press(t, m, tea.KeyUp)
	if m.Cursor != m.lastCursor() {
		t.Errorf("Cursor after up from top = %d, want %d", m.Cursor, m.lastCursor())
	}

	m = press(t, m, tea.KeyDown)
	if m.Cursor != 0 {
		t.Errorf("Cursor after down from bottom = %d, want 0", m.Cursor)
	}
}

func TestTypingOnButtonIsIgnored(t *testing.T) {
	m := fill(t, "8")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "9")

	if got := m.Form.Values(); !reflect.DeepEqual(got, []string{"8"}) {
		t.Errorf("Form.Values() = %q, want [8]", got)
	}
}

func TestResultIsNotReactive(t *testing.T) {
	m := fill(t, "8")
	m = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "0")

	if got := m.Form.Values(); !reflect.DeepEqual(got, []string{"80"}) {
		t.Fatalf("Form.Values() = %q, want [80]", got)
	}
	if got := m.Form.Result().Text; got != "8.00" {
		t.Errorf("Result().Text = %q, want 8.00 until recalculated", got)
	}

	m = press(t, m, tea.KeyEnter)
	if !m.Form.Result().IsError() {
		t.Errorf("Result() = %+v, want error after recalculating", m.Form.Result())
	}
}

func TestQuitAndHelp(t *testing.T) {
	m := NewCalculatorModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}

	m = press(t, m, tea.KeyF1)
	if !m.Help.ShowAll {
		t.Error("f1 should expand help")
	}
	m = press(t, m, tea.KeyF1)
	if m.Help.ShowAll {
		t.Error("second f1 should collapse help")
	}
}

func TestWindowSize(t *testing.T) {
	m := send(t, NewCalculatorModel(), tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.Width != 100 || m.Height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.Width, m.Height)
	}
	if !strings.Contains(m.View(), AppName) {
		t.Error("View() should include the header")
	}
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{0, 0, DefaultWidth, DefaultHeight},
		{10, 5, MinTerminalWidth, 5},
		{120, 50, 120, 50},
	}

	for _, tt := range tests {
		w, h := ClampSize(tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("ClampSize(%d, %d) = %d, %d; want %d, %d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}
