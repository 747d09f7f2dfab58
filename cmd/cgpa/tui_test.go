package main

import (
	"reflect"
	"testing"
)

func TestNewFormModel(t *testing.T) {
	m := newFormModel(nil)
	if got := m.Form.Values(); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("newFormModel(nil) values = %q, want one empty row", got)
	}

	m = newFormModel([]string{"8.2", "abc", "9.1"})
	if got := m.Form.Values(); !reflect.DeepEqual(got, []string{"8.2", "abc", "9.1"}) {
		t.Errorf("newFormModel() values = %q, want [8.2 abc 9.1]", got)
	}
	if m.Form.Result().Present() {
		t.Error("prefilled form should not be computed yet")
	}
	if len(m.Inputs) != 3 {
		t.Errorf("len(Inputs) = %d, want 3", len(m.Inputs))
	}
	if !m.Keys.Remove.Enabled() {
		t.Error("remove should be enabled with three rows")
	}
}
