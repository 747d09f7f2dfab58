package semester

import "strconv"

// EntryID identifies an entry within a form. IDs come from a counter owned
// by the form and are never reused within one form's lineage.
type EntryID uint64

// String returns the decimal form of the ID
func (id EntryID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Entry is one row of the form: a stable ID and the raw SGPA text.
type Entry struct {
	ID  EntryID
	Raw string
}

// Form is the complete state of the calculator.
type Form struct {
	entries []Entry
	nextID  EntryID
	result  Result
}

// NewForm returns a form holding exactly one empty entry and no result.
func NewForm() Form {
	f := Form{nextID: 1}
	f, _ = f.AddEntry()
	return f
}

// Entries returns a copy of the entries in display order
func (f Form) Entries() []Entry {
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len returns the number of entries
func (f Form) Len() int {
	return len(f.entries)
}

// Entry looks up an entry by ID
func (f Form) Entry(id EntryID) (Entry, bool) {
	if i := f.indexOf(id); i >= 0 {
		return f.entries[i], true
	}
	return Entry{}, false
}

// Index returns the display position of the entry, or -1 if it is absent
func (f Form) Index(id EntryID) int {
	return f.indexOf(id)
}

// CanRemove reports whether RemoveEntry would have any effect.
func (f Form) CanRemove() bool {
	return len(f.entries) > 1
}

// Result returns the outcome of the most recent Compute.
func (f Form) Result() Result {
	return f.result
}

// AddEntry appends an empty entry with a fresh ID and returns the new form
// together with that ID. Existing entries keep their values and order.
func (f Form) AddEntry() (Form, EntryID) {
	if f.nextID == 0 {
		f.nextID = 1
	}
	id := f.nextID

	entries := make([]Entry, len(f.entries), len(f.entries)+1)
	copy(entries, f.entries)
	f.entries = append(entries, Entry{ID: id})
	f.nextID++

	return f, id
}

// RemoveEntry drops the entry with the given ID. When only one entry is
// left, or the ID is unknown, the form is returned unchanged.
func (f Form) RemoveEntry(id EntryID) Form {
	if !f.CanRemove() {
		return f
	}
	i := f.indexOf(id)
	if i < 0 {
		return f
	}

	entries := make([]Entry, 0, len(f.entries)-1)
	entries = append(entries, f.entries[:i]...)
	entries = append(entries, f.entries[i+1:]...)
	f.entries = entries

	return f
}

// UpdateEntry stores text verbatim as the raw value of the entry with the
// given ID. Unknown IDs leave the form unchanged.
func (f Form) UpdateEntry(id EntryID, text string) Form {
	i := f.indexOf(id)
	if i < 0 {
		return f
	}

	entries := make([]Entry, len(f.entries))
	copy(entries, f.entries)
	entries[i].Raw = text
	f.entries = entries

	return f
}

// Compute aggregates the current entries and replaces any previous result.
func (f Form) Compute() Form {
	f.result = Aggregate(f.entries)
	return f
}

// Values returns the raw values in display order
func (f Form) Values() []string {
	out := make([]string, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.Raw
	}
	return out
}

func (f Form) indexOf(id EntryID) int {
	for i, e := range f.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// FromValues builds a form with one entry per raw value, in order. An empty
// slice yields the same single empty entry as NewForm.
func FromValues(values []string) Form {
	if len(values) == 0 {
		return NewForm()
	}

	f := Form{nextID: 1}
	for _, v := range values {
		var id EntryID
		f, id = f.AddEntry()
		f = f.UpdateEntry(id, v)
	}
	return f
}
