// Package semester holds the state of the CGPA form and the aggregation
// that turns per-semester SGPA entries into a cumulative average.
//
// A Form is an immutable snapshot. Every operation (AddEntry, RemoveEntry,
// UpdateEntry, Compute) returns a new Form and leaves the receiver untouched,
// so callers can render any snapshot without worrying about later edits.
//
// # Entries
//
// Each Entry pairs a stable EntryID with the raw text the user typed. Raw
// text is stored verbatim; nothing is validated until Compute is called.
// A Form always holds at least one entry:
//
//	form := semester.NewForm()          // one empty entry
//	form, id := form.AddEntry()         // two entries
//	form = form.UpdateEntry(id, "8.5")
//	form = form.RemoveEntry(id)         // back to one
//	form = form.RemoveEntry(form.Entries()[0].ID) // no-op, last entry stays
//
// # Aggregation
//
// Aggregate parses every raw value as a decimal number. Values that fail to
// parse or fall outside [MinSGPA, MaxSGPA] are excluded without complaint.
// If nothing is left the result carries ErrNoValidSGPA; otherwise it carries
// the mean formatted to two decimal places.
package semester
