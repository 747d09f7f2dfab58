package semester

import (
	"math/big"
	"strconv"
	"strings"
)

// SGPA bounds, inclusive.
const (
	MinSGPA = 0.0
	MaxSGPA = 10.0
)

// ErrNoValidSGPA is the message shown when no entry holds a usable value.
const ErrNoValidSGPA = "Please enter valid SGPA values"

// ResultKind says what a Result holds
type ResultKind int

const (
	// ResultNone means nothing has been computed yet
	ResultNone ResultKind = iota
	// ResultValue means Text holds a formatted CGPA
	ResultValue
	// ResultError means Text holds ErrNoValidSGPA
	ResultError
)

// String returns a lower-case name for the kind
func (k ResultKind) String() string {
	switch k {
	case ResultNone:
		return "none"
	case ResultValue:
		return "value"
	case ResultError:
		return "error"
	default:
		return "ResultKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Result is the output of one aggregation.
type Result struct {
	Kind     ResultKind `json:"-" yaml:"-"`
	Text     string     `json:"text" yaml:"text"`
	Value    float64    `json:"value" yaml:"value"`
	Valid    int        `json:"valid" yaml:"valid"`
	Excluded int        `json:"excluded" yaml:"excluded"`
}

// Present reports whether a computation has happened.
func (r Result) Present() bool {
	return r.Kind != ResultNone
}

// IsError reports whether the result is the no-valid-values message.
func (r Result) IsError() bool {
	return r.Kind == ResultError
}

// ParseSGPA parses raw as a decimal number and reports whether it is a
// usable SGPA. Surrounding whitespace is ignored.
func ParseSGPA(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	// NaN fails both comparisons
	if !(v >= MinSGPA && v <= MaxSGPA) {
		return 0, false
	}
	return v, true
}

// Aggregate averages the valid entries. It has no memory of earlier calls.
func Aggregate(entries []Entry) Result {
	var (
		sum   float64
		valid int
	)
	for _, e := range entries {
		v, ok := ParseSGPA(e.Raw)
		if !ok {
			continue
		}
		sum += v
		valid++
	}

	excluded := len(entries) - valid
	if valid == 0 {
		return Result{
			Kind:     ResultError,
			Text:     ErrNoValidSGPA,
			Excluded: excluded,
		}
	}

	mean := sum / float64(valid)
	return Result{
		Kind:     ResultValue,
		Text:     FormatCGPA(mean),
		Value:    mean,
		Valid:    valid,
		Excluded: excluded,
	}
}

// AggregateValues is Aggregate over bare raw strings.
func AggregateValues(values []string) Result {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{ID: EntryID(i + 1), Raw: v}
	}
	return Aggregate(entries)
}

// FormatCGPA renders v with exactly two decimal places. Rounding works on
// the exact binary value of v and sends halves away from zero, so 8.125
// becomes "8.13" while 1.005 (stored just below the tie) becomes "1.00".
func FormatCGPA(v float64) string {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		// NaN and Inf have no rational form
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	// Rat has no negative zero, so "-0" renders as "0.00"
	return r.FloatString(2)
}
