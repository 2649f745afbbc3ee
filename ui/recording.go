package ui

import (
	"fmt"
	"strings"
)

// Entry records a single UI method call for test assertions.
type Entry struct {
	Method string
	Value  string
}

// RecordingUI implements UI for tests. Every call is captured in order.
type RecordingUI struct {
	entries []Entry
	tables  [][][]string
}

func NewRecordingUI() *RecordingUI {
	return &RecordingUI{}
}

func (r *RecordingUI) record(method, value string) {
	r.entries = append(r.entries, Entry{Method: method, Value: value})
}

// Style returns the plain text of t without any colour markup.
func (r *RecordingUI) Style(t StyledText) string {
	return t.Text
}

func (r *RecordingUI) Value(v string) {
	r.record("Value", v)
}

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.record("KeyValue", row[0]+"="+row[1])
	}
}

func (r *RecordingUI) Table(headers []string, rows [][]string) {
	r.record("Table", strings.Join(headers, ","))
	r.tables = append(r.tables, rows)
}

func (r *RecordingUI) Spinner(msg string) func() {
	return func() {}
}

// --- Test helpers ---

func (r *RecordingUI) Entries() []Entry {
	return r.entries
}

// Values returns only the values recorded by Value calls.
func (r *RecordingUI) Values() []string {
	return r.methodValues("Value")
}

func (r *RecordingUI) WarnMessages() []string {
	return r.methodValues("Warn")
}

// TableRows returns the rows of every Table call, in order.
func (r *RecordingUI) TableRows() [][][]string {
	return r.tables
}

// HasMessage returns true if any recorded entry's value contains substr
// (case-insensitive substring match).
func (r *RecordingUI) HasMessage(substr string) bool {
	lower := strings.ToLower(substr)
	for _, e := range r.entries {
		if strings.Contains(strings.ToLower(e.Value), lower) {
			return true
		}
	}
	return false
}

func (r *RecordingUI) methodValues(method string) []string {
	var out []string
	for _, e := range r.entries {
		if e.Method == method {
			out = append(out, e.Value)
		}
	}
	return out
}
