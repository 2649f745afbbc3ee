package ui

// Severity classifies the visual weight of a piece of inline text. The print
// layer maps each value to a terminal style, data consumers see plain text.
type Severity uint8

const (
	SeverityInfo    Severity = iota // plain
	SeveritySuccess                 // green, found
	SeverityWarn                    // yellow, not found
	SeverityError                   // red
)

// StyledText pairs a plain string with a Severity annotation.
type StyledText struct {
	Text     string
	Severity Severity
}

// UI is the output surface of lensens commands.
//
// Production code uses TerminalUI, tests use RecordingUI.
type UI interface {
	// Style returns the text from t coloured according to its Severity.
	// When colours are disabled the plain text is returned unchanged.
	Style(t StyledText) string

	// Value writes a resolved value alone on its line so it can be piped.
	Value(v string)

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)

	// KeyValue renders an aligned 2-column block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with a header row.
	Table(headers []string, rows [][]string)

	// Spinner shows msg while work is in progress, call the returned func to
	// clear it.
	Spinner(msg string) func()
}
