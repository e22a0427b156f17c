// Package diag defines the diagnostic model shared by the lexer, tokenizer,
// macro dispatcher, and validator: severities, a closed code enumeration,
// and the Sink interface front ends implement to collect, stream, or abort.
package diag

import "fmt"

// Severity orders diagnostics from least to most severe. The zero value OK
// means "no diagnostic raised"; it is never itself reported.
type Severity int

const (
	OK Severity = iota
	Warning
	Error
	Fatal
	BadArg
	SysErr
)

func (s Severity) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	case BadArg:
		return "BADARG"
	case SysErr:
		return "SYSERR"
	default:
		return "UNKNOWN"
	}
}

// ExitLevel maps a severity to the process exit code convention used by
// cmd/manroff: OK=0, Warning=1, Error=2, Fatal=3, BadArg=4, SysErr=5.
func (s Severity) ExitLevel() int {
	return int(s)
}

// Code is a closed enumeration of diagnostic kinds, grouped by the severity
// range they normally surface at. Codes are never renumbered once assigned;
// new ones are appended.
type Code int

const CodeNone Code = 0

// Warning range (100-199): recoverable style issues.
const (
	CodeSecOrder Code = 100 + iota
	CodeTrailingWhitespace
	CodeDeprecatedMacro
	CodeArgLikeParameter
	CodeBadDateSyntax
	CodeUnterminatedQuote
	CodeWidthDefaulted
)

// Error range (200-299): recoverable structural issues.
const (
	CodeUnknownMacro Code = 200 + iota
	CodeBadArgValue
	CodeTooManyArguments
	CodeNameSecNotFirst
	CodeListItemOutsideList
	CodeSecWrongManualSection
	CodeArgCardinality
	CodeListTypeExclusivity
	CodeChildParentIllegal
	CodeBadEscape
	CodeScopeViolation
	CodeUnknownFlag
)

// Fatal range (300-399): non-recoverable structural issues.
const (
	CodeUnclosedExplicitScope Code = 300 + iota
	CodeUnbalancedQuotes
	CodeBadNesting
	CodeUnsupportedDisplay
	CodeNoDocumentBody
	CodeLineTooLong
	CodeIOError
	CodeDuplicatePrologue
)

// Caller-level (400-499).
const (
	CodeBadCLIArg Code = 400 + iota
	CodeSysFailure
)

// Diagnostic is a single reported event: where it happened, how severe it
// is, and a human-readable message.
type Diagnostic struct {
	Severity Severity
	Line     int
	Column   int
	Code     Code
	Message  string
	File     string
}

func (d Diagnostic) String() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Severity, d.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Severity, d.Message)
}

// Sink receives diagnostics as they are raised. Report must be safe to call
// repeatedly during a single parse; ShouldHalt is consulted after every
// Report call so a caller can turn any severity into an abort.
type Sink interface {
	Report(d Diagnostic)
	ShouldHalt(d Diagnostic) bool
}

// Collector is the default Sink: it buffers every diagnostic and halts only
// at or above a configured threshold, tracking the worst severity seen.
type Collector struct {
	Threshold Severity
	File      string

	diags []Diagnostic
	worst Severity
}

// NewCollector returns a Collector that halts at threshold (e.g. Fatal).
func NewCollector(file string, threshold Severity) *Collector {
	return &Collector{Threshold: threshold, File: file}
}

func (c *Collector) Report(d Diagnostic) {
	if d.File == "" {
		d.File = c.File
	}
	c.diags = append(c.diags, d)
	if d.Severity > c.worst {
		c.worst = d.Severity
	}
}

func (c *Collector) ShouldHalt(d Diagnostic) bool {
	return d.Severity >= c.Threshold
}

// Diagnostics returns every diagnostic collected so far, in report order.
func (c *Collector) Diagnostics() []Diagnostic { return c.diags }

// Worst returns the highest severity reported so far; OK if none.
func (c *Collector) Worst() Severity { return c.worst }

// Report is a convenience that builds a Diagnostic and reports it through a
// Sink, returning whether the caller should halt.
func Report(sink Sink, sev Severity, line, col int, code Code, format string, args ...any) bool {
	d := Diagnostic{
		Severity: sev,
		Line:     line,
		Column:   col,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	}
	sink.Report(d)
	return sink.ShouldHalt(d)
}
