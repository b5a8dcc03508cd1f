package diagnostics

import (
	"fmt"
	"strings"

	"github.com/hdltools/vhdlang/internal/token"
)

// Phase represents the processing phase where an error occurred
type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseAnalyzer Phase = "analyzer"
)

type ErrorCode string

const (
	// Lexer Errors
	ErrL001 ErrorCode = "L001" // Invalid character
	ErrL002 ErrorCode = "L002" // Malformed literal

	// Parser Errors
	ErrP001 ErrorCode = "P001" // Expected one of several token kinds
	ErrP002 ErrorCode = "P002" // Expected a specific token kind
	ErrP003 ErrorCode = "P003" // Expected identifier
	ErrP004 ErrorCode = "P004" // Cannot parse expression

	// Analyzer Errors
	ErrA001 ErrorCode = "A001" // Invalid assignment target
	ErrA002 ErrorCode = "A002" // Object may not be assigned
	ErrA003 ErrorCode = "A003" // Wrong assignment operator for object class
	ErrA004 ErrorCode = "A004" // Undeclared name
	ErrA005 ErrorCode = "A005" // Prefix cannot be selected
	ErrA006 ErrorCode = "A006" // Prefix cannot be indexed or sliced
	ErrA007 ErrorCode = "A007" // Name does not denote an object
	ErrA008 ErrorCode = "A008" // No such element
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "invalid character: '%s'",
	ErrL002: "malformed literal: '%s'",
	ErrP001: "expected one of %s, but got '%s'",
	ErrP002: "expected '%s', but got '%s'",
	ErrP003: "expected an identifier, but got '%s'",
	ErrP004: "cannot parse expression starting with '%s'",
	ErrA001: "%s",
	ErrA002: "%s may not be the target of an assignment",
	ErrA003: "%s may not be the target of a %s assignment",
	ErrA004: "no declaration of '%s'",
	ErrA005: "cannot select '%s' from %s",
	ErrA006: "%s cannot be indexed or sliced",
	ErrA007: "%s",
	ErrA008: "%s has no element '%s'",
}

type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Span  token.Span
	File  string
	When  string // optional parsing context, e.g. "parsing index constraint"
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}

	message := fmt.Sprintf(template, e.Args...)
	if e.When != "" {
		message += " when " + e.When
	}

	prefix := ""
	if e.File != "" {
		prefix = fmt.Sprintf("%s: ", e.File)
	}

	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}

	if e.Span.Line > 0 {
		return fmt.Sprintf("%s%serror at %d:%d [%s]: %s", prefix, phaseStr, e.Span.Line, e.Span.Column, e.Code, message)
	}
	return fmt.Sprintf("%s%serror [%s]: %s", prefix, phaseStr, e.Code, message)
}

// NewError creates an error with just code and span
func NewError(code ErrorCode, span token.Span, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code: code,
		Span: span,
		Args: args,
	}
}

// NewPhaseError creates an error with phase information
func NewPhaseError(phase Phase, code ErrorCode, span token.Span, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:  code,
		Phase: phase,
		Span:  span,
		Args:  args,
	}
}

// NewKindsError reports a token mismatch against a set of expected kinds.
func NewKindsError(span token.Span, got token.TokenType, kinds ...token.TokenType) *DiagnosticError {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = "'" + string(k) + "'"
	}
	return NewPhaseError(PhaseParser, ErrP001, span, strings.Join(names, ", "), string(got))
}

// WithContext tags the error with the parsing context it occurred in.
func (e *DiagnosticError) WithContext(when string) *DiagnosticError {
	e.When = when
	return e
}

// Handler is an append-only diagnostic sink.
type Handler interface {
	Push(err *DiagnosticError)
}

// List is the plain slice-backed Handler used by the pipeline context.
type List struct {
	Errors []*DiagnosticError
}

func (l *List) Push(err *DiagnosticError) {
	l.Errors = append(l.Errors, err)
}

// FatalError is an unrecoverable analysis condition. It is converted to
// an ordinary diagnostic at the resolver boundary via AddTo.
type FatalError struct {
	Inner *DiagnosticError
}

func (f *FatalError) Error() string {
	return f.Inner.Error()
}

// AddTo flushes the fatal condition into the sink. A nil return means
// the handler absorbed it and analysis may continue with no result.
func (f *FatalError) AddTo(h Handler) error {
	h.Push(f.Inner)
	return nil
}
