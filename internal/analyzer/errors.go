package analyzer

import (
	"errors"

	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/token"
)

// fatalToDiagnostic unwraps a fatal error into its diagnostic, or wraps
// an unexpected error shape into a generic analyzer diagnostic.
func fatalToDiagnostic(err error) *diagnostics.DiagnosticError {
	var fatal *diagnostics.FatalError
	if errors.As(err, &fatal) {
		return fatal.Inner
	}
	return diagnostics.NewPhaseError(
		diagnostics.PhaseAnalyzer, diagnostics.ErrA007, token.Span{}, err.Error())
}
