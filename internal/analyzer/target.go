package analyzer

// Analysis of assignment targets
//
// examples:
//   target <= 1;
//   target(0).elem := 1

import (
	"errors"

	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/symbols"
	"github.com/hdltools/vhdlang/internal/token"
)

// AssignmentType is the syntactic assignment operator encountered.
type AssignmentType int

const (
	// SignalAssignment is assignment with <=
	SignalAssignment AssignmentType = iota
	// VariableAssignment is assignment with :=
	VariableAssignment
)

func (t AssignmentType) String() string {
	if t == VariableAssignment {
		return "variable"
	}
	return "signal"
}

// ResolveTarget decides the legality of an assignment target and
// returns its type whenever one is known, regardless of any diagnostics
// emitted, so the right-hand side can still be checked against it.
func (a *Analyzer) ResolveTarget(
	scope *symbols.Scope,
	target ast.Target,
	assignmentType AssignmentType,
	diags diagnostics.Handler,
) (*symbols.TypeEnt, error) {
	switch t := target.(type) {
	case *ast.Aggregate:
		if err := a.analyzeAggregateTarget(scope, t, diags); err != nil {
			return nil, err
		}
		// The aggregate as a whole is typed from the statement's
		// right-hand side, not here.
		return nil, nil
	case ast.Name:
		return a.resolveTargetName(scope, t, t.Span(), assignmentType, diags)
	}
	diags.Push(diagnostics.NewPhaseError(
		diagnostics.PhaseAnalyzer, diagnostics.ErrA001, target.Span(), "Invalid assignment target"))
	return nil, nil
}

func (a *Analyzer) resolveTargetName(
	scope *symbols.Scope,
	target ast.Name,
	targetPos token.Span,
	assignmentType AssignmentType,
	diags diagnostics.Handler,
) (*symbols.TypeEnt, error) {
	resolved, err := a.ResolveObjectPrefix(scope, target, "Invalid assignment target", diags)
	if err != nil {
		var fatal *diagnostics.FatalError
		if errors.As(err, &fatal) {
			if aerr := fatal.AddTo(diags); aerr != nil {
				return nil, aerr
			}
			return nil, nil
		}
		return nil, err
	}
	if resolved == nil {
		// Resolution already reported the problem.
		return nil, nil
	}

	if obj, ok := resolved.(*ResolvedObject); ok {
		if !isValidAssignmentTarget(obj.Base) {
			diags.Push(diagnostics.NewPhaseError(
				diagnostics.PhaseAnalyzer, diagnostics.ErrA002, targetPos,
				obj.Base.DescribeClass()))
		} else if !isValidAssignmentType(obj.Base, assignmentType) {
			diags.Push(diagnostics.NewPhaseError(
				diagnostics.PhaseAnalyzer, diagnostics.ErrA003, targetPos,
				obj.Base.DescribeClass(), assignmentType.String()))
		}
		return obj.TypeMark, nil
	}

	diags.Push(diagnostics.NewPhaseError(
		diagnostics.PhaseAnalyzer, diagnostics.ErrA001, targetPos, "Invalid assignment target"))
	return nil, nil
}

// analyzeAggregateTarget resolves the names inside an aggregate target
// so undeclared elements are reported; typing is deferred.
func (a *Analyzer) analyzeAggregateTarget(
	scope *symbols.Scope,
	aggregate *ast.Aggregate,
	diags diagnostics.Handler,
) error {
	for _, assoc := range aggregate.Elements {
		name, ok := nameOfExpression(assoc.Expr)
		if !ok {
			continue
		}
		if _, err := a.ResolveObjectPrefix(scope, name, "Invalid assignment target", diags); err != nil {
			return err
		}
	}
	return nil
}

// nameOfExpression views an expression as an object name where it has
// that shape. Expression parsing yields dotted chains as SelectedName
// nodes; those fold into the suffix form the resolver walks.
func nameOfExpression(expr ast.Expression) (ast.Name, bool) {
	switch e := expr.(type) {
	case *ast.SelectedName:
		var name ast.Name = e.Parts[0]
		for _, part := range e.Parts[1:] {
			name = &ast.SelectedSuffix{Prefix: name, Suffix: part}
		}
		return name, true
	case ast.Name:
		return e, true
	}
	return nil, false
}

// isValidAssignmentTarget checks that the target is a writable object:
// not a constant and not input-only.
func isValidAssignmentTarget(base ObjectBase) bool {
	return base.Class != symbols.Constant && base.Mode != symbols.In
}

// isValidAssignmentType checks that a signal is not the target of a
// variable assignment and vice-versa.
func isValidAssignmentType(base ObjectBase, assignmentType AssignmentType) bool {
	switch assignmentType {
	case SignalAssignment:
		return base.Class == symbols.Signal
	case VariableAssignment:
		return base.Class == symbols.Variable || base.Class == symbols.SharedVariable
	}
	return false
}
