package analyzer

import (
	"fmt"

	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/symbols"
	"github.com/hdltools/vhdlang/internal/token"
)

// AnalyzeFile declares objects and checks assignment statements in
// order. Semantic diagnostics do not stop the walk; only a fatal entity
// graph inconsistency does.
func (a *Analyzer) AnalyzeFile(scope *symbols.Scope, file *ast.DesignFile, diags diagnostics.Handler) error {
	for _, stmt := range file.Statements {
		switch s := stmt.(type) {
		case *ast.ObjectDeclaration:
			a.declareObjects(scope, s, diags)
		case *ast.AssignmentStatement:
			assignmentType := SignalAssignment
			if s.Op == token.VARASSIGN {
				assignmentType = VariableAssignment
			}
			targetType, err := a.ResolveTarget(scope, s.Target, assignmentType, diags)
			if err != nil {
				return err
			}
			if targetType != nil {
				a.TypeMap[s] = targetType
			}
		}
	}
	return nil
}

func (a *Analyzer) declareObjects(scope *symbols.Scope, decl *ast.ObjectDeclaration, diags diagnostics.Handler) {
	subtype := a.resolveTypeMark(scope, decl.Subtype.TypeMark, diags)

	var class symbols.ObjectClass
	switch {
	case decl.Shared:
		class = symbols.SharedVariable
	case decl.Class == token.SIGNAL:
		class = symbols.Signal
	case decl.Class == token.VARIABLE:
		class = symbols.Variable
	case decl.Class == token.CONSTANT:
		class = symbols.Constant
	default:
		class = symbols.FileObject
	}

	for _, ident := range decl.Idents {
		obj := a.arena.NewObject(ident.Value, class, subtype.Id)
		scope.Define(ident.Value, obj.Id)
		a.log.Trace("declared object", "name", ident.Value, "class", class.String())
	}
}

// resolveTypeMark looks the type mark up in the scope. When the mark
// does not resolve to a type a diagnostic is emitted and a placeholder
// type is returned so dependent objects stay analyzable.
func (a *Analyzer) resolveTypeMark(scope *symbols.Scope, mark *ast.TypeMark, diags diagnostics.Handler) *symbols.TypeEnt {
	designator := mark.Name.Parts[len(mark.Name.Parts)-1]
	if id, ok := scope.Lookup(designator.Value); ok {
		if t := a.arena.TypeEnt(id); t != nil {
			return t
		}
		diags.Push(diagnostics.NewPhaseError(
			diagnostics.PhaseAnalyzer, diagnostics.ErrA007, mark.Span(),
			fmt.Sprintf("'%s' does not denote a type", mark.Name)))
	} else {
		diags.Push(diagnostics.NewPhaseError(
			diagnostics.PhaseAnalyzer, diagnostics.ErrA004, mark.Span(), mark.Name.String()))
	}
	return a.arena.NewScalarType(designator.Value)
}
