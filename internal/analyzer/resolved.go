package analyzer

import (
	"fmt"

	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/symbols"
	"github.com/hdltools/vhdlang/internal/token"
)

// ResolvedName classifies what a name in source denotes after lookup.
// The set of shapes is closed; consumers dispatch by exhaustive type
// switch.
type ResolvedName interface {
	resolvedName()
}

// ObjectBase identifies the declared object underlying a (possibly
// selected or indexed) name.
type ObjectBase struct {
	Id         symbols.EntityId
	Designator string
	Class      symbols.ObjectClass
	Mode       symbols.Mode // NoMode unless the object is a formal
}

// DescribeClass renders the base for diagnostics, e.g. "constant 'c'".
func (b ObjectBase) DescribeClass() string {
	if b.Mode != symbols.NoMode {
		return fmt.Sprintf("interface %s '%s'", b.Class, b.Designator)
	}
	return fmt.Sprintf("%s '%s'", b.Class, b.Designator)
}

// ResolvedObject is an object or a selection/indexing of one. TypeMark
// is the fully-resolved type of the selected region.
type ResolvedObject struct {
	Base     ObjectBase
	TypeMark *symbols.TypeEnt
}

func (*ResolvedObject) resolvedName() {}

// ResolvedType is a name denoting a type or subtype.
type ResolvedType struct {
	Type *symbols.TypeEnt
}

func (*ResolvedType) resolvedName() {}

// ResolvedOverloaded is a name denoting subprograms or enumeration
// literals.
type ResolvedOverloaded struct {
	Designator string
}

func (*ResolvedOverloaded) resolvedName() {}

// ResolvedLibrary is a name denoting a design library.
type ResolvedLibrary struct {
	Designator string
}

func (*ResolvedLibrary) resolvedName() {}

// ResolveObjectPrefix resolves a name used as an object prefix against
// the scope. It returns nil without a diagnostic burden on the caller
// when resolution already reported the problem, and a FatalError when
// the entity graph itself is inconsistent.
func (a *Analyzer) ResolveObjectPrefix(
	scope *symbols.Scope,
	name ast.Name,
	errLabel string,
	diags diagnostics.Handler,
) (ResolvedName, error) {
	switch n := name.(type) {
	case *ast.Identifier:
		id, ok := scope.Lookup(n.Value)
		if !ok {
			diags.Push(diagnostics.NewPhaseError(
				diagnostics.PhaseAnalyzer, diagnostics.ErrA004, n.Span(), n.Value))
			return nil, nil
		}
		entity := a.arena.Get(id)
		if entity == nil {
			return nil, a.corruptEntity(n.Span(), n.Value)
		}
		switch e := entity.(type) {
		case *symbols.ObjectEnt:
			typeMark := a.arena.TypeEnt(e.Subtype)
			if typeMark == nil {
				return nil, a.corruptEntity(n.Span(), n.Value)
			}
			a.log.Trace("resolved object", "name", n.Value, "class", e.Class.String())
			return &ResolvedObject{
				Base: ObjectBase{
					Id:         e.Id,
					Designator: e.Designator,
					Class:      e.Class,
					Mode:       e.Mode,
				},
				TypeMark: typeMark,
			}, nil
		case *symbols.TypeEnt:
			return &ResolvedType{Type: e}, nil
		case *symbols.OverloadedEnt:
			return &ResolvedOverloaded{Designator: e.Designator}, nil
		case *symbols.LibraryEnt:
			return &ResolvedLibrary{Designator: e.Designator}, nil
		}
		return nil, a.corruptEntity(n.Span(), n.Value)

	case *ast.SelectedSuffix:
		prefix, err := a.ResolveObjectPrefix(scope, n.Prefix, errLabel, diags)
		if err != nil || prefix == nil {
			return nil, err
		}
		obj, ok := prefix.(*ResolvedObject)
		if !ok {
			diags.Push(diagnostics.NewPhaseError(
				diagnostics.PhaseAnalyzer, diagnostics.ErrA007, n.Span(), errLabel))
			return nil, nil
		}
		if obj.TypeMark.Kind != symbols.RecordType {
			diags.Push(diagnostics.NewPhaseError(
				diagnostics.PhaseAnalyzer, diagnostics.ErrA005, n.Span(),
				n.Suffix.Value, obj.TypeMark.Describe()))
			return nil, nil
		}
		field, ok := obj.TypeMark.Field(n.Suffix.Value)
		if !ok {
			diags.Push(diagnostics.NewPhaseError(
				diagnostics.PhaseAnalyzer, diagnostics.ErrA008, n.Suffix.Span(),
				obj.TypeMark.Describe(), n.Suffix.Value))
			return nil, nil
		}
		fieldType := a.arena.TypeEnt(field.Type)
		if fieldType == nil {
			return nil, a.corruptEntity(n.Span(), n.Suffix.Value)
		}
		return &ResolvedObject{Base: obj.Base, TypeMark: fieldType}, nil

	case *ast.IndexedName:
		return a.resolveArrayAccess(scope, n, n.Prefix, true, errLabel, diags)

	case *ast.SliceName:
		return a.resolveArrayAccess(scope, n, n.Prefix, false, errLabel, diags)
	}

	diags.Push(diagnostics.NewPhaseError(
		diagnostics.PhaseAnalyzer, diagnostics.ErrA007, name.Span(), errLabel))
	return nil, nil
}

// resolveArrayAccess handles indexed and sliced names. Indexing selects
// the element type; a slice keeps the array type.
func (a *Analyzer) resolveArrayAccess(
	scope *symbols.Scope,
	name ast.Name,
	prefix ast.Name,
	indexed bool,
	errLabel string,
	diags diagnostics.Handler,
) (ResolvedName, error) {
	resolved, err := a.ResolveObjectPrefix(scope, prefix, errLabel, diags)
	if err != nil || resolved == nil {
		return nil, err
	}
	obj, ok := resolved.(*ResolvedObject)
	if !ok {
		diags.Push(diagnostics.NewPhaseError(
			diagnostics.PhaseAnalyzer, diagnostics.ErrA007, name.Span(), errLabel))
		return nil, nil
	}
	if obj.TypeMark.Kind != symbols.ArrayType {
		diags.Push(diagnostics.NewPhaseError(
			diagnostics.PhaseAnalyzer, diagnostics.ErrA006, name.Span(), obj.TypeMark.Describe()))
		return nil, nil
	}
	if !indexed {
		return obj, nil
	}
	elem := a.arena.TypeEnt(obj.TypeMark.Elem)
	if elem == nil {
		return nil, a.corruptEntity(name.Span(), obj.TypeMark.Designator)
	}
	return &ResolvedObject{Base: obj.Base, TypeMark: elem}, nil
}

// corruptEntity reports an inconsistency in the entity graph. This is
// unrecoverable for the current analysis.
func (a *Analyzer) corruptEntity(span token.Span, name string) error {
	return &diagnostics.FatalError{
		Inner: diagnostics.NewPhaseError(
			diagnostics.PhaseAnalyzer, diagnostics.ErrA007, span,
			fmt.Sprintf("internal error: '%s' references a corrupt entity", name)),
	}
}
