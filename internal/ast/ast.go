package ast

import (
	"strings"

	"github.com/funvibe/funbit/pkg/funbit"
	"github.com/hdltools/vhdlang/internal/token"
)

// Node is the base interface for all syntax nodes.
type Node interface {
	TokenLiteral() string
	Span() token.Span
	Accept(v Visitor)
}

// Expression is a Node that can appear where the grammar expects an
// expression (range bounds, aggregate elements, index positions).
type Expression interface {
	Node
	expressionNode()
}

// Name is a Node usable as the prefix of a target or object reference:
// simple, selected, indexed and sliced names.
type Name interface {
	Expression
	nameNode()
	targetNode()
}

// Target is the left-hand side of a signal or variable assignment.
type Target interface {
	Node
	targetNode()
}

// Visitor dispatches over every concrete node type.
type Visitor interface {
	VisitIdentifier(n *Identifier)
	VisitSelectedName(n *SelectedName)
	VisitAttributeName(n *AttributeName)
	VisitTypeMark(n *TypeMark)
	VisitAbstractLiteral(n *AbstractLiteral)
	VisitCharacterLiteral(n *CharacterLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitBitStringLiteral(n *BitStringLiteral)
	VisitUnaryExpression(n *UnaryExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitRangeSpan(n *RangeSpan)
	VisitRangeAttribute(n *RangeAttribute)
	VisitRangeDiscrete(n *RangeDiscrete)
	VisitSubtypeDiscrete(n *SubtypeDiscrete)
	VisitFunctionResolution(n *FunctionResolution)
	VisitArrayElementResolution(n *ArrayElementResolution)
	VisitRecordResolution(n *RecordResolution)
	VisitRangeConstraint(n *RangeConstraint)
	VisitArrayConstraint(n *ArrayConstraint)
	VisitRecordConstraint(n *RecordConstraint)
	VisitSubtypeIndication(n *SubtypeIndication)
	VisitSelectedSuffix(n *SelectedSuffix)
	VisitIndexedName(n *IndexedName)
	VisitSliceName(n *SliceName)
	VisitAggregate(n *Aggregate)
	VisitObjectDeclaration(n *ObjectDeclaration)
	VisitAssignmentStatement(n *AssignmentStatement)
	VisitDesignFile(n *DesignFile)
}

// Statement is a Node at the declarative or sequential level.
type Statement interface {
	Node
	statementNode()
}

// Identifier is a (case-folded) basic or extended identifier.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()       {}
func (i *Identifier) nameNode()             {}
func (i *Identifier) targetNode()           {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) Span() token.Span      { return i.Token.Span }
func (i *Identifier) GetToken() token.Token { return i.Token }

// SelectedName is a dotted chain of identifiers: lib.pkg.item.
type SelectedName struct {
	Parts []*Identifier
}

func (sn *SelectedName) Accept(v Visitor) { v.VisitSelectedName(sn) }
func (sn *SelectedName) expressionNode()  {}
func (sn *SelectedName) TokenLiteral() string {
	return sn.Parts[0].Token.Lexeme
}

func (sn *SelectedName) Span() token.Span {
	return sn.Parts[0].Span().Combine(sn.Parts[len(sn.Parts)-1].Span())
}

// String renders the dotted form, used in diagnostics.
func (sn *SelectedName) String() string {
	parts := make([]string, len(sn.Parts))
	for i, p := range sn.Parts {
		parts[i] = p.Value
	}
	return strings.Join(parts, ".")
}

// AttributeName is prefix'designator, e.g. arr'range.
type AttributeName struct {
	Prefix     *SelectedName
	Designator *Identifier
}

func (an *AttributeName) Accept(v Visitor)     { v.VisitAttributeName(an) }
func (an *AttributeName) expressionNode()      {}
func (an *AttributeName) TokenLiteral() string { return an.Prefix.TokenLiteral() }
func (an *AttributeName) Span() token.Span {
	return an.Prefix.Span().Combine(an.Designator.Span())
}

// TypeMark names a type, optionally via the 'subtype attribute.
type TypeMark struct {
	Name        *SelectedName
	SubtypeAttr bool
	Sp          token.Span
}

func (tm *TypeMark) Accept(v Visitor)     { v.VisitTypeMark(tm) }
func (tm *TypeMark) TokenLiteral() string { return tm.Name.TokenLiteral() }
func (tm *TypeMark) Span() token.Span     { return tm.Sp }

// AbstractLiteral is a decimal or based integer/real literal.
type AbstractLiteral struct {
	Token token.Token
	Value int64
}

func (al *AbstractLiteral) Accept(v Visitor)     { v.VisitAbstractLiteral(al) }
func (al *AbstractLiteral) expressionNode()      {}
func (al *AbstractLiteral) TokenLiteral() string { return al.Token.Lexeme }
func (al *AbstractLiteral) Span() token.Span     { return al.Token.Span }

// CharacterLiteral is 'x'.
type CharacterLiteral struct {
	Token token.Token
	Value rune
}

func (cl *CharacterLiteral) Accept(v Visitor)     { v.VisitCharacterLiteral(cl) }
func (cl *CharacterLiteral) expressionNode()      {}
func (cl *CharacterLiteral) TokenLiteral() string { return cl.Token.Lexeme }
func (cl *CharacterLiteral) Span() token.Span     { return cl.Token.Span }

// StringLiteral is "...".
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Accept(v Visitor)     { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *StringLiteral) Span() token.Span     { return sl.Token.Span }

// BitStringLiteral is b"1010" / o"77" / x"f_f", optionally sized.
type BitStringLiteral struct {
	Token token.Token
	Value *funbit.BitString
}

func (bl *BitStringLiteral) Accept(v Visitor)     { v.VisitBitStringLiteral(bl) }
func (bl *BitStringLiteral) expressionNode()      {}
func (bl *BitStringLiteral) TokenLiteral() string { return bl.Token.Lexeme }
func (bl *BitStringLiteral) Span() token.Span     { return bl.Token.Span }

// UnaryExpression is op expr, e.g. -x, abs y.
type UnaryExpression struct {
	Token token.Token
	Op    token.TokenType
	Right Expression
}

func (ue *UnaryExpression) Accept(v Visitor)     { v.VisitUnaryExpression(ue) }
func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Lexeme }
func (ue *UnaryExpression) Span() token.Span {
	return ue.Token.Span.Combine(ue.Right.Span())
}

// BinaryExpression is left op right.
type BinaryExpression struct {
	Token token.Token
	Op    token.TokenType
	Left  Expression
	Right Expression
}

func (be *BinaryExpression) Accept(v Visitor)     { v.VisitBinaryExpression(be) }
func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Lexeme }
func (be *BinaryExpression) Span() token.Span {
	return be.Left.Span().Combine(be.Right.Span())
}

// Direction of a range: to or downto.
type Direction int

const (
	ToDir Direction = iota
	DowntoDir
)

func (d Direction) String() string {
	if d == DowntoDir {
		return "downto"
	}
	return "to"
}

// Range is a range expression: a to b, a downto b, or name'range.
type Range interface {
	Node
	rangeNode()
}

// RangeSpan is left to|downto right.
type RangeSpan struct {
	Left  Expression
	Dir   Direction
	Right Expression
}

func (rs *RangeSpan) Accept(v Visitor)     { v.VisitRangeSpan(rs) }
func (rs *RangeSpan) rangeNode()           {}
func (rs *RangeSpan) TokenLiteral() string { return rs.Left.TokenLiteral() }
func (rs *RangeSpan) Span() token.Span {
	return rs.Left.Span().Combine(rs.Right.Span())
}

// RangeAttribute is name'range or name'reverse_range.
type RangeAttribute struct {
	Name *AttributeName
}

func (ra *RangeAttribute) Accept(v Visitor)     { v.VisitRangeAttribute(ra) }
func (ra *RangeAttribute) rangeNode()           {}
func (ra *RangeAttribute) TokenLiteral() string { return ra.Name.TokenLiteral() }
func (ra *RangeAttribute) Span() token.Span     { return ra.Name.Span() }

// DiscreteRange is a discrete range in an index constraint.
type DiscreteRange interface {
	Node
	discreteRangeNode()
}

// RangeDiscrete is a discrete range given directly as a range.
type RangeDiscrete struct {
	R Range
}

func (rd *RangeDiscrete) Accept(v Visitor)     { v.VisitRangeDiscrete(rd) }
func (rd *RangeDiscrete) discreteRangeNode()   {}
func (rd *RangeDiscrete) TokenLiteral() string { return rd.R.TokenLiteral() }
func (rd *RangeDiscrete) Span() token.Span     { return rd.R.Span() }

// SubtypeDiscrete is a discrete subtype indication used as a discrete
// range: a type mark with an optional range constraint.
type SubtypeDiscrete struct {
	Mark *TypeMark
	R    Range // may be nil
}

func (sd *SubtypeDiscrete) Accept(v Visitor)     { v.VisitSubtypeDiscrete(sd) }
func (sd *SubtypeDiscrete) discreteRangeNode()   {}
func (sd *SubtypeDiscrete) TokenLiteral() string { return sd.Mark.TokenLiteral() }
func (sd *SubtypeDiscrete) Span() token.Span {
	sp := sd.Mark.Span()
	if sd.R != nil {
		sp = sp.Combine(sd.R.Span())
	}
	return sp
}

// ResolutionIndication resolves driver contention on a signal. A nil
// ResolutionIndication means the subtype is unresolved.
type ResolutionIndication interface {
	Node
	resolutionNode()
}

// FunctionResolution names a resolution function.
type FunctionResolution struct {
	Name *SelectedName
}

func (fr *FunctionResolution) Accept(v Visitor)     { v.VisitFunctionResolution(fr) }
func (fr *FunctionResolution) resolutionNode()      {}
func (fr *FunctionResolution) TokenLiteral() string { return fr.Name.TokenLiteral() }
func (fr *FunctionResolution) Span() token.Span     { return fr.Name.Span() }

// ArrayElementResolution applies a resolution to every array element:
// (resolve) element_type.
type ArrayElementResolution struct {
	Name *SelectedName
	Sp   token.Span
}

func (ar *ArrayElementResolution) Accept(v Visitor)     { v.VisitArrayElementResolution(ar) }
func (ar *ArrayElementResolution) resolutionNode()      {}
func (ar *ArrayElementResolution) TokenLiteral() string { return ar.Name.TokenLiteral() }
func (ar *ArrayElementResolution) Span() token.Span     { return ar.Sp }

// RecordElementResolution pairs a record element with its resolution.
// Element identifiers are not required to be unique at this layer.
type RecordElementResolution struct {
	Ident      *Identifier
	Resolution ResolutionIndication
}

// RecordResolution resolves record elements element-wise.
type RecordResolution struct {
	Elements []*RecordElementResolution
	Sp       token.Span
}

func (rr *RecordResolution) Accept(v Visitor)     { v.VisitRecordResolution(rr) }
func (rr *RecordResolution) resolutionNode()      {}
func (rr *RecordResolution) TokenLiteral() string { return rr.Elements[0].Ident.Token.Lexeme }
func (rr *RecordResolution) Span() token.Span     { return rr.Sp }

// SubtypeConstraint restricts a type mark.
type SubtypeConstraint interface {
	Node
	constraintNode()
}

// RangeConstraint is `range a to b` or `range name'range`.
type RangeConstraint struct {
	R  Range
	Sp token.Span
}

func (rc *RangeConstraint) Accept(v Visitor)     { v.VisitRangeConstraint(rc) }
func (rc *RangeConstraint) constraintNode()      {}
func (rc *RangeConstraint) TokenLiteral() string { return rc.R.TokenLiteral() }
func (rc *RangeConstraint) Span() token.Span     { return rc.Sp }

// ArrayConstraint is an index constraint with an optional element
// constraint. An empty Ranges slice is the (open) form.
type ArrayConstraint struct {
	Ranges  []DiscreteRange
	Element SubtypeConstraint // may be nil
	Sp      token.Span
}

func (ac *ArrayConstraint) Accept(v Visitor)     { v.VisitArrayConstraint(ac) }
func (ac *ArrayConstraint) constraintNode()      {}
func (ac *ArrayConstraint) TokenLiteral() string { return "(" }
func (ac *ArrayConstraint) Span() token.Span     { return ac.Sp }

// ElementConstraint pairs a record element with a nested constraint.
type ElementConstraint struct {
	Ident      *Identifier
	Constraint SubtypeConstraint
}

// RecordConstraint constrains record elements. The parser guarantees a
// non-empty element list.
type RecordConstraint struct {
	Elements []*ElementConstraint
	Sp       token.Span
}

func (rc *RecordConstraint) Accept(v Visitor)     { v.VisitRecordConstraint(rc) }
func (rc *RecordConstraint) constraintNode()      {}
func (rc *RecordConstraint) TokenLiteral() string { return "(" }
func (rc *RecordConstraint) Span() token.Span     { return rc.Sp }

// SubtypeIndication is [resolution] type_mark [constraint].
type SubtypeIndication struct {
	Resolution ResolutionIndication // nil when unresolved
	TypeMark   *TypeMark
	Constraint SubtypeConstraint // nil when absent
}

func (si *SubtypeIndication) Accept(v Visitor)     { v.VisitSubtypeIndication(si) }
func (si *SubtypeIndication) TokenLiteral() string { return si.TypeMark.TokenLiteral() }
func (si *SubtypeIndication) Span() token.Span {
	sp := si.TypeMark.Span()
	if si.Resolution != nil {
		sp = sp.Combine(si.Resolution.Span())
	}
	if si.Constraint != nil {
		sp = sp.Combine(si.Constraint.Span())
	}
	return sp
}

// SelectedSuffix is prefix.suffix on an object name, e.g. rec.elem.
type SelectedSuffix struct {
	Prefix Name
	Suffix *Identifier
}

func (ss *SelectedSuffix) Accept(v Visitor)     { v.VisitSelectedSuffix(ss) }
func (ss *SelectedSuffix) expressionNode()      {}
func (ss *SelectedSuffix) nameNode()            {}
func (ss *SelectedSuffix) targetNode()          {}
func (ss *SelectedSuffix) TokenLiteral() string { return ss.Prefix.TokenLiteral() }
func (ss *SelectedSuffix) Span() token.Span {
	return ss.Prefix.Span().Combine(ss.Suffix.Span())
}

// IndexedName is prefix(e1, e2, ...).
type IndexedName struct {
	Prefix  Name
	Indexes []Expression
	Sp      token.Span
}

func (in *IndexedName) Accept(v Visitor)     { v.VisitIndexedName(in) }
func (in *IndexedName) expressionNode()      {}
func (in *IndexedName) nameNode()            {}
func (in *IndexedName) targetNode()          {}
func (in *IndexedName) TokenLiteral() string { return in.Prefix.TokenLiteral() }
func (in *IndexedName) Span() token.Span     { return in.Sp }

// SliceName is prefix(discrete_range).
type SliceName struct {
	Prefix Name
	R      DiscreteRange
	Sp     token.Span
}

func (sn *SliceName) Accept(v Visitor)     { v.VisitSliceName(sn) }
func (sn *SliceName) expressionNode()      {}
func (sn *SliceName) nameNode()            {}
func (sn *SliceName) targetNode()          {}
func (sn *SliceName) TokenLiteral() string { return sn.Prefix.TokenLiteral() }
func (sn *SliceName) Span() token.Span     { return sn.Sp }

// ElementAssociation is [choices =>] expr inside an aggregate.
type ElementAssociation struct {
	Choices []Expression // empty for positional associations
	Expr    Expression
}

// Aggregate is a parenthesized list of element associations. As an
// assignment target its element types are inferred from the statement's
// right-hand side, not here.
type Aggregate struct {
	Elements []*ElementAssociation
	Sp       token.Span
}

func (ag *Aggregate) Accept(v Visitor)     { v.VisitAggregate(ag) }
func (ag *Aggregate) expressionNode()      {}
func (ag *Aggregate) targetNode()          {}
func (ag *Aggregate) TokenLiteral() string { return "(" }
func (ag *Aggregate) Span() token.Span     { return ag.Sp }

// ObjectDeclaration declares signals, variables, constants or files:
// signal s1, s2 : std_logic := '0';
type ObjectDeclaration struct {
	Token   token.Token // the class keyword
	Class   token.TokenType
	Shared  bool // shared variable
	Idents  []*Identifier
	Subtype *SubtypeIndication
	Init    Expression // may be nil
	Sp      token.Span
}

func (od *ObjectDeclaration) Accept(v Visitor)     { v.VisitObjectDeclaration(od) }
func (od *ObjectDeclaration) statementNode()       {}
func (od *ObjectDeclaration) TokenLiteral() string { return od.Token.Lexeme }
func (od *ObjectDeclaration) Span() token.Span     { return od.Sp }

// AssignmentStatement is target <= expr; or target := expr;
type AssignmentStatement struct {
	Target Target
	Op     token.TokenType // LTE or VARASSIGN
	OpTok  token.Token
	Rhs    Expression
	Sp     token.Span
}

func (as *AssignmentStatement) Accept(v Visitor)     { v.VisitAssignmentStatement(as) }
func (as *AssignmentStatement) statementNode()       {}
func (as *AssignmentStatement) TokenLiteral() string { return as.OpTok.Lexeme }
func (as *AssignmentStatement) Span() token.Span     { return as.Sp }

// DesignFile is the root node for one analyzed source file.
type DesignFile struct {
	Statements []Statement
}

func (df *DesignFile) Accept(v Visitor) { v.VisitDesignFile(df) }
func (df *DesignFile) TokenLiteral() string {
	if len(df.Statements) > 0 {
		return df.Statements[0].TokenLiteral()
	}
	return ""
}

func (df *DesignFile) Span() token.Span {
	var sp token.Span
	for i, s := range df.Statements {
		if i == 0 {
			sp = s.Span()
		} else {
			sp = sp.Combine(s.Span())
		}
	}
	return sp
}
