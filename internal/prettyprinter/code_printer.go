package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/token"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter), mirroring LRM 9.2.
var operatorPrecedence = map[token.TokenType]int{
	token.AND:    1,
	token.OR:     1,
	token.NAND:   1,
	token.NOR:    1,
	token.XOR:    1,
	token.XNOR:   1,
	token.EQ:     2,
	token.NEQ:    2,
	token.LT:     2,
	token.GT:     2,
	token.LTE:    2,
	token.GTE:    2,
	token.PLUS:   3,
	token.MINUS:  3,
	token.CONCAT: 3,
	token.TIMES:  4,
	token.DIV:    4,
	token.MOD:    4,
	token.REM:    4,
	token.POW:    5,
}

func getPrecedence(op token.TokenType) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 6
}

// CodePrinter renders syntax nodes back to VHDL source. Reparsing its
// output yields a structurally equal tree (spans aside).
type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

// printExpr prints an expression, adding parentheses only if needed.
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int, isRight bool) {
	switch e := expr.(type) {
	case *ast.BinaryExpression:
		prec := getPrecedence(e.Op)
		needParens := prec < parentPrec || (prec == parentPrec && isRight)
		if needParens {
			p.write("(")
		}
		p.printExpr(e.Left, prec, false)
		p.write(" " + operatorText(e.Op) + " ")
		p.printExpr(e.Right, prec, true)
		if needParens {
			p.write(")")
		}
	case *ast.UnaryExpression:
		op := operatorText(e.Op)
		p.write(op)
		if isWordOperator(e.Op) {
			p.write(" ")
		}
		p.printExpr(e.Right, 6, false)
	default:
		expr.Accept(p)
	}
}

func operatorText(op token.TokenType) string {
	return strings.ToLower(string(op))
}

func isWordOperator(op token.TokenType) bool {
	switch op {
	case token.ABS, token.NOT, token.AND, token.OR, token.NAND, token.NOR,
		token.XOR, token.XNOR, token.MOD, token.REM:
		return true
	}
	return false
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitSelectedName(n *ast.SelectedName) {
	p.write(n.String())
}

func (p *CodePrinter) VisitAttributeName(n *ast.AttributeName) {
	n.Prefix.Accept(p)
	p.write("'")
	p.write(n.Designator.Value)
}

func (p *CodePrinter) VisitTypeMark(n *ast.TypeMark) {
	n.Name.Accept(p)
	if n.SubtypeAttr {
		p.write("'subtype")
	}
}

func (p *CodePrinter) VisitAbstractLiteral(n *ast.AbstractLiteral) {
	p.write(n.Token.Lexeme)
}

func (p *CodePrinter) VisitCharacterLiteral(n *ast.CharacterLiteral) {
	p.write(n.Token.Lexeme)
}

func (p *CodePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.write(n.Token.Lexeme)
}

func (p *CodePrinter) VisitBitStringLiteral(n *ast.BitStringLiteral) {
	p.write(n.Token.Lexeme)
}

func (p *CodePrinter) VisitUnaryExpression(n *ast.UnaryExpression) {
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitBinaryExpression(n *ast.BinaryExpression) {
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitRangeSpan(n *ast.RangeSpan) {
	p.printExpr(n.Left, 0, false)
	p.write(" " + n.Dir.String() + " ")
	p.printExpr(n.Right, 0, false)
}

func (p *CodePrinter) VisitRangeAttribute(n *ast.RangeAttribute) {
	n.Name.Accept(p)
}

func (p *CodePrinter) VisitRangeDiscrete(n *ast.RangeDiscrete) {
	n.R.Accept(p)
}

func (p *CodePrinter) VisitSubtypeDiscrete(n *ast.SubtypeDiscrete) {
	n.Mark.Accept(p)
	if n.R != nil {
		p.write(" range ")
		n.R.Accept(p)
	}
}

func (p *CodePrinter) VisitFunctionResolution(n *ast.FunctionResolution) {
	n.Name.Accept(p)
}

func (p *CodePrinter) VisitArrayElementResolution(n *ast.ArrayElementResolution) {
	p.write("(")
	n.Name.Accept(p)
	p.write(")")
}

func (p *CodePrinter) VisitRecordResolution(n *ast.RecordResolution) {
	p.write("(")
	for i, elem := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		elem.Ident.Accept(p)
		p.write(" ")
		elem.Resolution.Accept(p)
	}
	p.write(")")
}

func (p *CodePrinter) VisitRangeConstraint(n *ast.RangeConstraint) {
	p.write("range ")
	n.R.Accept(p)
}

func (p *CodePrinter) VisitArrayConstraint(n *ast.ArrayConstraint) {
	p.write("(")
	if len(n.Ranges) == 0 {
		p.write("open")
	}
	for i, r := range n.Ranges {
		if i > 0 {
			p.write(", ")
		}
		r.Accept(p)
	}
	p.write(")")
	if n.Element != nil {
		n.Element.Accept(p)
	}
}

func (p *CodePrinter) VisitRecordConstraint(n *ast.RecordConstraint) {
	p.write("(")
	for i, elem := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		elem.Ident.Accept(p)
		elem.Constraint.Accept(p)
	}
	p.write(")")
}

func (p *CodePrinter) VisitSubtypeIndication(n *ast.SubtypeIndication) {
	if n.Resolution != nil {
		n.Resolution.Accept(p)
		p.write(" ")
	}
	n.TypeMark.Accept(p)
	if n.Constraint != nil {
		if _, isRange := n.Constraint.(*ast.RangeConstraint); isRange {
			p.write(" ")
		}
		n.Constraint.Accept(p)
	}
}

func (p *CodePrinter) VisitSelectedSuffix(n *ast.SelectedSuffix) {
	n.Prefix.Accept(p)
	p.write(".")
	n.Suffix.Accept(p)
}

func (p *CodePrinter) VisitIndexedName(n *ast.IndexedName) {
	n.Prefix.Accept(p)
	p.write("(")
	for i, index := range n.Indexes {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(index, 0, false)
	}
	p.write(")")
}

func (p *CodePrinter) VisitSliceName(n *ast.SliceName) {
	n.Prefix.Accept(p)
	p.write("(")
	n.R.Accept(p)
	p.write(")")
}

func (p *CodePrinter) VisitAggregate(n *ast.Aggregate) {
	p.write("(")
	for i, assoc := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		for j, choice := range assoc.Choices {
			if j > 0 {
				p.write(" | ")
			}
			p.printExpr(choice, 0, false)
		}
		if len(assoc.Choices) > 0 {
			p.write(" => ")
		}
		p.printExpr(assoc.Expr, 0, false)
	}
	p.write(")")
}

func (p *CodePrinter) VisitObjectDeclaration(n *ast.ObjectDeclaration) {
	if n.Shared {
		p.write("shared ")
	}
	p.write(strings.ToLower(string(n.Class)))
	p.write(" ")
	for i, ident := range n.Idents {
		if i > 0 {
			p.write(", ")
		}
		ident.Accept(p)
	}
	p.write(" : ")
	n.Subtype.Accept(p)
	if n.Init != nil {
		p.write(" := ")
		p.printExpr(n.Init, 0, false)
	}
	p.write(";\n")
}

func (p *CodePrinter) VisitAssignmentStatement(n *ast.AssignmentStatement) {
	n.Target.Accept(p)
	if n.Op == token.VARASSIGN {
		p.write(" := ")
	} else {
		p.write(" <= ")
	}
	p.printExpr(n.Rhs, 0, false)
	p.write(";\n")
}

func (p *CodePrinter) VisitDesignFile(n *ast.DesignFile) {
	for _, stmt := range n.Statements {
		stmt.Accept(p)
	}
}
