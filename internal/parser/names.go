package parser

import (
	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/token"
)

// ParseSelectedName consumes a dotted qualified name: lib.pkg.item.
func (p *Parser) ParseSelectedName() (*ast.SelectedName, *diagnostics.DiagnosticError) {
	first, err := p.stream.ExpectIdent()
	if err != nil {
		return nil, err
	}
	parts := []*ast.Identifier{first}
	for p.stream.SkipIf(token.DOT) {
		part, err := p.stream.ExpectIdent()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return &ast.SelectedName{Parts: parts}, nil
}

// ParseTypeMark consumes a type mark, possibly with a 'subtype suffix.
func (p *Parser) ParseTypeMark() (*ast.TypeMark, *diagnostics.DiagnosticError) {
	name, err := p.ParseSelectedName()
	if err != nil {
		return nil, err
	}
	return p.ParseTypeMarkStartingWithName(name)
}

// ParseTypeMarkStartingWithName finishes a type mark whose selected name
// has already been consumed. A tick that is not followed by `subtype` is
// left for the caller (it may belong to a range attribute).
func (p *Parser) ParseTypeMarkStartingWithName(name *ast.SelectedName) (*ast.TypeMark, *diagnostics.DiagnosticError) {
	sp := name.Span()
	subtypeAttr := false

	if p.stream.PeekKind() == token.TICK {
		state := p.stream.State()
		p.stream.Skip()
		if tok := p.stream.Peek(); tok.Type == token.SUBTYPE {
			p.stream.Skip()
			subtypeAttr = true
			sp = sp.Combine(tok.Span)
		} else {
			p.stream.SetState(state)
		}
	}

	return &ast.TypeMark{Name: name, SubtypeAttr: subtypeAttr, Sp: sp}, nil
}
