package parser

import (
	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/token"
)

// ParseDesignFile parses a flat sequence of object declarations and
// assignment statements. A failed statement is reported and the parser
// resynchronizes after the next semicolon.
func (p *Parser) ParseDesignFile() (*ast.DesignFile, []*diagnostics.DiagnosticError) {
	file := &ast.DesignFile{}
	var errs []*diagnostics.DiagnosticError

	for p.stream.PeekKind() != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			errs = append(errs, err)
			p.resync()
			continue
		}
		file.Statements = append(file.Statements, stmt)
	}
	return file, errs
}

func (p *Parser) parseStatement() (ast.Statement, *diagnostics.DiagnosticError) {
	switch tok := p.stream.Peek(); tok.Type {
	case token.SIGNAL, token.CONSTANT, token.VARIABLE, token.FILE, token.SHARED:
		return p.parseObjectDeclaration()
	case token.IDENT, token.LEFTPAR:
		return p.parseAssignmentStatement()
	default:
		return nil, p.kindsError(tok,
			token.SIGNAL, token.CONSTANT, token.VARIABLE, token.FILE, token.SHARED,
			token.IDENT, token.LEFTPAR)
	}
}

// resync skips to just past the next semicolon so one malformed
// statement cannot cascade.
func (p *Parser) resync() {
	for {
		switch p.stream.PeekKind() {
		case token.EOF:
			return
		case token.SEMICOLON:
			p.stream.Skip()
			return
		}
		p.stream.Skip()
	}
}

// parseObjectDeclaration parses
//
//	signal s1, s2 : std_logic := '0';
//	shared variable v : integer;
func (p *Parser) parseObjectDeclaration() (*ast.ObjectDeclaration, *diagnostics.DiagnosticError) {
	classTok := p.stream.Peek()
	p.stream.Skip()

	decl := &ast.ObjectDeclaration{Token: classTok, Class: classTok.Type}
	if classTok.Type == token.SHARED {
		varTok, err := p.stream.Expect(token.VARIABLE)
		if err != nil {
			return nil, err
		}
		decl.Class = varTok.Type
		decl.Shared = true
	}

	for {
		ident, err := p.stream.ExpectIdent()
		if err != nil {
			return nil, err
		}
		decl.Idents = append(decl.Idents, ident)
		if !p.stream.SkipIf(token.COMMA) {
			break
		}
	}

	if _, err := p.stream.Expect(token.COLON); err != nil {
		return nil, err
	}

	subtype, err := p.ParseSubtypeIndication()
	if err != nil {
		return nil, err
	}
	decl.Subtype = subtype

	if p.stream.SkipIf(token.VARASSIGN) {
		init, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		decl.Init = init
	}

	semi, err := p.stream.Expect(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	decl.Sp = classTok.Span.Combine(semi.Span)
	return decl, nil
}

// parseAssignmentStatement parses target <= expr; or target := expr;
func (p *Parser) parseAssignmentStatement() (*ast.AssignmentStatement, *diagnostics.DiagnosticError) {
	target, err := p.ParseTarget()
	if err != nil {
		return nil, err
	}

	opTok := p.stream.Peek()
	switch opTok.Type {
	case token.LTE, token.VARASSIGN:
		p.stream.Skip()
	default:
		return nil, p.kindsError(opTok, token.LTE, token.VARASSIGN)
	}

	rhs, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	semi, err := p.stream.Expect(token.SEMICOLON)
	if err != nil {
		return nil, err
	}

	return &ast.AssignmentStatement{
		Target: target,
		Op:     opTok.Type,
		OpTok:  opTok,
		Rhs:    rhs,
		Sp:     target.Span().Combine(semi.Span),
	}, nil
}

// ParseTarget parses the left-hand side of an assignment: a name or an
// aggregate of element associations.
func (p *Parser) ParseTarget() (ast.Target, *diagnostics.DiagnosticError) {
	if p.stream.PeekKind() == token.LEFTPAR {
		return p.parseAggregate()
	}
	return p.parseTargetName()
}

func (p *Parser) parseTargetName() (ast.Name, *diagnostics.DiagnosticError) {
	ident, err := p.stream.ExpectIdent()
	if err != nil {
		return nil, err
	}
	return p.parseNameSuffixes(ident)
}

// parseAggregate parses (choices => expr, ...) with positional and
// named associations.
func (p *Parser) parseAggregate() (*ast.Aggregate, *diagnostics.DiagnosticError) {
	leftpar, err := p.stream.Expect(token.LEFTPAR)
	if err != nil {
		return nil, err
	}

	agg := &ast.Aggregate{}
	for {
		assoc, err := p.parseElementAssociation()
		if err != nil {
			return nil, err
		}
		agg.Elements = append(agg.Elements, assoc)

		sep := p.stream.Peek()
		if sep.Type == token.RIGHTPAR {
			p.stream.Skip()
			agg.Sp = leftpar.Span.Combine(sep.Span)
			return agg, nil
		}
		if sep.Type != token.COMMA {
			return nil, p.kindsError(sep, token.RIGHTPAR, token.COMMA)
		}
		p.stream.Skip()
	}
}

func (p *Parser) parseElementAssociation() (*ast.ElementAssociation, *diagnostics.DiagnosticError) {
	if tok := p.stream.Peek(); tok.Type == token.OTHERS {
		p.stream.Skip()
		if _, err := p.stream.Expect(token.ARROW); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		others := &ast.Identifier{Token: tok, Value: "others"}
		return &ast.ElementAssociation{Choices: []ast.Expression{others}, Expr: expr}, nil
	}

	first, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	choices := []ast.Expression{first}
	for p.stream.SkipIf(token.BAR) {
		choice, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		choices = append(choices, choice)
	}

	if p.stream.SkipIf(token.ARROW) {
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		return &ast.ElementAssociation{Choices: choices, Expr: expr}, nil
	}
	if len(choices) > 1 {
		return nil, p.kindsError(p.stream.Peek(), token.ARROW)
	}
	return &ast.ElementAssociation{Expr: first}, nil
}
