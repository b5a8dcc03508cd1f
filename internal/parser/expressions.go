package parser

import (
	"github.com/funvibe/funbit/pkg/funbit"
	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/token"
)

// Precedence levels follow LRM 9.2: logical < relational < adding <
// multiplying < miscellaneous.
const (
	LOWEST = iota
	LOGICAL
	RELATIONAL
	ADDING
	MULTIPLYING
	POWER
	PREFIX
)

var precedences = map[token.TokenType]int{
	token.AND:    LOGICAL,
	token.OR:     LOGICAL,
	token.NAND:   LOGICAL,
	token.NOR:    LOGICAL,
	token.XOR:    LOGICAL,
	token.XNOR:   LOGICAL,
	token.EQ:     RELATIONAL,
	token.NEQ:    RELATIONAL,
	token.LT:     RELATIONAL,
	token.GT:     RELATIONAL,
	token.LTE:    RELATIONAL,
	token.GTE:    RELATIONAL,
	token.PLUS:   ADDING,
	token.MINUS:  ADDING,
	token.CONCAT: ADDING,
	token.TIMES:  MULTIPLYING,
	token.DIV:    MULTIPLYING,
	token.MOD:    MULTIPLYING,
	token.REM:    MULTIPLYING,
	token.POW:    POWER,
}

func peekPrecedence(kind token.TokenType) int {
	if prec, ok := precedences[kind]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression parses a simple expression for range bounds, index
// positions and assignment right-hand sides.
func (p *Parser) parseExpression(precedence int) (ast.Expression, *diagnostics.DiagnosticError) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		kind := p.stream.PeekKind()
		prec := peekPrecedence(kind)
		if prec == LOWEST || prec <= precedence {
			return left, nil
		}
		opTok := p.stream.Peek()
		p.stream.Skip()
		right, err := p.parseExpression(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Token: opTok, Op: opTok.Type, Left: left, Right: right}
	}
}

func (p *Parser) parsePrimary() (ast.Expression, *diagnostics.DiagnosticError) {
	tok := p.stream.Peek()
	switch tok.Type {
	case token.IDENT:
		return p.parseNameExpression()
	case token.ABSTRACT_LIT:
		p.stream.Skip()
		value, _ := tok.Literal.(int64)
		return &ast.AbstractLiteral{Token: tok, Value: value}, nil
	case token.CHAR_LIT:
		p.stream.Skip()
		value, _ := tok.Literal.(rune)
		return &ast.CharacterLiteral{Token: tok, Value: value}, nil
	case token.STRING_LIT:
		p.stream.Skip()
		value, _ := tok.Literal.(string)
		return &ast.StringLiteral{Token: tok, Value: value}, nil
	case token.BIT_STRING:
		p.stream.Skip()
		lit := &ast.BitStringLiteral{Token: tok}
		if bits, ok := tok.Literal.(*funbit.BitString); ok {
			lit.Value = bits
		}
		return lit, nil
	case token.MINUS, token.PLUS, token.NOT, token.ABS:
		p.stream.Skip()
		right, err := p.parseExpression(PREFIX)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Token: tok, Op: tok.Type, Right: right}, nil
	case token.LEFTPAR:
		p.stream.Skip()
		inner, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.stream.Expect(token.RIGHTPAR); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, diagnostics.NewPhaseError(
			diagnostics.PhaseParser, diagnostics.ErrP004, p.stream.PosBefore(tok), string(tok.Type))
	}
}

// parseNameExpression parses a name usable inside an expression: a
// dotted chain, possibly followed by an attribute or index suffixes.
func (p *Parser) parseNameExpression() (ast.Expression, *diagnostics.DiagnosticError) {
	selected, err := p.ParseSelectedName()
	if err != nil {
		return nil, err
	}

	if p.stream.PeekKind() == token.TICK {
		state := p.stream.State()
		p.stream.Skip()
		designator, derr := p.parseAttributeDesignator()
		if derr != nil {
			p.stream.SetState(state)
			return selected, nil
		}
		return &ast.AttributeName{Prefix: selected, Designator: designator}, nil
	}

	if p.stream.PeekKind() == token.LEFTPAR {
		return p.parseNameSuffixes(nameFromSelected(selected))
	}
	return selected, nil
}

// parseAttributeDesignator accepts an identifier or the `range` reserved
// word after a tick.
func (p *Parser) parseAttributeDesignator() (*ast.Identifier, *diagnostics.DiagnosticError) {
	tok := p.stream.Peek()
	if tok.Type == token.RANGE {
		p.stream.Skip()
		return &ast.Identifier{Token: tok, Value: "range"}, nil
	}
	return p.stream.ExpectIdent()
}

// parseNameSuffixes extends a name with selections, indexings and
// slices.
func (p *Parser) parseNameSuffixes(name ast.Name) (ast.Name, *diagnostics.DiagnosticError) {
	for {
		switch p.stream.PeekKind() {
		case token.DOT:
			p.stream.Skip()
			suffix, err := p.stream.ExpectIdent()
			if err != nil {
				return nil, err
			}
			name = &ast.SelectedSuffix{Prefix: name, Suffix: suffix}
		case token.LEFTPAR:
			extended, err := p.parseIndexedOrSlice(name)
			if err != nil {
				return nil, err
			}
			name = extended
		default:
			return name, nil
		}
	}
}

// parseIndexedOrSlice disambiguates prefix(discrete_range) from
// prefix(expr, ...) by attempting a discrete range and checking that it
// is an actual range form followed by the closing paren.
func (p *Parser) parseIndexedOrSlice(prefix ast.Name) (ast.Name, *diagnostics.DiagnosticError) {
	if _, err := p.stream.Expect(token.LEFTPAR); err != nil {
		return nil, err
	}
	state := p.stream.State()

	if dr, derr := p.ParseDiscreteRange(); derr == nil && p.stream.PeekKind() == token.RIGHTPAR {
		if isRangeForm(dr) {
			rightpar := p.stream.Peek()
			p.stream.Skip()
			return &ast.SliceName{
				Prefix: prefix,
				R:      dr,
				Sp:     prefix.Span().Combine(rightpar.Span),
			}, nil
		}
	}
	p.stream.SetState(state)

	var indexes []ast.Expression
	for {
		index, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		indexes = append(indexes, index)
		sep := p.stream.Peek()
		switch sep.Type {
		case token.RIGHTPAR:
			p.stream.Skip()
			return &ast.IndexedName{
				Prefix:  prefix,
				Indexes: indexes,
				Sp:      prefix.Span().Combine(sep.Span),
			}, nil
		case token.COMMA:
			p.stream.Skip()
		default:
			return nil, p.kindsError(sep, token.RIGHTPAR, token.COMMA)
		}
	}
}

func isRangeForm(dr ast.DiscreteRange) bool {
	_, ok := dr.(*ast.RangeDiscrete)
	return ok
}

func nameFromSelected(sn *ast.SelectedName) ast.Name {
	var name ast.Name = sn.Parts[0]
	for _, part := range sn.Parts[1:] {
		name = &ast.SelectedSuffix{Prefix: name, Suffix: part}
	}
	return name
}
