package parser

import (
	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/token"
)

// ParseRange consumes a range expression: a to b, a downto b, or a
// range attribute such as name'range.
func (p *Parser) ParseRange() (ast.Range, *diagnostics.DiagnosticError) {
	left, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if attr, ok := left.(*ast.AttributeName); ok && isRangeDesignator(attr.Designator.Value) {
		return &ast.RangeAttribute{Name: attr}, nil
	}

	var dir ast.Direction
	tok := p.stream.Peek()
	switch tok.Type {
	case token.TO:
		dir = ast.ToDir
	case token.DOWNTO:
		dir = ast.DowntoDir
	default:
		return nil, p.kindsError(tok, token.TO, token.DOWNTO)
	}
	p.stream.Skip()

	right, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.RangeSpan{Left: left, Dir: dir, Right: right}, nil
}

func isRangeDesignator(value string) bool {
	return value == "range" || value == "reverse_range"
}

// ParseDiscreteRange consumes a discrete range: a plain range, or a
// discrete subtype indication (type mark with an optional range
// constraint). The range attempt is speculative; on failure the cursor
// is rewound before the subtype interpretation is tried.
func (p *Parser) ParseDiscreteRange() (ast.DiscreteRange, *diagnostics.DiagnosticError) {
	state := p.stream.State()

	if r, err := p.ParseRange(); err == nil {
		return &ast.RangeDiscrete{R: r}, nil
	}
	p.stream.SetState(state)

	mark, err := p.ParseTypeMark()
	if err != nil {
		return nil, err
	}
	if p.stream.SkipIf(token.RANGE) {
		r, err := p.ParseRange()
		if err != nil {
			return nil, err
		}
		return &ast.SubtypeDiscrete{Mark: mark, R: r}, nil
	}
	return &ast.SubtypeDiscrete{Mark: mark}, nil
}
