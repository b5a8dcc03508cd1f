package parser

import (
	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/token"
)

// LRM 6.3 Subtype declarations

func (p *Parser) parseRecordElementConstraint() (*ast.ElementConstraint, *diagnostics.DiagnosticError) {
	ident, err := p.stream.ExpectIdent()
	if err != nil {
		return nil, err
	}
	constraint, err := p.parseCompositeConstraint()
	if err != nil {
		return nil, err
	}
	return &ast.ElementConstraint{Ident: ident, Constraint: constraint}, nil
}

// parseArrayConstraint collects the remaining discrete ranges of an
// index constraint and an optional element constraint. initial is nil
// for the (open) form.
func (p *Parser) parseArrayConstraint(leftpar token.Token, initial ast.DiscreteRange) (ast.SubtypeConstraint, *diagnostics.DiagnosticError) {
	var ranges []ast.DiscreteRange
	if initial != nil {
		ranges = append(ranges, initial)
	}

	var endSpan token.Span
	for {
		sep := p.stream.Peek()
		if sep.Type == token.RIGHTPAR {
			p.stream.Skip()
			endSpan = sep.Span
			break
		}
		if sep.Type != token.COMMA {
			return nil, p.kindsError(sep, token.RIGHTPAR, token.COMMA)
		}
		p.stream.Skip()

		dr, err := p.ParseDiscreteRange()
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, dr)
	}

	// Array element constraint
	element, err := p.ParseSubtypeConstraint()
	if err != nil {
		return nil, err
	}
	if element != nil {
		endSpan = element.Span()
	}

	return &ast.ArrayConstraint{
		Ranges:  ranges,
		Element: element,
		Sp:      leftpar.Span.Combine(endSpan),
	}, nil
}

// parseCompositeConstraint disambiguates array from record element
// constraints. There is no finite lookahead that can differentiate the
// two, so the first item is parsed speculatively: a discrete range that
// is not followed by ')' or ',' means the constraint is a record form,
// and the cursor is rewound to just after the opening paren.
func (p *Parser) parseCompositeConstraint() (ast.SubtypeConstraint, *diagnostics.DiagnosticError) {
	leftpar, err := p.stream.Expect(token.LEFTPAR)
	if err != nil {
		return nil, err
	}
	state := p.stream.State()

	var initial ast.DiscreteRange
	var attemptErr *diagnostics.DiagnosticError
	if !p.stream.SkipIf(token.OPEN) {
		initial, attemptErr = p.ParseDiscreteRange()
	}

	if attemptErr == nil {
		switch tok := p.stream.Peek(); tok.Type {
		case token.RIGHTPAR, token.COMMA:
		default:
			attemptErr = p.kindsError(tok, token.RIGHTPAR, token.COMMA).
				WithContext("parsing index constraint")
		}
	}

	if attemptErr == nil {
		// Array constraint
		return p.parseArrayConstraint(leftpar, initial)
	}

	// Record constraint
	p.stream.SetState(state)

	first, err := p.parseRecordElementConstraint()
	if err != nil {
		return nil, err
	}
	constraints := []*ast.ElementConstraint{first}

	var rightparSpan token.Span
	for {
		sep := p.stream.Peek()
		if sep.Type == token.RIGHTPAR {
			p.stream.Skip()
			rightparSpan = sep.Span
			break
		}
		if sep.Type != token.COMMA {
			return nil, p.kindsError(sep, token.RIGHTPAR, token.COMMA)
		}
		p.stream.Skip()

		constraint, err := p.parseRecordElementConstraint()
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, constraint)
	}

	return &ast.RecordConstraint{
		Elements: constraints,
		Sp:       leftpar.Span.Combine(rightparSpan),
	}, nil
}

// ParseSubtypeConstraint parses an optional constraint suffix. It
// returns nil when the next token starts no constraint.
func (p *Parser) ParseSubtypeConstraint() (ast.SubtypeConstraint, *diagnostics.DiagnosticError) {
	switch tok := p.stream.Peek(); tok.Type {
	case token.RANGE:
		p.stream.Skip()
		r, err := p.ParseRange()
		if err != nil {
			return nil, err
		}
		return &ast.RangeConstraint{R: r, Sp: tok.Span.Combine(r.Span())}, nil
	case token.LEFTPAR:
		return p.parseCompositeConstraint()
	default:
		return nil, nil
	}
}

// ParseElementResolutionIndication parses the parenthesized resolution
// form. After the first identifier a single-token peek decides between
// array-element resolution (Dot or RightPar follows) and record-element
// resolution (Identifier or LeftPar follows); only the interpretation of
// the identifier is revised, never the cursor.
func (p *Parser) ParseElementResolutionIndication() (ast.ResolutionIndication, *diagnostics.DiagnosticError) {
	leftpar, err := p.stream.Expect(token.LEFTPAR)
	if err != nil {
		return nil, err
	}

	firstIdent, err := p.stream.ExpectIdent()
	if err != nil {
		return nil, err
	}

	switch tok := p.stream.Peek(); tok.Type {
	case token.DOT, token.RIGHTPAR:
		// Array element resolution
		parts := []*ast.Identifier{firstIdent}
		for p.stream.SkipIf(token.DOT) {
			part, err := p.stream.ExpectIdent()
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
		rightpar, rerr := p.stream.Expect(token.RIGHTPAR)
		if rerr != nil {
			return nil, rerr
		}
		return &ast.ArrayElementResolution{
			Name: &ast.SelectedName{Parts: parts},
			Sp:   leftpar.Span.Combine(rightpar.Span),
		}, nil

	case token.IDENT, token.LEFTPAR:
		// Record element resolution
		var elements []*ast.RecordElementResolution
		for {
			var ident *ast.Identifier
			if len(elements) == 0 {
				ident = firstIdent
			} else {
				ident, err = p.stream.ExpectIdent()
				if err != nil {
					return nil, err
				}
			}

			var resolution ast.ResolutionIndication
			if p.stream.PeekKind() == token.LEFTPAR {
				resolution, err = p.ParseElementResolutionIndication()
				if err != nil {
					return nil, err
				}
			} else {
				name, err := p.ParseSelectedName()
				if err != nil {
					return nil, err
				}
				resolution = &ast.FunctionResolution{Name: name}
			}

			elements = append(elements, &ast.RecordElementResolution{
				Ident:      ident,
				Resolution: resolution,
			})

			sep := p.stream.Peek()
			if sep.Type == token.RIGHTPAR {
				p.stream.Skip()
				return &ast.RecordResolution{
					Elements: elements,
					Sp:       leftpar.Span.Combine(sep.Span),
				}, nil
			}
			if sep.Type != token.COMMA {
				return nil, p.kindsError(sep, token.RIGHTPAR, token.COMMA)
			}
			p.stream.Skip()
		}

	default:
		return nil, p.kindsError(tok, token.DOT, token.RIGHTPAR, token.IDENT, token.LEFTPAR)
	}
}

// ParseSubtypeIndication parses [resolution] type_mark [constraint].
func (p *Parser) ParseSubtypeIndication() (*ast.SubtypeIndication, *diagnostics.DiagnosticError) {
	var resolution ast.ResolutionIndication
	var typeMark *ast.TypeMark

	if p.stream.PeekKind() == token.LEFTPAR {
		var err *diagnostics.DiagnosticError
		resolution, err = p.ParseElementResolutionIndication()
		if err != nil {
			return nil, err
		}
		typeMark, err = p.ParseTypeMark()
		if err != nil {
			return nil, err
		}
	} else {
		selected, err := p.ParseSelectedName()
		if err != nil {
			return nil, err
		}
		if p.stream.PeekKind() == token.IDENT {
			resolution = &ast.FunctionResolution{Name: selected}
			typeMark, err = p.ParseTypeMark()
			if err != nil {
				return nil, err
			}
		} else {
			typeMark, err = p.ParseTypeMarkStartingWithName(selected)
			if err != nil {
				return nil, err
			}
		}
	}

	constraint, err := p.ParseSubtypeConstraint()
	if err != nil {
		return nil, err
	}

	return &ast.SubtypeIndication{
		Resolution: resolution,
		TypeMark:   typeMark,
		Constraint: constraint,
	}, nil
}
