package parser

import (
	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/token"
)

// TokenID addresses a token in the lexed vector.
type TokenID int

// StreamState is an O(1) snapshot of the cursor, used for speculative
// parsing with rollback.
type StreamState struct {
	idx int
}

// Stream is a cursor over an immutable token vector. It has no side
// effects other than the index, so SetState is a complete rollback.
type Stream struct {
	tokens []token.Token
	idx    int
}

// NewStream wraps a token vector. The vector must end with an EOF token;
// the lexer guarantees this.
func NewStream(tokens []token.Token) *Stream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		tokens = append(tokens, token.Token{Type: token.EOF})
	}
	return &Stream{tokens: tokens}
}

// State snapshots the cursor.
func (s *Stream) State() StreamState {
	return StreamState{idx: s.idx}
}

// SetState rewinds (or forwards) the cursor to a snapshot.
func (s *Stream) SetState(state StreamState) {
	s.idx = state.idx
}

// Peek returns the current token without consuming it. At the end of the
// stream it keeps returning the EOF token.
func (s *Stream) Peek() token.Token {
	if s.idx >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.idx]
}

// PeekKind returns the current token kind.
func (s *Stream) PeekKind() token.TokenType {
	return s.Peek().Type
}

// Skip advances past the current token.
func (s *Stream) Skip() {
	if s.idx < len(s.tokens)-1 {
		s.idx++
	}
}

// SkipIf advances iff the current token has the given kind.
func (s *Stream) SkipIf(kind token.TokenType) bool {
	if s.PeekKind() == kind {
		s.Skip()
		return true
	}
	return false
}

// Expect consumes a token of the given kind or fails without advancing.
func (s *Stream) Expect(kind token.TokenType) (token.Token, *diagnostics.DiagnosticError) {
	tok := s.Peek()
	if tok.Type != kind {
		return token.Token{}, diagnostics.NewPhaseError(
			diagnostics.PhaseParser, diagnostics.ErrP002, s.PosBefore(tok), string(kind), string(tok.Type))
	}
	s.Skip()
	return tok, nil
}

// ExpectIdent consumes an identifier or fails without advancing.
func (s *Stream) ExpectIdent() (*ast.Identifier, *diagnostics.DiagnosticError) {
	tok := s.Peek()
	if tok.Type != token.IDENT {
		return nil, diagnostics.NewPhaseError(
			diagnostics.PhaseParser, diagnostics.ErrP003, s.PosBefore(tok), string(tok.Type))
	}
	s.Skip()
	return identFromToken(tok), nil
}

// Get returns the token with the given id.
func (s *Stream) Get(id TokenID) token.Token {
	return s.tokens[id]
}

// LastID returns the id of the most recently consumed token.
func (s *Stream) LastID() TokenID {
	if s.idx == 0 {
		return 0
	}
	return TokenID(s.idx - 1)
}

// PosBefore returns the span a diagnostic about tok should point at.
// For EOF that is the end of the previous token, so errors at the end
// of input land on real source text.
func (s *Stream) PosBefore(tok token.Token) token.Span {
	if tok.Type == token.EOF && s.idx > 0 {
		prev := s.tokens[s.idx-1].Span
		return token.Span{Start: prev.End, End: prev.End, Line: prev.Line, Column: prev.Column}
	}
	return tok.Span
}

func identFromToken(tok token.Token) *ast.Identifier {
	value, _ := tok.Literal.(string)
	if value == "" {
		value = tok.Lexeme
	}
	return &ast.Identifier{Token: tok, Value: value}
}
