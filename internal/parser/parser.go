package parser

import (
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/token"
)

// Parser holds the state of our parser: a rewindable cursor over the
// lexed token vector. All sub-parsers report failure as a returned
// diagnostic; none of them recover locally.
type Parser struct {
	stream *Stream
}

func New(stream *Stream) *Parser {
	return &Parser{stream: stream}
}

// Stream exposes the underlying cursor (tests observe rollback through it).
func (p *Parser) Stream() *Stream {
	return p.stream
}

func (p *Parser) kindsError(tok token.Token, kinds ...token.TokenType) *diagnostics.DiagnosticError {
	return diagnostics.NewKindsError(p.stream.PosBefore(tok), tok.Type, kinds...)
}
