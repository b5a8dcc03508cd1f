package lexer

import (
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/pipeline"
	"github.com/hdltools/vhdlang/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	ctx.Tokens = l.Tokenize()

	for _, tok := range ctx.Tokens {
		if tok.Type == token.ILLEGAL {
			err := diagnostics.NewPhaseError(diagnostics.PhaseLexer, diagnostics.ErrL001, tok.Span, tok.Lexeme)
			if len(tok.Lexeme) > 1 {
				err = diagnostics.NewPhaseError(diagnostics.PhaseLexer, diagnostics.ErrL002, tok.Span, tok.Lexeme)
			}
			err.File = ctx.FilePath
			ctx.Diagnostics.Push(err)
		}
	}
	return ctx
}
