package parser

import (
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/pipeline"
	"github.com/hdltools/vhdlang/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Tokens == nil {
		err := diagnostics.NewPhaseError(diagnostics.PhaseParser, diagnostics.ErrP004, token.Span{}, "EOF")
		ctx.Diagnostics.Push(err)
		return ctx
	}

	p := New(NewStream(ctx.Tokens))
	file, errs := p.ParseDesignFile()
	ctx.AstRoot = file
	for _, err := range errs {
		err.File = ctx.FilePath
		ctx.Diagnostics.Push(err)
	}
	return ctx
}
