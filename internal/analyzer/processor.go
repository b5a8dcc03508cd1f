package analyzer

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hdltools/vhdlang/internal/pipeline"
)

type SemanticAnalyzerProcessor struct {
	Logger hclog.Logger
}

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}

	RegisterStandard(ctx.Arena, ctx.Scope)

	analyzer := New(ctx.Arena)
	analyzer.SetLogger(sap.Logger)

	before := len(ctx.Diagnostics.Errors)
	if err := analyzer.AnalyzeFile(ctx.Scope, ctx.AstRoot, &ctx.Diagnostics); err != nil {
		// A fatal that escaped the resolver boundary; surface it as a
		// plain diagnostic rather than aborting the pipeline.
		ctx.Diagnostics.Push(fatalToDiagnostic(err))
	}
	for _, err := range ctx.Diagnostics.Errors[before:] {
		err.File = ctx.FilePath
	}

	ctx.TypeMap = analyzer.TypeMap
	return ctx
}
