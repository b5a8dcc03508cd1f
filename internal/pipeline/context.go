package pipeline

import (
	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/symbols"
	"github.com/hdltools/vhdlang/internal/token"
)

// PipelineContext holds all the data passed between pipeline stages.
type PipelineContext struct {
	SourceCode string
	FilePath   string // Path to the source file (if any)
	Tokens     []token.Token
	AstRoot    *ast.DesignFile
	Arena      *symbols.Arena
	Scope      *symbols.Scope
	TypeMap    map[ast.Node]*symbols.TypeEnt // resolved target types per statement

	Diagnostics diagnostics.List
}

// NewPipelineContext creates and initializes a new PipelineContext.
func NewPipelineContext(source string) *PipelineContext {
	arena := symbols.NewArena()
	return &PipelineContext{
		SourceCode: source,
		Arena:      arena,
		Scope:      symbols.NewScope(nil),
		TypeMap:    make(map[ast.Node]*symbols.TypeEnt),
	}
}

// Errors returns the collected diagnostics.
func (ctx *PipelineContext) Errors() []*diagnostics.DiagnosticError {
	return ctx.Diagnostics.Errors
}
