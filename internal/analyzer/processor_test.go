package analyzer_test

import (
	"strings"
	"testing"

	"github.com/hdltools/vhdlang/internal/analyzer"
	"github.com/hdltools/vhdlang/internal/lexer"
	"github.com/hdltools/vhdlang/internal/parser"
	"github.com/hdltools/vhdlang/internal/pipeline"
)

func runPipeline(source string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(source)
	return pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
	).Run(ctx)
}

func TestPipelineCleanDesign(t *testing.T) {
	ctx := runPipeline(`
		signal s : std_logic;
		variable v : integer := 0;
		s <= '1';
		v := v + 1;
	`)
	if len(ctx.Errors()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", ctx.Errors())
	}
	if len(ctx.TypeMap) != 2 {
		t.Errorf("TypeMap has %d entries, want 2", len(ctx.TypeMap))
	}
}

func TestPipelineConstantAssignment(t *testing.T) {
	ctx := runPipeline(`
		constant c : integer := 0;
		c <= 1;
	`)
	errs := ctx.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(errs), errs)
	}
	want := "constant 'c' may not be the target of an assignment"
	if !strings.Contains(errs[0].Error(), want) {
		t.Errorf("diagnostic %q does not contain %q", errs[0].Error(), want)
	}

	// The target type is still recorded so the right-hand side stays
	// checkable.
	var found bool
	for _, typ := range ctx.TypeMap {
		if typ != nil && typ.Designator == "integer" {
			found = true
		}
	}
	if !found {
		t.Error("constant target type was not recorded")
	}
}

func TestPipelineSignalVariableMismatch(t *testing.T) {
	ctx := runPipeline(`
		signal s : std_logic;
		s := '1';
	`)
	errs := ctx.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(errs), errs)
	}
	want := "signal 's' may not be the target of a variable assignment"
	if !strings.Contains(errs[0].Error(), want) {
		t.Errorf("diagnostic %q does not contain %q", errs[0].Error(), want)
	}
}

func TestPipelineUndeclaredType(t *testing.T) {
	ctx := runPipeline(`
		signal s : mystery_t;
		s <= '1';
	`)
	errs := ctx.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Error(), "no declaration of 'mystery_t'") {
		t.Errorf("diagnostic = %v", errs[0])
	}
}

func TestPipelineParseErrorDoesNotStopAnalysis(t *testing.T) {
	ctx := runPipeline(`
		signal s : ;
		constant c : integer := 0;
		c := 1;
	`)
	errs := ctx.Errors()
	if len(errs) != 2 {
		t.Fatalf("got %d diagnostics, want parse + semantic: %v", len(errs), errs)
	}
	if !strings.Contains(errs[1].Error(), "constant 'c' may not be the target of an assignment") {
		t.Errorf("semantic diagnostic missing, got %v", errs)
	}
}
