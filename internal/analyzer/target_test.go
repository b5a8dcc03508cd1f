package analyzer_test

import (
	"strings"
	"testing"

	"github.com/hdltools/vhdlang/internal/analyzer"
	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/diagnostics"
	"github.com/hdltools/vhdlang/internal/lexer"
	"github.com/hdltools/vhdlang/internal/parser"
	"github.com/hdltools/vhdlang/internal/symbols"
)

// testSetup builds a scope with the objects the target scenarios use.
type testSetup struct {
	arena   *symbols.Arena
	scope   *symbols.Scope
	integer *symbols.TypeEnt
	vector  *symbols.TypeEnt
	rec     *symbols.TypeEnt
}

func newTestSetup() *testSetup {
	arena := symbols.NewArena()
	scope := symbols.NewScope(nil)

	integer := arena.NewScalarType("integer")
	scope.Define("integer", integer.Id)
	vector := arena.NewArrayType("integer_vector", integer.Id)
	scope.Define("integer_vector", vector.Id)
	rec := arena.NewRecordType("rec_t", []symbols.RecordField{
		{Name: "elem", Type: vector.Id},
		{Name: "count", Type: integer.Id},
	})
	scope.Define("rec_t", rec.Id)

	return &testSetup{arena: arena, scope: scope, integer: integer, vector: vector, rec: rec}
}

func (s *testSetup) object(name string, class symbols.ObjectClass, subtype symbols.EntityId) {
	obj := s.arena.NewObject(name, class, subtype)
	s.scope.Define(name, obj.Id)
}

func (s *testSetup) port(name string, class symbols.ObjectClass, mode symbols.Mode, subtype symbols.EntityId) {
	obj := s.arena.NewInterfaceObject(name, class, mode, subtype)
	s.scope.Define(name, obj.Id)
}

func parseTarget(t *testing.T, input string) ast.Target {
	t.Helper()
	p := parser.New(parser.NewStream(lexer.New(input).Tokenize()))
	target, err := p.ParseTarget()
	if err != nil {
		t.Fatalf("ParseTarget(%q): %v", input, err)
	}
	return target
}

func resolve(t *testing.T, s *testSetup, input string, at analyzer.AssignmentType) (*symbols.TypeEnt, *diagnostics.List) {
	t.Helper()
	var diags diagnostics.List
	a := analyzer.New(s.arena)
	typ, err := a.ResolveTarget(s.scope, parseTarget(t, input), at, &diags)
	if err != nil {
		t.Fatalf("ResolveTarget(%q): unexpected fatal %v", input, err)
	}
	return typ, &diags
}

func TestConstantTargetEmitsOnlyWritabilityError(t *testing.T) {
	s := newTestSetup()
	s.object("c", symbols.Constant, s.integer.Id)

	typ, diags := resolve(t, s, "c", analyzer.SignalAssignment)

	if len(diags.Errors) != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1: %v", len(diags.Errors), diags.Errors)
	}
	want := "constant 'c' may not be the target of an assignment"
	if got := diags.Errors[0].Error(); !strings.Contains(got, want) {
		t.Errorf("diagnostic %q does not contain %q", got, want)
	}
	if typ != s.integer {
		t.Errorf("returned type %v, want integer", typ)
	}
}

func TestSignalTargetOfVariableAssignment(t *testing.T) {
	s := newTestSetup()
	s.object("s", symbols.Signal, s.integer.Id)

	typ, diags := resolve(t, s, "s", analyzer.VariableAssignment)

	if len(diags.Errors) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags.Errors), diags.Errors)
	}
	want := "signal 's' may not be the target of a variable assignment"
	if got := diags.Errors[0].Error(); !strings.Contains(got, want) {
		t.Errorf("diagnostic %q does not contain %q", got, want)
	}
	if typ != s.integer {
		t.Errorf("returned type %v, want integer", typ)
	}
}

func TestVariableTargetOfSignalAssignment(t *testing.T) {
	s := newTestSetup()
	s.object("v", symbols.Variable, s.integer.Id)

	_, diags := resolve(t, s, "v", analyzer.SignalAssignment)

	want := "variable 'v' may not be the target of a signal assignment"
	if len(diags.Errors) != 1 || !strings.Contains(diags.Errors[0].Error(), want) {
		t.Errorf("diagnostics = %v, want one containing %q", diags.Errors, want)
	}
}

func TestLegalTargetsEmitNoDiagnostics(t *testing.T) {
	s := newTestSetup()
	s.object("s", symbols.Signal, s.integer.Id)
	s.object("v", symbols.Variable, s.integer.Id)
	s.object("sv", symbols.SharedVariable, s.integer.Id)

	for _, tc := range []struct {
		target string
		at     analyzer.AssignmentType
	}{
		{"s", analyzer.SignalAssignment},
		{"v", analyzer.VariableAssignment},
		{"sv", analyzer.VariableAssignment},
	} {
		typ, diags := resolve(t, s, tc.target, tc.at)
		if len(diags.Errors) != 0 {
			t.Errorf("%s: unexpected diagnostics %v", tc.target, diags.Errors)
		}
		if typ != s.integer {
			t.Errorf("%s: returned type %v, want integer", tc.target, typ)
		}
	}
}

func TestInputPortIsNotWritable(t *testing.T) {
	s := newTestSetup()
	s.port("p", symbols.Signal, symbols.In, s.integer.Id)

	typ, diags := resolve(t, s, "p", analyzer.SignalAssignment)

	if len(diags.Errors) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags.Errors), diags.Errors)
	}
	want := "interface signal 'p' may not be the target of an assignment"
	if got := diags.Errors[0].Error(); !strings.Contains(got, want) {
		t.Errorf("diagnostic %q does not contain %q", got, want)
	}
	if typ != s.integer {
		t.Errorf("returned type %v, want integer", typ)
	}
}

func TestOutputPortIsWritable(t *testing.T) {
	s := newTestSetup()
	s.port("q", symbols.Signal, symbols.Out, s.integer.Id)

	typ, diags := resolve(t, s, "q", analyzer.SignalAssignment)
	if len(diags.Errors) != 0 {
		t.Errorf("unexpected diagnostics %v", diags.Errors)
	}
	if typ != s.integer {
		t.Errorf("returned type %v, want integer", typ)
	}
}

func TestSelectedAndIndexedTargets(t *testing.T) {
	s := newTestSetup()
	s.object("r", symbols.Signal, s.rec.Id)

	typ, diags := resolve(t, s, "r.elem", analyzer.SignalAssignment)
	if len(diags.Errors) != 0 {
		t.Fatalf("r.elem: unexpected diagnostics %v", diags.Errors)
	}
	if typ != s.vector {
		t.Errorf("r.elem resolved to %v, want integer_vector", typ)
	}

	typ, diags = resolve(t, s, "r.elem(0)", analyzer.SignalAssignment)
	if len(diags.Errors) != 0 {
		t.Fatalf("r.elem(0): unexpected diagnostics %v", diags.Errors)
	}
	if typ != s.integer {
		t.Errorf("r.elem(0) resolved to %v, want integer", typ)
	}

	typ, diags = resolve(t, s, "r.elem(3 downto 0)", analyzer.SignalAssignment)
	if len(diags.Errors) != 0 {
		t.Fatalf("slice: unexpected diagnostics %v", diags.Errors)
	}
	if typ != s.vector {
		t.Errorf("slice resolved to %v, want integer_vector", typ)
	}
}

func TestMissingRecordElement(t *testing.T) {
	s := newTestSetup()
	s.object("r", symbols.Signal, s.rec.Id)

	typ, diags := resolve(t, s, "r.missing", analyzer.SignalAssignment)
	if typ != nil {
		t.Errorf("returned type %v for missing element", typ)
	}
	if len(diags.Errors) != 1 || !strings.Contains(diags.Errors[0].Error(), "no element 'missing'") {
		t.Errorf("diagnostics = %v", diags.Errors)
	}
}

func TestNonObjectTargetIsInvalid(t *testing.T) {
	s := newTestSetup()

	typ, diags := resolve(t, s, "integer", analyzer.SignalAssignment)
	if typ != nil {
		t.Errorf("returned type %v for a type name target", typ)
	}
	if len(diags.Errors) != 1 || !strings.Contains(diags.Errors[0].Error(), "Invalid assignment target") {
		t.Errorf("diagnostics = %v", diags.Errors)
	}
}

func TestUndeclaredTargetEmitsNoExtraDiagnostic(t *testing.T) {
	s := newTestSetup()

	typ, diags := resolve(t, s, "ghost", analyzer.SignalAssignment)
	if typ != nil {
		t.Errorf("returned type %v for an undeclared target", typ)
	}
	if len(diags.Errors) != 1 {
		t.Fatalf("got %d diagnostics, want exactly the resolution error: %v", len(diags.Errors), diags.Errors)
	}
	if !strings.Contains(diags.Errors[0].Error(), "no declaration of 'ghost'") {
		t.Errorf("diagnostic = %v", diags.Errors[0])
	}
}

func TestAggregateTargetHasNoTypeHere(t *testing.T) {
	s := newTestSetup()
	s.object("a", symbols.Variable, s.integer.Id)

	typ, diags := resolve(t, s, "(a, b)", analyzer.VariableAssignment)
	if typ != nil {
		t.Errorf("aggregate target returned type %v", typ)
	}
	// 'a' resolves, 'b' is undeclared.
	if len(diags.Errors) != 1 || !strings.Contains(diags.Errors[0].Error(), "no declaration of 'b'") {
		t.Errorf("diagnostics = %v", diags.Errors)
	}
}

func TestFatalIsFlushedToDiagnostics(t *testing.T) {
	s := newTestSetup()
	// A scope entry pointing at an id the arena never issued.
	s.scope.Define("ghost", symbols.EntityId(4096))

	var diags diagnostics.List
	a := analyzer.New(s.arena)
	typ, err := a.ResolveTarget(s.scope, parseTarget(t, "ghost"), analyzer.SignalAssignment, &diags)
	if err != nil {
		t.Fatalf("fatal should be absorbed at the resolver boundary, got %v", err)
	}
	if typ != nil {
		t.Errorf("returned type %v after fatal", typ)
	}
	if len(diags.Errors) != 1 || !strings.Contains(diags.Errors[0].Error(), "corrupt entity") {
		t.Errorf("diagnostics = %v", diags.Errors)
	}
}

func TestResolutionIsIdempotent(t *testing.T) {
	s := newTestSetup()
	s.object("c", symbols.Constant, s.integer.Id)

	typ1, diags1 := resolve(t, s, "c", analyzer.SignalAssignment)
	typ2, diags2 := resolve(t, s, "c", analyzer.SignalAssignment)

	if typ1 != typ2 {
		t.Errorf("types differ between runs: %v vs %v", typ1, typ2)
	}
	if len(diags1.Errors) != len(diags2.Errors) {
		t.Fatalf("diagnostic counts differ: %d vs %d", len(diags1.Errors), len(diags2.Errors))
	}
	for i := range diags1.Errors {
		if diags1.Errors[i].Error() != diags2.Errors[i].Error() {
			t.Errorf("diagnostic %d differs: %q vs %q", i, diags1.Errors[i], diags2.Errors[i])
		}
	}
}
