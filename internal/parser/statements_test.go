package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/token"
)

func parseFile(t *testing.T, input string) (*ast.DesignFile, int) {
	t.Helper()
	p := newTestParser(t, input)
	file, errs := p.ParseDesignFile()
	return file, len(errs)
}

func TestParseObjectDeclarations(t *testing.T) {
	file, errCount := parseFile(t, `
		signal s1, s2 : std_logic := '0';
		constant width : integer := 8;
		shared variable counter : integer;
		variable v : integer_vector(0 to 3);
	`)
	if errCount != 0 {
		t.Fatalf("got %d parse errors", errCount)
	}
	if len(file.Statements) != 4 {
		t.Fatalf("got %d statements, want 4", len(file.Statements))
	}

	sig := file.Statements[0].(*ast.ObjectDeclaration)
	if sig.Class != token.SIGNAL || len(sig.Idents) != 2 || sig.Init == nil {
		t.Errorf("signal declaration parsed as %+v", sig)
	}

	shared := file.Statements[2].(*ast.ObjectDeclaration)
	if !shared.Shared || shared.Class != token.VARIABLE {
		t.Errorf("shared variable parsed as class=%s shared=%v", shared.Class, shared.Shared)
	}

	v := file.Statements[3].(*ast.ObjectDeclaration)
	if _, ok := v.Subtype.Constraint.(*ast.ArrayConstraint); !ok {
		t.Errorf("variable subtype constraint is %T, want ArrayConstraint", v.Subtype.Constraint)
	}
}

func TestParseAssignmentStatements(t *testing.T) {
	file, errCount := parseFile(t, `
		s <= '1';
		v := v + 1;
		rec.elem(0) <= x"ff";
	`)
	if errCount != 0 {
		t.Fatalf("got %d parse errors", errCount)
	}
	if len(file.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(file.Statements))
	}

	sig := file.Statements[0].(*ast.AssignmentStatement)
	if sig.Op != token.LTE {
		t.Errorf("first statement op = %s, want <=", sig.Op)
	}
	vAssign := file.Statements[1].(*ast.AssignmentStatement)
	if vAssign.Op != token.VARASSIGN {
		t.Errorf("second statement op = %s, want :=", vAssign.Op)
	}

	target := file.Statements[2].(*ast.AssignmentStatement).Target
	want := ast.Target(&ast.IndexedName{
		Prefix: &ast.SelectedSuffix{
			Prefix: id("rec"),
			Suffix: id("elem"),
		},
		Indexes: []ast.Expression{intLit(0)},
	})
	if diff := cmp.Diff(want, target, structural); diff != "" {
		t.Errorf("target mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSliceTarget(t *testing.T) {
	file, errCount := parseFile(t, "v(3 downto 0) := x\"f\";")
	if errCount != 0 {
		t.Fatalf("got %d parse errors", errCount)
	}
	target := file.Statements[0].(*ast.AssignmentStatement).Target
	slice, ok := target.(*ast.SliceName)
	if !ok {
		t.Fatalf("target is %T, want SliceName", target)
	}
	if _, ok := slice.R.(*ast.RangeDiscrete); !ok {
		t.Errorf("slice range is %T, want RangeDiscrete", slice.R)
	}
}

func TestParseAggregateTarget(t *testing.T) {
	file, errCount := parseFile(t, "(a, b) := pair;")
	if errCount != 0 {
		t.Fatalf("got %d parse errors", errCount)
	}
	target := file.Statements[0].(*ast.AssignmentStatement).Target
	agg, ok := target.(*ast.Aggregate)
	if !ok {
		t.Fatalf("target is %T, want Aggregate", target)
	}
	if len(agg.Elements) != 2 {
		t.Errorf("got %d aggregate elements, want 2", len(agg.Elements))
	}
}

func TestParseNamedAggregateTarget(t *testing.T) {
	file, errCount := parseFile(t, "(high => h, low => l, others => '0') <= word;")
	if errCount != 0 {
		t.Fatalf("got %d parse errors", errCount)
	}
	agg := file.Statements[0].(*ast.AssignmentStatement).Target.(*ast.Aggregate)
	if len(agg.Elements) != 3 {
		t.Fatalf("got %d aggregate elements, want 3", len(agg.Elements))
	}
	if len(agg.Elements[0].Choices) != 1 {
		t.Errorf("first association has no choice")
	}
	others, ok := agg.Elements[2].Choices[0].(*ast.Identifier)
	if !ok || others.Value != "others" {
		t.Errorf("others choice parsed as %v", agg.Elements[2].Choices[0])
	}
}

func TestParserResynchronizesAfterError(t *testing.T) {
	file, errCount := parseFile(t, `
		signal s : ;
		s <= '1';
	`)
	if errCount != 1 {
		t.Fatalf("got %d parse errors, want 1", errCount)
	}
	if len(file.Statements) != 1 {
		t.Fatalf("got %d statements after resync, want 1", len(file.Statements))
	}
	if _, ok := file.Statements[0].(*ast.AssignmentStatement); !ok {
		t.Errorf("surviving statement is %T, want AssignmentStatement", file.Statements[0])
	}
}
