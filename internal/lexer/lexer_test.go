package lexer

import (
	"testing"

	"github.com/funvibe/funbit/pkg/funbit"
	"github.com/hdltools/vhdlang/internal/token"
)

func kinds(tokens []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestTokenizeSubtypeIndication(t *testing.T) {
	tokens := New("(elem resolve) rec_t(0 to 1)").Tokenize()
	want := []token.TokenType{
		token.LEFTPAR, token.IDENT, token.IDENT, token.RIGHTPAR,
		token.IDENT, token.LEFTPAR, token.ABSTRACT_LIT, token.TO,
		token.ABSTRACT_LIT, token.RIGHTPAR, token.EOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestIdentifiersAreCaseFolded(t *testing.T) {
	tokens := New("Std_Logic STD_LOGIC std_logic").Tokenize()
	for _, tok := range tokens[:3] {
		if tok.Type != token.IDENT {
			t.Fatalf("token %v is not an identifier", tok)
		}
		if tok.Literal != "std_logic" {
			t.Errorf("identifier %q folded to %q", tok.Lexeme, tok.Literal)
		}
	}
}

func TestKeywordsAreRecognizedCaseInsensitively(t *testing.T) {
	tokens := New("DOWNTO downto Range OPEN").Tokenize()
	want := []token.TokenType{token.DOWNTO, token.DOWNTO, token.RANGE, token.OPEN, token.EOF}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d = %s, want %s", i, tokens[i].Type, w)
		}
	}
}

func TestTickDisambiguation(t *testing.T) {
	// After a name a tick is an attribute tick; elsewhere it starts a
	// character literal.
	tokens := New("obj'subtype").Tokenize()
	want := []token.TokenType{token.IDENT, token.TICK, token.SUBTYPE, token.EOF}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Fatalf("obj'subtype: token %d = %s, want %s", i, tokens[i].Type, w)
		}
	}

	tokens = New("s <= '1'").Tokenize()
	if tokens[2].Type != token.CHAR_LIT {
		t.Fatalf("'1' lexed as %s, want CHAR_LIT", tokens[2].Type)
	}
	if tokens[2].Literal != '1' {
		t.Errorf("character literal value = %v, want '1'", tokens[2].Literal)
	}

	tokens = New("v(0)'range").Tokenize()
	if tokens[4].Type != token.TICK {
		t.Errorf("tick after ')' lexed as %s, want TICK", tokens[4].Type)
	}
}

func TestOperators(t *testing.T) {
	tokens := New("<= := => /= ** <> < >").Tokenize()
	want := []token.TokenType{
		token.LTE, token.VARASSIGN, token.ARROW, token.NEQ,
		token.POW, token.BOX, token.LT, token.GT, token.EOF,
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d = %s, want %s", i, tokens[i].Type, w)
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	tokens := New("a -- line comment\n/* block\ncomment */ b").Tokenize()
	want := []token.TokenType{token.IDENT, token.IDENT, token.EOF}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got tokens %v", got)
	}
}

func TestAbstractLiterals(t *testing.T) {
	tokens := New("42 1_000").Tokenize()
	if v, _ := tokens[0].Literal.(int64); v != 42 {
		t.Errorf("42 lexed with value %v", tokens[0].Literal)
	}
	if v, _ := tokens[1].Literal.(int64); v != 1000 {
		t.Errorf("1_000 lexed with value %v", tokens[1].Literal)
	}
}

func TestStringLiteralWithEscapedQuote(t *testing.T) {
	tokens := New(`"say ""hi"""`).Tokenize()
	if tokens[0].Type != token.STRING_LIT {
		t.Fatalf("lexed as %s", tokens[0].Type)
	}
	if tokens[0].Literal != `say "hi"` {
		t.Errorf("string value = %q", tokens[0].Literal)
	}
}

func TestBitStringLiterals(t *testing.T) {
	cases := []struct {
		input string
		bits  uint
	}{
		{`b"1010"`, 4},
		{`x"f_f"`, 8},
		{`o"77"`, 6},
		{`8x"f"`, 8},
		{`12x"f_f"`, 12},
		{`4x"ff"`, 4},
	}
	for _, tc := range cases {
		tokens := New(tc.input).Tokenize()
		if tokens[0].Type != token.BIT_STRING {
			t.Errorf("%s lexed as %s", tc.input, tokens[0].Type)
			continue
		}
		bs, ok := tokens[0].Literal.(*funbit.BitString)
		if !ok {
			t.Errorf("%s carries no bitstring value", tc.input)
			continue
		}
		if bs.Length() != tc.bits {
			t.Errorf("%s has %d bits, want %d", tc.input, bs.Length(), tc.bits)
		}
	}
}

func TestExtendedIdentifier(t *testing.T) {
	tokens := New(`\Weird Name\`).Tokenize()
	if tokens[0].Type != token.IDENT {
		t.Fatalf("extended identifier lexed as %s", tokens[0].Type)
	}
}

func TestSpanOffsets(t *testing.T) {
	input := "foo(bar)"
	tokens := New(input).Tokenize()
	if got := input[tokens[0].Span.Start:tokens[0].Span.End]; got != "foo" {
		t.Errorf("first token spans %q", got)
	}
	if got := input[tokens[2].Span.Start:tokens[2].Span.End]; got != "bar" {
		t.Errorf("third token spans %q", got)
	}
}

func TestSpanCombine(t *testing.T) {
	a := token.Span{Start: 0, End: 3, Line: 1, Column: 1}
	b := token.Span{Start: 10, End: 14, Line: 2, Column: 4}
	combined := a.Combine(b)
	if combined.Start != 0 || combined.End != 14 {
		t.Errorf("Combine = %+v", combined)
	}
	if reversed := b.Combine(a); reversed != combined {
		t.Errorf("Combine is not symmetric: %+v vs %+v", reversed, combined)
	}
}
