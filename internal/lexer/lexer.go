package lexer

import (
	"strconv"
	"strings"

	"github.com/funvibe/funbit/pkg/funbit"
	"github.com/hdltools/vhdlang/internal/token"
)

// Lexer turns VHDL source text into tokens. Identifiers are case-folded
// to lower case; reserved words become keyword tokens.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number

	// prevType decides whether a tick is an attribute tick or starts a
	// character literal (after a name or closing paren it is an attribute).
	prevType token.TokenType
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) peekCharAt(n int) byte {
	if l.readPosition+n-1 >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition+n-1]
}

// Tokenize lexes the whole input into a token vector ending in EOF.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespaceAndComments()

	start := l.position
	startLine := l.line
	startColumn := l.column

	switch l.ch {
	case '(':
		tok = l.newToken(token.LEFTPAR)
	case ')':
		tok = l.newToken(token.RIGHTPAR)
	case '[':
		tok = l.newToken(token.LBRACKET)
	case ']':
		tok = l.newToken(token.RBRACKET)
	case ',':
		tok = l.newToken(token.COMMA)
	case '.':
		tok = l.newToken(token.DOT)
	case ';':
		tok = l.newToken(token.SEMICOLON)
	case '|':
		tok = l.newToken(token.BAR)
	case '&':
		tok = l.newToken(token.CONCAT)
	case '+':
		tok = l.newToken(token.PLUS)
	case '-':
		tok = l.newToken(token.MINUS)
	case ':':
		if l.peekChar() == '=' {
			tok = l.newTwoCharToken(token.VARASSIGN)
		} else {
			tok = l.newToken(token.COLON)
		}
	case '=':
		if l.peekChar() == '>' {
			tok = l.newTwoCharToken(token.ARROW)
		} else {
			tok = l.newToken(token.EQ)
		}
	case '/':
		if l.peekChar() == '=' {
			tok = l.newTwoCharToken(token.NEQ)
		} else {
			tok = l.newToken(token.DIV)
		}
	case '*':
		if l.peekChar() == '*' {
			tok = l.newTwoCharToken(token.POW)
		} else {
			tok = l.newToken(token.TIMES)
		}
	case '<':
		switch l.peekChar() {
		case '=':
			tok = l.newTwoCharToken(token.LTE)
		case '>':
			tok = l.newTwoCharToken(token.BOX)
		default:
			tok = l.newToken(token.LT)
		}
	case '>':
		if l.peekChar() == '=' {
			tok = l.newTwoCharToken(token.GTE)
		} else {
			tok = l.newToken(token.GT)
		}
	case '\'':
		tok = l.readTickOrCharacter()
	case '"':
		// Consumes through the closing quote itself.
		tok = l.readStringLiteral()
		l.prevType = tok.Type
		return tok
	case '\\':
		tok = l.readExtendedIdentifier()
		l.prevType = tok.Type
		return tok
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Span: l.spanFrom(start, startLine, startColumn)}
		l.prevType = tok.Type
		return tok
	default:
		switch {
		case isDigit(l.ch):
			tok = l.readNumberOrBitString()
		case isLetter(l.ch):
			tok = l.readIdentifierOrBitString()
		default:
			tok = l.newToken(token.ILLEGAL)
		}
		l.prevType = tok.Type
		return tok
	}

	l.readChar()
	l.prevType = tok.Type
	return tok
}

func (l *Lexer) newToken(tt token.TokenType) token.Token {
	return token.Token{
		Type:   tt,
		Lexeme: string(l.ch),
		Span:   token.Span{Start: l.position, End: l.position + 1, Line: l.line, Column: l.column},
	}
}

func (l *Lexer) newTwoCharToken(tt token.TokenType) token.Token {
	start, line, col := l.position, l.line, l.column
	ch := l.ch
	l.readChar()
	lexeme := string(ch) + string(l.ch)
	return token.Token{
		Type:   tt,
		Lexeme: lexeme,
		Span:   token.Span{Start: start, End: start + 2, Line: line, Column: col},
	}
}

func (l *Lexer) spanFrom(start, line, column int) token.Span {
	return token.Span{Start: start, End: l.position, Line: line, Column: column}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		case l.ch == '-' && l.peekChar() == '-':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			for l.ch != 0 && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar()
				l.readChar()
			}
		default:
			return
		}
	}
}

// readTickOrCharacter disambiguates attribute ticks from character
// literals: a tick directly after a name, closing bracket or `all`
// is an attribute tick.
func (l *Lexer) readTickOrCharacter() token.Token {
	start, line, col := l.position, l.line, l.column

	afterName := l.prevType == token.IDENT || l.prevType == token.RIGHTPAR ||
		l.prevType == token.RBRACKET || l.prevType == token.ALL
	if !afterName && l.peekChar() != 0 && l.peekCharAt(2) == '\'' {
		ch := l.peekChar()
		l.readChar() // the character
		l.readChar() // closing tick
		lexeme := l.input[start : l.position+1]
		return token.Token{
			Type:    token.CHAR_LIT,
			Lexeme:  lexeme,
			Span:    token.Span{Start: start, End: l.position + 1, Line: line, Column: col},
			Literal: rune(ch),
		}
	}
	return token.Token{
		Type:   token.TICK,
		Lexeme: "'",
		Span:   token.Span{Start: start, End: start + 1, Line: line, Column: col},
	}
}

func (l *Lexer) readStringLiteral() token.Token {
	start, line, col := l.position, l.line, l.column
	var sb strings.Builder
	for {
		l.readChar()
		if l.ch == 0 {
			return token.Token{
				Type:   token.ILLEGAL,
				Lexeme: l.input[start:l.position],
				Span:   l.spanFrom(start, line, col),
			}
		}
		if l.ch == '"' {
			if l.peekChar() == '"' {
				sb.WriteByte('"')
				l.readChar()
				continue
			}
			l.readChar()
			break
		}
		sb.WriteByte(l.ch)
	}
	return token.Token{
		Type:    token.STRING_LIT,
		Lexeme:  l.input[start:l.position],
		Span:    l.spanFrom(start, line, col),
		Literal: sb.String(),
	}
}

func (l *Lexer) readExtendedIdentifier() token.Token {
	start, line, col := l.position, l.line, l.column
	for {
		l.readChar()
		if l.ch == 0 {
			return token.Token{
				Type:   token.ILLEGAL,
				Lexeme: l.input[start:l.position],
				Span:   l.spanFrom(start, line, col),
			}
		}
		if l.ch == '\\' {
			if l.peekChar() == '\\' {
				l.readChar()
				continue
			}
			l.readChar()
			break
		}
	}
	lexeme := l.input[start:l.position]
	return token.Token{
		Type:    token.IDENT,
		Lexeme:  lexeme,
		Span:    l.spanFrom(start, line, col),
		Literal: lexeme, // extended identifiers are case-sensitive
	}
}

// readIdentifierOrBitString reads a basic identifier, a reserved word,
// or a bit-string literal such as x"ff" whose base specifier looks like
// an identifier start.
func (l *Lexer) readIdentifierOrBitString() token.Token {
	start, line, col := l.position, l.line, l.column

	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	folded := strings.ToLower(lexeme)

	if l.ch == '"' && isBaseSpecifier(folded) {
		return l.readBitString(start, line, col, 0, folded)
	}

	tt := token.LookupIdent(folded)
	tok := token.Token{
		Type:   tt,
		Lexeme: lexeme,
		Span:   l.spanFrom(start, line, col),
	}
	if tt == token.IDENT {
		tok.Literal = folded
	}
	return tok
}

// readNumberOrBitString reads an abstract literal or a sized bit-string
// literal such as 12x"f_f".
func (l *Lexer) readNumberOrBitString() token.Token {
	start, line, col := l.position, l.line, l.column

	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}

	// Sized bit string: integer followed by a base specifier and a quote.
	if isLetter(l.ch) {
		specStart := l.position
		for isLetter(l.ch) {
			l.readChar()
		}
		spec := strings.ToLower(l.input[specStart:l.position])
		if l.ch == '"' && isBaseSpecifier(spec) {
			size, err := strconv.Atoi(strings.ReplaceAll(l.input[start:specStart], "_", ""))
			if err != nil {
				size = 0
			}
			return l.readBitString(start, line, col, size, spec)
		}
		// Exponent part of an abstract literal (1e6) or a stray suffix.
		if spec != "e" {
			return token.Token{
				Type:   token.ILLEGAL,
				Lexeme: l.input[start:l.position],
				Span:   l.spanFrom(start, line, col),
			}
		}
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}

	// Fractional part.
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}

	lexeme := l.input[start:l.position]
	var value int64
	if parsed, err := strconv.ParseFloat(strings.ReplaceAll(lexeme, "_", ""), 64); err == nil {
		value = int64(parsed)
	}
	return token.Token{
		Type:    token.ABSTRACT_LIT,
		Lexeme:  lexeme,
		Span:    l.spanFrom(start, line, col),
		Literal: value,
	}
}

// readBitString consumes `"digits"` after a base specifier and decodes
// the digits into a funbit bitstring. size 0 means unsized.
func (l *Lexer) readBitString(start, line, col, size int, spec string) token.Token {
	l.readChar() // opening quote
	digitsStart := l.position
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == 0 {
		return token.Token{
			Type:   token.ILLEGAL,
			Lexeme: l.input[start:l.position],
			Span:   l.spanFrom(start, line, col),
		}
	}
	digits := l.input[digitsStart:l.position]
	l.readChar() // closing quote

	lexeme := l.input[start:l.position]
	bits, err := decodeBitString(spec, digits, size)
	if err != nil {
		return token.Token{
			Type:   token.ILLEGAL,
			Lexeme: lexeme,
			Span:   l.spanFrom(start, line, col),
		}
	}
	return token.Token{
		Type:    token.BIT_STRING,
		Lexeme:  lexeme,
		Span:    l.spanFrom(start, line, col),
		Literal: bits,
	}
}

var baseSpecifiers = map[string]int{
	"b": 2, "o": 8, "x": 16,
	"ub": 2, "uo": 8, "ux": 16,
	"sb": 2, "so": 8, "sx": 16,
}

func isBaseSpecifier(s string) bool {
	_, ok := baseSpecifiers[s]
	return ok
}

var digitWidths = map[int]uint{2: 1, 8: 3, 16: 4}

// decodeBitString builds the literal's bit vector digit by digit.
func decodeBitString(spec, digits string, size int) (*funbit.BitString, error) {
	base := baseSpecifiers[spec]
	width := digitWidths[base]

	builder := funbit.NewBuilder()
	if size > 0 {
		// Sized literals are left-padded with zeros up to the requested
		// width before any digits contribute bits.
		natural := uint(len(strings.ReplaceAll(digits, "_", ""))) * width
		if uint(size) > natural {
			funbit.AddInteger(builder, 0, funbit.WithSize(uint(size)-natural))
		}
	}
	for _, d := range digits {
		if d == '_' {
			continue
		}
		value, err := strconv.ParseUint(string(d), base, 8)
		if err != nil {
			return nil, err
		}
		funbit.AddInteger(builder, value, funbit.WithSize(width))
	}
	bs, err := funbit.Build(builder)
	if err != nil {
		return nil, err
	}
	if size > 0 && bs.Length() > uint(size) {
		// Truncate leading bits down to the declared size.
		matcher := funbit.NewMatcher()
		var dropped, kept *funbit.BitString
		funbit.Bitstring(matcher, &dropped, funbit.WithSize(bs.Length()-uint(size)))
		funbit.RestBitstring(matcher, &kept)
		if _, err := funbit.Match(matcher, bs); err != nil {
			return nil, err
		}
		return kept, nil
	}
	return bs, nil
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
