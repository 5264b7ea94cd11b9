package lexer

import "testing"

func TestNextToken_Operators(t *testing.T) {
	input := `+ - * / % = ( ) { } , == != <= >= < >`
	want := []TokenType{
		PLUS, MINUS, ASTERISK, SLASH, PERCENT, ASSIGN,
		LPAREN, RPAREN, LBRACE, RBRACE, COMMA,
		EQ, NOT_EQ, LESS_EQ, GREATER_EQ, LESS, GREATER, EOF,
	}

	l := New(input)
	for i, wantType := range want {
		tok := l.NextToken()
		if tok.Type != wantType {
			t.Fatalf("token %d: want %s, got %s (%q)", i, wantType, tok.Type, tok.Literal)
		}
	}
}

func TestNextToken_Keywords(t *testing.T) {
	input := "եթե հպ մինչև գործ տուր այո ոչ հեչ և կամ չի"
	want := []TokenType{IF, ELSE, WHILE, FUNCTION, RETURN, TRUE, FALSE, NULL, AND, OR, NOT, EOF}

	l := New(input)
	for i, wantType := range want {
		tok := l.NextToken()
		if tok.Type != wantType {
			t.Fatalf("token %d: want %s, got %s (%q)", i, wantType, tok.Type, tok.Literal)
		}
	}
}

func TestNextToken_IdentifierIsNotKeyword(t *testing.T) {
	l := New("արև")
	tok := l.NextToken()
	if tok.Type != IDENT || tok.Literal != "արև" {
		t.Fatalf("want IDENT %q, got %s %q", "արև", tok.Type, tok.Literal)
	}
}

func TestNextToken_Number(t *testing.T) {
	for _, src := range []string{"123", "3.14", "0.5"} {
		l := New(src)
		tok := l.NextToken()
		if tok.Type != NUMBER || tok.Literal != src {
			t.Fatalf("source %q: want NUMBER %q, got %s %q", src, src, tok.Type, tok.Literal)
		}
	}
}

func TestNextToken_StringEscapes(t *testing.T) {
	l := New(`"ա\nբ\tգ\\դ\"ե"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("want STRING, got %s", tok.Type)
	}
	want := "ա\nբ\tգ\\դ\"ե"
	if tok.Literal != want {
		t.Fatalf("want %q, got %q", want, tok.Literal)
	}
}

func TestNextToken_UnterminatedStringIsSilentlyAccepted(t *testing.T) {
	l := New(`"մնացել`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("want STRING, got %s", tok.Type)
	}
	if tok.Literal != "մնացել" {
		t.Fatalf("want %q, got %q", "մնացել", tok.Literal)
	}
	if eof := l.NextToken(); eof.Type != EOF {
		t.Fatalf("want EOF after unterminated string, got %s", eof.Type)
	}
	if len(l.Errors()) != 0 {
		t.Fatalf("unterminated string must not raise a lexical error, got %v", l.Errors())
	}
}

func TestNextToken_InvalidStringCharacterIsALexError(t *testing.T) {
	l := New(`"abc"`) // Latin letters are not in the string allow-list
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatalf("expected a lexical error for Latin letters in a string literal")
	}
}

func TestNextToken_Comment(t *testing.T) {
	l := New("ա = 1 # this is a comment\nբ = 2")
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	want := []TokenType{IDENT, ASSIGN, NUMBER, NEWLINE, IDENT, ASSIGN, NUMBER, EOF}
	if len(types) != len(want) {
		t.Fatalf("want %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("token %d: want %s, got %s", i, want[i], types[i])
		}
	}
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("want ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("want 1 lexical error, got %d", len(l.Errors()))
	}
}

func TestTokenize_EndsInExactlyOneEOF(t *testing.T) {
	tokens := New("գրէ(\"Բարեւ\")\n").Tokenize()

	eofCount := 0
	for i, tok := range tokens {
		if tok.Type == EOF {
			eofCount++
			if i != len(tokens)-1 {
				t.Fatalf("EOF token must be last, found at index %d of %d", i, len(tokens))
			}
		}
	}
	if eofCount != 1 {
		t.Fatalf("want exactly 1 EOF token, got %d", eofCount)
	}
}

func TestIsArmenianLetter(t *testing.T) {
	cases := map[rune]bool{
		'ա': true,
		'Ֆ': true,
		'a': false,
		'1': false,
		' ': false,
	}
	for r, want := range cases {
		if got := IsArmenianLetter(r); got != want {
			t.Errorf("IsArmenianLetter(%q) = %v, want %v", r, got, want)
		}
	}
}
