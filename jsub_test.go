package jsub

import "testing"

func TestKeywordLexemes(t *testing.T) {
	for lexeme, tt := range Keywords {
		if tt == Type {
			continue
		}
		if tt.Lexeme() != lexeme {
			t.Errorf("expected canonical lexeme of %s to be %q, is %q", tt, lexeme, tt.Lexeme())
		}
	}
	if Ident.Lexeme() != "" || Type.Lexeme() != "int" || DQuote.Lexeme() != `"` {
		t.Errorf("unexpected lexemes for literal kinds")
	}
}

func TestTokTypeNames(t *testing.T) {
	for tt := NoToken; tt < maxTokType; tt++ {
		if tt.String() == "" {
			t.Errorf("token kind %d has no name", tt)
		}
	}
	if TokType(MaxTokType).String() != "<illegal>" {
		t.Errorf("expected out of range kind to be illegal")
	}
	if !Num.IsLiteral() || Semicolon.IsLiteral() {
		t.Errorf("IsLiteral broken")
	}
}

func TestSpan(t *testing.T) {
	s := Span{3, 5}.Extend(Span{1, 4})
	if s.From() != 1 || s.To() != 5 || s.Len() != 4 {
		t.Errorf("expected extended span to be (1…5), is %s", s)
	}
	tok := MakeToken(Ident, "x", Span{0, 1})
	if tok.String() != `ID("x")` || MakeToken(Semicolon, "", Span{}).String() != "SEMICOLON" {
		t.Errorf("unexpected token strings %v", tok)
	}
}
