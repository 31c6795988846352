package token

import "testing"

func TestKindCategories(t *testing.T) {
	tests := []struct {
		kind     Kind
		keyword  bool
		operator bool
		literal  bool
		name     string
		spelling string
	}{
		{DEF, true, false, false, "DEF", "def"},
		{TRUE, true, false, true, "TRUE", "True"},
		{NOT, false, true, false, "NOT", "not"},
		{POWER, false, true, false, "POWER", "**"},
		{STRING_LITERAL, false, false, true, "STRING_LITERAL", "string literal"},
		{COLON, false, false, false, "COLON", ":"},
		{EOI, false, false, false, "EOI", "end of input"},
	}
	for _, test := range tests {
		if test.kind.IsKeyword() != test.keyword ||
			test.kind.IsOperator() != test.operator ||
			test.kind.IsLiteral() != test.literal {
			t.Errorf("%s: unexpected category", test.name)
		}
		if got := test.kind.Name(); got != test.name {
			t.Errorf("expected name %s, got %s", test.name, got)
		}
		if got := test.kind.String(); got != test.spelling {
			t.Errorf("%s: expected %q, got %q", test.name, test.spelling, got)
		}
	}
}

func TestKeywordsAreKeywordKinds(t *testing.T) {
	for spelling, kind := range KEYWORDS {
		if !kind.IsKeyword() && !kind.IsOperator() {
			t.Errorf("%s maps to %s", spelling, kind.Name())
		}
		if kind.String() != spelling {
			t.Errorf("%s spells as %q", kind.Name(), kind.String())
		}
	}
}

func TestLocationMove(t *testing.T) {
	loc := NewLocation(1, 1)
	for _, r := range "ab\nc" {
		loc.Move(r)
	}
	if loc.String() != "2:2" {
		t.Fatalf("expected 2:2, got %s", loc)
	}
}

func TestBracketTables(t *testing.T) {
	tests := []struct {
		kind  Kind
		open  bool
		close bool
	}{
		{PAREN_L, true, false},
		{BRACKET_L, true, false},
		{CURLY_L, true, false},
		{PAREN_R, false, true},
		{BRACKET_R, false, true},
		{CURLY_R, false, true},
		{COLON, false, false},
		{NEWLINE, false, false},
	}
	for _, test := range tests {
		if BRACKET_OPEN[test.kind] != test.open || BRACKET_CLOSE[test.kind] != test.close {
			t.Errorf("%s: expected open=%v close=%v", test.kind.Name(), test.open, test.close)
		}
	}
}
