package token

import (
	"testing"
)

func TestSkipAndPeek(t *testing.T) {
	tests := []struct {
		name string
		in   string
		c    byte
		ok   bool
		cur  int
	}{
		{"no space", "(;", '(', true, 0},
		{"leading space", "  \t(", '(', true, 3},
		{"newlines", "\n\r\n;", ';', true, 3},
		{"only space", "   ", 0, false, 3},
		{"empty", "", 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSource([]byte(tt.in))
			c, ok := s.SkipAndPeek()
			if ok != tt.ok || c != tt.c {
				t.Errorf("got (%q, %v), want (%q, %v)", c, ok, tt.c, tt.ok)
			}
			if s.Cur() != tt.cur {
				t.Errorf("cursor at %d, want %d", s.Cur(), tt.cur)
			}
		})
	}
}

func TestMatchRun(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		class Class
		off   int
		want  string
	}{
		{"upper run", "ABc[", UpperRun, 0, "AB"},
		{"upper run stops at lower", "aB", UpperRun, 0, ""},
		{"letter run", "aBcD[", LetterRun, 0, "aBcD"},
		{"offset", "xxAB", UpperRun, 2, "AB"},
		{"no skip", " AB", UpperRun, 0, ""},
		{"past end", "AB", UpperRun, 5, ""},
		{"space run", " \t\n;", Space, 0, " \t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(NewSource([]byte(tt.in)).MatchRun(tt.class, tt.off))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBracketBody(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
		cur  int
	}{
		{"simple", "[aa]", "aa", true, 4},
		{"empty", "[]", "", true, 2},
		{"escaped close", `[a\]b]`, `a\]b`, true, 6},
		{"escaped backslash", `[a\\]`, `a\\`, true, 5},
		{"unterminated", "[abc", "", false, 4},
		{"unterminated escape", `[abc\]`, "", false, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSource([]byte(tt.in))
			got, ok := s.BracketBody()
			if ok != tt.ok || string(got) != tt.want {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
			if s.Cur() != tt.cur {
				t.Errorf("cursor at %d, want %d", s.Cur(), tt.cur)
			}
		})
	}
}

func TestLineCol(t *testing.T) {
	doc := NewDoc([]byte("(;FF[4]\n;B[aa]\n)"))
	tests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{6, 0, 6},
		{8, 1, 0},
		{13, 1, 5},
		{15, 2, 0},
	}
	for _, tt := range tests {
		l, c := doc.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("LineCol(%d) = (%d, %d), want (%d, %d)", tt.off, l, c, tt.line, tt.col)
		}
	}
}

func TestPosContext(t *testing.T) {
	doc := NewDoc([]byte("0123456789abcdefghijklmnop"))
	if got := string(doc.Context(0)); got != "0123456789" {
		t.Errorf("Context(0) = %q", got)
	}
	if got := string(doc.Context(12)); got != "23456789abcdefghijkl" {
		t.Errorf("Context(12) = %q", got)
	}
}
