package parse

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		mode normalizeMode
		want string
	}{
		{"soft break removed", "a\\\nb", simpleMode, "ab"},
		{"soft break removed text", "a\\\nb", textMode, "ab"},
		{"soft break crlf", "a\\\r\nb", simpleMode, "ab"},
		{"hard break collapses", "a\nb", simpleMode, "a b"},
		{"hard break kept", "a\nb", textMode, "a\nb"},
		{"crlf one break", "a\r\nb", textMode, "a\nb"},
		{"space run collapses", "a  \t b", simpleMode, "a b"},
		{"space run collapses text", "a  \t b", textMode, "a b"},
		{"mixed run simple", "a \n\t b", simpleMode, "a b"},
		{"escaped bracket", `a\]b`, simpleMode, "a]b"},
		{"escaped backslash", `a\\b`, simpleMode, `a\b`},
		{"escaped colon", `a\:b`, simpleMode, "a:b"},
		{"trailing run", "ab \n", simpleMode, "ab "},
		{"raw keeps spaces", "a  b", rawMode, "a  b"},
		{"raw resolves escapes", `a\]b`, rawMode, "a]b"},
		{"raw soft break removed", "a\\\nb", rawMode, "ab"},
		{"empty", "", simpleMode, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.in, tt.mode); got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		n    int64
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"+7", 7, true},
		{"-13", -13, true},
		{"", 0, false},
		{"-", 0, false},
		{"1.5", 0, false},
		{"4 ", 0, false},
		{" 4", 0, false},
		{"x", 0, false},
		{"1e3", 0, false},
	}
	for _, tt := range tests {
		n, ok := parseNumber(tt.in)
		if ok != tt.ok || n != tt.n {
			t.Errorf("parseNumber(%q) = (%d, %v), want (%d, %v)", tt.in, n, ok, tt.n, tt.ok)
		}
	}
}

func TestParseReal(t *testing.T) {
	tests := []struct {
		in string
		f  float64
		ok bool
	}{
		{"0", 0, true},
		{"3.5", 3.5, true},
		{"-0.25", -0.25, true},
		{"+6.5", 6.5, true},
		{"7", 7, true},
		{".5", 0, false},
		{"5.", 0, false},
		{"1e3", 0, false},
		{"inf", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		f, ok := parseReal(tt.in)
		if ok != tt.ok || f != tt.f {
			t.Errorf("parseReal(%q) = (%g, %v), want (%g, %v)", tt.in, f, ok, tt.f, tt.ok)
		}
	}
}

func TestSplitCompose(t *testing.T) {
	tests := []struct {
		in   string
		a, b string
		ok   bool
	}{
		{"aa:bb", "aa", "bb", true},
		{":", "", "", true},
		{"aa:bb:cc", "aa", "bb:cc", true},
		{`a\:a:bb`, `a\:a`, "bb", true},
		{`a\:b`, "", "", false},
		{"ab", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		a, b, ok := splitCompose([]byte(tt.in))
		if ok != tt.ok || string(a) != tt.a || string(b) != tt.b {
			t.Errorf("splitCompose(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.in, a, b, ok, tt.a, tt.b, tt.ok)
		}
	}
}

func TestSimpleTextVsText(t *testing.T) {
	// N is simpletext, C is text: the same hard break collapses in
	// one and survives in the other
	col, err := ParseString("(;N[a\nb]C[a\nb])")
	if err != nil {
		t.Fatal(err)
	}
	node := col[0].Nodes[0]
	if got := node.Prop("N").Values[0].Str; got != "a b" {
		t.Errorf("simpletext: got %q, want %q", got, "a b")
	}
	if got := node.Prop("C").Values[0].Str; got != "a\nb" {
		t.Errorf("text: got %q, want %q", got, "a\nb")
	}
}

func TestSoftBreakInValues(t *testing.T) {
	col, err := ParseString("(;N[a\\\nb]C[a\\\nb])")
	if err != nil {
		t.Fatal(err)
	}
	node := col[0].Nodes[0]
	for _, ident := range []string{"N", "C"} {
		if got := node.Prop(ident).Values[0].Str; got != "ab" {
			t.Errorf("%s: got %q, want %q", ident, got, "ab")
		}
	}
}
