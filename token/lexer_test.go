package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func types(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenType
	}{
		{"", nil},
		{" \t\r\n", nil},
		{"{}", []TokenType{TBeginObject, TEndObject}},
		{"[ ]", []TokenType{TBeginArray, TEndArray}},
		{`{"a": [1, -2.5e3, true, false, null]}`, []TokenType{
			TBeginObject, TString, TNameSep, TBeginArray,
			TNumber, TValueSep, TNumber, TValueSep, TTrue, TValueSep,
			TFalse, TValueSep, TNull, TEndArray, TEndObject,
		}},
		{`"x""y"`, []TokenType{TString, TString}},
		{"0 -0 0.5 1E+2", []TokenType{TNumber, TNumber, TNumber, TNumber}},
	}
	for _, tt := range tests {
		toks, err := Tokenize([]byte(tt.in))
		if err != nil {
			t.Errorf("Tokenize(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, types(toks)); diff != "" {
			t.Errorf("Tokenize(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"tru", ErrLiteral},
		{"nul", ErrLiteral},
		{"@", ErrUnexpected},
		{"'single'", ErrUnexpected},
		{"01", ErrNumberLeadingZero},
		{"-", ErrNumber},
		{"1.", ErrNumber},
		{".5", ErrUnexpected},
		{"1e", ErrNumber},
		{"1e+", ErrNumber},
		{`"abc`, ErrUnterminated},
		{`"a\`, ErrUnterminated},
		{`"\x"`, ErrBadEscape},
		{`"\u12"`, ErrBadUnicode},
		{`"\u12g4"`, ErrBadUnicode},
		{"\"a\nb\"", ErrUnicodeControl},
		{`"\ud800"`, ErrSurrogate},
		{`"\ud800A"`, ErrSurrogate},
		{`"\udc00"`, ErrSurrogate},
		{`"\ud800x"`, ErrSurrogate},
	}
	for _, tt := range tests {
		_, err := Tokenize([]byte(tt.in))
		if !errors.Is(err, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, err, tt.want)
		}
		var terr *TokenizeErr
		if err != nil && !errors.As(err, &terr) {
			t.Errorf("Tokenize(%q) error is %T", tt.in, err)
		}
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"q\"b\\s\/"`, `q"b\s/`},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{`"\u0041\u00e9\u20AC"`, "Aé€"},
		{`"\ud83d\ude00"`, "😀"},
		{`"\uD834\uDD1E"`, "\U0001D11E"},
		{`"raw é 😀"`, "raw é 😀"},
		{`"\u0000"`, "\x00"},
	}
	for _, tt := range tests {
		lx := NewLexer([]byte(tt.in))
		if typ := lx.Scan(); typ != TString {
			t.Errorf("%s: got %s: %v", tt.in, typ, lx.Err())
			continue
		}
		got, err := lx.String()
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.in, got, tt.want)
		}
		if lx.Scan() != TEOF {
			t.Errorf("%s: trailing token %s", tt.in, lx.Type())
		}
	}
}

func TestLexerStickyError(t *testing.T) {
	lx := NewLexer([]byte("[1, @]"))
	var got []TokenType
	for range 6 {
		got = append(got, lx.Scan())
	}
	want := []TokenType{TBeginArray, TNumber, TValueSep, TError, TError, TError}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLexerPositions(t *testing.T) {
	lx := NewLexer([]byte("{\n  \"a\": x}"))
	lx.Scan()
	lx.Scan()
	lx.Scan()
	if lx.Scan() != TError {
		t.Fatalf("got %s", lx.Type())
	}
	var terr *TokenizeErr
	if !errors.As(lx.Err(), &terr) {
		t.Fatalf("got %T", lx.Err())
	}
	if l, c := terr.Pos.LineCol(); l != 1 || c != 7 {
		t.Errorf("line %d col %d, want 1 7", l, c)
	}
	if terr.Pos.I != 9 {
		t.Errorf("offset %d", terr.Pos.I)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    Number
		wantErr bool
	}{
		{in: "0", want: Number{Kind: NumberUint}},
		{in: "-0", want: Number{Kind: NumberInt}},
		{in: "255", want: Number{Kind: NumberUint, Uint: 255}},
		{in: "-42", want: Number{Kind: NumberInt, Int: -42}},
		{in: "18446744073709551615", want: Number{Kind: NumberUint, Uint: 18446744073709551615}},
		{in: "-9223372036854775808", want: Number{Kind: NumberInt, Int: -9223372036854775808}},
		{in: "18446744073709551616", want: Number{Kind: NumberFloat, Float: 18446744073709551616}},
		{in: "222.5", want: Number{Kind: NumberFloat, Float: 222.5}},
		{in: "1e2", want: Number{Kind: NumberFloat, Float: 100}},
		{in: "-1.5E-3", want: Number{Kind: NumberFloat, Float: -0.0015}},
		{in: "1e-400", want: Number{Kind: NumberFloat, Float: 0}},
		{in: "1e400", wantErr: true},
		{in: "12a", wantErr: true},
		{in: "+1", wantErr: true},
		{in: "00", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseNumber([]byte(tt.in))
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseNumber(%q) = %+v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseNumber(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseNumber(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}
