package kpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *KPath
		wantErr bool
	}{
		{
			name:  "empty path",
			input: "",
			want:  nil,
		},
		{
			name:  "simple object path",
			input: "a",
			want:  Field("a"),
		},
		{
			name:  "nested object path",
			input: "a.b.c",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("b"),
					Next: &KPath{
						Field: stringPtr("c"),
					},
				},
			},
		},
		{
			name:  "array index",
			input: "a[0]",
			want: &KPath{
				Field: stringPtr("a"),
				Next:  Index(0),
			},
		},
		{
			name:  "root index",
			input: "[2][13]",
			want: &KPath{
				Index: intPtr(2),
				Next:  Index(13),
			},
		},
		{
			name:  "mixed path",
			input: "a[0].b[1].c",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Index: intPtr(0),
					Next: &KPath{
						Field: stringPtr("b"),
						Next: &KPath{
							Index: intPtr(1),
							Next:  Field("c"),
						},
					},
				},
			},
		},
		{
			name:  "quoted field",
			input: `a."b.c[0]".d`,
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("b.c[0]"),
					Next:  Field("d"),
				},
			},
		},
		{
			name:  "quoted escapes",
			input: `"tab\thereé"`,
			want:  Field("tab\thereé"),
		},
		{
			name:  "quoted empty",
			input: `""[0]`,
			want: &KPath{
				Field: stringPtr(""),
				Next:  Index(0),
			},
		},
		{name: "leading dot", input: ".a", wantErr: true},
		{name: "trailing dot", input: "a.", wantErr: true},
		{name: "double dot", input: "a..b", wantErr: true},
		{name: "unterminated index", input: "a[1", wantErr: true},
		{name: "negative index", input: "a[-1]", wantErr: true},
		{name: "non numeric index", input: "a[x]", wantErr: true},
		{name: "unterminated quote", input: `a."b`, wantErr: true},
		{name: "junk after quote", input: `"a"b`, wantErr: true},
		{name: "junk after index", input: `a[0]b`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, ErrSyntax) {
					t.Errorf("Parse(%q) error %v does not wrap ErrSyntax", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestKPathString(t *testing.T) {
	tests := []struct {
		path *KPath
		want string
	}{
		{nil, ""},
		{Field("a"), "a"},
		{Field("a").Append(Index(3)).Append(Field("b")), "a[3].b"},
		{Index(0).Append(Field("x y")), `[0]."x y"`},
		{Field(""), `""`},
		{Field("a.b"), `"a.b"`},
		{Field("q\"uote"), `"q\"uote"`},
	}
	for _, tt := range tests {
		if got := tt.path.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{
		"a",
		"a.b.c",
		"a[0][1].b",
		`a."with space"[4]`,
		`"new\nline"`,
		"[7]",
	} {
		kp, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := kp.String(); got != in {
			t.Errorf("Parse(%q).String() = %q", in, got)
		}
	}
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := Field("a")
	x := base.Append(Index(1))
	y := base.Append(Field("b"))
	if base.Next != nil {
		t.Fatalf("Append modified receiver: %s", base)
	}
	if x.String() != "a[1]" || y.String() != "a.b" {
		t.Errorf("got %s and %s", x, y)
	}
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
