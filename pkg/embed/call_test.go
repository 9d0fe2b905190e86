package embed

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCall_Valid(t *testing.T) {
	cases := []struct {
		name   string
		expr   string
		target Arg
		args   []Arg
	}{
		{
			name:   "single literal target",
			expr:   "cgiapp.embed('header')",
			target: Arg{Kind: ArgLiteral, Value: "header"},
		},
		{
			name:   "double quoted target",
			expr:   `cgiapp.embed("header")`,
			target: Arg{Kind: ArgLiteral, Value: "header"},
		},
		{
			name:   "literal plus param ref",
			expr:   "cgiapp.embed('greet', name)",
			target: Arg{Kind: ArgLiteral, Value: "greet"},
			args:   []Arg{{Kind: ArgParamRef, Value: "name"}},
		},
		{
			name:   "insignificant whitespace",
			expr:   "cgiapp . embed ( 'greet' ,\n\tname )",
			target: Arg{Kind: ArgLiteral, Value: "greet"},
			args:   []Arg{{Kind: ArgParamRef, Value: "name"}},
		},
		{
			name:   "param ref target",
			expr:   "cgiapp.embed(which)",
			target: Arg{Kind: ArgParamRef, Value: "which"},
		},
		{
			name:   "mixed argument kinds",
			expr:   `cgiapp.embed('row', "a b", first, 'c,d', second)`,
			target: Arg{Kind: ArgLiteral, Value: "row"},
			args: []Arg{
				{Kind: ArgLiteral, Value: "a b"},
				{Kind: ArgParamRef, Value: "first"},
				{Kind: ArgLiteral, Value: "c,d"},
				{Kind: ArgParamRef, Value: "second"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			call, err := ParseCall(tc.expr, "cgiapp")
			if err != nil {
				t.Fatalf("ParseCall(%q) returned error: %v", tc.expr, err)
			}
			if diff := cmp.Diff(tc.target, call.Target); diff != "" {
				t.Fatalf("target mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.args, call.Args); diff != "" {
				t.Fatalf("args mismatch (-want +got):\n%s", diff)
			}
			if tc.args == nil && call.Args != nil {
				t.Fatalf("Args = %#v, want nil for a target-only call", call.Args)
			}
		})
	}
}

func TestParseCall_Malformed(t *testing.T) {
	cases := []struct {
		name string
		expr string
	}{
		{name: "empty argument list", expr: "cgiapp.embed()"},
		{name: "unterminated quote", expr: "cgiapp.embed('header)"},
		{name: "unterminated arg list", expr: "cgiapp.embed('header'"},
		{name: "trailing comma", expr: "cgiapp.embed('header',)"},
		{name: "bad param ref", expr: "cgiapp.embed('greet', 9name)"},
		{name: "literal target not identifier", expr: "cgiapp.embed('bad name')"},
		{name: "wrong method", expr: "cgiapp.include('header')"},
		{name: "missing paren", expr: "cgiapp.embed 'header'"},
		{name: "trailing garbage", expr: "cgiapp.embed('header') extra"},
		{name: "wrong marker", expr: "other.embed('header')"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCall(tc.expr, "cgiapp")
			var malformed *MalformedCallError
			if !errors.As(err, &malformed) {
				t.Fatalf("ParseCall(%q) = %v, want MalformedCallError", tc.expr, err)
			}
		})
	}
}

func TestValidIdentifier(t *testing.T) {
	valid := []string{"a", "_", "cgiapp", "Widget_2", "_hidden"}
	for _, s := range valid {
		if !ValidIdentifier(s) {
			t.Fatalf("ValidIdentifier(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "9abc", "with space", "dash-ed", "dot.ted", "ünicode"}
	for _, s := range invalid {
		if ValidIdentifier(s) {
			t.Fatalf("ValidIdentifier(%q) = true, want false", s)
		}
	}
}
