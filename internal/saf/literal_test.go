package saf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseComposition_SingleQuoted(t *testing.T) {
	got, err := ParseComposition("{'Aromatics': 0.12, 'Paraffins': 0.70, 'Naphthenes': 0.18}")
	if err != nil {
		t.Fatalf("ParseComposition failed: %v", err)
	}
	want := map[string]float64{
		"Aromatics":  0.12,
		"Paraffins":  0.70,
		"Naphthenes": 0.18,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("composition mismatch (-want +got):\n%s", diff)
	}
}

func TestParseComposition_DoubleQuotedAndWhitespace(t *testing.T) {
	got, err := ParseComposition(`  { "HEFA-SPK" : 1 }  `)
	if err != nil {
		t.Fatalf("ParseComposition failed: %v", err)
	}
	if got["HEFA-SPK"] != 1 {
		t.Errorf("expected HEFA-SPK=1, got %v", got)
	}
}

func TestParseComposition_TrailingComma(t *testing.T) {
	got, err := ParseComposition("{'Esters': 0.4, 'Alcohols': 0.6,}")
	if err != nil {
		t.Fatalf("ParseComposition failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 components, got %d", len(got))
	}
}

func TestParseComposition_EmptyMapping(t *testing.T) {
	got, err := ParseComposition("{}")
	if err != nil {
		t.Fatalf("ParseComposition failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty mapping, got %v", got)
	}
}

func TestParseComposition_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"not a mapping", "[0.1, 0.2]"},
		{"scalar", "0.5"},
		{"non-numeric value", "{'Aromatics': 'high'}"},
		{"unterminated", "{'Aromatics': 0.1"},
		{"bare key", "{Aromatics: 0.1}"},
		{"trailing garbage", "{'Aromatics': 0.1} extra"},
		{"code, not a literal", "__import__('os').system('true')"},
		{"call inside mapping", "{'a': exec('x')}"},
		{"empty input", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseComposition(tc.input); err == nil {
				t.Errorf("expected error for %q", tc.input)
			}
		})
	}
}

func TestFormatComposition_RoundTrip(t *testing.T) {
	want := map[string]float64{
		"Iso-paraffins": 0.6,
		"It's odd":      0.15,
		`Back\slash`:    0.25,
	}
	got, err := ParseComposition(FormatComposition(want))
	if err != nil {
		t.Fatalf("round-trip parse failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLiteral_Shapes(t *testing.T) {
	v, err := ParseLiteral("[1, 2.5, 'three', {'k': [-4e-1]}]")
	if err != nil {
		t.Fatalf("ParseLiteral failed: %v", err)
	}
	want := []any{
		float64(1),
		2.5,
		"three",
		map[string]any{"k": []any{-0.4}},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("literal mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLiteral_StringEscapes(t *testing.T) {
	v, err := ParseLiteral(`'it\'s\n\"fine\"'`)
	if err != nil {
		t.Fatalf("ParseLiteral failed: %v", err)
	}
	if v != "it's\n\"fine\"" {
		t.Errorf("unexpected string %q", v)
	}
}

func TestParseLiteral_Numbers(t *testing.T) {
	cases := map[string]float64{
		"42":      42,
		"-3.5":    -3.5,
		"+0.25":   0.25,
		"1e3":     1000,
		"2.5E-2":  0.025,
		"1.25e+1": 12.5,
		".5":      0.5,
	}
	for input, want := range cases {
		v, err := ParseLiteral(input)
		if err != nil {
			t.Fatalf("ParseLiteral(%q) failed: %v", input, err)
		}
		if v != want {
			t.Errorf("ParseLiteral(%q) = %v, want %v", input, v, want)
		}
	}
}
