package calculator

import "testing"

func TestCleanup(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"6.0", "6"},
		{"0.100", "0.1"},
		{"-2.5", "-2.5"},
		{"-0.0", "0"},
		{"0.30000000000000004", "0.3"},
		{"0.3333333333333333", "0.333333333"},
		{"123456789.123", "123456789.1"},
		{"1.0000000001234", "1"},
		{"12345678901.0", "12345678901"},
		{"99999999999.0", "99999999999"},
		{"123456789012.0", "1.23e+11"},
		{"1234567890123.0", "1.23e+12"},
		{"1234567890123.5", "1.23e+12"},
		{"-1234567890123.0", "-1.23e+12"},
		{"1e-10", "1.00e-10"},
		{"1.5e-09", "0.000000001"},
		{"-1e-09", "-1.00e-09"},
		{"-1.5e-09", "-1.50e-09"},
		{"-0.0000000123", "-0.00000001"},
		{"0.000012345678", "0.000012345"},
		{"1e+22", "1.00e+22"},
	}
	for _, tc := range cases {
		if got := Cleanup(tc.raw); got != tc.want {
			t.Fatalf("Cleanup(%q): expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestCleanup_PassesThroughUnparsable(t *testing.T) {
	if got := Cleanup(ErrorText); got != ErrorText {
		t.Fatalf("expected unparsable input unchanged, got %q", got)
	}
}

func TestFloatString(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{15, "15.0"},
		{0.5, "0.5"},
		{-3, "-3.0"},
		{0, "0.0"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{123.456, "123.456"},
		{1e16, "1e+16"},
		{1.5e16, "1.5e+16"},
		{1e15, "1000000000000000.0"},
	}
	for _, tc := range cases {
		if got := FloatString(tc.v); got != tc.want {
			t.Fatalf("FloatString(%v): expected %q, got %q", tc.v, tc.want, got)
		}
	}
}
