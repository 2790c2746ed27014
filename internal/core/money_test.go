package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", -100, true},
		{"-42.50", -4250, true},
		{"-0.01", -1, true},
		{"+3.10", 310, true},
		{"1000", 100000, true},
		{"0", 0, false},
		{"0.00", 0, false},
		{"-0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"--1", 0, false},
		{"", 0, false},
		{".", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{100, "1.00"},
		{-4250, "-42.50"},
		{1, "0.01"},
		{-1, "-0.01"},
		{0, "0.00"},
		{84925, "849.25"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("cents=%d expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	in := Money{Cents: -4250}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "-42.50" {
		t.Fatalf("expected -42.50, got %s", data)
	}

	var out Money
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Cents != in.Cents {
		t.Fatalf("round trip lost precision: %d != %d", out.Cents, in.Cents)
	}

	// Summaries carry legitimate zeros.
	var zero Money
	if err := json.Unmarshal([]byte("0"), &zero); err != nil {
		t.Fatalf("unmarshal zero: %v", err)
	}
	if zero.Cents != 0 {
		t.Fatalf("expected 0 cents, got %d", zero.Cents)
	}
}
