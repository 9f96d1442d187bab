package econ

import (
	"math"
	"testing"
)

func TestPrestigeMultiplierTiers(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{level: 0, want: 1.0},
		{level: 1, want: 1.25},
		{level: 5, want: math.Pow(1.25, 5)},
		{level: 6, want: math.Pow(1.25, 5) * 1.18},
		{level: 21, want: math.Pow(1.25, 5) * math.Pow(1.18, 15) * 1.12},
	}
	for _, tc := range tests {
		got := PrestigeMultiplier(tc.level)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("level=%d got=%v want=%v", tc.level, got, tc.want)
		}
	}
}

func TestComposeNeutral(t *testing.T) {
	got := Compose(0, 0, 1.0, 1.0, 1.0, 1.0)
	if got != 1.0 {
		t.Fatalf("neutral compose got %v want 1", got)
	}
}

func TestComposeOrderOfFactors(t *testing.T) {
	got := Compose(1, 0.5, 1.2, 1.1, 1.3, 0.7)
	want := 1.25 * 1.5 * 1.2 * 1.1 * 1.3 * 0.7
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestComposeCapped(t *testing.T) {
	// Deep prestige alone blows past the cap.
	if got := Compose(30, 2.0, 1.2, 1.5, 2.5, 1.6); got != GlobalCap {
		t.Fatalf("compose not capped: got %v", got)
	}
}

func TestComposeNeverNegative(t *testing.T) {
	if got := Compose(0, -2.0, 1.0, 1.0, 1.0, 1.0); got != 0 {
		t.Fatalf("compose went negative: got %v", got)
	}
}
