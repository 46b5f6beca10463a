package util

import "testing"

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp(0,10,0.5) = %v, want 5", got)
	}
	if got := Lerp(2, 2, 0.7); got != 2 {
		t.Fatalf("Lerp with equal endpoints = %v, want 2", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Fatalf("Clamp(-1,0,1) = %v, want 0", got)
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Fatalf("Clamp(2,0,1) = %v, want 1", got)
	}
	if got := Clamp(0.4, 0, 1); got != 0.4 {
		t.Fatalf("Clamp(0.4,0,1) = %v, want 0.4", got)
	}
}

func TestSmoothStep(t *testing.T) {
	if got := SmoothStep(0, 10, 0); got != 0 {
		t.Fatalf("SmoothStep at t=0 = %v, want 0", got)
	}
	if got := SmoothStep(0, 10, 1); got != 10 {
		t.Fatalf("SmoothStep at t=1 = %v, want 10", got)
	}
	if got := SmoothStep(0, 10, 0.5); got != 5 {
		t.Fatalf("SmoothStep at t=0.5 = %v, want 5", got)
	}
	// Out-of-range t is clamped
	if got := SmoothStep(0, 10, 2); got != 10 {
		t.Fatalf("SmoothStep at t=2 = %v, want 10", got)
	}
}
