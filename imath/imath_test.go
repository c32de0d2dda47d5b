package imath

import "testing"

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 {
		t.Errorf("Abs(-5) = %d; want 5", Abs(-5))
	}
	if Abs(5) != 5 {
		t.Errorf("Abs(5) = %d; want 5", Abs(5))
	}
	if Abs(0) != 0 {
		t.Errorf("Abs(0) = %d; want 0", Abs(0))
	}
}
