package core

import "testing"

func TestMinMax(t *testing.T) {
	if Min(2, 5) != 2 || Min(5, 2) != 2 {
		t.Error("Min should return the smaller value")
	}
	if Max(2, 5) != 5 || Max(5, 2) != 5 {
		t.Error("Max should return the larger value")
	}
}
