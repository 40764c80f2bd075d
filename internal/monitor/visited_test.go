package monitor

import "testing"

func TestVisitedSet(t *testing.T) {
	v := newVisitedSet()

	if !v.Add("a") {
		t.Error("Expected first add of a to be new")
	}
	if v.Add("a") {
		t.Error("Expected second add of a to be a duplicate")
	}
	v.Add("b")
	v.Add("a")
	v.Add("c")

	if v.Len() != 3 {
		t.Errorf("Expected 3 entries, got %d", v.Len())
	}
	if !v.Contains("b") || v.Contains("d") {
		t.Error("Unexpected membership result")
	}
}
