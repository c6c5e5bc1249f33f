package complaint

import "testing"

func TestSetDeduplicatesInOrder(t *testing.T) {
	s := NewSet()
	if !s.Add("b") || !s.Add("a") {
		t.Fatal("expected first adds to be new")
	}
	if s.Add("b") {
		t.Fatal("expected duplicate to be rejected")
	}
	s.Addf("%s: %d", "c", 1)

	got := s.List()
	want := []string{"b", "a", "c: 1"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMerge(t *testing.T) {
	first := NewSet()
	first.Add("x")
	second := NewSet()
	second.Add("y")
	second.Add("x")

	first.Merge(second)
	if first.Len() != 2 {
		t.Fatalf("expected 2 messages, got %v", first.List())
	}
	if got := first.List()[1]; got != "y" {
		t.Fatalf("unexpected order: %v", first.List())
	}
}

func TestZeroValueAndNil(t *testing.T) {
	var s Set
	s.Add("a")
	if s.Len() != 1 {
		t.Fatal("zero value set should accept messages")
	}
	var nilSet *Set
	if nilSet.Len() != 0 || nilSet.List() != nil {
		t.Fatal("nil set should be empty")
	}
}
