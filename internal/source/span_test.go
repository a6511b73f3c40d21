package source

import "testing"

func TestSpan_Empty(t *testing.T) {
	s := Span{File: 1, Start: 5, End: 5}
	if !s.Empty() {
		t.Errorf("expected empty span")
	}
	if (Span{File: 1, Start: 5, End: 6}).Empty() {
		t.Errorf("expected non-empty span")
	}
}

func TestSpan_Len(t *testing.T) {
	s := Span{File: 1, Start: 5, End: 12}
	if got := s.Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}
	got := a.Cover(b)
	want := Span{File: 1, Start: 5, End: 20}
	if got != want {
		t.Errorf("Cover() = %+v, want %+v", got, want)
	}

	diff := Span{File: 2, Start: 0, End: 1}
	if got := a.Cover(diff); got != a {
		t.Errorf("Cover() across files should be a no-op, got %+v", got)
	}
}

func TestSpan_ExtendRightLeft(t *testing.T) {
	a := Span{File: 1, Start: 0, End: 5}
	b := Span{File: 1, Start: 10, End: 15}
	if got := a.ExtendRight(b); got != (Span{File: 1, Start: 0, End: 10}) {
		t.Errorf("ExtendRight() = %+v", got)
	}
	if got := b.ExtendLeft(a); got != (Span{File: 1, Start: 5, End: 15}) {
		t.Errorf("ExtendLeft() = %+v", got)
	}
}

func TestSpan_IsLeftRightThan(t *testing.T) {
	a := Span{File: 1, Start: 0, End: 5}
	b := Span{File: 1, Start: 10, End: 20}
	if !a.IsLeftThan(b) {
		t.Errorf("expected a left of b")
	}
	if !b.IsRightThan(a) {
		t.Errorf("expected b right of a")
	}
	if a.IsLeftThan(Span{File: 2, Start: 10, End: 20}) {
		t.Errorf("spans in different files should never compare as left/right")
	}
}

func TestSpan_String(t *testing.T) {
	s := Span{File: 3, Start: 1, End: 4}
	if got, want := s.String(), "3:1-4"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
