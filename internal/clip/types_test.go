package clip

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 {
		t.Errorf("Right() = %v, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %v, want 60", r.Bottom())
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 100, 100), NewRect(10, 10, 5, 5), NewRect(10, 10, 5, 5)},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), Rect{}},
		{"touching", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectTranslate(t *testing.T) {
	got := NewRect(1, 2, 3, 4).Translate(10, 20)
	if want := NewRect(11, 22, 3, 4); got != want {
		t.Errorf("Translate() = %v, want %v", got, want)
	}
}
