package illumination

import (
	"image"
	"testing"
)

func TestMask(t *testing.T) {
	m := NewMask(3, 2)
	m.Pix[1] = 1 // (1, 0)
	m.Pix[5] = 1 // (2, 1)

	if !m.Shaded(1, 0) || !m.Shaded(2, 1) {
		t.Error("expected (1,0) and (2,1) shaded")
	}
	if m.Shaded(0, 0) {
		t.Error("(0,0) should not be shaded")
	}
	if m.Shaded(-1, 0) || m.Shaded(3, 0) || m.Shaded(0, 2) {
		t.Error("out of bounds pixels should not be shaded")
	}
	if got := m.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}

	pts := m.Points()
	want := []image.Point{{1, 0}, {2, 1}}
	if len(pts) != len(want) {
		t.Fatalf("Points() = %v, want %v", pts, want)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, pts[i], want[i])
		}
	}

	alpha := m.Alpha(220)
	if alpha[1] != 220 || alpha[5] != 220 || alpha[0] != 0 {
		t.Errorf("Alpha(220) = %v", alpha)
	}
}

// masksEqual reports whether two masks cover the same pixels.
func masksEqual(a, b *Mask) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	for i := range a.Pix {
		if (a.Pix[i] != 0) != (b.Pix[i] != 0) {
			return false
		}
	}
	return true
}
