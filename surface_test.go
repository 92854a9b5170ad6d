package weave

import "testing"

func TestImageSurfaceSize(t *testing.T) {
	s := NewImageSurface(64, 32, true)
	if w, h := s.Size(); w != 64 || h != 32 {
		t.Errorf("Size = %dx%d, want 64x32", w, h)
	}
	if s.Image() == nil {
		t.Fatal("expected backing image")
	}
	if b := s.Image().Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("image bounds = %v, want 64x32", b)
	}
}

func TestImageSurfaceResize(t *testing.T) {
	s := NewImageSurface(64, 32, false)
	old := s.Image()
	s.Resize(10, 20)
	if s.Image() == old {
		t.Error("Resize kept the old image")
	}
	if w, h := s.Size(); w != 10 || h != 20 {
		t.Errorf("Size = %dx%d, want 10x20", w, h)
	}

	s.Resize(-5, 20)
	if w, h := s.Size(); w != 0 || h != 20 {
		t.Errorf("Size = %dx%d, want 0x20", w, h)
	}
	if s.Image() != nil {
		t.Error("zero-width surface should hold no image")
	}
}

func TestImageSurfaceDispose(t *testing.T) {
	s := NewImageSurface(8, 8, false)
	s.Dispose()
	if s.Image() != nil {
		t.Error("image not released")
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("Size after Dispose = %dx%d, want 0x0", w, h)
	}
	s.Clear()
	s.FillCircle(1, 1, 1, ColorWhite)
}

func TestImageSurfaceAlpha(t *testing.T) {
	s := NewImageSurface(8, 8, false)
	if s.Alpha() != 1 {
		t.Errorf("initial alpha = %v, want 1", s.Alpha())
	}
	tests := []struct{ in, want float64 }{
		{0.25, 0.25},
		{-1, 0},
		{3, 1},
	}
	for _, tt := range tests {
		s.SetAlpha(tt.in)
		if s.Alpha() != tt.want {
			t.Errorf("SetAlpha(%v): Alpha = %v, want %v", tt.in, s.Alpha(), tt.want)
		}
	}
}

func TestImageSurfacePaintAppliesAlpha(t *testing.T) {
	s := NewImageSurface(8, 8, false)
	s.SetAlpha(0.5)
	got := s.paint(Color{1, 1, 1, 1})
	if got.A != 127 || got.R != 127 {
		t.Errorf("paint = %+v, want premultiplied half alpha", got)
	}
}
