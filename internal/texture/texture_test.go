package texture

import "testing"

func TestWrapRepeat(t *testing.T) {
	if got := wrap(WrapRepeat, 5, 4); got != 1 {
		t.Errorf("wrap(repeat, 5, 4) = %d, want 1", got)
	}
	if got := wrap(WrapRepeat, -1, 4); got != 3 {
		t.Errorf("wrap(repeat, -1, 4) = %d, want 3", got)
	}
}

func TestWrapClampToEdge(t *testing.T) {
	if got := wrap(WrapClampToEdge, 10, 4); got != 3 {
		t.Errorf("wrap(clamp, 10, 4) = %d, want 3", got)
	}
	if got := wrap(WrapClampToEdge, -5, 4); got != 0 {
		t.Errorf("wrap(clamp, -5, 4) = %d, want 0", got)
	}
}

func TestWrapMirroredRepeat(t *testing.T) {
	if got := wrap(WrapMirroredRepeat, 4, 4); got != 3 {
		t.Errorf("wrap(mirror, 4, 4) = %d, want 3", got)
	}
	if got := wrap(WrapMirroredRepeat, 0, 4); got != 0 {
		t.Errorf("wrap(mirror, 0, 4) = %d, want 0", got)
	}
}

func TestSampleNearest(t *testing.T) {
	tex := New(2, 2)
	tex.SetTexel(0, 0, 1, 0, 0, 1)
	tex.SetTexel(1, 0, 0, 1, 0, 1)

	r, g, b, _ := tex.Sample(0.1, 0.1, 0, 0)
	if r != 1 || g != 0 || b != 0 {
		t.Errorf("expected texel (0,0) red, got (%v,%v,%v)", r, g, b)
	}
	r, g, _, _ = tex.Sample(0.9, 0.1, 0, 0)
	if r != 0 || g != 1 {
		t.Errorf("expected texel (1,0) green, got (%v,%v)", r, g)
	}
}

func TestDefaultCheckerboardExactBytes(t *testing.T) {
	cb := DefaultCheckerboard()
	r, g, b, a := cb.Sample(0.1, 0.1, 0, 0)
	if r != 1 || g != 1 || b != 1 || a != 1 {
		t.Errorf("expected texel (0,0) opaque white, got (%v,%v,%v,%v)", r, g, b, a)
	}
	r, g, b, a = cb.Sample(0.6, 0.1, 0, 0)
	if r != 0 || g != 0 || b != 0 || a != 1 {
		t.Errorf("expected texel (1,0) opaque black, got (%v,%v,%v,%v)", r, g, b, a)
	}
}

func TestSampleEmptyTextureReturnsZero(t *testing.T) {
	var tex Texture2D
	r, g, b, a := tex.Sample(0.5, 0.5, 0, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("expected zero sample from an empty texture, got (%v,%v,%v,%v)", r, g, b, a)
	}
}
