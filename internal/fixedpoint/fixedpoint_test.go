package fixedpoint

import "testing"

func TestSubpixelRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1, 2.5, -3.25, 100.0625} {
		s := FromFloatSubpixel(v)
		if got := s.Float32(); got != v {
			t.Errorf("FromFloatSubpixel(%v).Float32() = %v", v, got)
		}
	}
}

func TestSubpixelFloorRound(t *testing.T) {
	s := FromFloatSubpixel(2.5)
	if s.Floor() != 2 {
		t.Errorf("Floor() = %d, want 2", s.Floor())
	}
	if s.Round() != 3 {
		t.Errorf("Round() = %d, want 3", s.Round())
	}
}

func TestMulSubpixel(t *testing.T) {
	a := FromFloatSubpixel(2)
	b := FromFloatSubpixel(3)
	got := MulSubpixel(a, b)
	want := FromFloatBary(6)
	if got != want {
		t.Errorf("MulSubpixel(2,3) = %v, want %v", got.Float32(), want.Float32())
	}
}

func TestLerpBary(t *testing.T) {
	a := FromFloatBary(0)
	b := FromFloatBary(10)
	half := BaryScale(BaryOne / 2)
	got := Lerp(a, b, half)
	if got.Float32() != 5 {
		t.Errorf("Lerp midpoint = %v, want 5", got.Float32())
	}
}
