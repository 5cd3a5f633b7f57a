package geometry

import (
	"testing"

	"github.com/swr-go/swr/internal/fixedpoint"
)

func TestEdgeFunctionFloatSign(t *testing.T) {
	// area(p-v0, v1-v0) is negative for a point on the -x side of an edge
	// pointing in +y: (-1)*4 - 2*0 = -4.
	v0 := [2]float64{0, 0}
	v1 := [2]float64{0, 4}
	p := [2]float64{-1, 2}
	if got := EdgeFunctionF(v0, v1, p); got >= 0 {
		t.Errorf("EdgeFunctionF = %v, want < 0", got)
	}
}

func TestIsTopLeft(t *testing.T) {
	// Horizontal edge pointing +x is "top".
	top := IsTopLeft([2]fixedpoint.Subpixel{0, 0}, [2]fixedpoint.Subpixel{16, 0})
	if !top {
		t.Errorf("expected horizontal +x edge to be top")
	}
	// Strictly decreasing y is "left".
	left := IsTopLeft([2]fixedpoint.Subpixel{0, 16}, [2]fixedpoint.Subpixel{0, 0})
	if !left {
		t.Errorf("expected decreasing-y edge to be left")
	}
	// Increasing y, non-horizontal: neither.
	other := IsTopLeft([2]fixedpoint.Subpixel{0, 0}, [2]fixedpoint.Subpixel{16, 16})
	if other {
		t.Errorf("expected this edge to be neither top nor left")
	}
}

func TestBias(t *testing.T) {
	if Bias(true) != 1 {
		t.Errorf("Bias(true) = %v, want 1", Bias(true))
	}
	if Bias(false) != 0 {
		t.Errorf("Bias(false) = %v, want 0", Bias(false))
	}
}
