package vecmath

// Mat4 is a row-major 4x4 matrix, following the same row-major convention
// and flattened-field layout as soypat/glgl's ms3.Mat4.
type Mat4 struct {
	m00, m01, m02, m03 float32
	m10, m11, m12, m13 float32
	m20, m21, m22, m23 float32
	m30, m31, m32, m33 float32
}

// NewMat4RowMajor builds a Mat4 from 16 values in row-major order.
// Panics if v has fewer than 16 elements.
func NewMat4RowMajor(v []float32) Mat4 {
	_ = v[15]
	return Mat4{
		v[0], v[1], v[2], v[3],
		v[4], v[5], v[6], v[7],
		v[8], v[9], v[10], v[11],
		v[12], v[13], v[14], v[15],
	}
}

// IdentityMat4 returns the identity matrix.
func IdentityMat4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MulVec4 transforms v by m, returning m*v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m.m00*v.X + m.m01*v.Y + m.m02*v.Z + m.m03*v.W,
		Y: m.m10*v.X + m.m11*v.Y + m.m12*v.Z + m.m13*v.W,
		Z: m.m20*v.X + m.m21*v.Y + m.m22*v.Z + m.m23*v.W,
		W: m.m30*v.X + m.m31*v.Y + m.m32*v.Z + m.m33*v.W,
	}
}

// Mul returns a*b (applying b first, then a, to a column vector).
func (a Mat4) Mul(b Mat4) Mat4 {
	row := func(ar0, ar1, ar2, ar3 float32) [4]float32 {
		return [4]float32{
			ar0*b.m00 + ar1*b.m10 + ar2*b.m20 + ar3*b.m30,
			ar0*b.m01 + ar1*b.m11 + ar2*b.m21 + ar3*b.m31,
			ar0*b.m02 + ar1*b.m12 + ar2*b.m22 + ar3*b.m32,
			ar0*b.m03 + ar1*b.m13 + ar2*b.m23 + ar3*b.m33,
		}
	}
	r0 := row(a.m00, a.m01, a.m02, a.m03)
	r1 := row(a.m10, a.m11, a.m12, a.m13)
	r2 := row(a.m20, a.m21, a.m22, a.m23)
	r3 := row(a.m30, a.m31, a.m32, a.m33)
	return Mat4{
		r0[0], r0[1], r0[2], r0[3],
		r1[0], r1[1], r1[2], r1[3],
		r2[0], r2[1], r2[2], r2[3],
		r3[0], r3[1], r3[2], r3[3],
	}
}
