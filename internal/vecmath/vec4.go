// Package vecmath provides the small-vector math kernel: 4-wide float
// vectors, a 4x4 matrix, and a float64 2D vector for viewport-space work.
// Types are plain structs of float32 (float64 for Vec2) rather than arrays,
// following the small-vector convention used throughout the example pack's
// math packages (e.g. soypat/glgl's ms3.Vec / ms3.Mat4): field access reads
// better at call sites than index access in hot interpolation code.
package vecmath

// Vec4 is a homogeneous 4-component vector: clip-space position, an
// attribute, or a varying.
type Vec4 struct {
	X, Y, Z, W float32
}

// Add returns the component-wise sum.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the component-wise difference.
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns a scaled by s.
func (a Vec4) Scale(s float32) Vec4 {
	return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Dot returns the 4-component dot product.
func (a Vec4) Dot(b Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Lerp linearly interpolates between a and b: t=0 returns a, t=1 returns b.
func Lerp(a, b Vec4, t float32) Vec4 {
	return Vec4{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
}

// Vec2 is a float64 2D vector used for viewport-space geometry (edge
// functions, clip-polygon bookkeeping) where float32 precision is too
// coarse for large viewport coordinates.
type Vec2 struct {
	X, Y float64
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Cross returns the 2D cross product (a scalar): a.X*b.Y - a.Y*b.X.
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
