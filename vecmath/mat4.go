package vecmath

// Vec4 is a homogeneous 4-vector, used for the (n, -n.p) plane
// coefficients that quadrics are built from and for evaluating the
// quadratic form against a homogeneous point.
type Vec4 struct {
	X, Y, Z, W float64
}

// Dot returns the dot product of v and other.
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Scale returns v scaled by s.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Mat4 is a symmetric 4x4 real matrix, used as the quadric error metric
// accumulated per surfel. Rows are stored explicitly rather than as a
// flat array to keep Outer/Add/MulVec readable; callers never rely on a
// particular memory layout.
type Mat4 struct {
	Row [4]Vec4
}

// ZeroMat4 returns the additive identity (all-zero) quadric.
func ZeroMat4() Mat4 {
	return Mat4{}
}

// Outer returns the outer product h * hT, a rank-1 symmetric matrix.
// This is how a single plane's quadric Q = h hT is built from its
// homogeneous coefficient vector h.
func Outer(h Vec4) Mat4 {
	return Mat4{Row: [4]Vec4{
		h.Scale(h.X),
		h.Scale(h.Y),
		h.Scale(h.Z),
		h.Scale(h.W),
	}}
}

// Add returns the component-wise sum m + other. Quadrics accumulate by
// addition only.
func (m Mat4) Add(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		out.Row[i] = Vec4{
			X: m.Row[i].X + other.Row[i].X,
			Y: m.Row[i].Y + other.Row[i].Y,
			Z: m.Row[i].Z + other.Row[i].Z,
			W: m.Row[i].W + other.Row[i].W,
		}
	}
	return out
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m.Row[0].Dot(v),
		Y: m.Row[1].Dot(v),
		Z: m.Row[2].Dot(v),
		W: m.Row[3].Dot(v),
	}
}

// QuadraticForm returns v . (m * v) = v^T m v, the quadric error of
// a homogeneous point against m.
func (m Mat4) QuadraticForm(v Vec4) float64 {
	return v.Dot(m.MulVec4(v))
}

// IsFinite reports whether every entry of m is a finite float (neither
// NaN nor +/-Inf) no larger in magnitude than maxFinite. Used to detect
// a numerically degenerate quadric
// before it is installed on a surfel.
func (m Mat4) IsFinite() bool {
	for _, row := range m.Row {
		for _, x := range []float64{row.X, row.Y, row.Z, row.W} {
			if x != x || x > maxFinite || x < -maxFinite {
				return false
			}
		}
	}
	return true
}

// maxFinite bounds the magnitude past which a float64 is treated as
// effectively infinite for IsFinite's purposes; math.MaxFloat64 itself
// is finite but anything produced by this package blowing up that far
// indicates a degenerate computation upstream.
const maxFinite = 1e300
