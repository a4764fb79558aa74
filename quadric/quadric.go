package quadric

import "github.com/katalvlaran/surfelod/vecmath"

// tangentSumEpsilon bounds how close the plane normal's component sum
// may come to zero before the rescale in Build is rejected as
// degenerate.
const tangentSumEpsilon = 1e-9

// Build constructs the edge quadric for two oriented samples (p1, n1)
// and (p2, n2):
//
//	edge_dir = normalize(p2 - p1)
//	tangent  = normalize(cross(normalize(n1 + n2), edge_dir))
//	normal   = cross(tangent, edge_dir) / (normal.X + normal.Y + normal.Z)
//	h        = (normal, -dot(p1, normal))
//	Q        = h hT
//
// Returns a degeneracy sentinel (ErrDegenerateEdge, ErrDegenerateNormal,
// ErrDegenerateTangentFrame, ErrNonFinite) instead of a NaN-laden
// quadric when any step collapses; callers are expected to drop the
// contraction and continue.
func Build(p1, p2, n1, n2 vecmath.Vec3) (vecmath.Mat4, error) {
	edgeDir, err := p2.Sub(p1).Normalize()
	if err != nil {
		return vecmath.Mat4{}, ErrDegenerateEdge
	}

	normalSum, err := n1.Add(n2).Normalize()
	if err != nil {
		return vecmath.Mat4{}, ErrDegenerateNormal
	}

	tangent, err := normalSum.Cross(edgeDir).Normalize()
	if err != nil {
		return vecmath.Mat4{}, ErrDegenerateTangentFrame
	}

	normal := tangent.Cross(edgeDir)
	divisor := normal.X + normal.Y + normal.Z
	if divisor > -tangentSumEpsilon && divisor < tangentSumEpsilon {
		return vecmath.Mat4{}, ErrDegenerateTangentFrame
	}
	normal = normal.Scale(1 / divisor)

	h := vecmath.Vec4{X: normal.X, Y: normal.Y, Z: normal.Z, W: -p1.Dot(normal)}
	q := vecmath.Outer(h)
	if !q.IsFinite() {
		return vecmath.Mat4{}, ErrNonFinite
	}
	return q, nil
}

// Error evaluates the quadric error metric pT Q p for the homogeneous
// point (p, 1). Non-negative by construction since Q is a sum of h hT
// outer products.
func Error(p vecmath.Vec3, q vecmath.Mat4) float64 {
	ph := vecmath.Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1}
	return q.QuadraticForm(ph)
}
