// Package quadric builds edge quadrics and evaluates quadric error for
// the pair-contraction reduction algorithm.
//
// Given two oriented samples (position + unit normal), Build produces a
// symmetric 4x4 matrix Q = h hT where h = (n, -n.p1) is the homogeneous
// coefficient vector of an edge-aligned tangent plane. Error evaluates
// the standard quadric error metric, pT Q p, for a homogeneous point.
//
// Deviation from the original source (see DESIGN.md):
//   - the plane-normal normalization divisor is n.X + n.Y + n.Z, not
//     the source's n.x + n.y + n.y (read as a typo and corrected here).
//   - edge_dir is the origin-independent normalize(p2 - p1), not the
//     source's length²(p2) > length²(p1) origin-dependent orientation.
package quadric
