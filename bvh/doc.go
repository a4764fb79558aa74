// Package bvh provides the opaque BVH handle the reduction driver
// accepts but never queries. BVH construction, traversal, and storage
// are out of scope for this module; this package exists solely so
// lod.CreateLOD's signature matches the external interface a caller
// owning a real BVH expects to satisfy.
package bvh
