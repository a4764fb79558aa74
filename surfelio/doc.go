// Package surfelio encodes and decodes surfel.Array values as a flat
// binary stream. It is a conversion-only collaborator, external to the
// reduction core: nothing in lod.CreateLOD imports this package; it
// exists for callers that need to get a surfel.Array onto or off of
// disk or a network connection around a CreateLOD call.
package surfelio
