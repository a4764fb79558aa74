// Package surfel defines the surfel record and its identifier, plus the
// Array collaborator interface the reduction driver borrows its inputs
// through.
//
// A Surfel is an oriented disk sample of a surface: position, normal,
// color, and radius. A Surfel with Radius <= 0 is logically removed;
// the reduction driver uses this as its consumption sentinel rather
// than physically shrinking any slice mid-algorithm.
//
// ID identifies a surfel within the fan-in of child node arrays the
// driver was given, as a (node index, surfel index) pair, and is
// totally ordered so Edge can canonicalize its endpoints and so k-NN
// ties have a deterministic tiebreak.
package surfel
