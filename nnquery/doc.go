// Package nnquery implements the local k-nearest-neighbors scan over
// the union of a reduction's input child node arrays.
//
// Nearest performs a single O(N*k) pass: it maintains a bounded,
// insertion-sorted candidate list and the current worst accepted
// distance, rejecting any surfel whose squared distance already
// exceeds it once the list is full.
package nnquery
