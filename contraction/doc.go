// Package contraction defines the Contraction record proposed for an
// edge between two live surfels, and the merge formulas that build one
// from its endpoints.
//
// A Contraction carries the new (merged) surfel, the summed quadric,
// and the realized error of placing the merged surfel against that
// quadric. It also carries a Handle into whatever priority queue holds
// it, so the reduction driver and the contraction index can invalidate
// or rewire it without the queue and index needing to agree on a
// separate identity scheme.
package contraction
