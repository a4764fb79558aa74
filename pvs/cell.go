package pvs

import "github.com/katalvlaran/surfelod/vecmath"

// visKey identifies one (model, node) pair a Cell records visibility
// for, the Go analogue of the source's (model_t, node_t) pair passed to
// view_cell::get_visibility.
type visKey struct {
	Model int
	Node  int
}

// Cell is one view cell of a Regular grid: a center, an extent, and a
// precomputed visibility bitset keyed by (model, node). A (model, node)
// pair with no recorded entry is treated as not visible - a PVS dataset
// only ever records the pairs its offline visibility pass determined
// were visible from this cell.
//
// Cell plays the role of both view_cell_regular (uniform Size on every
// axis) and view_cell_irregular (independent per-axis Size); Kind
// reports which one a caller built, matching the source's
// get_cell_type() discriminator.
type Cell struct {
	center  vecmath.Vec3
	size    vecmath.Vec3
	kind    string
	visible map[visKey]bool
}

func newRegularCell(center vecmath.Vec3, uniformSize float64) *Cell {
	return &Cell{
		center:  center,
		size:    vecmath.Vec3{X: uniformSize, Y: uniformSize, Z: uniformSize},
		kind:    "regular",
		visible: make(map[visKey]bool),
	}
}

// NewIrregularCell builds a Cell whose extent may differ per axis, the
// Go analogue of view_cell_irregular.
func NewIrregularCell(center, size vecmath.Vec3) *Cell {
	return &Cell{center: center, size: size, kind: "irregular", visible: make(map[visKey]bool)}
}

// Center returns the cell's world-space center.
func (c *Cell) Center() vecmath.Vec3 { return c.center }

// Size returns the cell's extent along each axis.
func (c *Cell) Size() vecmath.Vec3 { return c.size }

// Kind reports "regular" or "irregular", mirroring get_cell_type.
func (c *Cell) Kind() string { return c.kind }

// Visibility reports whether node within model is marked visible from
// this cell.
func (c *Cell) Visibility(model, node int) bool {
	return c.visible[visKey{Model: model, Node: node}]
}

// SetVisibility records node within model as visible (or not) from this
// cell. Used by LoadVisibilityFromFile and directly by callers
// constructing a grid in-process rather than from a file.
func (c *Cell) SetVisibility(model, node int, visible bool) {
	if !visible {
		delete(c.visible, visKey{Model: model, Node: node})
		return
	}
	c.visible[visKey{Model: model, Node: node}] = true
}
