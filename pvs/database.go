package pvs

import "github.com/katalvlaran/surfelod/vecmath"

// Grid is the collaborator Database resolves viewer positions through.
// *Regular satisfies it; any other cell layout a caller builds can too.
type Grid interface {
	CellAtPosition(position vecmath.Vec3) *Cell
	LoadGridFromFile(path string) error
	LoadVisibilityFromFile(path string, ids []VisID) error
}

// Database is the Go analogue of the source's pvs_database: a loaded
// visibility grid, the current viewer cell, and an activation flag that
// lets a caller disable visibility culling without tearing the grid
// down. Unlike the source, Database is an explicit value a caller
// constructs and threads through its own call chain rather than a
// process-wide singleton.
type Database struct {
	grid         Grid
	viewerPos    vecmath.Vec3
	hasViewerPos bool
	viewerCell   *Cell
	activated    bool
}

// NewDatabase returns a Database with no grid loaded yet and visibility
// queries activated.
func NewDatabase() *Database {
	return &Database{activated: true}
}

// Load replaces the Database's grid with a fresh Regular, loading its
// shape from gridPath and its visibility bitset (keyed by ids) from
// pvsPath, per load_pvs_from_file. The prior grid, if any, is
// discarded.
func (d *Database) Load(gridPath, pvsPath string, ids []VisID) error {
	g := NewRegular(1, 1, vecmath.Vec3{})
	if err := g.LoadGridFromFile(gridPath); err != nil {
		return err
	}
	if err := g.LoadVisibilityFromFile(pvsPath, ids); err != nil {
		return err
	}
	d.grid = g
	d.hasViewerPos = false
	d.viewerCell = nil
	return nil
}

// SetViewerPosition updates the current viewer position and, if the
// Database is activated and the position actually changed, resolves
// the new viewer cell via the loaded grid (a no-op if no grid is
// loaded), per set_viewer_position.
func (d *Database) SetViewerPosition(position vecmath.Vec3) {
	if !d.activated {
		return
	}
	if d.hasViewerPos && position == d.viewerPos {
		return
	}
	d.viewerPos = position
	d.hasViewerPos = true
	if d.grid != nil {
		d.viewerCell = d.grid.CellAtPosition(position)
	}
}

// IsVisible reports whether node within model is visible from the
// current viewer cell, per get_viewer_visibility. Fails open (reports
// visible) when the Database is deactivated or no viewer cell has been
// resolved yet, matching the source's "don't cull without data"
// behavior.
func (d *Database) IsVisible(model, node int) bool {
	if !d.activated || d.viewerCell == nil {
		return true
	}
	return d.viewerCell.Visibility(model, node)
}

// Activate enables or disables visibility culling, per activate.
func (d *Database) Activate(active bool) {
	d.activated = active
}

// Activated reports the current activation state, per is_activated.
func (d *Database) Activated() bool {
	return d.activated
}
