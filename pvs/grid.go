package pvs

import (
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/surfelod/vecmath"
)

// Regular is a cube of uniformly-sized view cells centered on a world
// position, the Go analogue of the source's grid_regular. numberCells
// is the total cell count; since the source's public constructor takes
// a single count rather than a per-axis count, Regular spreads it as
// evenly as possible across three axes by taking its cube root and
// rounding - a deviation from the (unavailable) original create_grid
// body, recorded here rather than guessed at silently.
type Regular struct {
	cellSize float64
	center   vecmath.Vec3
	side     int
	cells    []*Cell
}

// NewRegular builds a Regular grid of side^3 cells (side = round(cbrt(numberCells)),
// minimum 1), each cellSize wide, centered on positionCenter.
func NewRegular(numberCells int, cellSize float64, positionCenter vecmath.Vec3) *Regular {
	side := int(math.Round(math.Cbrt(float64(numberCells))))
	if side < 1 {
		side = 1
	}
	g := &Regular{cellSize: cellSize, center: positionCenter, side: side}
	g.populate()
	return g
}

// populate (re)builds g.cells from g.side, g.cellSize, and g.center.
func (g *Regular) populate() {
	g.cells = make([]*Cell, 0, g.side*g.side*g.side)
	for xi := 0; xi < g.side; xi++ {
		for yi := 0; yi < g.side; yi++ {
			for zi := 0; zi < g.side; zi++ {
				g.cells = append(g.cells, newRegularCell(g.cellCenter(xi, yi, zi), g.cellSize))
			}
		}
	}
}

func (g *Regular) cellCenter(xi, yi, zi int) vecmath.Vec3 {
	half := float64(g.side-1) / 2
	return vecmath.Vec3{
		X: g.center.X + (float64(xi)-half)*g.cellSize,
		Y: g.center.Y + (float64(yi)-half)*g.cellSize,
		Z: g.center.Z + (float64(zi)-half)*g.cellSize,
	}
}

func (g *Regular) index(xi, yi, zi int) int {
	return (xi*g.side+yi)*g.side + zi
}

// CellCount returns the number of cells in the grid, side^3.
func (g *Regular) CellCount() int { return len(g.cells) }

// CellAt returns the cell at index, per get_cell_at_index.
func (g *Regular) CellAt(index int) (*Cell, error) {
	if index < 0 || index >= len(g.cells) {
		return nil, ErrCellIndexOutOfRange
	}
	return g.cells[index], nil
}

// CellAtPosition returns the cell whose grid coordinate is nearest
// position, clamped to the grid's extent, per get_cell_at_position.
func (g *Regular) CellAtPosition(position vecmath.Vec3) *Cell {
	half := float64(g.side-1) / 2
	xi := clampIndex(int(math.Round((position.X-g.center.X)/g.cellSize+half)), g.side)
	yi := clampIndex(int(math.Round((position.Y-g.center.Y)/g.cellSize+half)), g.side)
	zi := clampIndex(int(math.Round((position.Z-g.center.Z)/g.cellSize+half)), g.side)
	return g.cells[g.index(xi, yi, zi)]
}

func clampIndex(i, side int) int {
	if i < 0 {
		return 0
	}
	if i >= side {
		return side - 1
	}
	return i
}

// gridHeader is the on-disk layout SaveGridToFile/LoadGridFromFile
// agree on: side, cell size, then the center's three coordinates, all
// little-endian. This is this module's own format, not the original
// lamure binary layout; the reduction core never touches persisted
// formats, but this collaborator package still needs one to round-trip
// a grid at all.
type gridHeader struct {
	Side     int64
	CellSize float64
	CenterX  float64
	CenterY  float64
	CenterZ  float64
}

// SaveGridToFile writes g's shape (not its visibility data) to path.
func (g *Regular) SaveGridToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := gridHeader{Side: int64(g.side), CellSize: g.cellSize, CenterX: g.center.X, CenterY: g.center.Y, CenterZ: g.center.Z}
	return binary.Write(f, binary.LittleEndian, h)
}

// LoadGridFromFile replaces g's shape with the one stored at path,
// rebuilding an empty-visibility cell set to match.
func (g *Regular) LoadGridFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var h gridHeader
	if err := binary.Read(f, binary.LittleEndian, &h); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrCorruptGridFile
		}
		return err
	}

	g.side = int(h.Side)
	g.cellSize = h.CellSize
	g.center = vecmath.Vec3{X: h.CenterX, Y: h.CenterY, Z: h.CenterZ}
	g.populate()
	return nil
}

// SaveVisibilityToFile writes, for every cell in index order, one byte
// per id in ids: 1 if that (model, node) pair is visible from the
// cell, 0 otherwise.
func (g *Regular) SaveVisibilityToFile(path string, ids []VisID) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, len(g.cells)*len(ids))
	pos := 0
	for _, cell := range g.cells {
		for _, id := range ids {
			if cell.Visibility(id.Model, id.Node) {
				buf[pos] = 1
			}
			pos++
		}
	}
	_, err = f.Write(buf)
	return err
}

// LoadVisibilityFromFile reads back a file written by
// SaveVisibilityToFile, applying it onto g's existing cells, which must
// already have the shape the file was saved with.
func (g *Regular) LoadVisibilityFromFile(path string, ids []VisID) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	want := len(g.cells) * len(ids)
	buf := make([]byte, want)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return err
	}
	if n != want {
		return ErrCorruptVisibilityFile
	}

	pos := 0
	for _, cell := range g.cells {
		for _, id := range ids {
			cell.SetVisibility(id.Model, id.Node, buf[pos] != 0)
			pos++
		}
	}
	return nil
}

// VisID is one (model, node) pair a visibility file's columns are keyed
// by, supplied by the caller since a grid file alone does not enumerate
// the scene's nodes.
type VisID struct {
	Model int
	Node  int
}
