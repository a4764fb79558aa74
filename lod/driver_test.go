package lod_test

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/surfelod/bvh"
	"github.com/katalvlaran/surfelod/lod"
	"github.com/katalvlaran/surfelod/surfel"
	"github.com/katalvlaran/surfelod/vecmath"
)

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func posNear(a, b vecmath.Vec3, eps float64) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) && near(a.Z, b.Z, eps)
}

func arraysOf(nodes [][]surfel.Surfel) []surfel.Array {
	out := make([]surfel.Array, len(nodes))
	for i, n := range nodes {
		out[i] = surfel.NewMemArray(n)
	}
	return out
}

// Two nodes, two surfels each, k=1, M=3. The
// cheapest contraction is between whichever pair of the three close
// points ties for minimum error; the isolated far point survives.
func TestCreateLOD_TwoNodesIsolatedSurvives(t *testing.T) {
	up := vecmath.Vec3{Z: 1}
	nodes := [][]surfel.Surfel{
		{
			{Position: vecmath.Vec3{X: 0, Y: 0, Z: 0}, Normal: up, Radius: 1},
			{Position: vecmath.Vec3{X: 1, Y: 0, Z: 0}, Normal: up, Radius: 1},
		},
		{
			{Position: vecmath.Vec3{X: 0, Y: 1, Z: 0}, Normal: up, Radius: 1},
			{Position: vecmath.Vec3{X: 10, Y: 10, Z: 10}, Normal: up, Radius: 1},
		},
	}

	res, err := lod.CreateLOD(arraysOf(nodes), 3, 1, bvh.None{})
	if err != nil {
		t.Fatalf("CreateLOD: %v", err)
	}
	if len(res.Surfels) != 3 {
		t.Fatalf("len(Surfels) = %d, want 3", len(res.Surfels))
	}

	far := vecmath.Vec3{X: 10, Y: 10, Z: 10}
	foundFar := false
	for _, s := range res.Surfels {
		if posNear(s.Position, far, 1e-9) {
			foundFar = true
		}
	}
	if !foundFar {
		t.Fatalf("expected the isolated far surfel to survive untouched, got %+v", res.Surfels)
	}
	if !near(res.ReductionError, 0, 1e-6) {
		t.Fatalf("ReductionError = %v, want ~0 (the cheapest pair is coplanar with z=0)", res.ReductionError)
	}
}

// Collinear triple, k=1, M=2. With k=1 each
// endpoint's sole neighbor is the middle point, so the only candidate
// edges are the two adjacent ones; the merge is near-zero error and
// lands on the midpoint of an adjacent pair.
func TestCreateLOD_CollinearTripleMergesAdjacent(t *testing.T) {
	ny := vecmath.Vec3{Y: 1}
	nodes := [][]surfel.Surfel{{
		{Position: vecmath.Vec3{X: 0}, Normal: ny, Radius: 1},
		{Position: vecmath.Vec3{X: 1}, Normal: ny, Radius: 1},
		{Position: vecmath.Vec3{X: 2}, Normal: ny, Radius: 1},
	}}

	res, err := lod.CreateLOD(arraysOf(nodes), 2, 1, bvh.None{})
	if err != nil {
		t.Fatalf("CreateLOD: %v", err)
	}
	if len(res.Surfels) != 2 {
		t.Fatalf("len(Surfels) = %d, want 2", len(res.Surfels))
	}
	if !near(res.ReductionError, 0, 1e-6) {
		t.Fatalf("ReductionError = %v, want ~0 for a collinear merge", res.ReductionError)
	}

	left := vecmath.Vec3{X: 0.5}
	right := vecmath.Vec3{X: 1.5}
	foundAdjacentMerge := false
	for _, s := range res.Surfels {
		if posNear(s.Position, left, 1e-9) || posNear(s.Position, right, 1e-9) {
			foundAdjacentMerge = true
		}
	}
	if !foundAdjacentMerge {
		t.Fatalf("expected one surfel at the midpoint of an adjacent pair, got %+v", res.Surfels)
	}
}

// Four identical surfels collapse to one,
// unchanged in position and radius (the mean of equal values).
func TestCreateLOD_IdenticalPointsCollapseUnchanged(t *testing.T) {
	p := vecmath.Vec3{X: 3, Y: 4, Z: 5}
	n := vecmath.Vec3{Z: 1}
	nodes := [][]surfel.Surfel{{
		{Position: p, Normal: n, Radius: 2},
		{Position: p, Normal: n, Radius: 2},
		{Position: p, Normal: n, Radius: 2},
		{Position: p, Normal: n, Radius: 2},
	}}

	res, err := lod.CreateLOD(arraysOf(nodes), 1, 3, bvh.None{})
	if err != nil {
		t.Fatalf("CreateLOD: %v", err)
	}
	if len(res.Surfels) != 1 {
		t.Fatalf("len(Surfels) = %d, want 1", len(res.Surfels))
	}
	got := res.Surfels[0]
	if !posNear(got.Position, p, 1e-9) {
		t.Fatalf("Position = %+v, want %+v", got.Position, p)
	}
	if !near(got.Radius, 2, 1e-9) {
		t.Fatalf("Radius = %v, want 2 (mean of four equal radii)", got.Radius)
	}
	if !near(res.ReductionError, 0, 1e-9) {
		t.Fatalf("ReductionError = %v, want 0", res.ReductionError)
	}
}

// Opposite normals at nearby positions make
// §4.1's normal-sum step collapse to the zero vector. quadric.Build
// must return a degeneracy sentinel rather than propagate a NaN, the
// driver must record the drop and keep going, and the call must not
// panic.
func TestCreateLOD_OppositeNormalsDropsGracefully(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("CreateLOD panicked on opposite-normal input: %v", r)
		}
	}()

	nodes := [][]surfel.Surfel{{
		{Position: vecmath.Vec3{X: 0}, Normal: vecmath.Vec3{Z: 1}, Radius: 1},
		{Position: vecmath.Vec3{X: 0.01}, Normal: vecmath.Vec3{Z: -1}, Radius: 1},
	}}

	res, err := lod.CreateLOD(arraysOf(nodes), 1, 1, bvh.None{})
	if err != nil {
		t.Fatalf("CreateLOD: %v", err)
	}
	if res.DroppedContractions < 2 {
		t.Fatalf("DroppedContractions = %d, want >= 2 (both per-surfel accumulation attempts degenerate)", res.DroppedContractions)
	}
	for _, s := range res.Surfels {
		if s.Radius < 0 {
			t.Fatalf("surviving surfel has negative radius: %+v", s)
		}
	}
}

// Large-fanout stress. 1000 randomized points
// reduced to 100 with k=8; output count matches exactly and no surfel
// carries the removed-sentinel radius.
func TestCreateLOD_LargeFanoutStress(t *testing.T) {
	const n = 1000
	const target = 100
	const k = 8

	rng := rand.New(rand.NewSource(1))
	pts := make([]surfel.Surfel, n)
	for i := range pts {
		pts[i] = surfel.Surfel{
			Position: vecmath.Vec3{
				X: rng.Float64() * 100,
				Y: rng.Float64() * 100,
				Z: rng.Float64() * 100,
			},
			Normal: vecmath.Vec3{Z: 1},
			Radius: 1,
		}
	}

	res, err := lod.CreateLOD(arraysOf([][]surfel.Surfel{pts}), target, k, bvh.None{})
	if err != nil {
		t.Fatalf("CreateLOD: %v", err)
	}
	if len(res.Surfels) != target {
		t.Fatalf("len(Surfels) = %d, want %d", len(res.Surfels), target)
	}
	for _, s := range res.Surfels {
		if s.Radius < 0 {
			t.Fatalf("surviving surfel has negative radius: %+v", s)
		}
	}
}

// Determinism: identical inputs across two
// independent CreateLOD calls must produce identical output, since tie
// breaks are keyed on SurfelId rather than iteration or map order.
func TestCreateLOD_Deterministic(t *testing.T) {
	build := func() []surfel.Array {
		rng := rand.New(rand.NewSource(42))
		pts := make([]surfel.Surfel, 200)
		for i := range pts {
			pts[i] = surfel.Surfel{
				Position: vecmath.Vec3{X: rng.Float64() * 10, Y: rng.Float64() * 10, Z: rng.Float64() * 10},
				Normal:   vecmath.Vec3{Z: 1},
				Radius:   1,
			}
		}
		return arraysOf([][]surfel.Surfel{pts})
	}

	res1, err := lod.CreateLOD(build(), 20, 6, bvh.None{})
	if err != nil {
		t.Fatalf("first CreateLOD: %v", err)
	}
	res2, err := lod.CreateLOD(build(), 20, 6, bvh.None{})
	if err != nil {
		t.Fatalf("second CreateLOD: %v", err)
	}

	if !reflect.DeepEqual(res1, res2) {
		t.Fatalf("CreateLOD is not deterministic across identical inputs:\nrun1=%+v\nrun2=%+v", res1, res2)
	}
}

func TestCreateLOD_EmptyInput(t *testing.T) {
	if _, err := lod.CreateLOD(nil, 0, 1, bvh.None{}); err != lod.ErrEmptyInput {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestCreateLOD_ZeroK(t *testing.T) {
	nodes := [][]surfel.Surfel{{{Radius: 1}}}
	if _, err := lod.CreateLOD(arraysOf(nodes), 0, 0, bvh.None{}); err != lod.ErrZeroK {
		t.Fatalf("err = %v, want ErrZeroK", err)
	}
}

func TestCreateLOD_TargetNotSmaller(t *testing.T) {
	nodes := [][]surfel.Surfel{{{Radius: 1}}}
	if _, err := lod.CreateLOD(arraysOf(nodes), 2, 1, bvh.None{}); err != lod.ErrTargetNotSmaller {
		t.Fatalf("err = %v, want ErrTargetNotSmaller", err)
	}
}

// Idempotent degenerate input: target == total means zero
// contractions run and the input passes through unchanged.
func TestCreateLOD_IdempotentWhenTargetEqualsTotal(t *testing.T) {
	nodes := [][]surfel.Surfel{{
		{Position: vecmath.Vec3{X: 1}, Normal: vecmath.Vec3{Z: 1}, Radius: 1},
		{Position: vecmath.Vec3{X: 2}, Normal: vecmath.Vec3{Z: 1}, Radius: 1},
	}}

	res, err := lod.CreateLOD(arraysOf(nodes), 2, 1, bvh.None{})
	if err != nil {
		t.Fatalf("CreateLOD: %v", err)
	}
	if len(res.Surfels) != 2 {
		t.Fatalf("len(Surfels) = %d, want 2", len(res.Surfels))
	}
	if res.ReductionError != 0 {
		t.Fatalf("ReductionError = %v, want 0 (no contractions performed)", res.ReductionError)
	}
}
