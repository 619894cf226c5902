package life

import (
	"errors"
	"slices"
	"testing"

	"lifegrid/pkg/core"
	"lifegrid/pkg/pattern"
)

func mustLife(t *testing.T, w, h int) *Life {
	t.Helper()
	l, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return l
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("New(%d, %d) err = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestCreateAndClearYieldEmptyGrid(t *testing.T) {
	l := mustLife(t, 4, 3)
	l.Set(1, 1, true)
	l.Set(3, 2, true)
	l.Clear()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if l.Get(x, y) {
				t.Fatalf("cell (%d,%d) alive after Clear", x, y)
			}
		}
	}
	if got := l.Population(); got != 0 {
		t.Fatalf("population after Clear = %d, want 0", got)
	}
}

func TestSetGetWrapInvariant(t *testing.T) {
	l := mustLife(t, 5, 4)
	l.Set(-1, -1, true)
	if !l.Get(4, 3) {
		t.Fatal("Set(-1,-1) did not wrap to (4,3)")
	}
	l.Set(7, 9, true)
	if !l.Get(2, 1) {
		t.Fatal("Set(7,9) did not wrap to (2,1)")
	}
	if !l.Get(-3, -7) {
		t.Fatal("Get(-3,-7) did not wrap to (2,1)")
	}
}

func TestSeedWrapsCoordinates(t *testing.T) {
	l := mustLife(t, 5, 4)
	l.Set(0, 1, true) // Seed must clear this implicitly
	l.Seed([]core.Coord{{X: -1, Y: -1}, {X: 5, Y: 4}})

	want := []core.Coord{{X: 0, Y: 0}, {X: 4, Y: 3}}
	if got := l.Coords(); !slices.Equal(got, want) {
		t.Fatalf("Coords() = %v, want %v", got, want)
	}
}

func TestBlockStillLife(t *testing.T) {
	l := mustLife(t, 6, 6)
	seed := []core.Coord{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}}
	l.Seed(seed)

	for i := 0; i < 10; i++ {
		l.Step()
		if got := l.Coords(); !slices.Equal(got, seed) {
			t.Fatalf("block changed after %d steps: %v", i+1, got)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := mustLife(t, 5, 5)
	l.Seed([]core.Coord{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}})

	l.Step()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := l.Get(x, y); alive != shouldBeAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	l.Step()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := l.Get(x, y); alive != shouldBeAlive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestGliderTranslation(t *testing.T) {
	l := mustLife(t, 16, 16)
	l.Seed([]core.Coord{
		{X: 6, Y: 5}, {X: 7, Y: 6}, {X: 5, Y: 7}, {X: 6, Y: 7}, {X: 7, Y: 7},
	})

	for i := 0; i < 4; i++ {
		l.Step()
	}

	// A glider translates by (1,1) every four generations.
	want := []core.Coord{
		{X: 7, Y: 6}, {X: 8, Y: 7}, {X: 6, Y: 8}, {X: 7, Y: 8}, {X: 8, Y: 8},
	}
	slices.SortFunc(want, compareCoords)
	if got := l.Coords(); !slices.Equal(got, want) {
		t.Fatalf("glider after 4 steps = %v, want %v", got, want)
	}
}

func compareCoords(a, b core.Coord) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}

func TestDiehardDiesAtGeneration130(t *testing.T) {
	l := mustLife(t, 128, 128)
	p, ok := pattern.Builtin("diehard")
	if !ok {
		t.Fatal("diehard missing from built-in library")
	}
	l.Seed(pattern.Centered(p.Coords, 128, 128))

	for i := 0; i < 129; i++ {
		l.Step()
	}
	if l.Population() == 0 {
		t.Fatal("diehard died before generation 130")
	}
	l.Step()
	if got := l.Population(); got != 0 {
		t.Fatalf("diehard population at generation 130 = %d, want 0", got)
	}
}

func TestDegenerateGridsDoNotCrash(t *testing.T) {
	// On a 1x1 torus every neighbor offset wraps onto the cell itself,
	// so a live cell sees 8 neighbors and dies.
	l := mustLife(t, 1, 1)
	l.Set(0, 0, true)
	l.Step()
	if l.Get(0, 0) {
		t.Fatal("1x1 live cell should die with 8 wrapped self-neighbors")
	}

	// On a 5x1 torus a lone cell's vertical neighbors wrap onto its own
	// row: it survives with 2 neighbors and both horizontal neighbors
	// are born with 3.
	l = mustLife(t, 5, 1)
	l.Seed([]core.Coord{{X: 2, Y: 0}})
	l.Step()
	want := []core.Coord{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	if got := l.Coords(); !slices.Equal(got, want) {
		t.Fatalf("5x1 after one step = %v, want %v", got, want)
	}
}

func TestSerialAndParallelStepsAgree(t *testing.T) {
	serial := DefaultConfig()
	serial.Workers = 1
	parallel := DefaultConfig()
	parallel.Workers = 4

	// Default 256x256 sits at the sharding threshold, so the parallel
	// configuration really exercises the errgroup path.
	a, err := NewWithConfig(serial)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWithConfig(parallel)
	if err != nil {
		t.Fatal(err)
	}

	a.Reset(7)
	b.Reset(7)
	for i := 0; i < 8; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("serial and parallel grids diverged at step %d", i+1)
		}
	}
}

func TestConfigRuleSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.Rule = "B36/S23"
	l, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Rule().String(); got != "B36/S23" {
		t.Fatalf("Rule() = %q, want B36/S23", got)
	}

	cfg.Rule = "nonsense"
	if _, err := NewWithConfig(cfg); !errors.Is(err, core.ErrUnsupportedRule) {
		t.Fatalf("NewWithConfig with bad rule err = %v, want ErrUnsupportedRule", err)
	}
}

func TestRegistryFactories(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life not registered")
	}
	sim := factory(map[string]string{"w": "10", "h": "8"})
	if got := sim.Size(); got.W != 10 || got.H != 8 {
		t.Fatalf("size = %dx%d, want 10x8", got.W, got.H)
	}
	if sim.Name() != "life" {
		t.Fatalf("name = %q, want life", sim.Name())
	}

	factory, ok = core.Sims()["highlife"]
	if !ok {
		t.Fatal("highlife not registered")
	}
	hl := factory(nil)
	if hl.Name() != "highlife" {
		t.Fatalf("name = %q, want highlife", hl.Name())
	}
	if got := hl.(*Life).Rule().String(); got != "B36/S23" {
		t.Fatalf("highlife rule = %q, want B36/S23", got)
	}
}
