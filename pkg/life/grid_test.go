package life

import (
	"slices"
	"testing"
)

func alive(g *Grid) map[[2]int]bool {
	cells := map[[2]int]bool{}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Cell(x, y) {
				cells[[2]int{x, y}] = true
			}
		}
	}
	return cells
}

func expectAlive(t *testing.T, g *Grid, want map[[2]int]bool) {
	t.Helper()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			got := g.Cell(x, y)
			if got != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestNextStateTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := NextState(true, n); got != wantAlive {
			t.Fatalf("live cell with %d neighbours: got %v, expected %v", n, got, wantAlive)
		}
		wantBirth := n == 3
		if got := NextState(false, n); got != wantBirth {
			t.Fatalf("dead cell with %d neighbours: got %v, expected %v", n, got, wantBirth)
		}
	}
}

func TestLoneCellDies(t *testing.T) {
	g := New(3, 3)
	g.Set(1, 1, true)
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("expected empty grid, got population %d", g.Population())
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := New(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	g.Step()
	expectAlive(t, g, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	g.Step()
	expectAlive(t, g, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})

	if g.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", g.Generation())
	}
}

func TestGliderTranslates(t *testing.T) {
	g := New(12, 12)
	start := [][2]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
	for _, c := range start {
		g.Set(c[0], c[1], true)
	}
	for i := 0; i < 4; i++ {
		g.Step()
	}
	want := map[[2]int]bool{}
	for _, c := range start {
		want[[2]int{c[0] + 1, c[1] + 1}] = true
	}
	expectAlive(t, g, want)
}

func TestBlockIsStill(t *testing.T) {
	g := New(4, 4)
	g.Set(1, 1, true)
	g.Set(2, 1, true)
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	before := alive(g)
	g.Step()
	expectAlive(t, g, before)
}

func TestCornerNeighborsDoNotWrap(t *testing.T) {
	g := New(6, 4)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.Set(x, y, true)
		}
	}
	corners := [][2]int{{0, 0}, {5, 0}, {0, 3}, {5, 3}}
	for _, c := range corners {
		if n := g.LiveNeighbors(c[0], c[1]); n != 3 {
			t.Fatalf("corner (%d,%d) counted %d neighbours, expected 3", c[0], c[1], n)
		}
	}
	edges := [][2]int{{2, 0}, {0, 2}, {5, 1}, {3, 3}}
	for _, c := range edges {
		if n := g.LiveNeighbors(c[0], c[1]); n != 5 {
			t.Fatalf("edge (%d,%d) counted %d neighbours, expected 5", c[0], c[1], n)
		}
	}
	if n := g.LiveNeighbors(2, 2); n != 8 {
		t.Fatalf("interior cell counted %d neighbours, expected 8", n)
	}
}

func TestOppositeCornerIsNotANeighbor(t *testing.T) {
	g := New(5, 5)
	g.Set(4, 4, true)
	g.Set(4, 0, true)
	g.Set(0, 4, true)
	if n := g.LiveNeighbors(0, 0); n != 0 {
		t.Fatalf("expected no wrapped neighbours, got %d", n)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	g := New(4, 3)
	g.Set(0, 0, true)
	g.Set(3, 2, true)
	g.Clear()
	first := g.Cells()
	g.Clear()
	second := g.Cells()
	for y := range first {
		if !slices.Equal(first[y], second[y]) {
			t.Fatalf("row %d differs after second clear", y)
		}
		for x, v := range first[y] {
			if v {
				t.Fatalf("cell (%d,%d) still alive after clear", x, y)
			}
		}
	}
}

func TestOutOfBoundsIsIgnored(t *testing.T) {
	g := New(3, 3)
	g.Set(1, 1, true)
	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-5, -5}, {100, 100}}
	for _, c := range coords {
		g.Set(c[0], c[1], true)
		g.Toggle(c[0], c[1])
		if g.Cell(c[0], c[1]) {
			t.Fatalf("out-of-range cell (%d,%d) reported alive", c[0], c[1])
		}
	}
	expectAlive(t, g, map[[2]int]bool{{1, 1}: true})
}

func TestToggle(t *testing.T) {
	g := New(2, 2)
	g.Toggle(1, 0)
	if !g.Cell(1, 0) {
		t.Fatal("toggle should revive a dead cell")
	}
	g.Toggle(1, 0)
	if g.Cell(1, 0) {
		t.Fatal("second toggle should kill the cell")
	}
}

func TestZeroSizedGrid(t *testing.T) {
	g := New(0, -3)
	if g.Width() != 0 || g.Height() != 0 {
		t.Fatalf("expected 0x0 grid, got %dx%d", g.Width(), g.Height())
	}
	g.Set(0, 0, true)
	g.Toggle(0, 0)
	g.Step()
	g.Clear()
	if g.Cell(0, 0) || g.Population() != 0 || len(g.Cells()) != 0 {
		t.Fatal("zero sized grid must stay empty")
	}
}

func TestCellsIsACopy(t *testing.T) {
	g := New(3, 2)
	g.Set(2, 1, true)
	rows := g.Cells()
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("expected 2 rows of 3, got %d rows", len(rows))
	}
	if !rows[1][2] {
		t.Fatal("view should reflect live cell at (2,1)")
	}
	rows[0][0] = true
	if g.Cell(0, 0) {
		t.Fatal("mutating the view must not change the grid")
	}
}

func TestFill(t *testing.T) {
	g := New(3, 2)
	g.Set(0, 0, true)
	g.Set(2, 1, true)
	buf := g.Fill(nil)
	want := []uint8{1, 0, 0, 0, 0, 1}
	if !slices.Equal(buf, want) {
		t.Fatalf("fill = %v, expected %v", buf, want)
	}
	g.Clear()
	again := g.Fill(buf)
	if &again[0] != &buf[0] {
		t.Fatal("fill should reuse a large enough buffer")
	}
	if slices.Contains(again, 1) {
		t.Fatal("fill should overwrite stale values")
	}
}

func TestStepIgnoresStaleBackBuffer(t *testing.T) {
	g := New(6, 6)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		g.Set(c[0], c[1], true)
	}
	g.Step() // back buffer now holds the block
	g.Clear()
	g.Set(3, 3, true)
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("lone cell over a stale back buffer left population %d", g.Population())
	}
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("cleared board revived %d cells", g.Population())
	}
}
