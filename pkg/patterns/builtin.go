package patterns

// Glider moves one cell diagonally (+1,+1) every four generations.
func Glider() Pattern {
	return MustPattern("glider", "Classic glider pattern that moves diagonally", parseRows(
		".O.",
		"..O",
		"OOO",
	))
}

// Beacon is a period-2 oscillator made of two diagonal blocks.
func Beacon() Pattern {
	return MustPattern("beacon", "Oscillating beacon pattern with period 2", parseRows(
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	))
}

// Blinker is a horizontal line of three cells.
func Blinker() Pattern {
	return MustPattern("blinker", "Simple oscillating pattern with period 2", parseRows(
		"OOO",
	))
}

// Toad is a period-2 oscillator.
func Toad() Pattern {
	return MustPattern("toad", "Oscillating toad pattern with period 2", parseRows(
		".OOO",
		"OOO.",
	))
}

// GliderGun is the Gosper glider gun. It is not registered by default.
func GliderGun() Pattern {
	return MustPattern("glider_gun", "Gosper glider gun - creates gliders", parseRows(
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	))
}

const testSize = 20

// TestCard is a 20x20 coordinate check: corner markers, a centre cross and
// border ticks every five cells.
func TestCard() Pattern {
	mask := make([][]bool, testSize)
	for y := range mask {
		mask[y] = make([]bool, testSize)
	}
	last := testSize - 1
	mask[0][0], mask[0][last], mask[last][0], mask[last][last] = true, true, true, true

	c := testSize / 2
	for i := -2; i <= 2; i++ {
		mask[c][c+i] = true
		mask[c+i][c] = true
	}

	for i := 0; i < testSize; i += 5 {
		mask[0][i], mask[last][i] = true, true
		mask[i][0], mask[i][last] = true, true
	}
	return MustPattern("test", "Test pattern for coordinate verification", mask)
}

func builtins() []Pattern {
	return []Pattern{Glider(), Beacon(), Blinker(), Toad(), TestCard()}
}
