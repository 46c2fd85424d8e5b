package engine

// Action is a user command shared by every front end.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionFaster
	ActionSlower
	ActionRandom
	ActionGlider
	ActionTest
	ActionClear
	ActionStep
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:   "none",
	ActionPause:  "pause",
	ActionFaster: "faster",
	ActionSlower: "slower",
	ActionRandom: "random",
	ActionGlider: "glider",
	ActionTest:   "test",
	ActionClear:  "clear",
	ActionStep:   "step",
	ActionQuit:   "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// KeyAction maps a typed character to its action. Both drivers use the same
// bindings: space pauses, r/g/t seed, c clears, +/= and - change speed, n
// steps once and q quits.
func KeyAction(r rune) Action {
	switch r {
	case ' ':
		return ActionPause
	case 'r', 'R':
		return ActionRandom
	case 'g', 'G':
		return ActionGlider
	case 't', 'T':
		return ActionTest
	case 'c', 'C':
		return ActionClear
	case '+', '=':
		return ActionFaster
	case '-', '_':
		return ActionSlower
	case 'n', 'N':
		return ActionStep
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
