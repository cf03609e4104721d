package game

// Difficulty selects the symbol alphabet and the visible keyboard layout
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyCount
)

// Alphabets are kept in keyboard order so generation indices line up
// with the on-screen key rows
const (
	digitSymbols  = "1234567890"
	letterSymbols = "QWERTYUIOPASDFGHJKLZXCVBNM"
)

// Alphabet returns the symbol set sequences are drawn from
func (d Difficulty) Alphabet() []rune {
	switch d {
	case DifficultyEasy:
		return []rune(digitSymbols)
	case DifficultyMedium:
		return []rune(letterSymbols)
	default:
		return []rune(digitSymbols + letterSymbols)
	}
}

// Contains reports whether the symbol is a member of the alphabet
func (d Difficulty) Contains(sym rune) bool {
	for _, r := range d.Alphabet() {
		if r == sym {
			return true
		}
	}
	return false
}

// AcceptsTypedInput reports whether physical-keyboard symbol entry is
// honored on this tier. Easy and medium play through the on-screen
// keyboard only; typed symbols are dropped by the dispatcher
func (d Difficulty) AcceptsTypedInput() bool {
	return d == DifficultyHard
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	}
	return "unknown"
}
