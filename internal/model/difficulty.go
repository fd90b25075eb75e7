package model

// DifficultyLevel is the ordinal difficulty tag of a quiz question.
type DifficultyLevel int

const (
	VeryEasy DifficultyLevel = 1
	Easy     DifficultyLevel = 2
	Medium   DifficultyLevel = 3
	Hard     DifficultyLevel = 4
	VeryHard DifficultyLevel = 5
)

func (d DifficultyLevel) IsValid() bool {
	return d >= VeryEasy && d <= VeryHard
}

func (d DifficultyLevel) String() string {
	switch d {
	case VeryEasy:
		return "very_easy"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case VeryHard:
		return "very_hard"
	default:
		return "unknown"
	}
}
