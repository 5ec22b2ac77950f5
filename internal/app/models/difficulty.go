package models

// DifficultyLevel is a display label derived from a cutoff. It describes how
// competitive allocation was, not how hard the subject is.
type DifficultyLevel struct {
	Level string `json:"level"`
	Color string `json:"color"`
}

// Difficulty labels
const (
	DifficultyVeryHard = "Very Hard"
	DifficultyHard     = "Hard"
	DifficultyMedium   = "Medium"
	DifficultyEasy     = "Easy"
	DifficultyVeryEasy = "Very Easy"
)

// thresholds are checked top to bottom, first match wins.
var difficultyThresholds = []struct {
	min   float64
	level DifficultyLevel
}{
	{8, DifficultyLevel{Level: DifficultyVeryHard, Color: "red"}},
	{7, DifficultyLevel{Level: DifficultyHard, Color: "orange"}},
	{6, DifficultyLevel{Level: DifficultyMedium, Color: "yellow"}},
	{5, DifficultyLevel{Level: DifficultyEasy, Color: "green"}},
}

var veryEasy = DifficultyLevel{Level: DifficultyVeryEasy, Color: "emerald"}

// ClassifyDifficulty maps a cutoff CGPA to its difficulty label.
func ClassifyDifficulty(cutoff float64) DifficultyLevel {
	for _, t := range difficultyThresholds {
		if cutoff >= t.min {
			return t.level
		}
	}
	return veryEasy
}
