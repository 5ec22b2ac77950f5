package models

import (
	"fmt"
	"math"
)

// EligibleCourse is one elective offering from a past allocation round.
// Values are copied out of the dataset, so changing one never affects the dataset.
type EligibleCourse struct {
	Category      Category `json:"category"`
	Code          string   `json:"code"`
	Title         string   `json:"title"`
	Department    string   `json:"department"`
	LowestCGPA    float64  `json:"lowestCgpa"`
	HighestCGPA   float64  `json:"highestCgpa"`
	EnrolledCount int      `json:"students"`
}

// CourseKey is the natural key of an elective. The same code may appear once per category.
type CourseKey struct {
	Code     string
	Category Category
}

// CategoryLabel returns the display label of the course's category.
func (e EligibleCourse) CategoryLabel() string {
	return e.Category.Label()
}

// Key returns the (code, category) pair identifying the course.
func (e EligibleCourse) Key() CourseKey {
	return CourseKey{Code: e.Code, Category: e.Category}
}

// AnchorID is the element id clients scroll to when a course is picked from quick search.
func (e EligibleCourse) AnchorID() string {
	return fmt.Sprintf("elective-%s-%s", e.Code, e.Category.Code())
}

// Spread is the width of the allocated CGPA range, rounded to two decimals like the cutoffs.
func (e EligibleCourse) Spread() float64 {
	return math.Round((e.HighestCGPA-e.LowestCGPA)*100) / 100
}

// Difficulty classifies the course by its cutoff.
func (e EligibleCourse) Difficulty() DifficultyLevel {
	return ClassifyDifficulty(e.LowestCGPA)
}
