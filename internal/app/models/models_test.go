package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/electives/cutoffs/internal/pkg/apperrors"
)

func TestClassifyDifficulty_Boundaries(t *testing.T) {
	tests := []struct {
		cutoff float64
		want   string
		color  string
	}{
		{9.86, DifficultyVeryHard, "red"},
		{8.00, DifficultyVeryHard, "red"},
		{7.99, DifficultyHard, "orange"},
		{7.00, DifficultyHard, "orange"},
		{6.99, DifficultyMedium, "yellow"},
		{6.00, DifficultyMedium, "yellow"},
		{5.00, DifficultyEasy, "green"},
		{4.99, DifficultyVeryEasy, "emerald"},
		{0, DifficultyVeryEasy, "emerald"},
	}

	for _, tt := range tests {
		got := ClassifyDifficulty(tt.cutoff)
		assert.Equal(t, tt.want, got.Level, "cutoff %.2f", tt.cutoff)
		assert.Equal(t, tt.color, got.Color, "cutoff %.2f", tt.cutoff)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   Category
		wantOK bool
	}{
		{"OE", OpenElective, true},
		{"oe", OpenElective, true},
		{"PE I", ProgramElectiveI, true},
		{" pe  ii ", ProgramElectiveII, true},
		{"ProgramElectiveI", ProgramElectiveI, true},
		{"", 0, false},
		{"all", 0, false},
		{"ALL", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok, err := ParseCategory(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, _, err := ParseCategory("PE III")
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCategory_LabelMatchesCode(t *testing.T) {
	assert.Equal(t, "Open Elective (OE)", OpenElective.Label())
	assert.Equal(t, "Program Elective I (PE I)", ProgramElectiveI.Label())
	assert.Equal(t, "Program Elective II (PE II)", ProgramElectiveII.Label())

	for _, c := range Categories() {
		assert.Contains(t, c.Label(), "("+c.Code()+")")
	}
	assert.False(t, Category(0).IsValid())
	assert.Equal(t, "Category(0)", Category(0).String())
}

func TestCategory_Encoding(t *testing.T) {
	course := EligibleCourse{Category: ProgramElectiveII, Code: "CSE 4408", Title: "MACHINE LEARNING", Department: "CSE"}
	raw, err := json.Marshal(course)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"category":"PE II"`)

	var decoded EligibleCourse
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, course, decoded)

	var fromYAML struct {
		Category Category `yaml:"category"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("category: PE I\n"), &fromYAML))
	assert.Equal(t, ProgramElectiveI, fromYAML.Category)

	err = yaml.Unmarshal([]byte("category: all\n"), &fromYAML)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestEligibleCourse_Derived(t *testing.T) {
	course := EligibleCourse{
		Category:    OpenElective,
		Code:        "HUM 4323",
		LowestCGPA:  8.87,
		HighestCGPA: 9.98,
	}

	assert.Equal(t, "Open Elective (OE)", course.CategoryLabel())
	assert.Equal(t, CourseKey{Code: "HUM 4323", Category: OpenElective}, course.Key())
	assert.Equal(t, "elective-HUM 4323-OE", course.AnchorID())
	assert.InDelta(t, 1.11, course.Spread(), 1e-9)
	assert.Equal(t, DifficultyVeryHard, course.Difficulty().Level)
}

func TestElectiveStats_CountFor(t *testing.T) {
	s := ElectiveStats{OECount: 1, PE1Count: 2, PE2Count: 3}
	assert.Equal(t, 1, s.CountFor(OpenElective))
	assert.Equal(t, 2, s.CountFor(ProgramElectiveI))
	assert.Equal(t, 3, s.CountFor(ProgramElectiveII))
	assert.Equal(t, 0, s.CountFor(Category(0)))
}
