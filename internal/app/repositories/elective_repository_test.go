package repositories

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electives/cutoffs/internal/app/models"
	"github.com/electives/cutoffs/internal/pkg/apperrors"
	"github.com/electives/cutoffs/internal/pkg/coursename"
)

func TestDefaultElectiveRepository_ReproducesTable(t *testing.T) {
	repo, err := DefaultElectiveRepository()
	require.NoError(t, err)

	all := repo.All()
	require.Len(t, all, 139)

	counts := map[models.Category]int{}
	for _, e := range all {
		counts[e.Category]++
	}
	assert.Equal(t, 37, counts[models.OpenElective])
	assert.Equal(t, 51, counts[models.ProgramElectiveI])
	assert.Equal(t, 51, counts[models.ProgramElectiveII])

	first := all[0]
	assert.Equal(t, models.EligibleCourse{
		Category:      models.OpenElective,
		Code:          "AAE 4311",
		Title:         "INTRODUCTION TO AEROSPACE ENGINEERING",
		Department:    "AAE",
		LowestCGPA:    6.75,
		HighestCGPA:   8.98,
		EnrolledCount: 70,
	}, first)

	last := all[len(all)-1]
	assert.Equal(t, "PHY 4402", last.Code)
	assert.Equal(t, "ASTROPHYSICAL PROCESSES", last.Title)
	assert.Equal(t, models.ProgramElectiveII, last.Category)
}

func TestDefaultElectiveRepository_RecordInvariants(t *testing.T) {
	repo, err := DefaultElectiveRepository()
	require.NoError(t, err)

	seen := map[models.CourseKey]bool{}
	repo.Each(func(e models.EligibleCourse) {
		assert.NotEmpty(t, e.Code)
		assert.Equal(t, coursename.Department(e.Code), e.Department, e.Code)
		assert.GreaterOrEqual(t, e.LowestCGPA, 0.0)
		assert.LessOrEqual(t, e.LowestCGPA, e.HighestCGPA, e.Code)
		assert.LessOrEqual(t, e.HighestCGPA, 10.0)
		assert.GreaterOrEqual(t, e.EnrolledCount, 0)
		assert.False(t, seen[e.Key()], "duplicate key %v", e.Key())
		seen[e.Key()] = true
	})
}

func TestDefaultElectiveRepository_IsShared(t *testing.T) {
	a, err := DefaultElectiveRepository()
	require.NoError(t, err)
	b, err := LoadElectiveRepository("")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestElectiveRepository_AllReturnsCopy(t *testing.T) {
	repo := NewElectiveRepository([]models.EligibleCourse{
		{Category: models.OpenElective, Code: "AAE 4311", Title: "Aero"},
	}, nil)

	got := repo.All()
	got[0].Title = "changed"

	assert.Equal(t, "Aero", repo.All()[0].Title)
	assert.Equal(t, 1, repo.Len())
}

func TestElectiveRepository_FindByKey(t *testing.T) {
	repo, err := DefaultElectiveRepository()
	require.NoError(t, err)

	got, err := repo.FindByKey(models.CourseKey{Code: "ICT 4401", Category: models.ProgramElectiveI})
	require.NoError(t, err)
	assert.Equal(t, "Artificial Intelligence", got.Title)

	_, err = repo.FindByKey(models.CourseKey{Code: "ICT 4401", Category: models.OpenElective})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "ICT 4401", custom.Details["code"])
	assert.Equal(t, "OE", custom.Details["category"])
}

func TestElectiveRepository_FAQ(t *testing.T) {
	repo, err := DefaultElectiveRepository()
	require.NoError(t, err)

	faq := repo.FAQ()
	require.Len(t, faq, 2)
	assert.Equal(t, "difficulty", faq[0].ID)
	assert.Equal(t, "allocation", faq[1].ID)
	assert.Contains(t, faq[1].Answer, "4th semester CGPA")
}

func TestParseElectiveRecords_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "highest below lowest",
			yaml:    `electives: [{category: OE, listing: "AAE 1 : X", lowestCgpa: 8, highestCgpa: 7, students: 1}]`,
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "cgpa above ten",
			yaml:    `electives: [{category: OE, listing: "AAE 1 : X", lowestCgpa: 8, highestCgpa: 10.5, students: 1}]`,
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "negative students",
			yaml:    `electives: [{category: OE, listing: "AAE 1 : X", lowestCgpa: 1, highestCgpa: 2, students: -1}]`,
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "missing listing",
			yaml:    `electives: [{category: OE, lowestCgpa: 1, highestCgpa: 2, students: 1}]`,
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "unknown category",
			yaml:    `electives: [{category: PE III, listing: "AAE 1 : X", lowestCgpa: 1, highestCgpa: 2, students: 1}]`,
			wantErr: apperrors.ErrDatasetInvalid,
		},
		{
			name:    "not yaml",
			yaml:    "electives: [",
			wantErr: apperrors.ErrDatasetInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseElectiveRecords([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoadElectiveRepository_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "electives.yaml")
	content := `
electives:
  - {category: "PE I", listing: "CSE 4405 : ARTIFICIAL INTELLIGENCE", lowestCgpa: 4.44, highestCgpa: 9.73, students: 97}
  - {category: "PE II", listing: "Seminar without code", lowestCgpa: 5, highestCgpa: 6, students: 3}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	repo, err := LoadElectiveRepository(path)
	require.NoError(t, err)

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "CSE", all[0].Department)
	assert.Equal(t, "", all[1].Code)
	assert.Equal(t, coursename.OtherDepartment, all[1].Department)
	assert.Empty(t, repo.FAQ())

	_, err = LoadElectiveRepository(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
