package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/electives/cutoffs/internal/app/models"
	"github.com/electives/cutoffs/internal/pkg/apperrors"
)

// SortKey selects the field electives are ordered by.
type SortKey string

// Sort keys
const (
	SortByName     SortKey = "name"
	SortByCutoff   SortKey = "cutoff"
	SortByStudents SortKey = "students"
	// SortByDifficulty orders by cutoff; a higher cutoff is a harder allocation.
	SortByDifficulty SortKey = "difficulty"
)

// SortOrder is the sort direction.
type SortOrder string

// Sort orders
const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// AllDepartmentsValue means no department constraint.
const AllDepartmentsValue = "all"

// ParseSortKey validates a sort key. Empty input yields SortByName.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case "":
		return SortByName, nil
	case SortByName, SortByCutoff, SortByStudents, SortByDifficulty:
		return key, nil
	}
	return "", apperrors.NewValidationError("sort",
		fmt.Sprintf("unknown sort key %q, expected name, cutoff, students or difficulty", s))
}

// ParseSortOrder validates a sort order. Empty input yields SortAscending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case "":
		return SortAscending, nil
	case SortAscending, SortDescending:
		return order, nil
	}
	return "", apperrors.NewValidationError("order",
		fmt.Sprintf("unknown sort order %q, expected asc or desc", s))
}

// ElectiveFilter holds the optional predicates of a listing. Zero values impose no constraint.
type ElectiveFilter struct {
	Category   models.Category
	Department string
	Search     string
}

// ElectiveQuery is a filter plus an ordering.
type ElectiveQuery struct {
	ElectiveFilter
	SortBy SortKey
	Order  SortOrder
}

func (q ElectiveQuery) cacheKey() string {
	return fmt.Sprintf("%d|%s|%s|%s|%s",
		q.Category, normalizeDepartment(q.Department), strings.ToLower(q.Search), q.SortBy, q.Order)
}

func normalizeDepartment(dept string) string {
	dept = strings.ToUpper(strings.TrimSpace(dept))
	if strings.EqualFold(dept, AllDepartmentsValue) {
		return ""
	}
	return dept
}

// Matches reports whether a course satisfies every predicate of the filter.
func (f ElectiveFilter) Matches(e models.EligibleCourse) bool {
	if f.Category != 0 && e.Category != f.Category {
		return false
	}
	if dept := normalizeDepartment(f.Department); dept != "" && e.Department != dept {
		return false
	}
	if f.Search != "" && !MatchesSearch(e, f.Search) {
		return false
	}
	return true
}

// MatchesSearch is a case-insensitive substring match on title, code or department.
func MatchesSearch(e models.EligibleCourse, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Code), term) ||
		strings.Contains(strings.ToLower(e.Department), term)
}

// FilterElectives returns the electives matching f, keeping their order.
func FilterElectives(electives []models.EligibleCourse, f ElectiveFilter) []models.EligibleCourse {
	out := make([]models.EligibleCourse, 0, len(electives))
	for _, e := range electives {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// SortElectives orders electives in place. The sort is stable, so ties keep
// their previous relative order, and the direction is applied to the
// comparison result rather than by reversing afterwards.
func SortElectives(electives []models.EligibleCourse, key SortKey, order SortOrder) {
	dir := 1
	if order == SortDescending {
		dir = -1
	}

	var compare func(a, b models.EligibleCourse) int
	switch key {
	case SortByCutoff, SortByDifficulty:
		compare = func(a, b models.EligibleCourse) int { return cmp.Compare(a.LowestCGPA, b.LowestCGPA) }
	case SortByStudents:
		compare = func(a, b models.EligibleCourse) int { return cmp.Compare(a.EnrolledCount, b.EnrolledCount) }
	default:
		// collate.Collator is not safe for concurrent use, so each sort gets its own.
		col := collate.New(language.English)
		compare = func(a, b models.EligibleCourse) int { return col.CompareString(a.Title, b.Title) }
	}

	slices.SortStableFunc(electives, func(a, b models.EligibleCourse) int {
		return compare(a, b) * dir
	})
}

// DistinctDepartments returns the departments present, sorted ascending.
func DistinctDepartments(electives []models.EligibleCourse) []string {
	depts := make([]string, 0)
	seen := make(map[string]struct{})
	for _, e := range electives {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		depts = append(depts, e.Department)
	}
	slices.Sort(depts)
	return depts
}

// ComputeStats summarises electives. Minimum and maximum cutoff are undefined
// for an empty slice, which is reported as apperrors.ErrEmptyDataset.
func ComputeStats(electives []models.EligibleCourse) (models.ElectiveStats, error) {
	if len(electives) == 0 {
		return models.ElectiveStats{}, apperrors.ErrEmptyDataset
	}

	stats := models.ElectiveStats{
		TotalElectives: len(electives),
		LowestCutoff:   electives[0].LowestCGPA,
		HighestCutoff:  electives[0].LowestCGPA,
		Departments:    len(DistinctDepartments(electives)),
	}

	for _, e := range electives {
		switch e.Category {
		case models.OpenElective:
			stats.OECount++
		case models.ProgramElectiveI:
			stats.PE1Count++
		case models.ProgramElectiveII:
			stats.PE2Count++
		}
		stats.LowestCutoff = min(stats.LowestCutoff, e.LowestCGPA)
		stats.HighestCutoff = max(stats.HighestCutoff, e.LowestCGPA)
		stats.TotalStudents += e.EnrolledCount
	}

	return stats, nil
}
