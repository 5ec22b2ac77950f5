package services

import (
	"fmt"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/electives/cutoffs/internal/app/models"
	"github.com/electives/cutoffs/internal/app/repositories"
)

const (
	// DefaultQuickSearchLimit is the number of rows the quick search overlay shows.
	DefaultQuickSearchLimit = 8
	// DefaultQueryCacheSize bounds the number of memoised listing queries.
	DefaultQueryCacheSize = 256

	statsCacheKey       = "stats"
	departmentsCacheKey = "departments"
)

// CategorySummary describes one elective category and how many electives it holds.
type CategorySummary struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Count    int             `json:"count"`
}

// ElectiveServiceOptions tunes the service caches.
type ElectiveServiceOptions struct {
	// QueryCacheSize is the LRU capacity for listing queries; 0 selects DefaultQueryCacheSize.
	QueryCacheSize int
	// StatsTTL is how long aggregate results are kept; 0 keeps them forever.
	StatsTTL time.Duration
}

// ElectiveService answers listing, search and statistics queries over the dataset.
// It is safe for concurrent use.
type ElectiveService struct {
	repo       *repositories.ElectiveRepository
	queryCache *lru.Cache[string, []models.EligibleCourse]
	statsCache *cache.Cache
	logger     zerolog.Logger
}

// NewElectiveService creates a new elective service instance
func NewElectiveService(repo *repositories.ElectiveRepository, opts ElectiveServiceOptions, logger zerolog.Logger) (*ElectiveService, error) {
	size := opts.QueryCacheSize
	if size <= 0 {
		size = DefaultQueryCacheSize
	}

	queryCache, err := lru.New[string, []models.EligibleCourse](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}

	var cleanup time.Duration
	if opts.StatsTTL > 0 {
		cleanup = 2 * opts.StatsTTL
	}

	return &ElectiveService{
		repo:       repo,
		queryCache: queryCache,
		statsCache: cache.New(opts.StatsTTL, cleanup),
		logger:     logger.With().Str("service", "electives").Logger(),
	}, nil
}

// Departments returns the distinct departments, sorted ascending.
func (s *ElectiveService) Departments() []string {
	if cached, found := s.statsCache.Get(departmentsCacheKey); found {
		return slices.Clone(cached.([]string))
	}

	depts := DistinctDepartments(s.repo.All())
	s.statsCache.SetDefault(departmentsCacheKey, depts)
	return slices.Clone(depts)
}

// Categories returns every category with its label and elective count.
func (s *ElectiveService) Categories() []CategorySummary {
	counts := make(map[models.Category]int)
	s.repo.Each(func(e models.EligibleCourse) {
		counts[e.Category]++
	})

	summaries := make([]CategorySummary, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		summaries = append(summaries, CategorySummary{Category: c, Label: c.Label(), Count: counts[c]})
	}
	return summaries
}

// Filter returns the electives matching f in dataset order.
func (s *ElectiveService) Filter(f ElectiveFilter) []models.EligibleCourse {
	return FilterElectives(s.repo.All(), f)
}

// Query filters and then sorts the dataset. Callers own the returned slice.
func (s *ElectiveService) Query(q ElectiveQuery) []models.EligibleCourse {
	key := q.cacheKey()
	if cached, ok := s.queryCache.Get(key); ok {
		return slices.Clone(cached)
	}

	result := s.Filter(q.ElectiveFilter)
	SortElectives(result, q.SortBy, q.Order)

	s.queryCache.Add(key, slices.Clone(result))
	s.logger.Debug().Str("query", key).Int("results", len(result)).Msg("Elective query computed")
	return result
}

// Elective returns the elective identified by key, or an apperrors.ErrResourceNotFound error.
func (s *ElectiveService) Elective(key models.CourseKey) (models.EligibleCourse, error) {
	return s.repo.FindByKey(key)
}

// QuickSearch returns at most limit electives matching term, in dataset order.
// An empty term returns the first limit electives.
func (s *ElectiveService) QuickSearch(term string, limit int) []models.EligibleCourse {
	if limit <= 0 {
		limit = DefaultQuickSearchLimit
	}

	results := make([]models.EligibleCourse, 0, limit)
	s.repo.Each(func(e models.EligibleCourse) {
		if len(results) >= limit {
			return
		}
		if term == "" || MatchesSearch(e, term) {
			results = append(results, e)
		}
	})
	return results
}

// Stats summarises the whole dataset, ignoring any filter.
func (s *ElectiveService) Stats() (models.ElectiveStats, error) {
	if cached, found := s.statsCache.Get(statsCacheKey); found {
		return cached.(models.ElectiveStats), nil
	}

	stats, err := ComputeStats(s.repo.All())
	if err != nil {
		return models.ElectiveStats{}, err
	}

	s.statsCache.SetDefault(statsCacheKey, stats)
	s.logger.Debug().Int("total", stats.TotalElectives).Msg("Elective statistics computed")
	return stats, nil
}

// Difficulty classifies a cutoff value.
func (s *ElectiveService) Difficulty(cutoff float64) models.DifficultyLevel {
	return models.ClassifyDifficulty(cutoff)
}

// FAQ returns the FAQ entries.
func (s *ElectiveService) FAQ() []models.FAQEntry {
	return s.repo.FAQ()
}
