package repositories

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/electives/cutoffs/internal/app/models"
	"github.com/electives/cutoffs/internal/pkg/apperrors"
	"github.com/electives/cutoffs/internal/pkg/coursename"
	"github.com/electives/cutoffs/internal/pkg/validation"
)

//go:embed data/electives.yaml
var defaultRecords []byte

var validate = validation.New()

// electiveRecord is one row of the records file before the listing is parsed.
type electiveRecord struct {
	Category    models.Category `yaml:"category" validate:"required"`
	Listing     string          `yaml:"listing" validate:"required"`
	LowestCGPA  float64         `yaml:"lowestCgpa" validate:"cgpa"`
	HighestCGPA float64         `yaml:"highestCgpa" validate:"cgpa,gtefield=LowestCGPA"`
	Students    int             `yaml:"students" validate:"gte=0"`
}

type recordsFile struct {
	Electives []electiveRecord  `yaml:"electives"`
	FAQ       []models.FAQEntry `yaml:"faq"`
}

// ElectiveRepository is the read-only elective dataset. It is built once and
// never modified, so it can be shared between goroutines without locking.
type ElectiveRepository struct {
	electives []models.EligibleCourse
	faq       []models.FAQEntry
}

var defaultRepository = sync.OnceValues(func() (*ElectiveRepository, error) {
	return ParseElectiveRecords(defaultRecords)
})

// DefaultElectiveRepository returns the process-wide dataset built from the compiled-in records.
func DefaultElectiveRepository() (*ElectiveRepository, error) {
	return defaultRepository()
}

// NewElectiveRepository builds a repository from already structured courses.
func NewElectiveRepository(electives []models.EligibleCourse, faq []models.FAQEntry) *ElectiveRepository {
	return &ElectiveRepository{
		electives: slices.Clone(electives),
		faq:       slices.Clone(faq),
	}
}

// LoadElectiveRepository reads a records file from disk. An empty path selects
// the compiled-in records.
func LoadElectiveRepository(path string) (*ElectiveRepository, error) {
	if path == "" {
		return DefaultElectiveRepository()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	repo, err := ParseElectiveRecords(data)
	if err != nil {
		return nil, fmt.Errorf("records file %s: %w", path, err)
	}
	return repo, nil
}

// ParseElectiveRecords decodes and validates a YAML records file and runs every
// listing through the course name parser. File order is preserved.
func ParseElectiveRecords(data []byte) (*ElectiveRepository, error) {
	var file recordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatasetInvalid, err)
	}

	electives := make([]models.EligibleCourse, 0, len(file.Electives))
	for i, rec := range file.Electives {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: elective #%d (%q): %v", apperrors.ErrValidationFailed, i+1, rec.Listing, err)
		}

		listing := coursename.Parse(rec.Listing)
		electives = append(electives, models.EligibleCourse{
			Category:      rec.Category,
			Code:          listing.Code,
			Title:         listing.Title,
			Department:    listing.Department,
			LowestCGPA:    rec.LowestCGPA,
			HighestCGPA:   rec.HighestCGPA,
			EnrolledCount: rec.Students,
		})
	}

	return &ElectiveRepository{electives: electives, faq: file.FAQ}, nil
}

// All returns a copy of every elective in file order.
func (r *ElectiveRepository) All() []models.EligibleCourse {
	return slices.Clone(r.electives)
}

// Len returns the number of electives.
func (r *ElectiveRepository) Len() int {
	return len(r.electives)
}

// Each calls fn for every elective in file order without copying the dataset.
func (r *ElectiveRepository) Each(fn func(models.EligibleCourse)) {
	for _, e := range r.electives {
		fn(e)
	}
}

// FindByKey looks up a single elective by its natural key.
func (r *ElectiveRepository) FindByKey(key models.CourseKey) (models.EligibleCourse, error) {
	for _, e := range r.electives {
		if e.Key() == key {
			return e, nil
		}
	}
	return models.EligibleCourse{}, apperrors.NewCustomError(apperrors.ErrResourceNotFound,
		fmt.Sprintf("elective %s (%s) not found", key.Code, key.Category.Code())).
		WithDetails(map[string]interface{}{"code": key.Code, "category": key.Category.Code()})
}

// FAQ returns the FAQ entries shipped with the records.
func (r *ElectiveRepository) FAQ() []models.FAQEntry {
	return slices.Clone(r.faq)
}
