package services

import (
	"github.com/rs/zerolog"

	"github.com/electives/cutoffs/internal/app/repositories"
)

// Services groups the application services.
type Services struct {
	Electives   *ElectiveService
	CourseLinks *CourseLinkService
}

// NewServices wires the services on top of the repositories.
func NewServices(repos *repositories.Repositories, opts ElectiveServiceOptions, coursePageBaseURL string, logger zerolog.Logger) (*Services, error) {
	electives, err := NewElectiveService(repos.ElectiveRepository, opts, logger)
	if err != nil {
		return nil, err
	}

	links, err := NewCourseLinkService(coursePageBaseURL)
	if err != nil {
		return nil, err
	}

	return &Services{
		Electives:   electives,
		CourseLinks: links,
	}, nil
}
