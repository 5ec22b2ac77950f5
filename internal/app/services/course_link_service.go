package services

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/electives/cutoffs/internal/pkg/apperrors"
)

// DefaultCoursePageBaseURL is where externally hosted course pages live.
const DefaultCoursePageBaseURL = "https://courses.coolstuff.work/course/"

// coursePageCodes lists the codes that have a page on the course site.
var coursePageCodes = map[string]struct{}{
	"AAE 4311": {}, "AAE 4313": {}, "AAE 4401": {}, "AAE 4403": {}, "AAE 4405": {}, "AAE 4406": {},
	"AAE 4413": {}, "AAE 4414": {}, "AAE 4417": {}, "AAE 4418": {}, "AAE 4421": {}, "AAE 4422": {},
	"BIO 4402": {}, "BIO 4403": {}, "BIO 4405": {}, "BIO 4407": {}, "BME 4315": {}, "BME 4402": {},
	"BME 4404": {}, "BME 4405": {}, "BME 4406": {}, "CHE 4311": {}, "CHE 4312": {}, "CHE 4401": {},
	"CHE 4402": {}, "CHE 4406": {}, "CHE 4407": {}, "CHE 4409": {}, "CHE 4410": {}, "CHM 4312": {},
	"CIE 4313": {}, "CIE 4314": {}, "CIE 4316": {}, "CIE 4401": {}, "CIE 4402": {}, "CIE 4409": {},
	"CIE 4410": {}, "CIE 4417": {}, "CIE 4418": {}, "DSE 4401": {}, "DSE 4402": {}, "DSE 4405": {},
	"DSE 4406": {}, "ECE 4311": {}, "ECE 4406": {}, "ECE 4409": {}, "ECE 4411": {}, "ECE 4416": {},
	"ECE 4421": {}, "ECE 4424": {}, "ELE 4312": {}, "ELE 4409": {}, "ELE 4415": {}, "ELE 4416": {},
	"HUM 4322": {}, "HUM 4323": {}, "HUM 4329": {}, "HUM 4401": {}, "HUM 4402": {}, "HUM 4408": {},
	"HUM 4409": {}, "HUM 4411": {}, "HUM 4420": {}, "HUM 4424": {}, "ICE 4316": {}, "ICE 4402": {},
	"ICT 4401": {}, "ICT 4402": {}, "ICT 4414": {}, "MAT 4405": {}, "MAT 4407": {}, "MIE 4401": {},
	"MIE 4402": {}, "MIE 4408": {}, "MIE 4409": {}, "MIE 4421": {},
}

// CourseLinkService maps course codes to their external detail pages.
// It only builds URLs; it never contacts the site.
type CourseLinkService struct {
	baseURL string
}

// NewCourseLinkService creates a resolver rooted at baseURL. An empty baseURL
// selects DefaultCoursePageBaseURL.
func NewCourseLinkService(baseURL string) (*CourseLinkService, error) {
	if baseURL == "" {
		baseURL = DefaultCoursePageBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid course page base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("course page base URL %q must be absolute", baseURL)
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &CourseLinkService{baseURL: baseURL}, nil
}

// HasPage reports whether code has an external page. Matching is exact.
func (s *CourseLinkService) HasPage(code string) bool {
	_, ok := coursePageCodes[code]
	return ok
}

// Resolve returns the page URL for code, or false when there is none.
func (s *CourseLinkService) Resolve(code string) (string, bool) {
	if !s.HasPage(code) {
		return "", false
	}
	return s.baseURL + url.PathEscape(code), true
}

// ResolveOrError is Resolve for callers that report a missing page as an error.
func (s *CourseLinkService) ResolveOrError(code string) (string, error) {
	link, ok := s.Resolve(code)
	if !ok {
		return "", apperrors.NewResourceNotFoundError(fmt.Sprintf("no course page for %q", code))
	}
	return link, nil
}

// AllowedCodes returns every code with a page, sorted.
func (s *CourseLinkService) AllowedCodes() []string {
	codes := make([]string, 0, len(coursePageCodes))
	for code := range coursePageCodes {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
