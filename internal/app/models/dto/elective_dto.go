package dto

import (
	"github.com/electives/cutoffs/internal/app/models"
)

// CoursePageResolver finds the external page of a course code
type CoursePageResolver interface {
	Resolve(code string) (string, bool)
}

// ElectiveListRequest holds the query parameters of the elective listing
type ElectiveListRequest struct {
	Category   string `form:"category" example:"PE I"`
	Department string `form:"department" example:"ICT"`
	Search     string `form:"search" example:"machine"`
	Sort       string `form:"sort" example:"cutoff" enums:"name,cutoff,students,difficulty"`
	Order      string `form:"order" example:"asc" enums:"asc,desc"`
	Page       int    `form:"page" binding:"omitempty,min=1" example:"1"`
	Size       int    `form:"size" binding:"omitempty,min=1,max=200" example:"50"`
}

// QuickSearchRequest holds the query parameters of the quick search overlay
type QuickSearchRequest struct {
	Query string `form:"q" example:"artificial"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=50" example:"8"`
}

// DifficultyRequest holds the cutoff to classify
type DifficultyRequest struct {
	Cutoff *float64 `form:"cutoff" binding:"required,cgpa" example:"7.5"`
}

// CourseLinkRequest holds the course code to resolve. An empty code lists every linked code.
type CourseLinkRequest struct {
	Code string `form:"code" example:"AAE 4311"`
}

// ElectiveKeyRequest identifies one elective by its path parameters
type ElectiveKeyRequest struct {
	Category string `uri:"category" binding:"required" example:"PE I"`
	Code     string `uri:"code" binding:"required" example:"ICT 4401"`
}

// DifficultyResponse is the difficulty band of a cutoff
type DifficultyResponse struct {
	Level string `json:"level" example:"Hard"`
	Color string `json:"color" example:"orange"`
}

// ElectiveResponse is an elective as presented to clients
type ElectiveResponse struct {
	Category      models.Category    `json:"category" swaggertype:"string" example:"PE I"`
	CategoryLabel string             `json:"categoryLabel" example:"Program Elective I (PE I)"`
	Code          string             `json:"code" example:"ICT 4401"`
	Title         string             `json:"title" example:"Artificial Intelligence"`
	Department    string             `json:"department" example:"ICT"`
	LowestCGPA    float64            `json:"lowestCgpa" example:"3.67"`
	HighestCGPA   float64            `json:"highestCgpa" example:"9.48"`
	Spread        float64            `json:"spread" example:"5.81"`
	Students      int                `json:"students" example:"101"`
	Difficulty    DifficultyResponse `json:"difficulty"`
	CoursePageURL string             `json:"coursePageUrl,omitempty" example:"https://courses.coolstuff.work/course/ICT%204401"`
	AnchorID      string             `json:"anchorId" example:"elective-ICT 4401-PE I"`
}

// ElectiveListResponse is a page of electives
type ElectiveListResponse struct {
	Electives  []ElectiveResponse `json:"electives"`
	Pagination PaginationInfo     `json:"pagination"`
}

// CategoryResponse describes one category
type CategoryResponse struct {
	Category models.Category `json:"category" swaggertype:"string" example:"OE"`
	Label    string          `json:"label" example:"Open Elective (OE)"`
	Count    int             `json:"count" example:"37"`
}

// DepartmentListResponse lists department codes
type DepartmentListResponse struct {
	Departments []string `json:"departments"`
}

// CourseLinkResponse is the external page of a course
type CourseLinkResponse struct {
	Code string `json:"code" example:"AAE 4311"`
	URL  string `json:"url" example:"https://courses.coolstuff.work/course/AAE%204311"`
}

// CourseLinkListResponse lists the codes that have a course page
type CourseLinkListResponse struct {
	Codes []string `json:"codes"`
	Count int      `json:"count" example:"76"`
}

// NewDifficultyResponse converts a difficulty level
func NewDifficultyResponse(level models.DifficultyLevel) DifficultyResponse {
	return DifficultyResponse{Level: level.Level, Color: level.Color}
}

// FromEligibleCourse converts an elective, attaching its course page when links knows one
func FromEligibleCourse(e models.EligibleCourse, links CoursePageResolver) ElectiveResponse {
	resp := ElectiveResponse{
		Category:      e.Category,
		CategoryLabel: e.CategoryLabel(),
		Code:          e.Code,
		Title:         e.Title,
		Department:    e.Department,
		LowestCGPA:    e.LowestCGPA,
		HighestCGPA:   e.HighestCGPA,
		Spread:        e.Spread(),
		Students:      e.EnrolledCount,
		Difficulty:    NewDifficultyResponse(e.Difficulty()),
		AnchorID:      e.AnchorID(),
	}
	if links != nil {
		if url, ok := links.Resolve(e.Code); ok {
			resp.CoursePageURL = url
		}
	}
	return resp
}

// FromEligibleCourses converts a list of electives
func FromEligibleCourses(electives []models.EligibleCourse, links CoursePageResolver) []ElectiveResponse {
	out := make([]ElectiveResponse, len(electives))
	for i, e := range electives {
		out[i] = FromEligibleCourse(e, links)
	}
	return out
}
