package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/electives/cutoffs/internal/app/models"
	"github.com/electives/cutoffs/internal/app/models/dto"
	"github.com/electives/cutoffs/internal/app/services"
	"github.com/electives/cutoffs/internal/middleware"
	"github.com/electives/cutoffs/internal/pkg/apperrors"
	"github.com/electives/cutoffs/internal/pkg/helpers"
)

// ElectiveController serves the elective listing, search and statistics endpoints
type ElectiveController struct {
	electiveService   *services.ElectiveService
	courseLinkService *services.CourseLinkService
}

// NewElectiveController creates a new ElectiveController
func NewElectiveController(electiveService *services.ElectiveService, courseLinkService *services.CourseLinkService) *ElectiveController {
	return &ElectiveController{
		electiveService:   electiveService,
		courseLinkService: courseLinkService,
	}
}

// ListElectives handles the filtered, sorted and paginated elective listing
// @Summary List electives
// @Description Lists electives filtered by category, department and search term. Defaults to lowest cutoff first.
// @Tags electives
// @Produce json
// @Param category query string false "Category code (OE, PE I, PE II) or all"
// @Param department query string false "Department code or all"
// @Param search query string false "Case-insensitive match on title, code or department"
// @Param sort query string false "Sort key" Enums(name, cutoff, students, difficulty)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 200)"
// @Success 200 {object} dto.APIResponse{data=dto.ElectiveListResponse} "Electives retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter or sort parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /electives [get]
func (c *ElectiveController) ListElectives(ctx *gin.Context) {
	var req dto.ElectiveListRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	query, err := buildElectiveQuery(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	electives := c.electiveService.Query(query)
	if req.Size == 0 {
		req.Size = helpers.DefaultPageSize
	}
	page, pagination := helpers.Paginate(electives, req.Page, req.Size)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ElectiveListResponse{
		Electives:  dto.FromEligibleCourses(page, c.courseLinkService),
		Pagination: pagination,
	}))
}

func buildElectiveQuery(req dto.ElectiveListRequest) (services.ElectiveQuery, error) {
	category, _, err := models.ParseCategory(req.Category)
	if err != nil {
		return services.ElectiveQuery{}, err
	}

	// The dashboard opens on the easiest electives first
	sortBy := services.SortByCutoff
	if req.Sort != "" {
		if sortBy, err = services.ParseSortKey(req.Sort); err != nil {
			return services.ElectiveQuery{}, err
		}
	}

	order, err := services.ParseSortOrder(req.Order)
	if err != nil {
		return services.ElectiveQuery{}, err
	}

	return services.ElectiveQuery{
		ElectiveFilter: services.ElectiveFilter{
			Category:   category,
			Department: req.Department,
			Search:     req.Search,
		},
		SortBy: sortBy,
		Order:  order,
	}, nil
}

// GetElective returns a single elective by category and code
// @Summary Get an elective
// @Description Looks up one elective by its category and course code. The same code may appear in several categories.
// @Tags electives
// @Produce json
// @Param category path string true "Category code (OE, PE I, PE II)"
// @Param code path string true "Course code, e.g. ICT 4401"
// @Success 200 {object} dto.APIResponse{data=dto.ElectiveResponse} "Elective retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown or missing category"
// @Failure 404 {object} dto.ErrorResponse "Elective not found"
// @Router /electives/{category}/{code} [get]
func (c *ElectiveController) GetElective(ctx *gin.Context) {
	var req dto.ElectiveKeyRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	category, ok, err := models.ParseCategory(req.Category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("a single category is required, one of OE, PE I, PE II"))
		return
	}

	elective, err := c.electiveService.Elective(models.CourseKey{Code: req.Code, Category: category})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromEligibleCourse(elective, c.courseLinkService)))
}

// QuickSearch handles the quick search overlay
// @Summary Quick search electives
// @Description Returns the first matches for a search term in dataset order, or the first electives when the term is empty
// @Tags electives
// @Produce json
// @Param q query string false "Search term"
// @Param limit query int false "Maximum results (1-50, default 8)"
// @Success 200 {object} dto.APIResponse{data=[]dto.ElectiveResponse} "Matches retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Router /electives/quick-search [get]
func (c *ElectiveController) QuickSearch(ctx *gin.Context) {
	var req dto.QuickSearchRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	matches := c.electiveService.QuickSearch(req.Query, req.Limit)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromEligibleCourses(matches, c.courseLinkService)))
}

// GetDepartments lists the departments offering electives
// @Summary List departments
// @Tags electives
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentListResponse} "Departments retrieved successfully"
// @Router /departments [get]
func (c *ElectiveController) GetDepartments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DepartmentListResponse{
		Departments: c.electiveService.Departments(),
	}))
}

// GetCategories lists the elective categories with their sizes
// @Summary List categories
// @Tags electives
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CategoryResponse} "Categories retrieved successfully"
// @Router /categories [get]
func (c *ElectiveController) GetCategories(ctx *gin.Context) {
	summaries := c.electiveService.Categories()
	categories := make([]dto.CategoryResponse, len(summaries))
	for i, s := range summaries {
		categories[i] = dto.CategoryResponse{Category: s.Category, Label: s.Label, Count: s.Count}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(categories))
}

// GetStats returns dataset-wide statistics
// @Summary Elective statistics
// @Description Aggregates over the whole dataset regardless of any filter
// @Tags electives
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.ElectiveStats} "Statistics retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "No electives loaded"
// @Router /stats [get]
func (c *ElectiveController) GetStats(ctx *gin.Context) {
	stats, err := c.electiveService.Stats()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// ClassifyDifficulty maps a cutoff to its difficulty band
// @Summary Classify a cutoff
// @Tags electives
// @Produce json
// @Param cutoff query number true "CGPA cutoff between 0 and 10"
// @Success 200 {object} dto.APIResponse{data=dto.DifficultyResponse} "Difficulty band"
// @Failure 400 {object} dto.ErrorResponse "Missing or out of range cutoff"
// @Router /difficulty [get]
func (c *ElectiveController) ClassifyDifficulty(ctx *gin.Context) {
	var req dto.DifficultyRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	level := c.electiveService.Difficulty(*req.Cutoff)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDifficultyResponse(level)))
}

// ResolveCourseLink returns the external course page of a code, or every linked code when none is given
// @Summary Resolve a course page
// @Tags electives
// @Produce json
// @Param code query string false "Course code, e.g. AAE 4311"
// @Success 200 {object} dto.APIResponse{data=dto.CourseLinkResponse} "Course page"
// @Success 200 {object} dto.APIResponse{data=dto.CourseLinkListResponse} "Linked codes when code is omitted"
// @Failure 404 {object} dto.ErrorResponse "No page for this code"
// @Router /course-links [get]
func (c *ElectiveController) ResolveCourseLink(ctx *gin.Context) {
	var req dto.CourseLinkRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	if req.Code == "" {
		codes := c.courseLinkService.AllowedCodes()
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CourseLinkListResponse{Codes: codes, Count: len(codes)}))
		return
	}

	url, err := c.courseLinkService.ResolveOrError(req.Code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CourseLinkResponse{Code: req.Code, URL: url}))
}

// GetFAQ returns the frequently asked questions
// @Summary Frequently asked questions
// @Tags electives
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.FAQEntry} "FAQ entries"
// @Router /faq [get]
func (c *ElectiveController) GetFAQ(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.electiveService.FAQ()))
}
