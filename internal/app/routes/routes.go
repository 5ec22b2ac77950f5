package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/electives/cutoffs/internal/app/controllers"
	"github.com/electives/cutoffs/internal/app/models/dto"
	"github.com/electives/cutoffs/internal/pkg/logger"
	"github.com/electives/cutoffs/internal/pkg/validation"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, electiveController *controllers.ElectiveController) {
	if err := validation.RegisterGinRules(); err != nil {
		logger.Error().Err(err).Msg("Failed to register validation rules")
	}

	// API version group
	v1 := router.Group("/api/v1")

	electives := v1.Group("/electives")
	{
		electives.GET("", electiveController.ListElectives)
		electives.GET("/quick-search", electiveController.QuickSearch)
		electives.GET("/:category/:code", electiveController.GetElective)
	}

	v1.GET("/departments", electiveController.GetDepartments)
	v1.GET("/categories", electiveController.GetCategories)
	v1.GET("/stats", electiveController.GetStats)
	v1.GET("/difficulty", electiveController.ClassifyDifficulty)
	v1.GET("/course-links", electiveController.ResolveCourseLink)
	v1.GET("/faq", electiveController.GetFAQ)

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "time": time.Now()})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found").WithDetails(c.Request.URL.Path)))
	})
}
