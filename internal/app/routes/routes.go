package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/cgpatracker/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router gin.IRouter,
	gradebookController *controllers.GradebookController,
	reportController *controllers.ReportController,
	webController *controllers.WebController,
	healthController *controllers.HealthController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", healthController.Health)
	v1.GET("/scales", gradebookController.ListScales)
	v1.POST("/evaluations", gradebookController.EvaluateBatch)

	// Session gradebook routes
	gradebook := v1.Group("/gradebook")
	{
		gradebook.GET("", gradebookController.GetGradebook)
		gradebook.DELETE("", gradebookController.ResetGradebook)
		gradebook.POST("/subjects", gradebookController.AddSubject)
		gradebook.GET("/evaluation", gradebookController.EvaluateGradebook)

		// Downloads
		gradebook.GET("/report.pdf", reportController.DownloadPDF)
		gradebook.GET("/report.xlsx", reportController.DownloadXLSX)
		gradebook.GET("/chart.png", reportController.Chart)
	}

	// HTML forms
	router.GET("/", webController.Index)
	router.POST("/subjects", webController.AddSubject)
	router.POST("/reset", webController.Reset)
	router.GET("/batch", webController.BatchForm)
	router.POST("/batch", webController.BatchSubmit)
	router.POST("/batch/report.pdf", webController.BatchReport)
}
