package web

import (
	"embed"
	"html/template"
	"log/slog"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// SetupRoutes sets up the web and API routes
func SetupRoutes(handler *Handler, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(Recovery())
	router.Use(Logger(logger))
	router.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")))

	router.GET("/health", handler.HealthCheck)

	// Screens
	router.GET("/", handler.Dashboard)
	router.POST("/repositories", handler.AddRepository)
	router.GET("/repositories/*repository", handler.Repository)

	api := router.Group("/api")
	{
		api.GET("/saved", handler.GetSaved)
		api.GET("/repository/*repository", handler.GetRepository)
		api.GET("/issues/*repository", handler.GetIssues)
	}

	return router
}
