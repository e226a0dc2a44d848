package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"list-authors/cmd/api/handlers"
	"list-authors/cmd/api/middleware"
	_ "list-authors/docs"
	"list-authors/metrics"
	"list-authors/services"
)

// Dependencies are the services the HTTP layer is wired to.
type Dependencies struct {
	AuthorList *services.AuthorListService
	Editor     *services.EditorService
	Metrics    *metrics.Recorder
	Ping       func(ctx context.Context) error
}

func New(deps Dependencies) *gin.Engine {
	if err := handlers.RegisterValidations(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.RequestLogging())

	r.GET("/health", handlers.HealthHandler(deps.Ping))
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/blocks/list-authors/render", handlers.RenderHandler(deps.AuthorList))
	r.GET("/author/:slug/feed", handlers.AuthorFeedHandler(deps.AuthorList))

	// v1 routes (block editor data layer)
	api := r.Group("/api/v1")
	{
		api.GET("/authors", handlers.ListAuthorsHandler(deps.AuthorList))
		api.GET("/editor/bootstrap", handlers.EditorBootstrapHandler(deps.AuthorList))
		api.POST("/editor/preview", handlers.EditorPreviewHandler(deps.Editor))
		api.DELETE("/editor/preview/:clientId", handlers.EditorForgetHandler(deps.Editor))
	}

	return r
}

// WithCORS lets the editor call the API from the listed origins.
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", handlers.HeaderViewerID, handlers.HeaderViewerCaps, "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	}).Handler(h)
}
