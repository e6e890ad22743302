package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/czpress/article-api/config"
	"github.com/czpress/article-api/internal/handler"
	"github.com/czpress/article-api/internal/middleware"
)

func Setup(cfg *config.Config, articleHandler *handler.ArticleHandler) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1", gzip.Gzip(gzip.DefaultCompression))
	{
		articles := api.Group("/articles")
		{
			articles.GET("/by-slug/:slug", articleHandler.GetBySlug)
			articles.GET("/by-id/:id", articleHandler.GetByID)
		}
	}

	return r
}
