package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/czpress/article-api/config"
	"github.com/czpress/article-api/internal/handler"
	"github.com/czpress/article-api/internal/pkg/database"
	"github.com/czpress/article-api/internal/pkg/render"
	"github.com/czpress/article-api/internal/repository"
	"github.com/czpress/article-api/internal/router"
	"github.com/czpress/article-api/internal/service"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	cfg := config.GetConfig()

	if cfg.Database.Type != "mysql" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.DSN), 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}

	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	contentRepo := repository.NewContentRepository(db)
	authorRepo := repository.NewAuthorRepository(db)
	metaRepo := repository.NewMetaRepository(db)
	volumeRepo := repository.NewVolumeRepository(db)
	termRepo := repository.NewTermRepository(db)

	// the custom-field provider is an optional collaborator: left nil when
	// the feature is disabled, the subtitle resolver falls back to item meta
	var fields service.CustomFieldProvider
	if cfg.Features.CustomFields {
		if err := database.MigrateCustomFields(db); err != nil {
			log.Fatalf("Failed to migrate custom fields: %v", err)
		}
		fields = repository.NewCustomFieldRepository(db)
	}

	articleService := service.NewArticleService(
		contentRepo, authorRepo, metaRepo, volumeRepo, termRepo,
		fields, render.NewPipeline(),
	)
	articleHandler := handler.NewArticleHandler(articleService)

	r := router.Setup(cfg, articleHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
