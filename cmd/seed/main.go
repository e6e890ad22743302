package main

import (
	"flag"
	"log"

	"k8s.io/klog/v2"

	"github.com/czpress/article-api/config"
	"github.com/czpress/article-api/internal/pkg/database"
	"github.com/czpress/article-api/internal/seed"
)

func main() {
	klog.InitFlags(nil)
	fixture := flag.String("fixture", "fixtures/content.yaml", "path to the yaml content fixture")
	flag.Parse()
	defer klog.Flush()

	cfg := config.GetConfig()

	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := seed.LoadFile(db, *fixture); err != nil {
		log.Fatalf("Failed to load fixture %s: %v", *fixture, err)
	}

	log.Printf("Fixture %s loaded into %s database", *fixture, cfg.Database.Type)
}
