package main

import (
	"fmt"
	"log"

	"medclaims/internal/agent"
	"medclaims/internal/config"
	"medclaims/internal/handler"
	openaiclient "medclaims/internal/llm/openai"
	"medclaims/internal/port"
	"medclaims/internal/router"
	"medclaims/internal/service"
	"medclaims/internal/storage/disk"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize the completion provider and agents
	completer := openaiclient.NewClient(&cfg.OpenAI)
	classifier := agent.NewClassifier(completer)
	extractor := agent.NewTextExtractor(completer)
	fields := agent.FieldExtractors(completer)

	// Optional upload archive
	var archiver port.FileArchiver
	if cfg.Upload.ArchiveEnabled {
		archiver = disk.NewStore(cfg.Upload.ArchiveDir)
	}

	// Initialize services
	claimSvc := service.NewClaimService(classifier, extractor, fields, archiver, cfg.Upload.MaxFileSizeMB)

	// Initialize handlers
	claimH := handler.NewClaimHandler(claimSvc)
	healthH := handler.NewHealthHandler(cfg.OpenAI.APIKey != "")

	// Setup router
	r := router.Setup(claimH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
