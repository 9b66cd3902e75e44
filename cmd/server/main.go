package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Kumungchi/vyzkumdata/internal/config"
	"github.com/Kumungchi/vyzkumdata/internal/report"
	"github.com/Kumungchi/vyzkumdata/ui"
)

func main() {
	// Load .env file if present (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	loader := report.NewLoader(cfg.Data)
	service := report.NewService(loader, cfg.Data.CacheTTL)

	app, err := ui.NewApp(ui.Config{Port: cfg.Server.Port}, service)
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	log.Printf("Starting report UI on http://localhost:%s", cfg.Server.Port)
	log.Fatal(app.Start())
}
