// @title Skill Quiz API
// @version 1.0
// @description Backend for the skill quiz platform: quiz questions, score submission and AI-generated learning journeys.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"skill_quiz_backend/internal/app"
	"skill_quiz_backend/internal/config"
	"skill_quiz_backend/pkg/configwatcher"
	"skill_quiz_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup (even in release mode)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	// 配额与限流参数支持热更新
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		application.ApplyConfig(newCfg)
	})

	application.Run()
}
