package main

import (
	"log"

	"go.uber.org/zap"

	"account-service/cmd"
	"account-service/internal/data/repository"
	"account-service/internal/wire"
	"account-service/pkg/database"
	"account-service/pkg/utils"
)

func main() {
	// Config is validated up front: a missing or malformed value aborts
	// before any request is served.
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger("logs/", false)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application", zap.Int("port", config.Port))

	db, err := database.InitDB(config.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, config, logger)

	logger.Info("Starting HTTP server", zap.Int("port", config.Port))
	cmd.APIServer(app.Router, config.Port)
}
