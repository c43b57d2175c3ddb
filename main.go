package main

import (
	"go.uber.org/zap"

	"github.com/Archi44444/NeuroSaathi/internal/config"
	"github.com/Archi44444/NeuroSaathi/internal/database"
	"github.com/Archi44444/NeuroSaathi/internal/logging"
	"github.com/Archi44444/NeuroSaathi/internal/models"
	"github.com/Archi44444/NeuroSaathi/internal/router"
)

func main() {
	log, err := logging.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	database.Init(log)

	// Assessment content (reading passage, word list) served to
	// clients at startup.
	bank, err := models.LoadTaskBank(config.Conf.Tasks.File)
	if err != nil {
		log.Fatal("Failed to load task bank", zap.Error(err))
	}

	r := router.Setup(log, bank)

	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
