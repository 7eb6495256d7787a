package main

import (
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/config"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/content"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/logging"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/rng"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid game configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

func loadContentOrExit(eventsPath, endingsPath string) ([]game.Event, map[game.EndingID]game.Ending) {
	pool, err := content.LoadEvents(eventsPath)
	if err != nil {
		logging.Fatal("Missing or invalid event content", err, logging.Fields{"events_path": eventsPath})
	}
	endings, err := content.LoadEndings(endingsPath)
	if err != nil {
		logging.Fatal("Missing or invalid ending content", err, logging.Fields{"endings_path": endingsPath})
	}
	return pool, endings
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": dbPath})
	}
	return storage.NewSQLiteRepository(db)
}

func newSource(seed int64) rng.Source {
	if seed != 0 {
		return rng.NewSeeded(seed)
	}
	return rng.New()
}
