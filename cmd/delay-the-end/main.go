package main

import (
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/api"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/constants"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/logging"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/service"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

// environment collects runtime settings; file paths default to the data/
// directory next to the binary.
type environment struct {
	ConfigPath  string `env:"DELAY_CONFIG" envDefault:"./data/game-config.json"`
	EventsPath  string `env:"DELAY_EVENTS" envDefault:"./data/events.json"`
	EndingsPath string `env:"DELAY_ENDINGS" envDefault:"./data/endings.json"`
	DBPath      string `env:"DELAY_DB" envDefault:"./data/delay.db"`
	// Address overrides the config file's server.address when set.
	Address string `env:"DELAY_ADDR"`
	// Seed fixes the randomness source for reproducible runs; 0 seeds from
	// the clock.
	Seed int64 `env:"DELAY_SEED"`
}

func main() {
	var envCfg environment
	if err := env.Parse(&envCfg); err != nil {
		logging.Fatal("Failed to parse environment", err, nil)
	}

	cfg := loadConfigOrExit(envCfg.ConfigPath)
	pool, endings := loadContentOrExit(envCfg.EventsPath, envCfg.EndingsPath)
	repo := createRepositoryOrExit(envCfg.DBPath)

	mgr := service.NewManager(cfg.Rules, pool, endings, repo, newSource(envCfg.Seed))
	handler := api.NewGameHandler(mgr, repo)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteEndingStats, handler.EndingStats)

		apiRoutes.POST(constants.RouteGames, handler.CreateGame)
		apiRoutes.GET(constants.RouteGameByID, handler.GetGame)
		apiRoutes.POST(constants.RouteEventChoice, handler.SubmitEventChoice)
		apiRoutes.POST(constants.RouteRecordChoice, handler.SubmitRecordChoice)
		apiRoutes.POST(constants.RouteAdvance, handler.AdvanceRound)
	}

	addr := cfg.ServerAddress
	if envCfg.Address != "" {
		addr = envCfg.Address
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
