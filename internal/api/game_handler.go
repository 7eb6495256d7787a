package api

import (
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/service"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/storage"
)

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	mgr  *service.Manager
	repo storage.Repository
}

// NewGameHandler creates a new GameHandler with the given session manager
// and results repository.
func NewGameHandler(mgr *service.Manager, repo storage.Repository) *GameHandler {
	return &GameHandler{mgr: mgr, repo: repo}
}
