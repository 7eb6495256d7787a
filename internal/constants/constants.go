package constants

// Centralized constants for env keys, routes and shared field names.
const (
	// Environment variable keys
	EnvConfigPath  = "DELAY_CONFIG"
	EnvEventsPath  = "DELAY_EVENTS"
	EnvEndingsPath = "DELAY_ENDINGS"
	EnvDBPath      = "DELAY_DB"
	EnvAddress     = "DELAY_ADDR"
	EnvSeed        = "DELAY_SEED"
	EnvDebug       = "DELAY_DEBUG"

	// Default file locations (relative to the working directory)
	DefaultConfigPath  = "./data/game-config.json"
	DefaultEventsPath  = "./data/events.json"
	DefaultEndingsPath = "./data/endings.json"
	DefaultDBPath      = "./data/delay.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix    = "/api"
	RouteGames        = "/games"
	RouteGameByID     = "/games/:gameID"
	RouteEventChoice  = "/games/:gameID/event-choice"
	RouteRecordChoice = "/games/:gameID/record-choice"
	RouteAdvance      = "/games/:gameID/advance"
	RouteEndingStats  = "/ending-stats"
	RouteVersion      = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrGameNotFound        = "Game not found"
	ErrGameAlreadyFinished = "Game already finished"
	ErrWrongPhase          = "Input not valid for the current phase"
	ErrUnknownChoice       = "Unknown choice id"
	ErrUnknownAction       = "Unknown record action"
	ErrFailedStartGame     = "Failed to start game"
	ErrFailedFetchStats    = "Failed to fetch ending stats"
)

// Logging field names
const (
	LogFieldGameID = "game_id"
	LogFieldRound  = "round"
	LogFieldPhase  = "phase"
	LogFieldEnding = "ending_id"
	LogFieldAddr   = "addr"
)
