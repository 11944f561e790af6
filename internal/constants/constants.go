// Package constants centralizes routes, env keys and shared messages.
package constants

// HTTP headers
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteAuthSignup = "/auth/signup"
	RouteAuthLogin  = "/auth/login"

	RouteGames              = "/games"
	RouteGameByID           = "/games/:gameID"
	RouteGameJoin           = "/games/:gameID/join"
	RouteGameStart          = "/games/:gameID/start"
	RouteGameSelectLocation = "/games/:gameID/select-location"
	RouteGameSkip           = "/games/:gameID/skip"
	RouteGameRollDice       = "/games/:gameID/roll-dice"
	RouteGameRollWeather    = "/games/:gameID/roll-weather"

	RouteVersion = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest = "Invalid request"
	ErrCardRequired   = "card required"
	ErrAuthRequired   = "Authentication required"
	ErrInternal       = "Internal error"
)

// Logging field names
const (
	LogFieldGameID = "game_id"
	LogFieldUserID = "user_id"
	LogFieldAddr   = "addr"
	LogFieldPhase  = "phase"
)
