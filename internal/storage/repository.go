package storage

import "github.com/DamienCastello/red-dawn-raid/internal/game"

// Repository is the persistence surface for games, accounts, sessions and
// lobby membership.
type Repository interface {
	// Game snapshots (whole-aggregate load/save).
	GetGameByID(id string) (*game.Game, error)
	SaveGame(g *game.Game) error
	ListGames() ([]*game.Game, error)

	// Accounts.
	CreateUser(u *User) error
	GetUserByID(id string) (*User, error)
	GetUserByUsername(username string) (*User, error)

	// Opaque session tokens.
	SaveToken(t *AuthToken) error
	GetToken(token string) (*AuthToken, error)

	// Lobby membership (one game per user).
	UpsertMembership(userID, gameID, username string) error
	FindMembershipGame(userID string) (string, error)
	IsMember(userID, gameID string) (bool, error)
}
