package storage

import "time"

// GameRecord stores a whole game aggregate as one JSON snapshot. The core
// treats games as copy-in/copy-out; no partial-field persistence.
type GameRecord struct {
	ID        string `gorm:"primaryKey"`
	StateJSON string `gorm:"column:state_json;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GameRecord) TableName() string { return "game_records" }

// User is an account identity (distinct from the in-game Player).
type User struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string
	CreatedAt    time.Time
}

// AuthToken is an opaque bearer token issued at login.
type AuthToken struct {
	Token     string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	CreatedAt time.Time
}

// Membership links an account to the single game it participates in.
type Membership struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex:idx_membership_user_game,priority:1;index"`
	GameID    string `gorm:"uniqueIndex:idx_membership_user_game,priority:2;index"`
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
