package storage

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a gorm connection in the Repository interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func encodeGame(g *game.Game) (string, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeGame(stateJSON string) (*game.Game, error) {
	var g game.Game
	if err := json.Unmarshal([]byte(stateJSON), &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *sqliteRepository) GetGameByID(id string) (*game.Game, error) {
	var rec GameRecord
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return decodeGame(rec.StateJSON)
}

// SaveGame upserts the whole snapshot, preserving the existing row when
// present so repeated saves never produce duplicate records.
func (r *sqliteRepository) SaveGame(g *game.Game) error {
	state, err := encodeGame(g)
	if err != nil {
		return err
	}
	var rec GameRecord
	err = r.db.First(&rec, "id = ?", g.ID).Error
	switch {
	case err == nil:
		rec.StateJSON = state
		return r.db.Save(&rec).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.Create(&GameRecord{ID: g.ID, StateJSON: state}).Error
	default:
		return err
	}
}

func (r *sqliteRepository) ListGames() ([]*game.Game, error) {
	var recs []GameRecord
	if err := r.db.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*game.Game, 0, len(recs))
	for _, rec := range recs {
		g, err := decodeGame(rec.StateJSON)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *sqliteRepository) CreateUser(u *User) error {
	return r.db.Create(u).Error
}

func (r *sqliteRepository) GetUserByID(id string) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *sqliteRepository) GetUserByUsername(username string) (*User, error) {
	var u User
	if err := r.db.First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *sqliteRepository) SaveToken(t *AuthToken) error {
	return r.db.Create(t).Error
}

func (r *sqliteRepository) GetToken(token string) (*AuthToken, error) {
	var t AuthToken
	if err := r.db.First(&t, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *sqliteRepository) UpsertMembership(userID, gameID, username string) error {
	var m Membership
	err := r.db.First(&m, "user_id = ? AND game_id = ?", userID, gameID).Error
	switch {
	case err == nil:
		m.Username = username
		return r.db.Save(&m).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.Create(&Membership{
			ID:       uuid.NewString(),
			UserID:   userID,
			GameID:   gameID,
			Username: username,
		}).Error
	default:
		return err
	}
}

func (r *sqliteRepository) FindMembershipGame(userID string) (string, error) {
	var m Membership
	err := r.db.First(&m, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return m.GameID, nil
}

func (r *sqliteRepository) IsMember(userID, gameID string) (bool, error) {
	var count int64
	err := r.db.Model(&Membership{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
