package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DamienCastello/red-dawn-raid/internal/engine"
	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

// GameRepo is the persistence boundary the game service needs: load a whole
// snapshot by id, save a whole snapshot back.
type GameRepo interface {
	GetGameByID(id string) (*game.Game, error)
	SaveGame(g *game.Game) error
	ListGames() ([]*game.Game, error)
}

// GameService orchestrates load-act-save cycles around the engine. Access to
// a given game is serialized through a per-game mutex: every operation
// read-then-writes the whole aggregate, and unserialized writers could
// corrupt the single pending-transition slot or double-apply a forced pick.
type GameService struct {
	repo GameRepo
	eng  *engine.Engine

	locks sync.Map // game id -> *sync.Mutex
	now   func() time.Time
}

// NewGameService wires a game service over the given repository and engine.
func NewGameService(repo GameRepo, eng *engine.Engine) *GameService {
	return &GameService{repo: repo, eng: eng, now: time.Now}
}

func (s *GameService) lock(gameID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(gameID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *GameService) load(gameID string) (*game.Game, error) {
	g, err := s.repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Create persists a fresh game in the CREATED state.
func (s *GameService) Create() (*game.Game, error) {
	g := game.New(uuid.NewString())
	if err := s.repo.SaveGame(g); err != nil {
		return nil, err
	}
	return g, nil
}

// List returns every stored game snapshot.
func (s *GameService) List() ([]*game.Game, error) {
	return s.repo.ListGames()
}

// Get loads a game and gives the state machine a chance to progress before
// returning, so polling clients observe timely auto-advancement. The
// snapshot is persisted only when the tick actually mutated it.
func (s *GameService) Get(gameID string) (*game.Game, error) {
	mu := s.lock(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.load(gameID)
	if err != nil {
		return nil, err
	}
	if s.eng.Advance(g, s.now()) {
		if err := s.repo.SaveGame(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Join adds a player to a CREATED game, or updates their display name if
// they already joined.
func (s *GameService) Join(gameID, playerID, username string) (*game.Game, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	mu := s.lock(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.load(gameID)
	if err != nil {
		return nil, err
	}
	if g.Status != game.StatusCreated {
		return nil, ErrGameNotJoinable
	}
	if p := g.FindPlayer(playerID); p != nil {
		p.Username = username
	} else {
		g.Players = append(g.Players, game.NewPlayer(playerID, username))
	}
	if err := s.repo.SaveGame(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Start activates a created game (roles, hands, hit points) via the engine.
func (s *GameService) Start(gameID string) (*game.Game, error) {
	return s.act(gameID, func(g *game.Game) error {
		return s.eng.Start(g, s.now())
	})
}

// SelectLocation plays a location card for the given player.
func (s *GameService) SelectLocation(gameID, playerID, card string) (*game.Game, error) {
	return s.act(gameID, func(g *game.Game) error {
		return s.eng.SelectLocation(g, playerID, card, s.now())
	})
}

// Skip records a ready vote during the reveal window.
func (s *GameService) Skip(gameID, playerID string) (*game.Game, error) {
	return s.act(gameID, func(g *game.Game) error {
		return s.eng.Skip(g, playerID, s.now())
	})
}

// RollDice draws the caller's die for the current duel.
func (s *GameService) RollDice(gameID, playerID string) (*game.Game, error) {
	return s.act(gameID, func(g *game.Game) error {
		return s.eng.RollDice(g, playerID, s.now())
	})
}

// RollWeather performs the vampire's once-per-raid weather roll.
func (s *GameService) RollWeather(gameID, playerID string) (*game.Game, error) {
	return s.act(gameID, func(g *game.Game) error {
		return s.eng.RollWeather(g, playerID, s.now())
	})
}

// act runs one engine mutation under the per-game lock and persists the
// snapshot on success. Failed actions are not persisted.
func (s *GameService) act(gameID string, fn func(*game.Game) error) (*game.Game, error) {
	mu := s.lock(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.load(gameID)
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, err
	}
	if err := s.repo.SaveGame(g); err != nil {
		return nil, err
	}
	return g, nil
}
