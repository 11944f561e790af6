package service

// MembershipRepo is the persistence boundary for lobby membership rows.
type MembershipRepo interface {
	UpsertMembership(userID, gameID, username string) error
	FindMembershipGame(userID string) (string, error)
	IsMember(userID, gameID string) (bool, error)
}

// PlayerService tracks which account participates in which game. A user may
// be in at most one game at a time.
type PlayerService struct {
	repo MembershipRepo
}

// NewPlayerService wires a player service over the given repository.
func NewPlayerService(repo MembershipRepo) *PlayerService {
	return &PlayerService{repo: repo}
}

// JoinGame records (or refreshes) the membership of a user in a game.
func (s *PlayerService) JoinGame(userID, gameID, username string) error {
	current, err := s.repo.FindMembershipGame(userID)
	if err != nil {
		return err
	}
	if current != "" && current != gameID {
		return ErrAlreadyInGame
	}
	return s.repo.UpsertMembership(userID, gameID, username)
}

// RequireInGame rejects callers that are not participants of the game.
func (s *PlayerService) RequireInGame(userID, gameID string) error {
	ok, err := s.repo.IsMember(userID, gameID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotInGame
	}
	return nil
}
