package service

import (
	"errors"
	"testing"
)

type mockMembershipRepo struct {
	byUser map[string]string // user id -> game id
}

func newMockMembershipRepo() *mockMembershipRepo {
	return &mockMembershipRepo{byUser: map[string]string{}}
}

func (m *mockMembershipRepo) UpsertMembership(userID, gameID, username string) error {
	m.byUser[userID] = gameID
	return nil
}

func (m *mockMembershipRepo) FindMembershipGame(userID string) (string, error) {
	return m.byUser[userID], nil
}

func (m *mockMembershipRepo) IsMember(userID, gameID string) (bool, error) {
	return m.byUser[userID] == gameID, nil
}

func TestJoinGame_OneGamePerUser(t *testing.T) {
	repo := newMockMembershipRepo()
	s := NewPlayerService(repo)

	if err := s.JoinGame("u1", "g1", "Anna"); err != nil {
		t.Fatalf("first join: %v", err)
	}
	// Re-joining the same game refreshes the membership.
	if err := s.JoinGame("u1", "g1", "Annabel"); err != nil {
		t.Fatalf("re-join: %v", err)
	}
	if err := s.JoinGame("u1", "g2", "Anna"); !errors.Is(err, ErrAlreadyInGame) {
		t.Fatalf("joining a second game: got %v", err)
	}
}

func TestRequireInGame(t *testing.T) {
	repo := newMockMembershipRepo()
	s := NewPlayerService(repo)

	if err := s.RequireInGame("u1", "g1"); !errors.Is(err, ErrNotInGame) {
		t.Fatalf("non-member: got %v", err)
	}
	if err := s.JoinGame("u1", "g1", "Anna"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := s.RequireInGame("u1", "g1"); err != nil {
		t.Fatalf("member: %v", err)
	}
}
