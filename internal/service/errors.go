package service

import "errors"

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrUsernameRequired = errors.New("username required")
	ErrGameNotJoinable  = errors.New("game already started/ended")
	ErrAlreadyInGame    = errors.New("user already in another game")
	ErrNotInGame        = errors.New("not a player of this game")
)
