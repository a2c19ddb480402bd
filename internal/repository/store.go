package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when a unique field is already taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// Store groups the repositories of one backing database.
type Store interface {
	Users() UserRepository
	Hackathons() HackathonRepository
	Close(ctx context.Context) error
}
