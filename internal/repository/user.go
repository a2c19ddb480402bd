package repository

import (
	"context"

	"mentorhub/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByUsernameOrEmail returns the first user matching either field.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	HasAdmin(ctx context.Context) (bool, error)
	ListSkillProfiles(ctx context.Context, excludeID string) ([]domain.SkillProfile, error)
	UpdateRoadmap(ctx context.Context, id string, roadmap domain.Roadmap) error
}
