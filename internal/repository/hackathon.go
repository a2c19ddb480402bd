package repository

import (
	"context"

	"mentorhub/internal/domain"
)

// HackathonRepository persists hackathons.
type HackathonRepository interface {
	Create(ctx context.Context, hackathon *domain.Hackathon) error
	List(ctx context.Context) ([]domain.Hackathon, error)
}
