package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorhub/internal/domain"
)

type HackathonRepository struct {
	coll *mongo.Collection
}

func NewHackathonRepository(coll *mongo.Collection) *HackathonRepository {
	return &HackathonRepository{coll: coll}
}

func (r *HackathonRepository) Create(ctx context.Context, h *domain.Hackathon) error {
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, toHackathonDocument(h)); err != nil {
		return fmt.Errorf("insert hackathon: %w", err)
	}
	return nil
}

func (r *HackathonRepository) List(ctx context.Context) ([]domain.Hackathon, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find hackathons: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []hackathonDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode hackathons: %w", err)
	}
	hackathons := make([]domain.Hackathon, len(docs))
	for i, d := range docs {
		hackathons[i] = d.toDomain()
	}
	return hackathons, nil
}
