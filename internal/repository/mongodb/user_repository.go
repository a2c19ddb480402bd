package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorhub/internal/domain"
	"mentorhub/internal/repository"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) *UserRepository {
	return &UserRepository{coll: coll}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, toUserDocument(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert user: %w", repository.ErrAlreadyExists)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: username}},
		bson.D{{Key: "email", Value: email}},
	}}})
}

func (r *UserRepository) HasAdmin(ctx context.Context) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "isAdmin", Value: true}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	return n > 0, nil
}

func (r *UserRepository) ListSkillProfiles(ctx context.Context, excludeID string) ([]domain.SkillProfile, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 1}, {Key: "skills", Value: 1}}).
		SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$ne", Value: excludeID}}}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []domain.SkillProfile
	for cursor.Next(ctx) {
		var doc struct {
			ID     string   `bson:"_id"`
			Skills []string `bson:"skills"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user skills: %w", err)
		}
		profiles = append(profiles, domain.SkillProfile{ID: doc.ID, Skills: toSkills(doc.Skills)})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return profiles, nil
}

func (r *UserRepository) UpdateRoadmap(ctx context.Context, id string, roadmap domain.Roadmap) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "roadmap", Value: roadmapToBSON(roadmap)},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}})
	if err != nil {
		return fmt.Errorf("update roadmap: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update roadmap: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.D) (*domain.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}
