package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"mentorhub/internal/repository"
)

const (
	usersCollection      = "users"
	hackathonsCollection = "hackathons"
)

// Store keeps users and hackathons in a MongoDB database.
type Store struct {
	client     *mongo.Client
	users      *UserRepository
	hackathons *HackathonRepository
}

// Connect dials uri, verifies the server is reachable and ensures the
// unique indexes on users exist.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(database)
	store := &Store{
		client:     client,
		users:      NewUserRepository(db.Collection(usersCollection)),
		hackathons: NewHackathonRepository(db.Collection(hackathonsCollection)),
	}
	if err := store.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return store, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.users.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isAdmin", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (s *Store) Users() repository.UserRepository {
	return s.users
}

func (s *Store) Hackathons() repository.HackathonRepository {
	return s.hackathons
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ repository.Store = (*Store)(nil)
