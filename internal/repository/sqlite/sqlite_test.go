package sqlite

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain"
	"mentorhub/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	require.NoError(t, Migrate(context.Background(), db, logger))

	store := NewStore(db)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func newUser(username, email string) *domain.User {
	return &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		FullName:     "Test " + username,
		Email:        email,
		PasswordHash: "hash",
		ProfileImg:   "https://img.example.com/" + username + ".png",
		Skills:       []domain.Skill{"Python", "Dsa"},
		Goal:         "DevOps",
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newTestStore(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	require.NoError(t, Migrate(context.Background(), store.db, logger))
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	user := newUser("ada", "ada@example.com")
	require.NoError(t, users.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	got, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Username)
	assert.Equal(t, "Test ada", got.FullName)
	assert.Equal(t, []domain.Skill{"Python", "Dsa"}, got.Skills)
	assert.Equal(t, domain.Goal("DevOps"), got.Goal)
	assert.Equal(t, 0, got.Roadmap.Len())
	assert.False(t, got.IsAdmin)

	byEmail, err := users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = users.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_UniqueFields(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	require.NoError(t, users.Create(ctx, newUser("ada", "ada@example.com")))

	err := users.Create(ctx, newUser("ada", "other@example.com"))
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	err = users.Create(ctx, newUser("other", "ada@example.com"))
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	found, err := users.FindByUsernameOrEmail(ctx, "zzz", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada", found.Username)
	found, err = users.FindByUsernameOrEmail(ctx, "ada", "zzz@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada", found.Username)
	_, err = users.FindByUsernameOrEmail(ctx, "ADA", "ADA@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_HasAdmin(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	has, err := users.HasAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, users.Create(ctx, newUser("plain", "plain@example.com")))
	has, err = users.HasAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	admin := newUser("root", "root@example.com")
	admin.IsAdmin = true
	require.NoError(t, users.Create(ctx, admin))
	has, err = users.HasAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestUserRepository_ListSkillProfiles(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	me := newUser("me", "me@example.com")
	other := newUser("other", "other@example.com")
	other.Skills = []domain.Skill{"Java"}
	require.NoError(t, users.Create(ctx, me))
	require.NoError(t, users.Create(ctx, other))

	profiles, err := users.ListSkillProfiles(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, other.ID, profiles[0].ID)
	assert.Equal(t, []domain.Skill{"Java"}, profiles[0].Skills)
}

func TestUserRepository_UpdateRoadmapReplaces(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	user := newUser("ada", "ada@example.com")
	require.NoError(t, users.Create(ctx, user))

	var first domain.Roadmap
	first.Set("old", []string{"x"})
	require.NoError(t, users.UpdateRoadmap(ctx, user.ID, first))

	var second domain.Roadmap
	second.Set("b", []string{"2"})
	second.Set("a", []string{"1", "0"})
	require.NoError(t, users.UpdateRoadmap(ctx, user.ID, second))

	got, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	out, err := json.Marshal(got.Roadmap)
	require.NoError(t, err)
	assert.Equal(t, `{"b":["2"],"a":["1","0"]}`, string(out))

	err = users.UpdateRoadmap(ctx, uuid.NewString(), second)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHackathonRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	hackathons := newTestStore(t).Hackathons()

	start := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	h := &domain.Hackathon{
		ID:             uuid.NewString(),
		Name:           "Spring Hack",
		Club:           "GDG",
		SkillsRequired: []domain.Skill{"Python", "SQL"},
		Level:          domain.LevelBeginner,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 2),
	}
	require.NoError(t, hackathons.Create(ctx, h))

	list, err := hackathons.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Spring Hack", list[0].Name)
	assert.Equal(t, []domain.Skill{"Python", "SQL"}, list[0].SkillsRequired)
	assert.Equal(t, domain.LevelBeginner, list[0].Level)
	assert.True(t, start.Equal(list[0].StartDate))
	assert.Equal(t, "03/05/2025", domain.FormatDisplayDate(list[0].EndDate))
}
