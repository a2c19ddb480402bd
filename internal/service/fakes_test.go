package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"mentorhub/internal/domain"
	"mentorhub/internal/gateway"
	"mentorhub/internal/repository"
	"mentorhub/internal/storage"
)

type memoryUsers struct {
	mu    sync.Mutex
	users []*domain.User
}

func (m *memoryUsers) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrAlreadyExists
		}
	}
	cp := *user
	m.users = append(m.users, &cp)
	return nil
}

func (m *memoryUsers) find(match func(*domain.User) bool) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.ID == id })
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.Email == email })
}

func (m *memoryUsers) FindByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.Username == username || u.Email == email })
}

func (m *memoryUsers) HasAdmin(context.Context) (bool, error) {
	_, err := m.find(func(u *domain.User) bool { return u.IsAdmin })
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *memoryUsers) ListSkillProfiles(_ context.Context, excludeID string) ([]domain.SkillProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.SkillProfile
	for _, u := range m.users {
		if u.ID != excludeID {
			out = append(out, domain.SkillProfile{ID: u.ID, Skills: u.Skills})
		}
	}
	return out, nil
}

func (m *memoryUsers) UpdateRoadmap(_ context.Context, id string, roadmap domain.Roadmap) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			u.Roadmap = roadmap
			return nil
		}
	}
	return repository.ErrNotFound
}

type memoryHackathons struct {
	mu    sync.Mutex
	items []domain.Hackathon
}

func (m *memoryHackathons) Create(_ context.Context, h *domain.Hackathon) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *h)
	return nil
}

func (m *memoryHackathons) List(context.Context) ([]domain.Hackathon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Hackathon{}, m.items...), nil
}

// stubGateway records calls and replies with canned bodies.
type stubGateway struct {
	mu        sync.Mutex
	stored    []gateway.SkillProfile
	notices   []gateway.HackathonNotice
	roadmaps  []gateway.RoadmapRequest
	quizzes   []string
	reply     json.RawMessage
	err       error
	lastField string
}

func (g *stubGateway) StoreSkills(_ context.Context, p gateway.SkillProfile) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stored = append(g.stored, p)
}

func (g *stubGateway) FindSimilar(context.Context, gateway.SkillProfile) (json.RawMessage, error) {
	return g.reply, g.err
}

func (g *stubGateway) AddHackathon(_ context.Context, n gateway.HackathonNotice) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.notices = append(g.notices, n)
}

func (g *stubGateway) FindHackathons(context.Context, gateway.HackathonQuery) (json.RawMessage, error) {
	return g.reply, g.err
}

func (g *stubGateway) Roadmap(_ context.Context, r gateway.RoadmapRequest) (json.RawMessage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.roadmaps = append(g.roadmaps, r)
	return g.reply, g.err
}

func (g *stubGateway) FieldDetails(_ context.Context, field string) (json.RawMessage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastField = field
	return g.reply, g.err
}

func (g *stubGateway) GenerateQuiz(_ context.Context, topic, difficulty string) (json.RawMessage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.quizzes = append(g.quizzes, topic+"/"+difficulty)
	return g.reply, g.err
}

type memoryImages struct {
	objects map[string][]byte
	putErr  error
	deleted []string
}

func (m *memoryImages) Put(_ context.Context, name, _ string, body io.Reader) (storage.Object, error) {
	if m.putErr != nil {
		return storage.Object{}, m.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return storage.Object{}, err
	}
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	key := "avatars/" + name
	m.objects[key] = data
	return storage.Object{Key: key, URL: "https://cdn.test/" + key}, nil
}

func (m *memoryImages) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	delete(m.objects, key)
	return nil
}
