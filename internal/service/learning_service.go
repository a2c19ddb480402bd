package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"

	"mentorhub/internal/domain"
	"mentorhub/internal/gateway"
	"mentorhub/internal/repository"
)

// QuizDifficulties are the difficulties a quiz is drawn from.
var QuizDifficulties = []string{"easy", "medium", "hard"}

// LearningGateway is the part of the AI gateway that produces study material.
type LearningGateway interface {
	Roadmap(ctx context.Context, r gateway.RoadmapRequest) (json.RawMessage, error)
	FieldDetails(ctx context.Context, field string) (json.RawMessage, error)
	GenerateQuiz(ctx context.Context, topic, difficulty string) (json.RawMessage, error)
}

type LearningService interface {
	// GenerateRoadmap asks the gateway for a fresh roadmap and replaces the
	// stored one with its normalized form.
	GenerateRoadmap(ctx context.Context, userID string) (domain.Roadmap, error)
	StoredRoadmap(ctx context.Context, userID string) (domain.Roadmap, error)
	Resources(ctx context.Context, field string) (json.RawMessage, error)
	Quiz(ctx context.Context, topic string) (json.RawMessage, error)
}

// LearningOption customizes a LearningService.
type LearningOption func(*learningService)

// WithDifficultyPicker replaces the random quiz difficulty choice.
func WithDifficultyPicker(pick func() string) LearningOption {
	return func(s *learningService) { s.pickDifficulty = pick }
}

type learningService struct {
	users          repository.UserRepository
	gateway        LearningGateway
	logger         logrus.FieldLogger
	pickDifficulty func() string
}

func NewLearningService(users repository.UserRepository, gw LearningGateway, logger logrus.FieldLogger, opts ...LearningOption) LearningService {
	s := &learningService{
		users:   users,
		gateway: gw,
		logger:  logger,
		pickDifficulty: func() string {
			return QuizDifficulties[rand.IntN(len(QuizDifficulties))]
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *learningService) GenerateRoadmap(ctx context.Context, userID string) (domain.Roadmap, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return domain.Roadmap{}, err
	}

	body, err := s.gateway.Roadmap(ctx, gateway.RoadmapRequest{
		Skills:     domain.SkillNames(user.Skills),
		CareerPath: string(user.Goal),
	})
	if err != nil {
		return domain.Roadmap{}, err
	}

	roadmap, dropped, err := domain.ParseRoadmapResponse(body)
	if err != nil {
		return domain.Roadmap{}, err
	}
	for _, d := range dropped {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"topic":   d.Name,
			"reason":  d.Reason,
		}).Warn("dropped roadmap topic")
	}

	if err := s.users.UpdateRoadmap(ctx, userID, roadmap); err != nil {
		return domain.Roadmap{}, fmt.Errorf("store roadmap: %w", err)
	}
	return roadmap, nil
}

func (s *learningService) StoredRoadmap(ctx context.Context, userID string) (domain.Roadmap, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return domain.Roadmap{}, err
	}
	return user.Roadmap, nil
}

func (s *learningService) Resources(ctx context.Context, field string) (json.RawMessage, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, ErrFieldRequired
	}
	return s.gateway.FieldDetails(ctx, field)
}

func (s *learningService) Quiz(ctx context.Context, topic string) (json.RawMessage, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrTopicRequired
	}
	return s.gateway.GenerateQuiz(ctx, topic, s.pickDifficulty())
}

func (s *learningService) loadUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
