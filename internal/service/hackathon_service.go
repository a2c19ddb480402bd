package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mentorhub/internal/domain"
	"mentorhub/internal/gateway"
	"mentorhub/internal/repository"
)

// HackathonGateway is the part of the AI gateway that matches hackathons.
type HackathonGateway interface {
	AddHackathon(ctx context.Context, n gateway.HackathonNotice)
	FindHackathons(ctx context.Context, q gateway.HackathonQuery) (json.RawMessage, error)
}

// CreateHackathonInput carries the hackathon form. Dates accept dd/mm/yyyy
// or ISO-8601.
type CreateHackathonInput struct {
	Name           string
	Club           string
	SkillsRequired []string
	Level          string
	StartDate      string
	EndDate        string
}

type HackathonService interface {
	Create(ctx context.Context, callerID string, in CreateHackathonInput) (*domain.Hackathon, error)
	Suggested(ctx context.Context, callerID string) (json.RawMessage, error)
	List(ctx context.Context) ([]domain.Hackathon, error)
}

type hackathonService struct {
	hackathons repository.HackathonRepository
	users      UserService
	gateway    HackathonGateway
	logger     logrus.FieldLogger
	now        func() time.Time
}

func NewHackathonService(hackathons repository.HackathonRepository, users UserService, gw HackathonGateway, logger logrus.FieldLogger) HackathonService {
	return &hackathonService{
		hackathons: hackathons,
		users:      users,
		gateway:    gw,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *hackathonService) Create(ctx context.Context, callerID string, in CreateHackathonInput) (*domain.Hackathon, error) {
	caller, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin {
		return nil, ErrForbidden
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Club = strings.TrimSpace(in.Club)
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if in.Club == "" {
		return nil, ErrClubRequired
	}
	if !domain.IsValidLevel(in.Level) {
		return nil, ErrInvalidLevel
	}

	// Unlike signup, a single unknown skill rejects the whole request.
	if len(in.SkillsRequired) == 0 || len(domain.UnknownSkills(in.SkillsRequired)) > 0 {
		return nil, ErrInvalidSkills
	}
	skills := domain.FilterSkills(in.SkillsRequired)

	start, err := domain.ParseFlexibleDate(in.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := domain.ParseFlexibleDate(in.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !start.Before(end) {
		return nil, ErrInvalidDateRange
	}

	now := s.now()
	hackathon := &domain.Hackathon{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Club:           in.Club,
		SkillsRequired: skills,
		Level:          domain.Level(in.Level),
		StartDate:      start,
		EndDate:        end,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.hackathons.Create(ctx, hackathon); err != nil {
		return nil, fmt.Errorf("create hackathon: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"hackathon_id": hackathon.ID,
		"user_id":      caller.ID,
	}).Info("hackathon created")

	s.gateway.AddHackathon(ctx, gateway.HackathonNotice{
		Name:           hackathon.Name,
		RequiredSkills: domain.SkillNames(hackathon.SkillsRequired),
	})

	return hackathon, nil
}

func (s *hackathonService) Suggested(ctx context.Context, callerID string) (json.RawMessage, error) {
	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return s.gateway.FindHackathons(ctx, gateway.HackathonQuery{
		Username: user.Username,
		Skills:   domain.SkillNames(user.Skills),
	})
}

func (s *hackathonService) List(ctx context.Context) ([]domain.Hackathon, error) {
	return s.hackathons.List(ctx)
}
