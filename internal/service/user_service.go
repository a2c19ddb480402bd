package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"mentorhub/internal/domain"
	"mentorhub/internal/gateway"
	"mentorhub/internal/repository"
	"mentorhub/internal/storage"
)

// MatchingGateway is the part of the AI gateway that tracks user skills.
type MatchingGateway interface {
	StoreSkills(ctx context.Context, p gateway.SkillProfile)
	FindSimilar(ctx context.Context, p gateway.SkillProfile) (json.RawMessage, error)
}

// RegisterInput carries the signup form.
type RegisterInput struct {
	Username   string
	FullName   string
	Email      string
	Password   string
	ProfileImg string
	Skills     []string
	Goal       string
	IsAdmin    bool
}

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListOthers(ctx context.Context, callerID string) ([]domain.SkillProfile, error)
	SimilarUsers(ctx context.Context, callerID string) (json.RawMessage, error)
}

// UserOption customizes a UserService.
type UserOption func(*userService)

// WithBcryptCost overrides the password hashing cost.
func WithBcryptCost(cost int) UserOption {
	return func(s *userService) { s.cost = cost }
}

// WithImageStore enables uploading data: URI profile images.
func WithImageStore(images storage.ImageStore) UserOption {
	return func(s *userService) { s.images = images }
}

type userService struct {
	users   repository.UserRepository
	gateway MatchingGateway
	images  storage.ImageStore
	logger  logrus.FieldLogger
	cost    int
	now     func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

func NewUserService(users repository.UserRepository, gw MatchingGateway, logger logrus.FieldLogger, opts ...UserOption) UserService {
	s := &userService{
		users:   users,
		gateway: gw,
		logger:  logger,
		cost:    bcrypt.DefaultCost,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.FullName = strings.TrimSpace(in.FullName)
	in.ProfileImg = strings.TrimSpace(in.ProfileImg)

	if in.Username == "" {
		return nil, ErrUsernameRequired
	}
	if in.FullName == "" {
		return nil, ErrFullNameRequired
	}
	if !domain.IsValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}
	if !domain.IsValidPassword(in.Password) {
		return nil, ErrInvalidPassword
	}
	if in.ProfileImg == "" {
		return nil, ErrProfileImageRequired
	}

	existing, err := s.users.FindByUsernameOrEmail(ctx, in.Username, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, ErrUserAlreadyExists
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("lookup existing user: %w", err)
	}

	skills := domain.FilterSkills(in.Skills)
	if len(skills) == 0 {
		return nil, ErrNoValidSkills
	}
	if !domain.IsValidGoal(in.Goal) {
		return nil, ErrInvalidGoal
	}

	// Not atomic with Create: two concurrent admin signups can both pass.
	if in.IsAdmin {
		hasAdmin, err := s.users.HasAdmin(ctx)
		if err != nil {
			return nil, fmt.Errorf("check admin: %w", err)
		}
		if hasAdmin {
			return nil, ErrAdminExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profileImg, uploadedKey, err := s.resolveProfileImage(ctx, in.ProfileImg)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		ProfileImg:   profileImg,
		Skills:       skills,
		Goal:         domain.Goal(in.Goal),
		IsAdmin:      in.IsAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.discardImage(ctx, uploadedKey)
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
	}).Info("user registered")

	s.gateway.StoreSkills(ctx, skillProfile(user))

	return sanitizeUser(user), nil
}

func (s *userService) resolveProfileImage(ctx context.Context, ref string) (string, string, error) {
	if s.images == nil || !storage.IsDataURI(ref) {
		return ref, "", nil
	}
	contentType, data, err := storage.DecodeImageDataURI(ref)
	if err != nil {
		return "", "", ErrInvalidProfileImage
	}
	obj, err := s.images.Put(ctx, uuid.NewString()+storage.ExtensionFor(contentType), contentType, bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("upload profile image: %w", err)
	}
	return obj.URL, obj.Key, nil
}

func (s *userService) discardImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.images.Delete(ctx, key); err != nil {
		s.logger.WithField("key", key).WithError(err).Warn("failed to remove orphaned profile image")
	}
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Spend the same hashing time as a real comparison.
			_ = bcrypt.CompareHashAndPassword(s.placeholderHash(), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return sanitizeUser(user), nil
}

func (s *userService) placeholderHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), s.cost)
	})
	return s.dummyHash
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) ListOthers(ctx context.Context, callerID string) ([]domain.SkillProfile, error) {
	return s.users.ListSkillProfiles(ctx, callerID)
}

func (s *userService) SimilarUsers(ctx context.Context, callerID string) (json.RawMessage, error) {
	user, err := s.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return s.gateway.FindSimilar(ctx, skillProfile(user))
}

func skillProfile(user *domain.User) gateway.SkillProfile {
	return gateway.SkillProfile{
		ProfileImg: user.ProfileImg,
		Username:   user.Username,
		Skills:     domain.SkillNames(user.Skills),
	}
}

// sanitizeUser drops the password hash before a user leaves the service.
func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	out := *user
	out.PasswordHash = ""
	return &out
}
