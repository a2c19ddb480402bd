package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mentorhub/internal/domain"
	"mentorhub/internal/repository"
)

const userColumns = `id, username, full_name, email, password_hash, profile_img, skills, goal, roadmap, is_admin, created_at, updated_at`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	skills, err := json.Marshal(domain.SkillNames(user.Skills))
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}
	roadmap, err := json.Marshal(user.Roadmap)
	if err != nil {
		return fmt.Errorf("encode roadmap: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO users (`+userColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Username,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.ProfileImg,
		string(skills),
		string(user.Goal),
		string(roadmap),
		user.IsAdmin,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return fmt.Errorf("insert user: %w", repository.ErrAlreadyExists)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+userColumns+`
FROM users
WHERE username = ? OR email = ?
ORDER BY created_at
LIMIT 1`,
		username,
		email,
	)
	return scanUser(row)
}

func (r *UserRepository) HasAdmin(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE is_admin = 1)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("query admin: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) ListSkillProfiles(ctx context.Context, excludeID string) ([]domain.SkillProfile, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, skills
FROM users
WHERE id <> ?
ORDER BY created_at`,
		excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var profiles []domain.SkillProfile
	for rows.Next() {
		var (
			profile domain.SkillProfile
			skills  string
		)
		if err := rows.Scan(&profile.ID, &skills); err != nil {
			return nil, fmt.Errorf("scan user skills: %w", err)
		}
		if profile.Skills, err = decodeSkills(skills); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return profiles, nil
}

func (r *UserRepository) UpdateRoadmap(ctx context.Context, id string, roadmap domain.Roadmap) error {
	encoded, err := json.Marshal(roadmap)
	if err != nil {
		return fmt.Errorf("encode roadmap: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE users
SET roadmap = ?, updated_at = ?
WHERE id = ?`,
		string(encoded),
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("update roadmap: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update roadmap rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update roadmap: %w", repository.ErrNotFound)
	}
	return nil
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var (
		user    domain.User
		skills  string
		goal    string
		roadmap string
	)
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.ProfileImg,
		&skills,
		&goal,
		&roadmap,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	var err error
	if user.Skills, err = decodeSkills(skills); err != nil {
		return nil, err
	}
	user.Goal = domain.Goal(goal)
	if err := json.Unmarshal([]byte(roadmap), &user.Roadmap); err != nil {
		return nil, fmt.Errorf("decode roadmap: %w", err)
	}
	return &user, nil
}

func decodeSkills(raw string) ([]domain.Skill, error) {
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	skills := make([]domain.Skill, len(names))
	for i, n := range names {
		skills[i] = domain.Skill(n)
	}
	return skills, nil
}
