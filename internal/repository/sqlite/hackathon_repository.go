package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"mentorhub/internal/domain"
)

type HackathonRepository struct {
	db *sql.DB
}

func NewHackathonRepository(db *sql.DB) *HackathonRepository {
	return &HackathonRepository{db: db}
}

func (r *HackathonRepository) Create(ctx context.Context, h *domain.Hackathon) error {
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	skills, err := json.Marshal(domain.SkillNames(h.SkillsRequired))
	if err != nil {
		return fmt.Errorf("encode required skills: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO hackathons (id, name, club, skills_required, level, start_date, end_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID,
		h.Name,
		h.Club,
		string(skills),
		string(h.Level),
		h.StartDate.UTC(),
		h.EndDate.UTC(),
		h.CreatedAt,
		h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hackathon: %w", err)
	}
	return nil
}

func (r *HackathonRepository) List(ctx context.Context) ([]domain.Hackathon, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, club, skills_required, level, start_date, end_date, created_at, updated_at
FROM hackathons
ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list hackathons: %w", err)
	}
	defer rows.Close()

	var hackathons []domain.Hackathon
	for rows.Next() {
		var (
			h      domain.Hackathon
			skills string
			level  string
		)
		if err := rows.Scan(&h.ID, &h.Name, &h.Club, &skills, &level, &h.StartDate, &h.EndDate, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hackathon: %w", err)
		}
		if h.SkillsRequired, err = decodeSkills(skills); err != nil {
			return nil, err
		}
		h.Level = domain.Level(level)
		hackathons = append(hackathons, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hackathons: %w", err)
	}
	return hackathons, nil
}
