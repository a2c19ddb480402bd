package domain

import "time"

// Hackathon is an event published by the platform admin.
type Hackathon struct {
	ID             string
	Name           string
	Club           string
	SkillsRequired []Skill
	Level          Level
	StartDate      time.Time
	EndDate        time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
