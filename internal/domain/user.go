package domain

import "time"

// User is a registered platform member.
type User struct {
	ID           string
	Username     string
	FullName     string
	Email        string
	PasswordHash string
	ProfileImg   string
	Skills       []Skill
	Goal         Goal
	Roadmap      Roadmap
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SkillProfile is the identity and skill projection used for matching.
type SkillProfile struct {
	ID     string
	Skills []Skill
}
