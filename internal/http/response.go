package http

import (
	"time"

	"mentorhub/internal/domain"
)

type userResponse struct {
	ID         string          `json:"_id"`
	Username   string          `json:"username"`
	FullName   string          `json:"fullName"`
	Email      string          `json:"email"`
	Skills     []string        `json:"skills"`
	Goal       string          `json:"goal"`
	ProfileImg string          `json:"profileImg"`
	IsAdmin    bool            `json:"isAdmin"`
	Roadmap    *domain.Roadmap `json:"roadmap,omitempty"`
}

func userToResponse(user *domain.User, withRoadmap bool) userResponse {
	resp := userResponse{
		ID:         user.ID,
		Username:   user.Username,
		FullName:   user.FullName,
		Email:      user.Email,
		Skills:     domain.SkillNames(user.Skills),
		Goal:       string(user.Goal),
		ProfileImg: user.ProfileImg,
		IsAdmin:    user.IsAdmin,
	}
	if withRoadmap {
		roadmap := user.Roadmap
		resp.Roadmap = &roadmap
	}
	return resp
}

type skillProfileResponse struct {
	ID     string   `json:"_id"`
	Skills []string `json:"skills"`
}

type hackathonResponse struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Club           string    `json:"club"`
	SkillsRequired []string  `json:"skills_required"`
	Level          string    `json:"level"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func hackathonToResponse(h domain.Hackathon) hackathonResponse {
	return hackathonResponse{
		ID:             h.ID,
		Name:           h.Name,
		Club:           h.Club,
		SkillsRequired: domain.SkillNames(h.SkillsRequired),
		Level:          string(h.Level),
		StartDate:      domain.FormatDisplayDate(h.StartDate),
		EndDate:        domain.FormatDisplayDate(h.EndDate),
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}
