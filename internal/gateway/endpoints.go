package gateway

import (
	"context"
	"encoding/json"
)

// SkillProfile identifies a user to the matching engine.
type SkillProfile struct {
	ProfileImg string   `json:"profileImg"`
	Username   string   `json:"username"`
	Skills     []string `json:"skills"`
}

type HackathonNotice struct {
	Name           string   `json:"name"`
	RequiredSkills []string `json:"required_skills"`
}

type HackathonQuery struct {
	Username string   `json:"username"`
	Skills   []string `json:"skills"`
}

type RoadmapRequest struct {
	Skills     []string `json:"skills"`
	CareerPath string   `json:"career_path"`
}

type fieldRequest struct {
	Field string `json:"field"`
}

type quizRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

// StoreSkills notifies the matching engine about a new user.
func (c *Client) StoreSkills(ctx context.Context, p SkillProfile) {
	_, _ = c.Post(ctx, FireAndForget, PathStoreSkills, p)
}

func (c *Client) FindSimilar(ctx context.Context, p SkillProfile) (json.RawMessage, error) {
	return c.Post(ctx, Blocking, PathFindSimilar, p)
}

// AddHackathon notifies the matching engine about a new hackathon.
func (c *Client) AddHackathon(ctx context.Context, n HackathonNotice) {
	_, _ = c.Post(ctx, FireAndForget, PathAddHackathon, n)
}

func (c *Client) FindHackathons(ctx context.Context, q HackathonQuery) (json.RawMessage, error) {
	return c.Post(ctx, Blocking, PathFindHackathons, q)
}

func (c *Client) Roadmap(ctx context.Context, r RoadmapRequest) (json.RawMessage, error) {
	return c.Post(ctx, Blocking, PathRoadmap, r)
}

func (c *Client) FieldDetails(ctx context.Context, field string) (json.RawMessage, error) {
	return c.Post(ctx, Blocking, PathFieldDetails, fieldRequest{Field: field})
}

func (c *Client) GenerateQuiz(ctx context.Context, topic, difficulty string) (json.RawMessage, error) {
	return c.Post(ctx, Blocking, PathGenerateQuiz, quizRequest{Topic: topic, Difficulty: difficulty})
}
