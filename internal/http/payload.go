package http

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/jellydator/validation"

	"mentorhub/internal/service"
)

type signupRequest struct {
	Username   string   `json:"username"`
	FullName   string   `json:"fullName"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Skills     []string `json:"skills"`
	Goal       string   `json:"goal"`
	ProfileImg string   `json:"profileImg"`
	IsAdmin    bool     `json:"isAdmin"`
}

func (r signupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.Goal, validation.Required),
		validation.Field(&r.ProfileImg, validation.Required),
	)
}

func (r signupRequest) toInput() service.RegisterInput {
	return service.RegisterInput{
		Username:   r.Username,
		FullName:   r.FullName,
		Email:      r.Email,
		Password:   r.Password,
		ProfileImg: r.ProfileImg,
		Skills:     r.Skills,
		Goal:       r.Goal,
		IsAdmin:    r.IsAdmin,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type createHackathonRequest struct {
	Name           string   `json:"name"`
	Club           string   `json:"club"`
	SkillsRequired []string `json:"skills_required"`
	Level          string   `json:"level"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
}

func (r createHackathonRequest) toInput() service.CreateHackathonInput {
	return service.CreateHackathonInput{
		Name:           r.Name,
		Club:           r.Club,
		SkillsRequired: r.SkillsRequired,
		Level:          r.Level,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}
}

type resourcesRequest struct {
	Field string `json:"field"`
}

type quizRequest struct {
	Topic string `json:"topic"`
}

// errPayload marks malformed or incomplete request bodies.
var errPayload = errors.New("invalid request payload")

// decodePayload decodes the JSON body into object without checking fields.
func decodePayload(c *gin.Context, object any) error {
	if err := c.ShouldBindJSON(object); err != nil {
		return fmt.Errorf("%w: %v", errPayload, err)
	}
	return nil
}

// bindPayload decodes the JSON body into object and runs its validation rules.
func bindPayload(c *gin.Context, object any) error {
	if err := decodePayload(c, object); err != nil {
		return err
	}
	if v, ok := object.(validation.Validatable); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %v", errPayload, err)
		}
	}
	return nil
}

// bindOptional decodes the JSON body when one is present.
func bindOptional(c *gin.Context, object any) error {
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(object); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %v", errPayload, err)
		}
	}
	return nil
}
