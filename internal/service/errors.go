package service

import "errors"

// ErrValidation matches every error caused by unacceptable client input.
var ErrValidation = errors.New("validation failed")

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error {
	return &validationError{msg: msg}
}

var (
	ErrUsernameRequired     = invalid("username is required")
	ErrFullNameRequired     = invalid("full name is required")
	ErrInvalidEmail         = invalid("invalid email format")
	ErrInvalidPassword      = invalid("password must be at least 6 characters long")
	ErrProfileImageRequired = invalid("profile image is required")
	ErrInvalidProfileImage  = invalid("profile image is not a valid image data uri")
	ErrNoValidSkills        = invalid("at least one valid skill is required")
	ErrInvalidGoal          = invalid("invalid goal")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = invalid("username or email already exists")
	ErrAdminExists       = invalid("an admin already exists")
	// ErrInvalidCredentials covers both unknown emails and wrong passwords.
	ErrInvalidCredentials = invalid("invalid credentials")

	ErrNameRequired     = invalid("name is required")
	ErrClubRequired     = invalid("club is required")
	ErrInvalidLevel     = invalid("invalid level")
	ErrInvalidSkills    = invalid("invalid skills")
	ErrInvalidDate      = invalid("invalid date format")
	ErrInvalidDateRange = invalid("start date must be before end date")

	ErrFieldRequired = invalid("field is required")
	ErrTopicRequired = invalid("topic is required")
)

var (
	// ErrUserNotFound is returned when the acting user no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden is returned when a non-admin attempts an admin action.
	ErrForbidden = errors.New("only admins can perform this action")
)
