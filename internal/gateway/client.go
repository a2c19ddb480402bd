package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Mode selects how a call's failure is treated.
type Mode int

const (
	// Blocking returns every failure to the caller.
	Blocking Mode = iota
	// FireAndForget logs failures and reports success to the caller.
	FireAndForget
)

func (m Mode) String() string {
	switch m {
	case Blocking:
		return "blocking"
	case FireAndForget:
		return "fire-and-forget"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

const (
	PathStoreSkills    = "/store-skills"
	PathFindSimilar    = "/find-similar"
	PathAddHackathon   = "/add-hackathon"
	PathFindHackathons = "/find-hackathons"
	PathRoadmap        = "/get-roadmap"
	PathFieldDetails   = "/get-field-details"
	PathGenerateQuiz   = "/generate-quiz"
)

const maxResponseBytes = 10 << 20

// ErrUnavailable wraps transport and decoding failures.
var ErrUnavailable = errors.New("gateway unavailable")

// StatusError is returned when the gateway answers with a non-2xx status.
type StatusError struct {
	Path       string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway %s returned status %d", e.Path, e.StatusCode)
}

// Client talks JSON to the external AI service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logrus.FieldLogger
}

// NewClient builds a client for baseURL. A zero timeout means requests wait
// as long as the caller's context allows.
func NewClient(baseURL string, timeout time.Duration, logger logrus.FieldLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Post sends payload to path and returns the JSON reply. In FireAndForget
// mode failures are logged and Post returns (nil, nil).
func (c *Client) Post(ctx context.Context, mode Mode, path string, payload any) (json.RawMessage, error) {
	body, err := c.post(ctx, path, payload)
	if err != nil && mode == FireAndForget {
		c.logger.WithFields(logrus.Fields{
			"path": path,
			"mode": mode.String(),
		}).WithError(err).Warn("gateway call failed")
		return nil, nil
	}
	return body, err
}

func (c *Client) post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: post %s: %v", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s response: %v", ErrUnavailable, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode, Body: body}
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s response is not JSON", ErrUnavailable, path)
	}
	return json.RawMessage(body), nil
}
