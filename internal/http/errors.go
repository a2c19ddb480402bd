package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub/internal/domain"
	"mentorhub/internal/gateway"
	"mentorhub/internal/service"
)

// respondError maps a service or gateway error to a status and JSON body.
func (h *Handler) respondError(c *gin.Context, err error) {
	var statusErr *gateway.StatusError
	switch {
	case errors.Is(err, errPayload), errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &statusErr):
		h.logFailure(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "External API Error",
			"details": upstreamDetails(statusErr.Body),
		})
	case errors.Is(err, gateway.ErrUnavailable):
		h.logFailure(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "External API Error",
			"details": err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidRoadmapFormat):
		h.logFailure(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid roadmap format received"})
	default:
		h.logFailure(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

func (h *Handler) logFailure(c *gin.Context, err error) {
	h.logger.WithField("request_id", c.GetString(requestIDKey)).WithError(err).Error("request error")
}

// upstreamDetails echoes a JSON error body verbatim and anything else as text.
func upstreamDetails(body []byte) any {
	if len(body) > 0 && json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
