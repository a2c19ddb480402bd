package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	// Signup carries inline profile images.
	maxBodyBytes = 10 << 20
)

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		})
		if userID, ok := c.Get(userIDKey); ok {
			entry = entry.WithField("user_id", userID)
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("request failed")
		default:
			entry.Info("request handled")
		}
	}
}

func recoverJSON(logger logrus.FieldLogger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(requestIDKey),
			"panic":      recovered,
		}).Error("panic while handling request")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

func limitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
