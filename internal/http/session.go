package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub/internal/auth"
	"mentorhub/internal/domain"
	"mentorhub/internal/service"
)

const (
	userIDKey = "user_id"
	userKey   = "user"
)

// requireSession resolves the session cookie to a user and stores it on the
// context. Missing or invalid tokens yield 401, a vanished user 404.
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: No Token Provided"})
			return
		}

		userID, err := h.tokens.Verify(token)
		if err != nil {
			msg := "Unauthorized: Invalid Token"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "Unauthorized: Token Expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		user, err := h.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			h.respondError(c, err)
			c.Abort()
			return
		}

		c.Set(userIDKey, user.ID)
		c.Set(userKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	user, _ := c.MustGet(userKey).(*domain.User)
	return user
}

func (h *Handler) setSessionCookie(c *gin.Context, userID string) error {
	token, err := h.tokens.Issue(userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, token, int(h.tokens.TTL().Seconds()), "/", "", h.opts.CookieSecure, true)
	return nil
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.opts.CookieSecure, true)
}
