package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub/internal/auth"
	"mentorhub/internal/domain"
)

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := bindPayload(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.setSessionCookie(c, user.ID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userToResponse(user, false))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := bindPayload(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.setSessionCookie(c, user.ID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user, true))
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(auth.CookieName); err != nil || token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are already logged out."})
		return
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged Out Successfully!"})
}

func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, userToResponse(currentUser(c), true))
}

func (h *Handler) allUsers(c *gin.Context) {
	profiles, err := h.users.ListOthers(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]skillProfileResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = skillProfileResponse{ID: p.ID, Skills: domain.SkillNames(p.Skills)}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) similarUsers(c *gin.Context) {
	body, err := h.users.SimilarUsers(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
