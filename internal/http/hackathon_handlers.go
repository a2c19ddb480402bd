package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createHackathon(c *gin.Context) {
	// Field checks happen in the service, after the caller's admin check.
	var req createHackathonRequest
	if err := decodePayload(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	hackathon, err := h.hackathons.Create(c.Request.Context(), currentUser(c).ID, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hackathonToResponse(*hackathon))
}

func (h *Handler) suggestedHackathons(c *gin.Context) {
	body, err := h.hackathons.Suggested(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) listHackathons(c *gin.Context) {
	hackathons, err := h.hackathons.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]hackathonResponse, len(hackathons))
	for i := range hackathons {
		resp[i] = hackathonToResponse(hackathons[i])
	}
	c.JSON(http.StatusOK, resp)
}
