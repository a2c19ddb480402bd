package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) generateRoadmap(c *gin.Context) {
	roadmap, err := h.learning.GenerateRoadmap(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roadmap)
}

func (h *Handler) storedRoadmap(c *gin.Context) {
	roadmap, err := h.learning.StoredRoadmap(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roadmap)
}

func (h *Handler) resources(c *gin.Context) {
	var req resourcesRequest
	if err := bindOptional(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	if req.Field == "" {
		req.Field = c.Query("field")
	}

	body, err := h.learning.Resources(c.Request.Context(), req.Field)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) quiz(c *gin.Context) {
	var req quizRequest
	if err := bindOptional(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	if req.Topic == "" {
		req.Topic = c.Query("topic")
	}

	body, err := h.learning.Quiz(c.Request.Context(), req.Topic)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": body})
}
