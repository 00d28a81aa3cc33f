package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetJobs proxies the external job-listings source as JSON. A failing
// source becomes a 502 with an error payload, never a crash.
func (h *Handler) GetJobs(c *gin.Context) {
	listings, err := h.jobs.Fetch(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Warn("job listings fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "job listings temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, listings)
}
