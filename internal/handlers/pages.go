package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard renders the vacancy-browsing view; the listings
// themselves are loaded client-side from /api/jobs.
func (h *Handler) Dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, "dashboard.html", nil)
}

func (h *Handler) Account(c *gin.Context) {
	h.render(c, http.StatusOK, "account.html", nil)
}
