package handlers

import (
	"net/http"
	"strconv"

	"reviewhub/internal/auth"
	"reviewhub/internal/jobs"
	"reviewhub/internal/middleware"
	"reviewhub/internal/models"
	"reviewhub/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	log     *logrus.Logger
	auth    *auth.Service
	reviews *store.ReviewStore
	jobs    jobs.Fetcher
}

func New(log *logrus.Logger, authSvc *auth.Service, reviews *store.ReviewStore, fetcher jobs.Fetcher) *Handler {
	return &Handler{
		log:     log,
		auth:    authSvc,
		reviews: reviews,
		jobs:    fetcher,
	}
}

// currentUser reads the user that middleware.InjectUser resolved.
func currentUser(c *gin.Context) (models.User, bool) {
	if v, ok := c.Get(middleware.CurrentUserKey); ok {
		if u, ok := v.(models.User); ok {
			return u, true
		}
	}
	return models.User{}, false
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *Handler) serverError(c *gin.Context, err error) {
	h.log.WithError(err).Error("handler failed")
	c.String(http.StatusInternalServerError, "internal error")
}
