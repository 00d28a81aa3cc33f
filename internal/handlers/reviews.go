package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"reviewhub/internal/forms"
	"reviewhub/internal/models"
	"reviewhub/internal/store"

	"github.com/gin-gonic/gin"
)

// Home renders every review, unpaginated.
func (h *Handler) Home(c *gin.Context) {
	entries, err := h.reviews.ListAll()
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "index.html", gin.H{"entries": entries})
}

// ListReviews renders the paginated review list, 5 per page.
func (h *Handler) ListReviews(c *gin.Context) {
	page, err := h.reviews.Paginate(pageParam(c), store.ReviewsPerPage, store.Filter{})
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "view_reviews.html", gin.H{
		"entries":         page,
		"search_title":    "",
		"search_location": "",
		"min_rating":      store.MinRating,
		"max_rating":      store.MaxRating,
	})
}

// SearchReviews filters reviews by title/location substring and
// rating range, then paginates. Filters come from the form body on
// POST or the query string on GET so pager links keep the search.
func (h *Handler) SearchReviews(c *gin.Context) {
	searchTitle := strings.TrimSpace(c.Request.FormValue("search_title"))
	searchLocation := strings.TrimSpace(c.Request.FormValue("search_location"))
	minRating := intFormValue(c, "min_rating", store.MinRating)
	maxRating := intFormValue(c, "max_rating", store.MaxRating)

	filter := store.Filter{
		Title:     searchTitle,
		Location:  searchLocation,
		MinRating: minRating,
		MaxRating: maxRating,
	}

	page, err := h.reviews.Paginate(pageParam(c), store.ReviewsPerPage, filter)
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.render(c, http.StatusOK, "view_reviews.html", gin.H{
		"entries":         page,
		"search_title":    searchTitle,
		"search_location": searchLocation,
		"min_rating":      minRating,
		"max_rating":      maxRating,
	})
}

func (h *Handler) ShowNewReview(c *gin.Context) {
	h.render(c, http.StatusOK, "create_review.html", gin.H{
		"form":   forms.ReviewForm{},
		"errors": forms.Errors{},
		"legend": "Add your Review",
	})
}

func (h *Handler) CreateReview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form forms.ReviewForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	if errs := forms.Validate(form); errs != nil {
		h.render(c, http.StatusBadRequest, "create_review.html", gin.H{
			"form":   form,
			"errors": errs,
			"legend": "Add your Review",
		})
		return
	}

	review := models.Review{UserID: user.ID}
	form.Apply(&review)

	if err := h.reviews.Create(&review); err != nil {
		h.serverError(c, err)
		return
	}

	flash(c, "Review submitted successfully!")
	c.Redirect(http.StatusFound, "/review/all")
}

func (h *Handler) ShowReview(c *gin.Context) {
	review, ok := h.reviewOr404(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, "review.html", gin.H{"review": review})
}

func (h *Handler) ShowUpdateReview(c *gin.Context) {
	review, ok := h.reviewOr404(c)
	if !ok {
		return
	}
	if !h.authorOnly(c, review) {
		return
	}

	h.render(c, http.StatusOK, "create_review.html", gin.H{
		"form":   forms.ReviewFormFrom(review),
		"errors": forms.Errors{},
		"legend": "Update Review",
	})
}

func (h *Handler) UpdateReview(c *gin.Context) {
	review, ok := h.reviewOr404(c)
	if !ok {
		return
	}
	if !h.authorOnly(c, review) {
		return
	}

	var form forms.ReviewForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	if errs := forms.Validate(form); errs != nil {
		h.render(c, http.StatusBadRequest, "create_review.html", gin.H{
			"form":   form,
			"errors": errs,
			"legend": "Update Review",
		})
		return
	}

	form.Apply(&review)
	if err := h.reviews.Update(&review); err != nil {
		h.serverError(c, err)
		return
	}

	flash(c, "Your review has been updated!")
	c.Redirect(http.StatusFound, "/review/all")
}

func (h *Handler) DeleteReview(c *gin.Context) {
	review, ok := h.reviewOr404(c)
	if !ok {
		return
	}
	if !h.authorOnly(c, review) {
		return
	}

	if err := h.reviews.Delete(review.ID); err != nil {
		h.serverError(c, err)
		return
	}

	flash(c, "Your review has been deleted!")
	c.Redirect(http.StatusFound, "/review/all")
}

func (h *Handler) reviewOr404(c *gin.Context) (models.Review, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusNotFound, "review not found")
		return models.Review{}, false
	}

	review, err := h.reviews.Get(uint(id))
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusNotFound, "review not found")
		return models.Review{}, false
	}
	if err != nil {
		h.serverError(c, err)
		return models.Review{}, false
	}
	return review, true
}

// authorOnly enforces that only the review's author may mutate it.
func (h *Handler) authorOnly(c *gin.Context, review models.Review) bool {
	user, ok := currentUser(c)
	if !ok || review.UserID != user.ID {
		c.String(http.StatusForbidden, "access denied")
		return false
	}
	return true
}

func intFormValue(c *gin.Context, key string, def int) int {
	raw := strings.TrimSpace(c.Request.FormValue(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
