package store

import (
	"strings"

	"gorm.io/gorm"
)

// Rating bounds used when a search omits them.
const (
	MinRating = 1
	MaxRating = 5
)

// Filter narrows a review query. Blank fields are skipped entirely;
// all supplied conditions are combined with AND.
type Filter struct {
	Title     string
	Location  string
	MinRating int
	MaxRating int
}

// Normalize fills absent rating bounds with the full valid range.
func (f Filter) Normalize() Filter {
	if f.MinRating == 0 {
		f.MinRating = MinRating
	}
	if f.MaxRating == 0 {
		f.MaxRating = MaxRating
	}
	return f
}

func (f Filter) apply(q *gorm.DB) *gorm.DB {
	f = f.Normalize()

	if title := strings.TrimSpace(f.Title); title != "" {
		q = q.Where("LOWER(job_title) LIKE LOWER(?)", "%"+title+"%")
	}
	if location := strings.TrimSpace(f.Location); location != "" {
		q = q.Where("LOWER(location) LIKE LOWER(?)", "%"+location+"%")
	}
	q = q.Where("rating BETWEEN ? AND ?", f.MinRating, f.MaxRating)

	return q
}
