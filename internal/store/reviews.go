package store

import (
	"errors"
	"fmt"

	"reviewhub/internal/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

const ReviewsPerPage = 5

// Page is one slice of a paginated review listing plus the metadata
// the templates need to draw pager links.
type Page struct {
	Items      []models.Review
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

func (p Page) HasPrev() bool { return p.Page > 1 }
func (p Page) HasNext() bool { return p.Page < p.TotalPages }
func (p Page) PrevPage() int { return p.Page - 1 }
func (p Page) NextPage() int { return p.Page + 1 }

type ReviewStore struct {
	db *gorm.DB
}

func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// ListAll returns every review for the home view, newest first.
func (s *ReviewStore) ListAll() ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("Author").Order("created_at desc").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Paginate applies the filter and returns the requested page. Page
// numbers below 1 are clamped to 1; a page past the end comes back
// with empty Items, not an error.
func (s *ReviewStore) Paginate(page, perPage int, f Filter) (Page, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = ReviewsPerPage
	}

	base := f.apply(s.db.Model(&models.Review{}))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return Page{}, fmt.Errorf("count reviews: %w", err)
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	var reviews []models.Review
	err := f.apply(s.db.Preload("Author")).
		Order("created_at desc, id desc").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&reviews).Error
	if err != nil {
		return Page{}, fmt.Errorf("page reviews: %w", err)
	}

	return Page{
		Items:      reviews,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *ReviewStore) Get(id uint) (models.Review, error) {
	var review models.Review
	err := s.db.Preload("Author").First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Review{}, ErrNotFound
	}
	if err != nil {
		return models.Review{}, fmt.Errorf("get review %d: %w", id, err)
	}
	return review, nil
}

func (s *ReviewStore) Create(review *models.Review) error {
	if err := s.db.Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (s *ReviewStore) Update(review *models.Review) error {
	if err := s.db.Save(review).Error; err != nil {
		return fmt.Errorf("update review %d: %w", review.ID, err)
	}
	return nil
}

// Delete removes the row permanently, no soft-delete.
func (s *ReviewStore) Delete(id uint) error {
	res := s.db.Unscoped().Delete(&models.Review{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete review %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
