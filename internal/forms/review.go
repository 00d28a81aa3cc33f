package forms

import "reviewhub/internal/models"

type ReviewForm struct {
	JobTitle       string `form:"job_title" validate:"required,max=100"`
	JobDescription string `form:"job_description" validate:"required"`
	Department     string `form:"department" validate:"required,max=100"`
	Location       string `form:"locations" validate:"required,max=100"`
	HourlyPay      string `form:"hourly_pay" validate:"required,max=20"`
	Benefits       string `form:"benefits" validate:"required"`
	Review         string `form:"review" validate:"required"`
	Rating         int    `form:"rating" validate:"required,min=1,max=5"`
	Recommendation string `form:"recommendation" validate:"required,oneof=yes no"`
}

// Apply overwrites every mutable field of the review with the
// submitted values.
func (f ReviewForm) Apply(review *models.Review) {
	review.JobTitle = f.JobTitle
	review.JobDescription = f.JobDescription
	review.Department = f.Department
	review.Location = f.Location
	review.HourlyPay = f.HourlyPay
	review.Benefits = f.Benefits
	review.Review = f.Review
	review.Rating = f.Rating
	review.Recommendation = f.Recommendation
}

// ReviewFormFrom pre-populates the edit form with a review's current
// values.
func ReviewFormFrom(review models.Review) ReviewForm {
	return ReviewForm{
		JobTitle:       review.JobTitle,
		JobDescription: review.JobDescription,
		Department:     review.Department,
		Location:       review.Location,
		HourlyPay:      review.HourlyPay,
		Benefits:       review.Benefits,
		Review:         review.Review,
		Rating:         review.Rating,
		Recommendation: review.Recommendation,
	}
}
