package forms

import (
	"testing"

	"reviewhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationFormValidation(t *testing.T) {
	errs := Validate(RegistrationForm{})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("username"))
	assert.True(t, errs.Has("email"))
	assert.True(t, errs.Has("password"))

	errs = Validate(RegistrationForm{
		Username:        "alice",
		Email:           "not-an-email",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NotNil(t, errs)
	assert.Equal(t, "Invalid email address.", errs.Get("email"))

	errs = Validate(RegistrationForm{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "different",
	})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("confirm_password"))

	errs = Validate(RegistrationForm{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	assert.Nil(t, errs)
}

func TestLoginFormValidation(t *testing.T) {
	errs := Validate(LoginForm{})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("email"))
	assert.True(t, errs.Has("password"))

	errs = Validate(LoginForm{Email: "alice@example.com", Password: "x"})
	assert.Nil(t, errs)
}

func validReviewForm() ReviewForm {
	return ReviewForm{
		JobTitle:       "Baker",
		JobDescription: "Bread and pastry",
		Department:     "Kitchen",
		Location:       "NYC",
		HourlyPay:      "21.50",
		Benefits:       "health insurance",
		Review:         "Great place to work.",
		Rating:         4,
		Recommendation: "yes",
	}
}

func TestReviewFormValidation(t *testing.T) {
	assert.Nil(t, Validate(validReviewForm()))

	form := validReviewForm()
	form.Rating = 6
	errs := Validate(form)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("rating"))

	form = validReviewForm()
	form.Rating = 0
	errs = Validate(form)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("rating"))

	form = validReviewForm()
	form.Recommendation = "maybe"
	errs = Validate(form)
	require.NotNil(t, errs)
	assert.Equal(t, "Must be one of: yes no.", errs.Get("recommendation"))
}

func TestReviewFormRoundTrip(t *testing.T) {
	form := validReviewForm()

	var review models.Review
	review.UserID = 7
	form.Apply(&review)

	assert.Equal(t, "Baker", review.JobTitle)
	assert.Equal(t, "NYC", review.Location)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, uint(7), review.UserID, "author untouched by form apply")

	back := ReviewFormFrom(review)
	assert.Equal(t, form, back)
}
