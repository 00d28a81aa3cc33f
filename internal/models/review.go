package models

import "gorm.io/gorm"

// Recommendation values accepted from the review form.
const (
	RecommendYes = "yes"
	RecommendNo  = "no"
)

type Review struct {
	gorm.Model
	JobTitle       string `gorm:"size:100;not null"`
	JobDescription string `gorm:"type:text"`
	Department     string `gorm:"size:100"`
	Location       string `gorm:"size:100;not null"`
	HourlyPay      string `gorm:"size:20"`
	Benefits       string `gorm:"type:text"`
	Review         string `gorm:"type:text;not null"`
	Rating         int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Recommendation string `gorm:"size:10;not null"`

	UserID uint `gorm:"not null;index"`
	Author User `gorm:"foreignKey:UserID"`
}
