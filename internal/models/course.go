package models

import (
	"time"
)

// CourseCategory groups courses for listing pages.
type CourseCategory struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Course is a purchasable course document. Prices are authored in USD;
// the NGN figure is derived at seed time from the shared conversion
// convention and kept for content parity with the CMS.
type Course struct {
	ID                 uint    `gorm:"primarykey" json:"id"`
	Slug               string  `gorm:"uniqueIndex;not null" json:"slug"`
	Title              string  `gorm:"not null" json:"title"`
	Summary            string  `json:"summary"`
	Description        string  `json:"description"`
	Level              string  `gorm:"default:'beginner'" json:"level"`
	Duration           string  `json:"duration"`
	Instructor         string  `json:"instructor"`
	PriceUSD           float64 `gorm:"not null" json:"priceUSD"`
	PriceNGN           float64 `json:"priceNGN"`
	HourlyRateUSD      float64 `json:"hourlyRateUSD"`
	MaxStudents        int     `gorm:"default:20" json:"maxStudents"`
	CurrentEnrollments int     `gorm:"default:0" json:"currentEnrollments"`
	CategoryID         uint    `gorm:"index" json:"categoryId"`
	Category           *CourseCategory `json:"category,omitempty"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SpotsLeft reports the remaining capacity of the course.
func (c *Course) SpotsLeft() int {
	left := c.MaxStudents - c.CurrentEnrollments
	if left < 0 {
		return 0
	}
	return left
}

// IsFull reports whether the course has no remaining capacity.
func (c *Course) IsFull() bool {
	return c.SpotsLeft() == 0
}
