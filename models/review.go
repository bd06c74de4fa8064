package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a customer testimonial. Public submissions start unapproved and
// only become visible on the storefront after moderation.
type Review struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Author     string         `gorm:"type:varchar(128);not null" json:"author"`
	Text       string         `gorm:"type:text;not null" json:"text"`
	Rating     int            `gorm:"not null" json:"rating"` // always within [1,5]
	Date       string         `gorm:"type:varchar(64);not null" json:"date"`
	Highlight  bool           `gorm:"not null;default:false" json:"highlight"`
	IsApproved bool           `gorm:"not null;default:false" json:"isApproved"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// CreateReviewRequest is the public submission payload. Rating is clamped
// into [1,5] by the service, not rejected.
type CreateReviewRequest struct {
	Author string `json:"author" binding:"required"`
	Text   string `json:"text" binding:"required"`
	Rating int    `json:"rating"`
}

// UpdateReviewRequest is the admin edit payload.
type UpdateReviewRequest struct {
	Author     string `json:"author" binding:"required"`
	Text       string `json:"text" binding:"required"`
	Rating     int    `json:"rating"`
	Date       string `json:"date"`
	Highlight  bool   `json:"highlight"`
	IsApproved bool   `json:"isApproved"`
}

// ApproveReviewRequest is the moderation toggle payload.
type ApproveReviewRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// ClampRating forces a rating into the [1,5] range.
func ClampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

var russianMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatReviewDate renders t the way the storefront shows review dates,
// e.g. "5 марта 2026 г.". The formatted string is stored at creation time.
func FormatReviewDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d г.", t.Day(), russianMonths[t.Month()-1], t.Year())
}
