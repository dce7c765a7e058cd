package models

import (
	"time"

	"gorm.io/gorm"
)

// Review mirrors a review pulled from Google Places. GoogleID is the
// dedup key when the sync endpoint re-imports the same batch.
type Review struct {
	ID                      uint    `gorm:"primaryKey" json:"id"`
	GoogleID                string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"google_id"`
	AuthorName              string  `gorm:"type:varchar(255)" json:"author_name"`
	Rating                  int     `json:"rating"`
	Text                    string  `gorm:"type:text" json:"text"`
	ProfilePhotoUrl         string  `gorm:"type:varchar(512)" json:"profile_photo_url"`
	RelativeTimeDescription string  `gorm:"type:varchar(100)" json:"relative_time_description"`
	Time                    int64   `json:"time"`
	CreatedAt               int64   `json:"created_at"`
	TotalRevenue            float64 `gorm:"default:0" json:"total_revenue"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}
	return nil
}
