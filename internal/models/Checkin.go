package models

import (
	"strings"
	"time"
)

// Checkin is an inspection record for a moto. Status holds "S" or "N", here
// meaning tampered / intact.
type Checkin struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	MotoID      int       `json:"moto_id"`
	UserID      int       `json:"user_id"`
	Status      string    `json:"status" gorm:"size:1"`
	Observation string    `json:"observation"`
	Timestamp   time.Time `json:"timestamp"`
	ImagesURL   string    `json:"images_url" gorm:"size:2048"`
}

func (c *Checkin) Tampered() bool {
	return strings.EqualFold(c.Status, "S")
}
