package models

import "strings"

// Slot is a parking position. At most one slot may reference a given moto at
// any time; the services enforce that before every write.
type Slot struct {
	ID     int    `json:"id" gorm:"primaryKey"`
	MotoID int    `json:"moto_id"`
	Status string `json:"status" gorm:"size:1"`
}

func (s *Slot) Occupied() bool {
	return strings.EqualFold(s.Status, "S")
}
