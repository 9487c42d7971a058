// internal/models/moto.go
package models

import "strings"

// Moto is a motorcycle tracked by the yard. Status holds "S" or "N" in the
// database, entity meaning: in service / out of service.
type Moto struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Model    string `json:"model" gorm:"size:100"`
	Brand    string `json:"brand" gorm:"size:100"`
	Year     int    `json:"year"`
	Plate    string `json:"plate" gorm:"size:10;uniqueIndex"`
	Status   string `json:"status" gorm:"size:1"`
	PhotoURL string `json:"photo_url" gorm:"size:2048"`
}

func (m *Moto) Active() bool {
	return strings.EqualFold(m.Status, "S")
}
