package models

// User is a yard operator account. Password is stored bcrypt-hashed.
type User struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:100"`
	Email    string `json:"email" gorm:"size:100;uniqueIndex"`
	Password string `json:"password" gorm:"size:100"`
	Phone    string `json:"phone" gorm:"size:20"`
}
