package model

import "time"

// User represents a registered customer or administrator.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"` // Never expose in JSON
	Address      string    `json:"address,omitempty" gorm:"size:200"`
	Phone        string    `json:"phone,omitempty" gorm:"size:20"`
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
