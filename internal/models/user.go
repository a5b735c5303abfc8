package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID              uint     `gorm:"primaryKey"`
	Name            string   `gorm:"size:255;not null"`
	Email           string   `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash    string   `gorm:"size:255;not null"`
	Role            UserRole `gorm:"size:20;not null;default:user"`
	EmailVerifiedAt *time.Time
	RememberToken   *string `gorm:"size:100"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
