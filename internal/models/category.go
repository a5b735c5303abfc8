package models

import "time"

type Category struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Slug         string `gorm:"size:255;not null;index"` // Sadece insert sırasında name'den türetilir
	CategoryType string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Products []Product `gorm:"constraint:OnDelete:CASCADE"`
}
