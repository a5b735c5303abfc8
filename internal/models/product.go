package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID         uint            `gorm:"primaryKey"`
	CategoryID uint            `gorm:"not null;index"`
	Name       string          `gorm:"size:255;not null"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
