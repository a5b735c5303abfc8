package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`

	// İşlemi yapan kullanıcı (token'dan)
	UserID   uint   `gorm:"index"`
	UserName string `gorm:"size:255"` // denormalize

	// ör: "branch", "category", "product"
	EntityType string `gorm:"size:50;index"`
	EntityID   uint   `gorm:"index"`

	Action      AuditAction `gorm:"size:20"`
	Description string      `gorm:"size:255"`

	// Önceki ve sonraki hal (JSON)
	BeforeData string `gorm:"type:text"`
	AfterData  string `gorm:"type:text"`
}
