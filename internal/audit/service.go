package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"crud-backend/internal/auth"
	"crud-backend/internal/models"

	"gorm.io/gorm"
)

type LogOptions struct {
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog stores an audit entry using tx, so the entry commits or rolls
// back together with the mutation it describes. The actor is taken from ctx.
func WriteLog(ctx context.Context, tx *gorm.DB, opts LogOptions) error {
	entry := models.AuditLog{
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  snapshot(opts.Before),
		AfterData:   snapshot(opts.After),
	}
	if p, ok := auth.PrincipalFrom(ctx); ok {
		entry.UserID = p.UserID
		entry.UserName = p.Name
	}

	if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("audit log kaydedilemedi: %w", err)
	}
	return nil
}

// snapshot encodes v as JSON; nil becomes the JSON literal null.
func snapshot(v any) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
