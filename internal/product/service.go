package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crud-backend/internal/apierror"
	"crud-backend/internal/audit"
	"crud-backend/internal/models"
	"crud-backend/internal/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	entityType = "product"

	priceScale = 2
)

type CreateProductRequest struct {
	CategoryID uint             `json:"category_id" validate:"required,exists=categories.id"`
	Name       string           `json:"name" validate:"required,max=255"`
	Price      *decimal.Decimal `json:"price" validate:"required,gte=0"`
}

type UpdateProductRequest struct {
	CategoryID *uint            `json:"category_id" validate:"omitempty,exists=categories.id"`
	Name       *string          `json:"name" validate:"omitempty,filled,max=255"`
	Price      *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
}

type Service struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewService(db *gorm.DB, v *validation.Validator) *Service {
	return &Service{db: db, validator: v}
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (models.Product, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validator.Struct(ctx, &req); err != nil {
		return models.Product{}, err
	}

	p := models.Product{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price.Round(priceScale),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return fmt.Errorf("ürün oluşturulamadı: %w", err)
		}
		return audit.WriteLog(ctx, tx, audit.LogOptions{
			EntityType:  entityType,
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: "Product created: " + p.Name,
			After:       toResponse(p),
		})
	})
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("ürünler listelenemedi: %w", err)
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id uint) (models.Product, error) {
	return find(ctx, s.db, id)
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateProductRequest) (models.Product, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	if err := s.validator.Struct(ctx, &req); err != nil {
		return models.Product{}, err
	}

	var p models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		p, err = find(ctx, tx, id)
		if err != nil {
			return err
		}
		before := toResponse(p)
		changed := false

		if req.CategoryID != nil && *req.CategoryID != p.CategoryID {
			p.CategoryID = *req.CategoryID
			changed = true
		}
		if req.Name != nil && *req.Name != p.Name {
			p.Name = *req.Name
			changed = true
		}
		if req.Price != nil {
			if price := req.Price.Round(priceScale); !price.Equal(p.Price) {
				p.Price = price
				changed = true
			}
		}
		if !changed {
			return nil
		}

		if err := tx.Save(&p).Error; err != nil {
			return fmt.Errorf("ürün güncellenemedi: %w", err)
		}
		return audit.WriteLog(ctx, tx, audit.LogOptions{
			EntityType:  entityType,
			EntityID:    p.ID,
			Action:      models.AuditActionUpdate,
			Description: "Product updated: " + p.Name,
			Before:      before,
			After:       toResponse(p),
		})
	})
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Product{}, p.ID).Error; err != nil {
			return fmt.Errorf("ürün silinemedi: %w", err)
		}
		return audit.WriteLog(ctx, tx, audit.LogOptions{
			EntityType:  entityType,
			EntityID:    p.ID,
			Action:      models.AuditActionDelete,
			Description: "Product deleted: " + p.Name,
			Before:      toResponse(p),
		})
	})
}

func find(ctx context.Context, db *gorm.DB, id uint) (models.Product, error) {
	var p models.Product
	err := db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, apierror.NotFound("Product")
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("ürün okunamadı: %w", err)
	}
	return p, nil
}
