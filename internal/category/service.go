package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crud-backend/internal/apierror"
	"crud-backend/internal/audit"
	"crud-backend/internal/models"
	"crud-backend/internal/validation"

	"gorm.io/gorm"
)

const entityType = "category"

type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	CategoryType string `json:"category_type" validate:"required,max=255"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name" validate:"omitempty,filled,max=255"`
	CategoryType *string `json:"category_type" validate:"omitempty,filled,max=255"`
}

type Service struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewService(db *gorm.DB, v *validation.Validator) *Service {
	return &Service{db: db, validator: v}
}

func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (models.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.CategoryType = strings.TrimSpace(req.CategoryType)

	if err := s.validator.Struct(ctx, &req); err != nil {
		return models.Category{}, err
	}

	cat := models.Category{
		Name:         req.Name,
		CategoryType: req.CategoryType,
	}
	prepareInsert(&cat)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cat).Error; err != nil {
			return fmt.Errorf("kategori oluşturulamadı: %w", err)
		}
		return audit.WriteLog(ctx, tx, audit.LogOptions{
			EntityType:  entityType,
			EntityID:    cat.ID,
			Action:      models.AuditActionCreate,
			Description: "Category created: " + cat.Name,
			After:       toResponse(cat),
		})
	})
	if err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.WithContext(ctx).Order("id asc").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("kategoriler listelenemedi: %w", err)
	}
	return cats, nil
}

func (s *Service) Get(ctx context.Context, id uint) (models.Category, error) {
	return find(ctx, s.db, id)
}

// Products lists the products owned by the category.
func (s *Service) Products(ctx context.Context, id uint) ([]models.Product, error) {
	if _, err := find(ctx, s.db, id); err != nil {
		return nil, err
	}

	var products []models.Product
	if err := s.db.WithContext(ctx).Where("category_id = ?", id).Order("id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("kategori ürünleri listelenemedi: %w", err)
	}
	return products, nil
}

// Update never recomputes the slug.
func (s *Service) Update(ctx context.Context, id uint, req UpdateCategoryRequest) (models.Category, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if req.CategoryType != nil {
		ct := strings.TrimSpace(*req.CategoryType)
		req.CategoryType = &ct
	}

	if err := s.validator.Struct(ctx, &req); err != nil {
		return models.Category{}, err
	}

	var cat models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		cat, err = find(ctx, tx, id)
		if err != nil {
			return err
		}
		before := toResponse(cat)
		changed := false

		if req.Name != nil && *req.Name != cat.Name {
			cat.Name = *req.Name
			changed = true
		}
		if req.CategoryType != nil && *req.CategoryType != cat.CategoryType {
			cat.CategoryType = *req.CategoryType
			changed = true
		}
		if !changed {
			return nil
		}

		if err := tx.Save(&cat).Error; err != nil {
			return fmt.Errorf("kategori güncellenemedi: %w", err)
		}
		return audit.WriteLog(ctx, tx, audit.LogOptions{
			EntityType:  entityType,
			EntityID:    cat.ID,
			Action:      models.AuditActionUpdate,
			Description: "Category updated: " + cat.Name,
			Before:      before,
			After:       toResponse(cat),
		})
	})
	if err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// Delete removes the category together with its products.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cat, err := find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", cat.ID).Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("kategori ürünleri silinemedi: %w", err)
		}
		if err := tx.Delete(&models.Category{}, cat.ID).Error; err != nil {
			return fmt.Errorf("kategori silinemedi: %w", err)
		}
		return audit.WriteLog(ctx, tx, audit.LogOptions{
			EntityType:  entityType,
			EntityID:    cat.ID,
			Action:      models.AuditActionDelete,
			Description: "Category deleted: " + cat.Name,
			Before:      toResponse(cat),
		})
	})
}

func find(ctx context.Context, db *gorm.DB, id uint) (models.Category, error) {
	var cat models.Category
	err := db.WithContext(ctx).First(&cat, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, apierror.NotFound("Category")
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("kategori okunamadı: %w", err)
	}
	return cat, nil
}
