package branch

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

const entityType = "branch"

type CreateBranchRequest struct {
	Name    string `json:"name" validate:"required,max=255,unique=branches.name"`
	Address string `json:"address" validate:"required"`
}

// UpdateBranchRequest is a partial update: nil / absent fields keep their
// stored value.
type UpdateBranchRequest struct {
	Name     *string         `json:"name" validate:"omitempty,filled,max=255"`
	Address  *string         `json:"address" validate:"omitempty,filled"`
	IsActive validation.Bool `json:"is_active" validate:"omitempty,boolean"`
}

type Service struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewService(db *gorm.DB, v *validation.Validator) *Service {
	return &Service{db: db, validator: v}
}

func (s *Service) Create(ctx context.Context, req CreateBranchRequest) (models.Branch, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)

	if err := s.validator.Struct(ctx, &req); err != nil {
		return models.Branch{}, err
	}

	branch := models.Branch{
		Name:     req.Name,
		Address:  req.Address,
		IsActive: true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&branch).Error; err != nil {
			// Aynı isimle eşzamanlı create: unique index yakalar
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nameTaken()
			}
			return fmt.Errorf("şube oluşturulamadı: %w", err)
		}
		return audit.WriteLog(ctx, tx, audit.LogOptions{
			EntityType:  entityType,
			EntityID:    branch.ID,
			Action:      models.AuditActionCreate,
			Description: "Branch created: " + branch.Name,
			After:       toResponse(branch),
		})
	})
	if err != nil {
		return models.Branch{}, err
	}
	return branch, nil
}

// List returns every branch in insertion order.
func (s *Service) List(ctx context.Context) ([]models.Branch, error) {
	var branches []models.Branch
	if err := s.db.WithContext(ctx).Order("id asc").Find(&branches).Error; err != nil {
		return nil, fmt.Errorf("şubeler listelenemedi: %w", err)
	}
	return branches, nil
}

func (s *Service) Get(ctx context.Context, id uint) (models.Branch, error) {
	return find(ctx, s.db, id)
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateBranchRequest) (models.Branch, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if req.Address != nil {
		address := strings.TrimSpace(*req.Address)
		req.Address = &address
	}

	if err := s.validator.Struct(ctx, &req); err != nil {
		return models.Branch{}, err
	}

	var branch models.Branch
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		branch, err = find(ctx, tx, id)
		if err != nil {
			return err
		}
		before := toResponse(branch)
		changed := false

		if req.Name != nil && *req.Name != branch.Name {
			taken, err := validation.Taken(ctx, tx, "branches.name", *req.Name, branch.ID)
			if err != nil {
				return err
			}
			if taken {
				return nameTaken()
			}
			branch.Name = *req.Name
			changed = true
		}
		if req.Address != nil && *req.Address != branch.Address {
			branch.Address = *req.Address
			changed = true
		}
		if req.IsActive.Present() && req.IsActive.Value() != branch.IsActive {
			branch.IsActive = req.IsActive.Value()
			changed = true
		}
		// Değişiklik yoksa updated_at ve audit kaydı olduğu gibi kalır
		if !changed {
			return nil
		}

		if err := tx.Save(&branch).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nameTaken()
			}
			return fmt.Errorf("şube güncellenemedi: %w", err)
		}
		return audit.WriteLog(ctx, tx, audit.LogOptions{
			EntityType:  entityType,
			EntityID:    branch.ID,
			Action:      models.AuditActionUpdate,
			Description: "Branch updated: " + branch.Name,
			Before:      before,
			After:       toResponse(branch),
		})
	})
	if err != nil {
		return models.Branch{}, err
	}
	return branch, nil
}

// Delete hard-deletes the branch. A missing id is reported as not found.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		branch, err := find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Branch{}, branch.ID).Error; err != nil {
			return fmt.Errorf("şube silinemedi: %w", err)
		}
		return audit.WriteLog(ctx, tx, audit.LogOptions{
			EntityType:  entityType,
			EntityID:    branch.ID,
			Action:      models.AuditActionDelete,
			Description: "Branch deleted: " + branch.Name,
			Before:      toResponse(branch),
		})
	})
}

func find(ctx context.Context, db *gorm.DB, id uint) (models.Branch, error) {
	var branch models.Branch
	err := db.WithContext(ctx).First(&branch, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Branch{}, apierror.NotFound("Branch")
	}
	if err != nil {
		return models.Branch{}, fmt.Errorf("şube okunamadı: %w", err)
	}
	return branch, nil
}

func nameTaken() error {
	verr := apierror.NewValidation()
	verr.Add("name", validation.TakenMessage("name"))
	return verr
}
