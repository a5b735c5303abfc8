package branch

import (
	"time"

	"crud-backend/internal/apierror"
	"crud-backend/internal/models"
	"crud-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	MessageCreated = "Branch created successfully"
	MessageUpdated = "Branch updated successfully"
	MessageDeleted = "Branch deleted successfully"
)

type BranchResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(b models.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// POST /api/branches/create
func CreateBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBranchRequest
		if err := validation.BindJSON(c, &body); err != nil {
			return err
		}

		branch, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": MessageCreated,
			"data":    toResponse(branch),
		})
	}
}

// GET /api/branches/get
func ListBranchesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branches, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}

		res := make([]BranchResponse, 0, len(branches))
		for _, b := range branches {
			res = append(res, toResponse(b))
		}
		return c.JSON(fiber.Map{"data": res})
	}
}

// GET /api/branches/get/:id
func GetBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		branch, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": toResponse(branch)})
	}
}

// PUT /api/branches/update/:id
func UpdateBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdateBranchRequest
		if err := validation.BindJSON(c, &body); err != nil {
			return err
		}

		branch, err := svc.Update(c.UserContext(), id, body)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"message": MessageUpdated,
			"data":    toResponse(branch),
		})
	}
}

// DELETE /api/branches/delete/:id
func DeleteBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"message": MessageDeleted,
			"data":    true,
		})
	}
}

// parseID treats a malformed id like an unknown one.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apierror.NotFound("Branch")
	}
	return uint(id), nil
}
