package category

import (
	"time"

	"crud-backend/internal/apierror"
	"crud-backend/internal/models"
	"crud-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	MessageCreated = "Category created successfully"
	MessageUpdated = "Category updated successfully"
	MessageDeleted = "Category deleted successfully"
)

type CategoryResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	CategoryType string    `json:"category_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProductSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

func toResponse(c models.Category) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		CategoryType: c.CategoryType,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// POST /api/categories/create
func CreateCategoryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCategoryRequest
		if err := validation.BindJSON(c, &body); err != nil {
			return err
		}

		cat, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": MessageCreated,
			"data":    toResponse(cat),
		})
	}
}

// GET /api/categories/get
func ListCategoriesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cats, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}

		res := make([]CategoryResponse, 0, len(cats))
		for _, cat := range cats {
			res = append(res, toResponse(cat))
		}
		return c.JSON(fiber.Map{"data": res})
	}
}

// GET /api/categories/get/:id
func GetCategoryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		cat, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": toResponse(cat)})
	}
}

// GET /api/categories/get/:id/products
func ListCategoryProductsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		products, err := svc.Products(c.UserContext(), id)
		if err != nil {
			return err
		}

		res := make([]ProductSummary, 0, len(products))
		for _, p := range products {
			res = append(res, ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price.StringFixed(2)})
		}
		return c.JSON(fiber.Map{"data": res})
	}
}

// PUT /api/categories/update/:id
func UpdateCategoryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdateCategoryRequest
		if err := validation.BindJSON(c, &body); err != nil {
			return err
		}

		cat, err := svc.Update(c.UserContext(), id, body)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"message": MessageUpdated,
			"data":    toResponse(cat),
		})
	}
}

// DELETE /api/categories/delete/:id
func DeleteCategoryHandler(svc *Service) fiber.Handler {
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

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apierror.NotFound("Category")
	}
	return uint(id), nil
}
