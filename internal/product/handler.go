package product

import (
	"time"

	"crud-backend/internal/apierror"
	"crud-backend/internal/models"
	"crud-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	MessageCreated = "Product created successfully"
	MessageUpdated = "Product updated successfully"
	MessageDeleted = "Product deleted successfully"
)

type ProductResponse struct {
	ID         uint      `json:"id"`
	CategoryID uint      `json:"category_id"`
	Name       string    `json:"name"`
	Price      string    `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		Price:      p.Price.StringFixed(priceScale),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// POST /api/products/create
func CreateProductHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := validation.BindJSON(c, &body); err != nil {
			return err
		}

		p, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": MessageCreated,
			"data":    toResponse(p),
		})
	}
}

// GET /api/products/get
func ListProductsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, toResponse(p))
		}
		return c.JSON(fiber.Map{"data": res})
	}
}

// GET /api/products/get/:id
func GetProductHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": toResponse(p)})
	}
}

// PUT /api/products/update/:id
func UpdateProductHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdateProductRequest
		if err := validation.BindJSON(c, &body); err != nil {
			return err
		}

		p, err := svc.Update(c.UserContext(), id, body)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"message": MessageUpdated,
			"data":    toResponse(p),
		})
	}
}

// DELETE /api/products/delete/:id
func DeleteProductHandler(svc *Service) fiber.Handler {
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
		return 0, apierror.NotFound("Product")
	}
	return uint(id), nil
}
