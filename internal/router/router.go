package router

import (
	"time"

	"crud-backend/internal/apierror"
	"crud-backend/internal/audit"
	"crud-backend/internal/auth"
	"crud-backend/internal/branch"
	"crud-backend/internal/category"
	"crud-backend/internal/config"
	"crud-backend/internal/middleware"
	"crud-backend/internal/product"
	"crud-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New is the composition root of the HTTP layer: every handler receives
// its store handle, validator and auth middleware from here.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: apierror.Handler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins(),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	v := validation.New(db)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	jwtAuth := auth.NewMiddleware(cfg.JWTSecret)

	branches := branch.NewService(db, v)
	categories := category.NewService(db, v)
	products := product.NewService(db, v)

	app.Get("/health", healthHandler(db))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(db, v, issuer))

	// Protected
	protected := api.Group("", jwtAuth.Handler())

	protected.Get("/auth/me", auth.MeHandler(db))

	// Şubeler
	protected.Post("/branches/create", branch.CreateBranchHandler(branches))
	protected.Get("/branches/get", branch.ListBranchesHandler(branches))
	protected.Get("/branches/get/:id", branch.GetBranchHandler(branches))
	protected.Put("/branches/update/:id", branch.UpdateBranchHandler(branches))
	protected.Delete("/branches/delete/:id", branch.DeleteBranchHandler(branches))

	// Kategoriler
	protected.Post("/categories/create", category.CreateCategoryHandler(categories))
	protected.Get("/categories/get", category.ListCategoriesHandler(categories))
	protected.Get("/categories/get/:id", category.GetCategoryHandler(categories))
	protected.Get("/categories/get/:id/products", category.ListCategoryProductsHandler(categories))
	protected.Put("/categories/update/:id", category.UpdateCategoryHandler(categories))
	protected.Delete("/categories/delete/:id", category.DeleteCategoryHandler(categories))

	// Ürünler
	protected.Post("/products/create", product.CreateProductHandler(products))
	protected.Get("/products/get", product.ListProductsHandler(products))
	protected.Get("/products/get/:id", product.GetProductHandler(products))
	protected.Put("/products/update/:id", product.UpdateProductHandler(products))
	protected.Delete("/products/delete/:id", product.DeleteProductHandler(products))

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler(db))

	return app
}

func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
