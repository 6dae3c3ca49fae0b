package main

import (
	"database/sql"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/littlecharmz/boutique-backend/internal/admin"
	"github.com/littlecharmz/boutique-backend/internal/cart"
	"github.com/littlecharmz/boutique-backend/internal/category"
	"github.com/littlecharmz/boutique-backend/internal/config"
	"github.com/littlecharmz/boutique-backend/internal/order"
	"github.com/littlecharmz/boutique-backend/internal/product"
	"github.com/littlecharmz/boutique-backend/internal/shipping"
	"github.com/littlecharmz/boutique-backend/internal/upload"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(logger))

	// catalog repositories: Postgres when DATABASE_URL is set, otherwise the
	// JSON file store under DATA_DIR
	var (
		productRepo  product.Repository
		categoryRepo category.Repository
	)
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		productRepo = product.NewPostgresRepository(db)
		categoryRepo = category.NewPostgresRepository(db)
		logger.Info("catalog store: postgres")
	} else {
		productRepo = product.NewFileRepository(filepath.Join(cfg.DataDir, "products.json"))
		categoryRepo = category.NewFileRepository(filepath.Join(cfg.DataDir, "categories.json"))
		logger.Info("catalog store: json files", zap.String("dir", cfg.DataDir))
	}

	uploads := upload.NewStore(cfg.UploadDir)
	uploadHandler := upload.NewHandler(uploads)

	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService, uploads)

	categoryService := category.NewService(categoryRepo)
	categoryHandler := category.NewHandler(categoryService, uploads)

	cartHandler := cart.NewHandler(cart.NewService(cart.NewInMemoryRepository()))

	orderService := order.NewService(order.NewInMemoryRepository())
	orderHandler := order.NewHandler(orderService)

	shippingHandler := shipping.NewHandler(shipping.NewStore())

	adminService, err := admin.NewService(cfg.AdminEmail, cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		logger.Fatal("admin service", zap.Error(err))
	}
	adminHandler := admin.NewHandler(adminService, productService, categoryService, orderService)

	// uploaded images are served directly
	app.Static("/uploads", cfg.UploadDir)

	// public storefront surface
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	shippingHandler.RegisterPublicRoutes(app)
	adminHandler.RegisterPublicRoutes(app)

	// everything registered below requires an admin token
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(cfg.JWTSecret)}))

	productHandler.RegisterProtectedRoutes(app)
	categoryHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	shippingHandler.RegisterProtectedRoutes(app)
	adminHandler.RegisterProtectedRoutes(app)
	uploadHandler.RegisterProtectedRoutes(app)

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
		)
		return err
	}
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}
