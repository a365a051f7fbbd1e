package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/minseo040526/reccomendationaisystem/internal/auth"
	"github.com/minseo040526/reccomendationaisystem/internal/board"
	"github.com/minseo040526/reccomendationaisystem/internal/config"
	"github.com/minseo040526/reccomendationaisystem/internal/customer"
	"github.com/minseo040526/reccomendationaisystem/internal/menu"
	"github.com/minseo040526/reccomendationaisystem/internal/order"
	"github.com/minseo040526/reccomendationaisystem/internal/recommend"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	var (
		menuRepo     menu.Repository
		customerRepo customer.Repository
		orderRepo    order.Repository
	)
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		bootstrapSchema(db)
		menuRepo = menu.NewPostgresRepository(db)
		customerRepo = customer.NewPostgresRepository(db)
		orderRepo = order.NewPostgresRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory repositories")
		menuRepo = menu.NewInMemoryRepository(nil)
		customerRepo = customer.NewInMemoryRepository(nil)
		orderRepo = order.NewInMemoryRepository()
	}

	menuService := menu.NewService(menuRepo)
	seedMenu(menuService, cfg.MenuPath)
	menuHandler := menu.NewHandler(menuService)

	customerService := customer.NewService(customerRepo)
	customerHandler := customer.NewHandler(customerService)

	recommendService := recommend.NewService(menuService, recommend.DefaultConfig())
	recommendHandler := recommend.NewHandler(recommendService, customerService)

	orderHandler := order.NewHandler(order.NewService(orderRepo), customerService)
	boardHandler := board.NewHandler(board.NewService(cfg.BoardDir))
	authHandler := auth.NewHandler()

	// public routes
	authHandler.RegisterPublicRoutes(app)
	boardHandler.RegisterPublicRoutes(app)
	recommendHandler.RegisterPublicRoutes(app)
	customerHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	menuHandler.RegisterPublicRoutes(app)

	app.Static("/boards", cfg.BoardDir)

	// staff routes registered below require a JWT
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	menuHandler.RegisterProtectedRoutes(app)
	customerHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// seedMenu imports the CSV catalog when the repository is empty.
func seedMenu(s *menu.Service, path string) {
	if len(s.List()) > 0 {
		return
	}
	if err := s.ImportCSV(path, menu.DefaultLoaderConfig()); err != nil {
		log.Printf("warning: could not import menu from %s: %v", path, err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s %v", c.Method(), c.OriginalURL(), time.Since(start))
	return err
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

func bootstrapSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS menu_item (
			menu_id SERIAL PRIMARY KEY,
			category TEXT,
			name TEXT,
			price INT NOT NULL DEFAULT 0,
			sweetness INT NOT NULL DEFAULT 0,
			tags TEXT[] NOT NULL DEFAULT '{}',
			popular BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS customer (
			phone TEXT PRIMARY KEY,
			name TEXT,
			visits INT NOT NULL DEFAULT 0,
			coupons INT NOT NULL DEFAULT 0,
			order_ids INT[] NOT NULL DEFAULT '{}',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS bundle_order (
			order_id SERIAL PRIMARY KEY,
			order_code TEXT,
			phone TEXT NOT NULL,
			names TEXT[] NOT NULL DEFAULT '{}',
			total_price INT NOT NULL DEFAULT 0,
			status TEXT,
			created_at TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(fmt.Sprintf("schema bootstrap failed: %v", err))
		}
	}
}
