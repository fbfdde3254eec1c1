package main

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/vibecommerce/storefront-backend/internal/cart"
	"github.com/vibecommerce/storefront-backend/internal/config"
	"github.com/vibecommerce/storefront-backend/internal/order"
	"github.com/vibecommerce/storefront-backend/internal/product"
	"github.com/vibecommerce/storefront-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront-api", Env: cfg.Env, Level: cfg.LogLevel})

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	// schema bootstrap and catalog seeding happen once here, never inside
	// a request handler
	if err := initSchema(db); err != nil {
		log.Error("schema init failed", "error", err)
		os.Exit(1)
	}
	if err := seedProducts(db, log); err != nil {
		log.Error("product seeding failed", "error", err)
		os.Exit(1)
	}

	app := fiber.New()
	setupCORS(app, cfg.AllowOrigins)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Vibe Commerce API is running")
	})

	productRepo := product.NewPostgresRepository(db)
	productHandler := product.NewHandler(product.NewService(productRepo))
	productHandler.RegisterRoutes(app)

	cartRepo := cart.NewPostgresRepository(db)
	cartService := cart.NewService(cartRepo)
	cartHandler := cart.NewHandler(cartService)
	cartHandler.RegisterRoutes(app)

	orderRepo := order.NewPostgresRepository(db)
	orderHandler := order.NewHandler(order.NewService(orderRepo), cartService)
	orderHandler.RegisterRoutes(app)

	log.Info("starting server", "addr", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, X-Cart-Id",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			description TEXT,
			image TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			id SERIAL PRIMARY KEY,
			cart_id TEXT NOT NULL,
			product_id INT NOT NULL,
			quantity INT NOT NULL DEFAULT 1,
			price DOUBLE PRECISION NOT NULL,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (cart_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			subtotal DOUBLE PRECISION NOT NULL,
			tax DOUBLE PRECISION NOT NULL,
			total DOUBLE PRECISION NOT NULL,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id),
			product_id INT NOT NULL,
			quantity INT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			name TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// seedProducts fills the catalog with the demo products when the table is
// empty.
func seedProducts(db *sql.DB, log *slog.Logger) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		name, description, image string
		price                    float64
	}{
		{"Premium Wireless Headphones", "High-quality sound with noise cancellation", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop", 199.99},
		{"Mechanical Keyboard RGB", "Gaming keyboard with RGB lighting", "https://images.unsplash.com/photo-1587829191301-c4b2b7fdac6c?w=400&h=300&fit=crop", 149.99},
		{"4K Webcam Pro", "Crystal clear 4K video for streaming", "https://images.unsplash.com/photo-1598302257097-c6c2e67c6c92?w=400&h=300&fit=crop", 129.99},
		{"Ergonomic Mouse", "Comfortable design for long sessions", "https://images.unsplash.com/photo-1527814050087-3793815479db?w=400&h=300&fit=crop", 79.99},
		{"USB-C Hub Multi-port", "7-in-1 USB-C hub for connectivity", "https://images.unsplash.com/photo-1609291923528-fb8e3dd7c28e?w=400&h=300&fit=crop", 59.99},
		{"Monitor Light Bar", "Smart lighting for reduced eye strain", "https://images.unsplash.com/photo-1599566150163-29194019aaca?w=400&h=300&fit=crop", 89.99},
		{"Portable SSD 1TB", "Fast external storage solution", "https://images.unsplash.com/photo-1597872200969-2b65d56bd16b?w=400&h=300&fit=crop", 119.99},
		{"Smartwatch Pro", "Advanced fitness and health tracking", "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=300&fit=crop", 299.99},
	}

	for _, p := range seed {
		if _, err := db.Exec(`INSERT INTO products (name, price, description, image) VALUES ($1,$2,$3,$4)`,
			p.name, p.price, p.description, p.image); err != nil {
			return err
		}
	}
	log.Info("seeded catalog", "products", len(seed))
	return nil
}
