package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dirtbike-shop/storefront/app/admin"
	"github.com/dirtbike-shop/storefront/app/cart"
	"github.com/dirtbike-shop/storefront/app/catalog"
	"github.com/dirtbike-shop/storefront/app/categories"
	"github.com/dirtbike-shop/storefront/models"
	"github.com/dirtbike-shop/storefront/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, relying on environment")
	}

	db, err := openDB()
	if err != nil {
		logger.Error("connecting to database", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		logger.Error("migrating schema", "err", err)
		os.Exit(1)
	}

	repo := models.NewProductsRepository(db)
	if err := repo.Seed(models.DefaultCatalog()); err != nil {
		logger.Error("seeding catalog", "err", err)
		os.Exit(1)
	}
	logger.Info("catalog ready")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cartStore, err := openCartStore(ctx)
	if err != nil {
		logger.Error("connecting to redis", "err", err)
		os.Exit(1)
	}
	logger.Info("cart store ready")

	catalogHandler := catalog.NewCatalogHandler(repo)
	categoryHandler := categories.NewCategoryHandler(repo)
	cartHandler := cart.NewCartHandler(repo, cartStore, logger)

	metricsSource := admin.NewCachedSource(
		admin.NewMockSource(admin.DefaultMetrics(), 500*time.Millisecond),
		admin.DefaultCacheTTL,
	)
	metricsHandler := admin.NewMetricsHandler(metricsSource, admin.RoleAdmin)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", catalogHandler.HandleGet)
	mux.HandleFunc("GET /catalog/{id}", catalogHandler.HandleGetProduct)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /cart", cartHandler.HandleGet)
	mux.HandleFunc("POST /cart/items", cartHandler.HandleAddItem)
	mux.HandleFunc("DELETE /cart/items/{id}", cartHandler.HandleRemoveItem)
	mux.HandleFunc("DELETE /cart", cartHandler.HandleClear)
	mux.HandleFunc("GET /admin/metrics", metricsHandler.HandleGet)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func openDB() (*gorm.DB, error) {
	host := os.Getenv("DATABASE_HOST")
	port := os.Getenv("DATABASE_PORT")
	user := os.Getenv("DATABASE_USER")
	pass := os.Getenv("DATABASE_PASSWORD")
	dbname := os.Getenv("DATABASE_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, dbname)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func openCartStore(ctx context.Context) (storage.Store, error) {
	host := os.Getenv("REDIS_HOST")
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: host + ":" + port,
	})
	return storage.NewRedisStore(ctx, rdb)
}
