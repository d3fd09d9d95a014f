//	@title			Showcase3D API
//	@version		1.0
//	@description	Asset registry for shareable 3D models: uploads, short share links, view/like counters.
//
//	@host		localhost:5000
//	@BasePath	/
//
//	@securityDefinitions.apikey	AdminKey
//	@in							header
//	@name						x-api-key
//	@description				Static admin token gating create, edit, and delete.

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/showcase3d/service/internal/asset"
	"github.com/showcase3d/service/internal/config"
	"github.com/showcase3d/service/internal/db"
	appMiddleware "github.com/showcase3d/service/internal/middleware"
	"github.com/showcase3d/service/internal/storage"

	_ "github.com/showcase3d/service/docs/swagger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	store, err := storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StoragePublicBase,
		cfg.StorageUseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: repository → service → handler
	assetRepo := asset.NewPostgresRepository(pool)
	assetSvc := asset.NewService(assetRepo, store, cfg.PublicBaseURL)
	assetHandler := asset.NewHandler(assetSvc)

	requireAdmin := appMiddleware.RequireAdmin(cfg.AdminToken)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "x-api-key", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	// Swagger UI — available at http://localhost:5000/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.With(requireAdmin).Post("/api/upload", assetHandler.Upload)

	r.Route("/api/models", func(r chi.Router) {
		// Public viewer traffic
		r.Get("/", assetHandler.List)
		r.Get("/{shortId}", assetHandler.Get)
		r.Post("/{shortId}/like", assetHandler.Like)

		// Admin-gated edits
		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Patch("/{shortId}", assetHandler.Update)
			r.Delete("/{shortId}", assetHandler.Delete)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Minute, // large model uploads
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
