package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/taskman/taskman-go/docs"
	"github.com/taskman/taskman-go/internal/config"
	"github.com/taskman/taskman-go/internal/handler"
	"github.com/taskman/taskman-go/internal/middleware"
	"github.com/taskman/taskman-go/internal/repository"
	"github.com/taskman/taskman-go/internal/service"
)

//	@title			Task Manager API
//	@version		1.0.0
//	@description	A multi-user task management REST API
//	@BasePath		/
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						Authorization
//	@description				Raw access token, no scheme prefix
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(db, cfg.MigrationsPath); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	taskRepo := repository.NewTaskRepository(db)
	taskService := service.NewTaskService(taskRepo, cfg.DefaultPageSize, cfg.MaxPageSize)
	taskHandler := handler.NewTaskHandler(taskService)

	healthHandler := handler.NewHealthHandler(cfg.Env)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorBody(w, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorBody(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/", healthHandler.HandleHealth)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
	})

	// Preflight endpoints are open: no token required.
	r.Options("/tasks", okEmpty)
	r.Options("/tasks/{task_id}", okEmpty)

	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(cfg.JWTSecret))
		r.Get("/tasks", taskHandler.HandleList)
		r.Post("/tasks", taskHandler.HandleCreate)
		r.Get("/tasks/{task_id}", taskHandler.HandleGet)
		r.Put("/tasks/{task_id}", taskHandler.HandleUpdate)
		r.Delete("/tasks/{task_id}", taskHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func okEmpty(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeErrorBody(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
