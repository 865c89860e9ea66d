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
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/adityav/starwars-portal/internal/auth"
	"github.com/adityav/starwars-portal/internal/catalog"
	"github.com/adityav/starwars-portal/internal/config"
	"github.com/adityav/starwars-portal/internal/middleware"
	"github.com/adityav/starwars-portal/internal/session"
	"github.com/adityav/starwars-portal/internal/store"
)

const publicPath = "/login"

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// ── Durable local state ──────────────────────────────────
	db, err := store.Open(cfg.StateDBPath)
	if err != nil {
		log.Fatalf("state db: %v", err)
	}
	defer db.Close()
	sessions := session.New(ctx, store.NewLocalState(db))

	// ── Credentials ──────────────────────────────────────────
	creds, err := auth.SeedCredentials()
	if err != nil {
		log.Fatalf("seed credentials: %v", err)
	}

	// ── Catalog client ───────────────────────────────────────
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL)

	// ── Handlers ─────────────────────────────────────────────
	authHandler := auth.NewHandler(creds, sessions)
	catalogHandler := catalog.NewHandler(catalogClient)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth routes
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.With(middleware.RequireAuth(sessions)).Get("/me", authHandler.Me)
	})

	// Page routes, all behind the route guard
	r.Group(func(r chi.Router) {
		r.Use(middleware.Guard(sessions, publicPath))
		r.Get(publicPath, authHandler.LoginView)
		r.Get("/", catalogHandler.List)
		r.Get("/resource/{id:[0-9]+}", catalogHandler.Detail)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Portal listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
