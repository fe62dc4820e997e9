package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"github.com/dcode-github/property_portal_web/api"
	"github.com/dcode-github/property_portal_web/config"
	"github.com/dcode-github/property_portal_web/routes"
	"github.com/dcode-github/property_portal_web/session"
	"github.com/dcode-github/property_portal_web/views"
)

func setupRouter(apiClient *api.Client, sessions *session.Manager, renderer *views.Renderer) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, apiClient, sessions, renderer)
	return router
}

func main() {
	cfg := config.Load()

	var store session.Store
	if cfg.RedisAddr != "" {
		client, err := config.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
		store = session.NewRedisStore(client)
	} else {
		log.Println("REDIS_ADDR not set, sessions will not survive restarts")
		store = session.NewMemoryStore()
	}

	sessions := session.NewManager(store, cfg.SessionTTL, cfg.SecureCookies)
	apiClient := api.NewClient(cfg.APIBaseURL)

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	router := setupRouter(apiClient, sessions, renderer)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running on port %s, talking to %s", cfg.Port, cfg.APIBaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
