package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rohits-web03/sociogram/internal/api"
	"github.com/rohits-web03/sociogram/internal/api/handlers"
	"github.com/rohits-web03/sociogram/internal/config"
	"github.com/rohits-web03/sociogram/internal/repositories"
)

func main() {
	cfg := config.Load()

	store, err := repositories.Connect(cfg.DBURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var objects *repositories.ObjectStorage
	if cfg.S3.AccessKeyID != "" {
		objects = repositories.NewObjectStorage(cfg.S3)
	} else {
		log.Println("Object storage not configured, avatar endpoints disabled")
	}

	mux := api.SetupRouter(handlers.New(store, objects, cfg))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: mux,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting Sociogram server on port: %s", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
