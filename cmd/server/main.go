package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/artfusion/backend/internal/config"
	"github.com/artfusion/backend/internal/database"
	"github.com/artfusion/backend/internal/handlers"
	"github.com/artfusion/backend/internal/repository"
	"github.com/artfusion/backend/internal/services"
	"github.com/artfusion/backend/pkg/logger"
	"github.com/artfusion/backend/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	client, db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}
	logger.Log.Info("Connected to MongoDB")

	// --- Repositories ---
	craftRepo := repository.NewCraftRepository(db)
	watchListRepo := repository.NewWatchListRepository(db)

	// --- Services ---
	craftService := services.NewCraftService(craftRepo)
	watchListService := services.NewWatchListService(watchListRepo)

	// --- Handlers ---
	craftHandler := handlers.NewCraftHandler(craftService)
	watchListHandler := handlers.NewWatchListHandler(watchListService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	router.HandleFunc("/", craftHandler.HomeHandler).Methods("GET")

	// Craft catalog routes
	router.HandleFunc("/artAndCraft", craftHandler.GetCraftsHandler).Methods("GET")
	router.HandleFunc("/artAndCraft/{category}", craftHandler.GetCraftsByCategoryHandler).Methods("GET")
	router.HandleFunc("/update/{id}", craftHandler.GetCraftHandler).Methods("GET")
	router.HandleFunc("/update/{id}", craftHandler.UpdateCraftHandler).Methods("POST")
	router.HandleFunc("/addItem", craftHandler.AddCraftHandler).Methods("POST")

	// Watch list routes
	router.HandleFunc("/addList", watchListHandler.AddToListHandler).Methods("PUT")
	router.HandleFunc("/viewList", watchListHandler.ViewListHandler).Methods("GET")
	router.HandleFunc("/viewItem", watchListHandler.RemoveItemHandler).Methods("DELETE")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: c.Handler(router),
	}

	go func() {
		fmt.Printf("Server running on port %s\n", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Server shutdown failed")
	}
	if err := database.Disconnect(client); err != nil {
		logger.Log.WithError(err).Error("MongoDB disconnect failed")
	}
}
