package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"platewise/internal/account"
	"platewise/internal/api"
	"platewise/internal/platform/gemini"
	"platewise/internal/platform/logger"
	"platewise/internal/session"
)

// Config represents the application configuration.
type Config struct {
	GeminiAPIKey string `json:"gemini_api_key"`
	DatabaseURL  string `json:"DATABASE_URL"`
	JWTSecret    string `json:"jwt_secret"`
	ListenAddr   string `json:"listen_addr"`
	LogMode      string `json:"log_mode"`
	CORSOrigin   string `json:"cors_origin"`
}

func main() {
	ctx := context.Background()

	// Read configuration from config.json
	configData, err := os.ReadFile("config.json")
	if err != nil {
		panic(fmt.Errorf("failed to read config.json: %w", err))
	}

	var config Config
	if err := json.Unmarshal(configData, &config); err != nil {
		panic(fmt.Errorf("failed to unmarshal config.json: %w", err))
	}
	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}
	if config.CORSOrigin == "" {
		config.CORSOrigin = "http://localhost:3000"
	}

	log, err := logger.New(config.LogMode)
	if err != nil {
		panic(fmt.Errorf("failed to build logger: %w", err))
	}
	defer log.Sync()

	geminiClient, err := gemini.NewClient(ctx, config.GeminiAPIKey)
	if err != nil {
		panic(fmt.Errorf("error creating gemini client: %w", err))
	}
	defer geminiClient.Close()

	var accounts account.Store
	if config.DatabaseURL != "" {
		pgStore, err := account.NewPostgresStore(config.DatabaseURL)
		if err != nil {
			panic(fmt.Errorf("error creating postgres store: %w", err))
		}
		accounts = pgStore
	} else {
		log.Warn("no DATABASE_URL configured, account state is in-memory only")
		accounts = account.NewMemoryStore()
	}

	sessions := session.NewManager(config.JWTSecret, 24*time.Hour)
	handler := api.NewHandler(geminiClient, accounts, sessions, log)

	r := gin.Default()

	// Configure CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.Register(r)

	log.Info("starting server", "addr", config.ListenAddr)
	if err := r.Run(config.ListenAddr); err != nil {
		panic(fmt.Errorf("server stopped: %w", err))
	}
}
