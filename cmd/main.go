package main

import (
  "context"
  "fmt"
  "os"
  "strings"
  "time"

  "github.com/redis/go-redis/v9"

  "github.com/toolvault/toolvault-backend/internal/db"
  "github.com/toolvault/toolvault-backend/internal/handlers"
  "github.com/toolvault/toolvault-backend/internal/logger"
  "github.com/toolvault/toolvault-backend/internal/middleware"
  "github.com/toolvault/toolvault-backend/internal/repos"
  "github.com/toolvault/toolvault-backend/internal/server"
  "github.com/toolvault/toolvault-backend/internal/services"
  "github.com/toolvault/toolvault-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  serverPort := utils.GetEnv("SERVER_PORT", "8080", log)
  viewFlushSeconds := utils.GetEnvAsInt("VIEW_FLUSH_SECONDS", 60, log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Redis (optional, view counters only)
  var redisClient *redis.Client
  if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
    redisClient = redis.NewClient(&redis.Options{
      Addr:     addr,
      Password: os.Getenv("REDIS_PASSWORD"),
    })
    if err := redisClient.Ping(context.Background()).Err(); err != nil {
      log.Warn("Redis unreachable, view counters fall back to direct writes", "error", err)
      redisClient = nil
    }
  }

  // Repos
  log.Info("Setting up Repos from main...")
  toolRepo := repos.NewToolRepo(thePG, log)
  contentRepo := repos.NewContentRepo(thePG, log)
  interactionRepo := repos.NewInteractionRepo(thePG, log)
  toolAlternativeRepo := repos.NewToolAlternativeRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  viewTracker := services.NewViewTracker(log, redisClient, contentRepo)
  toolService := services.NewToolService(thePG, log, toolRepo, viewTracker)
  interactionService := services.NewInteractionService(thePG, log, interactionRepo, contentRepo)
  alternativeService := services.NewAlternativeService(thePG, log, toolRepo, toolAlternativeRepo)

  // Handlers
  log.Info("Setting up Handlers from main...")
  toolHandler := handlers.NewToolHandler(toolService)
  interactionHandler := handlers.NewInteractionHandler(interactionService)
  alternativeHandler := handlers.NewAlternativeHandler(alternativeService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, jwtSecretKey)

  // View counter flush loop
  if redisClient != nil {
    go func() {
      ticker := time.NewTicker(time.Duration(viewFlushSeconds) * time.Second)
      defer ticker.Stop()
      for range ticker.C {
        flushed, err := viewTracker.Flush(context.Background())
        if err != nil {
          log.Warn("View counter flush failed", "error", err)
          continue
        }
        if flushed > 0 {
          log.Debug("Flushed view counters", "items", flushed)
        }
      }
    }()
  }

  // Router
  router := server.NewRouter(server.RouterConfig{
    AuthMiddleware:     authMiddleware,
    ToolHandler:        toolHandler,
    AlternativeHandler: alternativeHandler,
    InteractionHandler: interactionHandler,
  })

  log.Info("Starting server...", "port", serverPort)
  if err := router.Run(":" + serverPort); err != nil {
    log.Fatal("Server exited", "error", err)
  }
}
