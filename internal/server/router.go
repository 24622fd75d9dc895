package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/toolvault/toolvault-backend/internal/handlers"
  "github.com/toolvault/toolvault-backend/internal/middleware"
)

type RouterConfig struct {
  AuthMiddleware        *middleware.AuthMiddleware
  ToolHandler           *handlers.ToolHandler
  AlternativeHandler    *handlers.AlternativeHandler
  InteractionHandler    *handlers.InteractionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  api := router.Group("/api")
  {
    api.GET("/tools", cfg.ToolHandler.ListTools)
    api.GET("/tools/:id", cfg.ToolHandler.GetTool)
    api.GET("/tools/:id/alternatives", cfg.AlternativeHandler.List)
    api.GET("/tools/:id/alternatives/preview", cfg.AlternativeHandler.Preview)
  }

// ===============
// || Protected ||
// ===============
  protected := api.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireUser())
  // Alternatives
  protected.POST("/tools/:id/alternatives", cfg.AlternativeHandler.Add)
  protected.POST("/tools/:id/alternatives/materialize", cfg.AlternativeHandler.Materialize)
  protected.DELETE("/tools/:id/alternatives/:altId", cfg.AlternativeHandler.Remove)
  protected.POST("/tools/:id/alternatives/:altId/vote", cfg.AlternativeHandler.Vote)
  // Interactions
  protected.POST("/interactions/bookmark", cfg.InteractionHandler.ToggleBookmark)
  protected.POST("/interactions/vote", cfg.InteractionHandler.Vote)
  protected.GET("/interactions/vote", cfg.InteractionHandler.GetVote)
  protected.GET("/interactions/bookmarks", cfg.InteractionHandler.ListBookmarks)

  return router
}
