package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/toolvault/toolvault-backend/internal/repos"
  "github.com/toolvault/toolvault-backend/internal/services"
  "github.com/toolvault/toolvault-backend/internal/types"
)

type ToolHandler struct {
  svc services.ToolService
}

func NewToolHandler(svc services.ToolService) *ToolHandler {
  return &ToolHandler{svc: svc}
}

// GET /api/tools
func (h *ToolHandler) ListTools(c *gin.Context) {
  var filter repos.ToolFilter

  if raw := c.Query("category_id"); raw != "" {
    categoryID, err := uuid.Parse(raw)
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
      return
    }
    filter.CategoryID = &categoryID
  }
  if raw := c.Query("pricing_type"); raw != "" {
    switch raw {
    case types.PricingFree, types.PricingFreemium, types.PricingPaid:
      filter.PricingType = raw
    default:
      c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pricing_type"})
      return
    }
  }

  tools, err := h.svc.ListTools(c.Request.Context(), filter)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"tools": tools})
}

// GET /api/tools/:id
func (h *ToolHandler) GetTool(c *gin.Context) {
  toolID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tool id"})
    return
  }

  tool, err := h.svc.GetTool(c.Request.Context(), toolID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"tool": tool})
}
