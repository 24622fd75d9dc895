package handlers

import (
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/toolvault/toolvault-backend/internal/services"
)

type AlternativeHandler struct {
  svc services.AlternativeService
}

func NewAlternativeHandler(svc services.AlternativeService) *AlternativeHandler {
  return &AlternativeHandler{svc: svc}
}

func pathToolID(c *gin.Context) (uuid.UUID, bool) {
  toolID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tool id"})
    return uuid.Nil, false
  }
  return toolID, true
}

// GET /api/tools/:id/alternatives
func (h *AlternativeHandler) List(c *gin.Context) {
  toolID, ok := pathToolID(c)
  if !ok {
    return
  }

  edges, err := h.svc.List(c.Request.Context(), toolID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"alternatives": edges})
}

// GET /api/tools/:id/alternatives/preview
func (h *AlternativeHandler) Preview(c *gin.Context) {
  toolID, ok := pathToolID(c)
  if !ok {
    return
  }

  page := 1
  if raw := c.Query("page"); raw != "" {
    parsed, err := strconv.Atoi(raw)
    if err != nil || parsed < 1 {
      c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
      return
    }
    page = parsed
  }

  result, err := h.svc.Preview(c.Request.Context(), toolID, page)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, result)
}

// POST /api/tools/:id/alternatives/materialize
func (h *AlternativeHandler) Materialize(c *gin.Context) {
  toolID, ok := pathToolID(c)
  if !ok {
    return
  }

  created, err := h.svc.Materialize(c.Request.Context(), toolID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"created": created})
}

// POST /api/tools/:id/alternatives
func (h *AlternativeHandler) Add(c *gin.Context) {
  toolID, ok := pathToolID(c)
  if !ok {
    return
  }

  var body struct {
    AlternativeID   uuid.UUID   `json:"alternative_id" binding:"required"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }

  edge, err := h.svc.Add(c.Request.Context(), toolID, body.AlternativeID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"alternative": edge})
}

// DELETE /api/tools/:id/alternatives/:altId
func (h *AlternativeHandler) Remove(c *gin.Context) {
  toolID, ok := pathToolID(c)
  if !ok {
    return
  }
  alternativeID, err := uuid.Parse(c.Param("altId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alternative id"})
    return
  }

  if err := h.svc.Remove(c.Request.Context(), toolID, alternativeID); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

// POST /api/tools/:id/alternatives/:altId/vote
func (h *AlternativeHandler) Vote(c *gin.Context) {
  toolID, ok := pathToolID(c)
  if !ok {
    return
  }
  alternativeID, err := uuid.Parse(c.Param("altId"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alternative id"})
    return
  }

  userID, ok := callerID(c)
  if !ok {
    return
  }

  result, err := h.svc.VoteEdge(c.Request.Context(), toolID, alternativeID, userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, result)
}
