package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/toolvault/toolvault-backend/internal/requestdata"
  "github.com/toolvault/toolvault-backend/internal/services"
  "github.com/toolvault/toolvault-backend/internal/types"
)

type InteractionHandler struct {
  svc services.InteractionService
}

func NewInteractionHandler(svc services.InteractionService) *InteractionHandler {
  return &InteractionHandler{svc: svc}
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return uuid.Nil, false
  }
  return rd.UserID, true
}

// POST /api/interactions/bookmark
func (h *InteractionHandler) ToggleBookmark(c *gin.Context) {
  userID, ok := callerID(c)
  if !ok {
    return
  }

  var body struct {
    ItemType    types.ItemType    `json:"item_type" binding:"required"`
    ItemID      uuid.UUID         `json:"item_id" binding:"required"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }

  result, err := h.svc.ToggleBookmark(c.Request.Context(), userID, body.ItemType, body.ItemID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, result)
}

// POST /api/interactions/vote
func (h *InteractionHandler) Vote(c *gin.Context) {
  userID, ok := callerID(c)
  if !ok {
    return
  }

  var body struct {
    ItemType    types.ItemType      `json:"item_type" binding:"required"`
    ItemID      uuid.UUID           `json:"item_id" binding:"required"`
    Direction   types.VoteDirection `json:"direction" binding:"required"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }

  result, err := h.svc.Vote(c.Request.Context(), userID, body.ItemType, body.ItemID, body.Direction)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, result)
}

// GET /api/interactions/vote
func (h *InteractionHandler) GetVote(c *gin.Context) {
  userID, ok := callerID(c)
  if !ok {
    return
  }

  itemID, err := uuid.Parse(c.Query("item_id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item_id"})
    return
  }

  result, err := h.svc.UserVote(c.Request.Context(), userID, types.ItemType(c.Query("item_type")), itemID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, result)
}

// GET /api/interactions/bookmarks
func (h *InteractionHandler) ListBookmarks(c *gin.Context) {
  userID, ok := callerID(c)
  if !ok {
    return
  }

  var itemType *types.ItemType
  if raw := c.Query("item_type"); raw != "" {
    it := types.ItemType(raw)
    itemType = &it
  }

  bookmarks, err := h.svc.ListBookmarks(c.Request.Context(), userID, itemType)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}
