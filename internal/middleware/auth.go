package middleware

import (
  "fmt"
  "net/http"
  "strings"

  "github.com/gin-gonic/gin"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"

  "github.com/toolvault/toolvault-backend/internal/logger"
  "github.com/toolvault/toolvault-backend/internal/requestdata"
)

// AuthMiddleware verifies a bearer token signature and extracts the
// subject as the caller's user id. Session lifecycle lives upstream;
// the engine only ever sees an opaque authenticated user id.
type AuthMiddleware struct {
  log           *logger.Logger
  jwtSecret     []byte
}

func NewAuthMiddleware(log *logger.Logger, jwtSecret string) *AuthMiddleware {
  middlewareLog := log.With("middleware", "AuthMiddleware")
  return &AuthMiddleware{log: middlewareLog, jwtSecret: []byte(jwtSecret)}
}

func (am *AuthMiddleware) RequireUser() gin.HandlerFunc {
  return func(c *gin.Context) {
    tokenString := extractBearerToken(c)
    if tokenString == "" {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
      return
    }

    userID, err := am.parseUserID(tokenString)
    if err != nil {
      am.log.Debug("Token rejected", "error", err)
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
      return
    }

    ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
      TokenString: tokenString,
      UserID:      userID,
    })
    c.Request = c.Request.WithContext(ctx)
    c.Next()
  }
}

func (am *AuthMiddleware) parseUserID(tokenString string) (uuid.UUID, error) {
  token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
    }
    return am.jwtSecret, nil
  })
  if err != nil {
    return uuid.Nil, err
  }
  if !token.Valid {
    return uuid.Nil, fmt.Errorf("invalid token")
  }

  subject, err := token.Claims.GetSubject()
  if err != nil {
    return uuid.Nil, fmt.Errorf("missing subject: %w", err)
  }
  userID, err := uuid.Parse(subject)
  if err != nil {
    return uuid.Nil, fmt.Errorf("subject is not a user id: %w", err)
  }
  return userID, nil
}

func extractBearerToken(c *gin.Context) string {
  authHeader := c.GetHeader("Authorization")
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  return c.Query("token")
}
