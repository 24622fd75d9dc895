package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/toolvault/toolvault-backend/internal/logger"
	"github.com/toolvault/toolvault-backend/internal/requestdata"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject string, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newTestRouter(t *testing.T) (*gin.Engine, *uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	am := NewAuthMiddleware(log, testSecret)

	var seenUser uuid.UUID
	router := gin.New()
	router.GET("/protected", am.RequireUser(), func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		if rd != nil {
			seenUser = rd.UserID
		}
		c.Status(http.StatusOK)
	})
	return router, &seenUser
}

func TestRequireUser(t *testing.T) {
	userID := uuid.New()

	cases := []struct {
		name       string
		authHeader string
		query      string
		wantStatus int
		wantUser   uuid.UUID
	}{
		{
			name:       "valid_bearer",
			authHeader: "Bearer " + signToken(t, userID.String(), testSecret),
			wantStatus: http.StatusOK,
			wantUser:   userID,
		},
		{
			name:       "valid_query_token",
			query:      "?token=" + signToken(t, userID.String(), testSecret),
			wantStatus: http.StatusOK,
			wantUser:   userID,
		},
		{
			name:       "missing_token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong_secret",
			authHeader: "Bearer " + signToken(t, userID.String(), "other-secret"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "subject_not_uuid",
			authHeader: "Bearer " + signToken(t, "not-a-uuid", testSecret),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, seenUser := newTestRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/protected"+tc.query, nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status=%d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusOK && *seenUser != tc.wantUser {
				t.Fatalf("user id=%s, want %s", *seenUser, tc.wantUser)
			}
		})
	}
}
