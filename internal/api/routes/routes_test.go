package routes

import (
	"net/http"
	"testing"
	"time"

	"studio-admin-backend/internal/auth"
	"studio-admin-backend/internal/config"
	"studio-admin-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testSecret = "routes-test-secret"

// newRouter builds the full router on a handle that never dials the database
func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=none dbname=none sslmode=disable connect_timeout=1",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	router, err := SetupRoutes(db, &config.Config{
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"*"},
	})
	require.NoError(t, err)
	return router
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	svc, err := auth.NewAuthService(testSecret, tokenIssuer)
	require.NoError(t, err)
	token, err := svc.GenerateJWT("jdoe", "jdoe@example.com", role, time.Hour)
	require.NoError(t, err)
	return token
}

func TestSetupRoutes_RequiresJWTSecret(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=127.0.0.1 port=1"}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	_, err = SetupRoutes(db, &config.Config{})
	assert.Error(t, err)
}

func TestRoutes_Gating(t *testing.T) {
	client := testutils.NewHTTPTestSuite(newRouter(t))

	tests := []struct {
		name       string
		method     string
		path       string
		role       string
		body       interface{}
		wantStatus int
		wantError  string
	}{
		{"liveness is public", http.MethodGet, "/health/live", "", nil, http.StatusOK, ""},
		{"api requires a token", http.MethodGet, "/api/v1/sprints", "", nil, http.StatusUnauthorized, "authorization header is required"},
		{"catalog writes need admin", http.MethodPost, "/api/v1/deliverables", "editor", map[string]string{"slug": "x", "name": "X"}, http.StatusForbidden, "admin role required"},
		{"package writes need admin", http.MethodDelete, "/api/v1/packages/not-a-uuid", "editor", nil, http.StatusForbidden, "admin role required"},
		{"contract setter needs admin", http.MethodPut, "/api/v1/sprints/not-a-uuid/contract", "editor", map[string]string{}, http.StatusForbidden, "admin role required"},
		{"admin passes the gate", http.MethodDelete, "/api/v1/packages/not-a-uuid", auth.RoleAdmin, nil, http.StatusBadRequest, "invalid package ID"},
		{"authenticated reads reach handlers", http.MethodGet, "/api/v1/sprints/not-a-uuid", "editor", nil, http.StatusBadRequest, "invalid sprint ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers map[string]string
			if tt.role != "" {
				headers = testutils.Bearer(tokenFor(t, tt.role))
			}
			w := client.MakeRequestWithHeaders(tt.method, tt.path, tt.body, headers)

			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
			if tt.wantError != "" {
				testutils.AssertErrorResponse(t, w, tt.wantStatus, tt.wantError)
				return
			}
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	client := testutils.NewHTTPTestSuite(newRouter(t))

	w := client.MakeRequest(http.MethodGet, "/api/v2/sprints", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
