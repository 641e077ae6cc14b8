package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"github.com/MRsugoii/skycar-system-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func driverToken(t *testing.T) string {
	t.Helper()

	user := models.User{
		Email:    "driver@example.com",
		UserType: string(models.UserTypeDriver),
	}
	user.ID = 7

	token, err := utils.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/driver-only",
		AuthMiddleware(),
		RequireRole(string(models.UserTypeDriver)),
		func(c *gin.Context) {
			c.JSON(200, gin.H{"userId": c.GetUint("userId")})
		})
	return r
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/driver-only", nil)
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/driver-only", nil)
	req.Header.Set("Authorization", "Bearer "+driverToken(t))
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
}

func TestAuthMiddlewareAcceptsQueryToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/driver-only?token="+driverToken(t), nil)
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	passenger := models.User{Email: "p@example.com", UserType: string(models.UserTypePassenger)}
	passenger.ID = 3
	token, err := utils.GenerateToken(&passenger)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/driver-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, 403, w.Code)
}
