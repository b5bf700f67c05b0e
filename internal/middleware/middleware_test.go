package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type stubValidator map[string]*models.JWTClaims

func (s stubValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
}

var tokens = stubValidator{
	"admin":   {UserID: "U001", Role: models.RoleAdmin},
	"student": {UserID: "U101", Role: models.RoleStudent},
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/users/:id", handlers...)
	return r
}

func serve(r *gin.Engine, path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestJWTRequiresValidBearer(t *testing.T) {
	r := newRouter(JWT(tokens))

	assert.Equal(t, http.StatusUnauthorized, serve(r, "/users/U1", ""))
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/users/U1", "bogus"))
	assert.Equal(t, http.StatusOK, serve(r, "/users/U1", "admin"))

	req := httptest.NewRequest(http.MethodGet, "/users/U1", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalJWTNeverBlocks(t *testing.T) {
	var seen *models.JWTClaims
	r := newRouter(OptionalJWT(tokens), func(c *gin.Context) {
		seen, _ = CurrentClaims(c)
	})

	assert.Equal(t, http.StatusOK, serve(r, "/users/U1", "bogus"))
	assert.Nil(t, seen)

	assert.Equal(t, http.StatusOK, serve(r, "/users/U1", "student"))
	require.NotNil(t, seen)
	assert.Equal(t, "U101", seen.UserID)
}

func TestRBACRolesAndSelf(t *testing.T) {
	r := newRouter(JWT(tokens), RBAC(string(models.RoleAdmin), Self))

	assert.Equal(t, http.StatusOK, serve(r, "/users/U555", "admin"))
	assert.Equal(t, http.StatusOK, serve(r, "/users/U101", "student"))
	assert.Equal(t, http.StatusForbidden, serve(r, "/users/U102", "student"))
}

func TestRequireStaffWithoutClaims(t *testing.T) {
	r := newRouter(RequireStaff())
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/users/U1", ""))
}

type recordingObserver struct {
	method, path string
	status       int
}

func (o *recordingObserver) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	o.method, o.path, o.status = method, path, status
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	obs := &recordingObserver{}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(obs))
	r.GET("/users/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, "/users/U101", ""))
	assert.Equal(t, http.MethodGet, obs.method)
	assert.Equal(t, "/users/:id", obs.path)
	assert.Equal(t, http.StatusOK, obs.status)

	serve(r, "/nowhere", "")
	assert.Equal(t, "unmatched", obs.path)
	assert.Equal(t, http.StatusNotFound, obs.status)
}
