package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factupro/invoice-api/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret []byte, username, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"cognito:username": username,
		"email":            email,
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

// claimsProbe runs a request through the Auth middleware and reports what
// ended up in the context.
func claimsProbe(t *testing.T, secret []byte, authHeader string) *domain.Claims {
	t.Helper()

	var got *domain.Claims
	router := gin.New()
	router.Use(Auth(secret))
	router.GET("/probe", func(c *gin.Context) {
		if v, ok := c.Get(ClaimsKey); ok {
			got = v.(*domain.Claims)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(httptest.NewRecorder(), req)

	return got
}

func TestAuth_ValidTokenAttachesClaims(t *testing.T) {
	secret := []byte("test-secret")
	header := "Bearer " + signToken(t, secret, "tester", "tester@example.com")

	claims := claimsProbe(t, secret, header)

	require.NotNil(t, claims)
	assert.Equal(t, "tester", claims.Username)
	assert.Equal(t, "tester@example.com", claims.Email)
}

func TestAuth_NoClaimsWithoutValidToken(t *testing.T) {
	secret := []byte("test-secret")

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, []byte("other-secret"), "tester", "tester@example.com")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, claimsProbe(t, secret, tt.header))
		})
	}
}
