package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// validation failures must be rejected before any database access, so
// these run against a nil pool
func TestRegister_RejectsInvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password": "secret123", "full_name": "Ada Lovelace"}`},
		{"malformed email", `{"email": "not-an-email", "password": "secret123", "full_name": "Ada Lovelace"}`},
		{"short password", `{"email": "ada@example.com", "password": "short", "full_name": "Ada Lovelace"}`},
		{"missing full name", `{"email": "ada@example.com", "password": "secret123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			Register(nil)(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLogin_RejectsInvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email": "ada@example.com"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	Login(nil)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
