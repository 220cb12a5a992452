package coach

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"codeberg.org/personasync/server/internal/coach"
	"codeberg.org/personasync/server/internal/llm"
)

func TestRespondCoachError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "rate limited maps to 429",
			err:        fmt.Errorf("all 3 attempts failed: %w", llm.ErrRateLimited),
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "parse failure maps to 502",
			err:        fmt.Errorf("%w: missing keys [steps]", coach.ErrParse),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "blocked content maps to 422",
			err:        llm.ErrBlocked,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unavailable maps to 503",
			err:        llm.ErrUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown error maps to 503",
			err:        errors.New("something unexpected"),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/coach/daily-advice", nil)
			c.Set("user_id", "11111111-1111-1111-1111-111111111111")

			respondCoachError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), "message")
		})
	}
}

func TestHealthHandler_ReportsUnhealthyOnFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ai := coach.NewCoach(failingGenerator{}, failingGenerator{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/coach/health", nil)

	Health(ai)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unhealthy")
}

// fails with a non-transient error so the pipeline gives up immediately
type failingGenerator struct{}

func (failingGenerator) GenerateText(_ context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	return nil, errors.New("model offline")
}

func (failingGenerator) Model() string { return "test-model" }
