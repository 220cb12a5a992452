package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"codeberg.org/personasync/server/internal/errors"
	"codeberg.org/personasync/server/internal/logger"
)

// every coach request costs a model call; keep per-user frequency sane
const coachRateLimit = "10-M"

func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://personasync.app"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// tags every request with an ID for log correlation
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

// CoachRateLimiter limits coach endpoints per authenticated user,
// falling back to client IP before authentication runs.
func CoachRateLimiter() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(coachRateLimit)
	if err != nil {
		logger.FatalErr(err, "invalid coach rate limit", "rate", coachRateLimit)
	}

	instance := limiter.New(memorystore.NewStore(), rate)

	return mgin.NewMiddleware(instance,
		mgin.WithKeyGetter(func(c *gin.Context) string {
			if userID := c.GetString("user_id"); userID != "" {
				return userID
			}

			return c.ClientIP()
		}),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			errors.TooManyRequests(c, "too many coach requests. Please slow down.")
		}),
	)
}
