package coach

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/personasync/server/internal/auth"
	"codeberg.org/personasync/server/internal/coach"
)

// rateLimit caps per-user request frequency; every coach endpoint
// except the health probe fans out to a paid model call
func RegisterRoutes(rg *gin.RouterGroup, db *pgxpool.Pool, ai *coach.Coach, rateLimit gin.HandlerFunc) {
	group := rg.Group("/coach")

	group.GET("/health", Health(ai))

	protected := group.Group("")
	protected.Use(auth.AuthMiddleware())

	if rateLimit != nil {
		protected.Use(rateLimit)
	}

	protected.POST("/daily-advice", DailyAdvice(db, ai))
	protected.POST("/weekly-report", WeeklyReport(db, ai))
	protected.POST("/motivation", Motivation(db, ai))
	protected.POST("/feedback", Feedback(db, ai))
	protected.POST("/session-summary", SessionSummary(db, ai))
}
