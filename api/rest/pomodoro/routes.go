package pomodoro

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/personasync/server/internal/auth"
)

func RegisterRoutes(rg *gin.RouterGroup, db *pgxpool.Pool) {
	pomodoro := rg.Group("/pomodoro")
	pomodoro.Use(auth.AuthMiddleware()) // all pomodoro routes require authentication

	pomodoro.POST("/start", Start(db))
	pomodoro.POST("/:id/complete", Complete(db))
	pomodoro.POST("/:id/cancel", Cancel(db))
	pomodoro.GET("/active", Active(db))
	pomodoro.GET("/history", History(db))
	pomodoro.GET("/today", Today(db))
}
