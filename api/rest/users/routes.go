package users

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/personasync/server/internal/auth"
)

func RegisterRoutes(rg *gin.RouterGroup, db *pgxpool.Pool) {
	users := rg.Group("/users")
	users.Use(auth.AuthMiddleware()) // all user routes require authentication

	users.GET("/me", Me(db))
	users.PUT("/me/profile", UpdateProfile(db))
}
