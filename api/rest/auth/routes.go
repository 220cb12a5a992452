package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(rg *gin.RouterGroup, db *pgxpool.Pool) {
	auth := rg.Group("/auth")

	auth.POST("/register", Register(db))
	auth.POST("/login", Login(db))
}
