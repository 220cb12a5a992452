package reports

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/personasync/server/internal/auth"
	"codeberg.org/personasync/server/internal/reporting"
)

func RegisterRoutes(rg *gin.RouterGroup, db *pgxpool.Pool, gen *reporting.Generator) {
	group := rg.Group("/reports")
	group.Use(auth.AuthMiddleware()) // all report routes require authentication

	group.POST("/generate", Generate(db, gen))
	group.GET("", List(db))
	group.GET("/current-week", CurrentWeek(db, gen)) // must precede /:id
	group.GET("/:id", GetByID(db))
}
