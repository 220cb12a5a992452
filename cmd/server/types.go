package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/personasync/server/internal/coach"
	"codeberg.org/personasync/server/internal/config"
	"codeberg.org/personasync/server/internal/llm"
	"codeberg.org/personasync/server/internal/reporting"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds the external AI service clients
type Services struct {
	Clients  *llm.Clients
	Coach    *coach.Coach
	Reporter *reporting.Generator
}
