package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/personasync/server/api/rest/auth"
	"codeberg.org/personasync/server/api/rest/coach"
	"codeberg.org/personasync/server/api/rest/health"
	"codeberg.org/personasync/server/api/rest/pomodoro"
	"codeberg.org/personasync/server/api/rest/reports"
	"codeberg.org/personasync/server/api/rest/users"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.db)
		users.RegisterRoutes(v1, server.db)
		pomodoro.RegisterRoutes(v1, server.db)
		coach.RegisterRoutes(v1, server.db, server.services.Coach, CoachRateLimiter())
		reports.RegisterRoutes(v1, server.db, server.services.Reporter)
	}
}
