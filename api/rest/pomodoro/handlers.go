package pomodoro

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/personasync/server/internal/errors"
	"codeberg.org/personasync/server/internal/logger"
	"codeberg.org/personasync/server/personasync/sessions"
)

func buildStats(list []sessions.Session) StatsResponse {
	stats := StatsResponse{
		CategoryBreakdown: make(map[string]int),
	}

	for _, s := range list {
		stats.TotalSessions++

		switch s.Status {
		case sessions.StatusCompleted:
			stats.CompletedSessions++
			stats.TotalMinutes += s.DurationMinutes
			stats.CategoryBreakdown[s.Category]++
		case sessions.StatusCancelled:
			stats.CancelledSessions++
		}
	}

	return stats
}

// Start godoc
// @Summary Start a new pomodoro session
// @Description Starts a session in the active state. Only one active session is allowed at a time.
// @Tags pomodoro
// @Accept json
// @Produce json
// @Param request body StartRequest true "Session data"
// @Success 201 {object} sessions.Session
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/pomodoro/start [post]
// @Security BearerAuth
func Start(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req StartRequest

		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				errors.ValidationError(c, err)
				return
			}
		}

		if req.DurationMinutes == 0 {
			req.DurationMinutes = defaultDurationMinutes
		}

		if req.Category == "" {
			req.Category = sessions.CategoryOther
		}

		if !sessions.IsValidCategory(req.Category) {
			errors.BadRequest(c, "unknown category: "+req.Category, nil)
			return
		}

		repo := sessions.NewRepository(db)

		if _, err := repo.FindActive(c.Request.Context(), userID); err == nil {
			errors.InvalidOperation(c, "you already have an active pomodoro session. Complete or cancel it first.")
			return
		} else if !errors.IsNotFound(err) {
			errors.InternalError(c, "failed to check active session", err)
			return
		}

		session, err := repo.Start(c.Request.Context(), userID, req.DurationMinutes, req.Category, req.Note)
		if err != nil {
			errors.InternalError(c, "failed to start session", err)
			return
		}

		logger.Info("pomodoro started", "user_id", userID, "session_id", session.ID,
			"duration_minutes", session.DurationMinutes, "category", session.Category)

		c.JSON(http.StatusCreated, session)
	}
}

// finishes a session either as completed or cancelled
func finish(db *pgxpool.Pool, toStatus string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		sessionID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		note := ""

		if toStatus == sessions.StatusCompleted && c.Request.ContentLength > 0 {
			var req CompleteRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				errors.ValidationError(c, err)
				return
			}

			note = req.Note
		}

		repo := sessions.NewRepository(db)

		existing, err := repo.FindByID(c.Request.Context(), sessionID, userID)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.NotFound(c, "pomodoro session")
				return
			}

			errors.InternalError(c, "failed to fetch session", err)

			return
		}

		if existing.Status != sessions.StatusActive {
			errors.InvalidOperation(c, "this pomodoro session has already ended")
			return
		}

		var session *sessions.Session

		if toStatus == sessions.StatusCompleted {
			session, err = repo.Complete(c.Request.Context(), sessionID, userID, note)
		} else {
			session, err = repo.Cancel(c.Request.Context(), sessionID, userID)
		}

		if err != nil {
			// lost the race with another request finishing the same session
			if errors.IsNotFound(err) {
				errors.InvalidOperation(c, "this pomodoro session has already ended")
				return
			}

			errors.InternalError(c, "failed to finish session", err)

			return
		}

		logger.Info("pomodoro finished", "user_id", userID,
			"session_id", session.ID, "status", session.Status)

		c.JSON(http.StatusOK, session)
	}
}

// Complete godoc
// @Summary Complete the active pomodoro session
// @Description Marks an active session completed, optionally replacing its note
// @Tags pomodoro
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body CompleteRequest false "Optional note"
// @Success 200 {object} sessions.Session
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/pomodoro/{id}/complete [post]
// @Security BearerAuth
func Complete(db *pgxpool.Pool) gin.HandlerFunc {
	return finish(db, sessions.StatusCompleted)
}

// Cancel godoc
// @Summary Cancel the active pomodoro session
// @Description Marks an active session cancelled
// @Tags pomodoro
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} sessions.Session
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/pomodoro/{id}/cancel [post]
// @Security BearerAuth
func Cancel(db *pgxpool.Pool) gin.HandlerFunc {
	return finish(db, sessions.StatusCancelled)
}

// Active godoc
// @Summary Get the active pomodoro session
// @Description Returns the currently running session, or null when there is none
// @Tags pomodoro
// @Produce json
// @Success 200 {object} sessions.Session
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/pomodoro/active [get]
// @Security BearerAuth
func Active(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		repo := sessions.NewRepository(db)

		session, err := repo.FindActive(c.Request.Context(), userID)
		if err != nil {
			if errors.IsNotFound(err) {
				c.JSON(http.StatusOK, nil)
				return
			}

			errors.InternalError(c, "failed to fetch active session", err)

			return
		}

		c.JSON(http.StatusOK, session)
	}
}

// History godoc
// @Summary List recent pomodoro sessions
// @Description Returns sessions from the last N days (default 7) with aggregate stats
// @Tags pomodoro
// @Produce json
// @Param days query int false "Number of trailing days" default(7)
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/pomodoro/history [get]
// @Security BearerAuth
func History(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		days := defaultHistoryDays

		if raw := c.Query("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxHistoryDays {
				errors.BadRequest(c, "days must be between 1 and 90", nil)
				return
			}

			days = parsed
		}

		since := time.Now().UTC().AddDate(0, 0, -days)

		repo := sessions.NewRepository(db)

		list, err := repo.ListSince(c.Request.Context(), userID, since)
		if err != nil {
			errors.InternalError(c, "failed to fetch session history", err)
			return
		}

		if list == nil {
			list = []sessions.Session{}
		}

		c.JSON(http.StatusOK, HistoryResponse{
			Sessions: list,
			Stats:    buildStats(list),
		})
	}
}

// Today godoc
// @Summary Get today's pomodoro stats
// @Description Returns aggregate stats for sessions started today (UTC)
// @Tags pomodoro
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/pomodoro/today [get]
// @Security BearerAuth
func Today(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		now := time.Now().UTC()
		todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		repo := sessions.NewRepository(db)

		list, err := repo.ListSince(c.Request.Context(), userID, todayStart)
		if err != nil {
			errors.InternalError(c, "failed to fetch today's sessions", err)
			return
		}

		c.JSON(http.StatusOK, buildStats(list))
	}
}
