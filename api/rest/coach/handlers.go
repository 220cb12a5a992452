package coach

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/personasync/server/internal/coach"
	"codeberg.org/personasync/server/internal/errors"
	"codeberg.org/personasync/server/internal/logger"
	"codeberg.org/personasync/server/personasync/feedback"
	"codeberg.org/personasync/server/personasync/sessions"
	"codeberg.org/personasync/server/personasync/users"
)

// DailyAdvice godoc
// @Summary Get a personalized daily study suggestion
// @Description Builds a technique suggestion from the user's profile, today's sessions, and their feedback history. Rejected techniques are never suggested again.
// @Tags coach
// @Accept json
// @Produce json
// @Param request body DailyAdviceRequest false "Optional extra context"
// @Success 200 {object} DailyAdviceResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/v1/coach/daily-advice [post]
// @Security BearerAuth
func DailyAdvice(db *pgxpool.Pool, ai *coach.Coach) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req DailyAdviceRequest

		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				errors.ValidationError(c, err)
				return
			}
		}

		user, err := users.NewRepository(db).FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to fetch user", err)

			return
		}

		profile := buildProfile(user)

		if req.ExtraContext != "" {
			profile.Goal = fmt.Sprintf("%s (today's focus: %s)", profile.Goal, req.ExtraContext)
		}

		today, err := loadTodayStats(c.Request.Context(), db, userID, profile.DailyTargetMinutes)
		if err != nil {
			errors.InternalError(c, "failed to load today's stats", err)
			return
		}

		history, err := loadFeedbackHistory(c.Request.Context(), db, userID)
		if err != nil {
			errors.InternalError(c, "failed to load feedback history", err)
			return
		}

		advice, err := ai.DailyAdvice(c.Request.Context(), profile, today, history)
		if err != nil {
			respondCoachError(c, err)
			return
		}

		logger.Info("daily advice generated", "user_id", userID, "technique", advice.Technique)

		c.JSON(http.StatusOK, DailyAdviceResponse{
			DailyAdvice: *advice,
			GeneratedAt: time.Now().UTC(),
			Model:       ai.FlashModel(),
		})
	}
}

// WeeklyReport godoc
// @Summary Generate an on-demand weekly coaching report
// @Description Analyzes the trailing window (default 7 days) with the pro model. Requires at least one session in the window.
// @Tags coach
// @Accept json
// @Produce json
// @Param request body WeeklyReportRequest false "Analysis window"
// @Success 200 {object} WeeklyReportResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/v1/coach/weekly-report [post]
// @Security BearerAuth
func WeeklyReport(db *pgxpool.Pool, ai *coach.Coach) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req WeeklyReportRequest

		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				errors.ValidationError(c, err)
				return
			}
		}

		if req.Days == 0 {
			req.Days = 7
		}

		user, err := users.NewRepository(db).FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to fetch user", err)

			return
		}

		profile := buildProfile(user)

		weekly, err := loadWeeklyStats(c.Request.Context(), db, userID, req.Days)
		if err != nil {
			errors.InternalError(c, "failed to load weekly stats", err)
			return
		}

		if weekly.TotalSessions < 1 {
			errors.BadRequest(c, fmt.Sprintf(
				"not enough study data in the last %d days. Complete at least one pomodoro session to generate a report.",
				req.Days), nil)

			return
		}

		history, err := loadFeedbackHistory(c.Request.Context(), db, userID)
		if err != nil {
			errors.InternalError(c, "failed to load feedback history", err)
			return
		}

		report, err := ai.WeeklyReport(c.Request.Context(), profile, weekly, history)
		if err != nil {
			respondCoachError(c, err)
			return
		}

		completionRate := 0.0
		if weekly.TotalSessions > 0 {
			completionRate = math.Round(float64(weekly.CompletedSessions)/float64(weekly.TotalSessions)*1000) / 10
		}

		logger.Info("weekly coaching report generated", "user_id", userID, "days", req.Days)

		c.JSON(http.StatusOK, WeeklyReportResponse{
			WeeklyReport: *report,
			StatsSnapshot: StatsSnapshot{
				TotalSessions:     weekly.TotalSessions,
				CompletedSessions: weekly.CompletedSessions,
				CancelledSessions: weekly.CancelledSessions,
				TotalMinutes:      weekly.TotalMinutes,
				CompletionRate:    completionRate,
				DailyBreakdown:    weekly.DailyBreakdown,
				CategoryBreakdown: weekly.CategoryBreakdown,
				StreakDays:        weekly.StreakDays,
				BestDayMinutes:    weekly.BestDayMinutes,
			},
			PeriodDays:  req.Days,
			GeneratedAt: time.Now().UTC(),
			Model:       ai.ProModel(),
		})
	}
}

// Motivation godoc
// @Summary Get a personalized motivation message
// @Description Generates a message tailored to the trigger: low_performance, high_cancel_rate, user_request, streak_broken, or goal_achieved
// @Tags coach
// @Accept json
// @Produce json
// @Param request body MotivationRequest true "Trigger and optional note"
// @Success 200 {object} MotivationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/v1/coach/motivation [post]
// @Security BearerAuth
func Motivation(db *pgxpool.Pool, ai *coach.Coach) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req MotivationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		trigger := coach.MotivationTrigger(req.Trigger)
		if !trigger.IsValid() {
			errors.BadRequest(c, "unknown trigger: "+req.Trigger, nil)
			return
		}

		user, err := users.NewRepository(db).FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to fetch user", err)

			return
		}

		profile := buildProfile(user)

		if req.UserNote != "" {
			profile.Goal = fmt.Sprintf("%s (note: %s)", profile.Goal, req.UserNote)
		}

		today, err := loadTodayStats(c.Request.Context(), db, userID, profile.DailyTargetMinutes)
		if err != nil {
			errors.InternalError(c, "failed to load today's stats", err)
			return
		}

		motivation, err := ai.Motivation(c.Request.Context(), profile, today, trigger)
		if err != nil {
			respondCoachError(c, err)
			return
		}

		logger.Info("motivation message generated", "user_id", userID, "trigger", req.Trigger)

		c.JSON(http.StatusOK, MotivationResponse{
			Motivation:  *motivation,
			Trigger:     req.Trigger,
			GeneratedAt: time.Now().UTC(),
		})
	}
}

// Feedback godoc
// @Summary Record feedback on a suggested technique
// @Description Stores the thumbs-up/down. On rejection an alternative technique is suggested; the rejected one will never be suggested again.
// @Tags coach
// @Accept json
// @Produce json
// @Param request body FeedbackRequest true "Feedback data"
// @Success 200 {object} FeedbackResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/coach/feedback [post]
// @Security BearerAuth
func Feedback(db *pgxpool.Pool, ai *coach.Coach) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req FeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.AdviceType == "" {
			req.AdviceType = feedback.AdviceTypeDaily
		}

		if !feedback.IsValidAdviceType(req.AdviceType) {
			errors.BadRequest(c, "unknown advice type: "+req.AdviceType, nil)
			return
		}

		liked := *req.Liked

		record, err := feedback.NewRepository(db).Create(
			c.Request.Context(),
			userID,
			req.Technique,
			liked,
			req.RejectionReason,
			req.AdviceType,
		)
		if err != nil {
			errors.InternalError(c, "failed to record feedback", err)
			return
		}

		logger.Info("feedback recorded", "user_id", userID,
			"technique", req.Technique, "liked", liked)

		if liked {
			c.JSON(http.StatusOK, FeedbackResponse{
				Success:    true,
				Message:    fmt.Sprintf("'%s' was added to your liked techniques! 👍", req.Technique),
				FeedbackID: record.ID,
			})

			return
		}

		// rejected: try to suggest an alternative, but the feedback is
		// already stored, so alternative failures are not fatal
		response := FeedbackResponse{
			Success:    true,
			Message:    fmt.Sprintf("Got it. '%s' won't be suggested again.", req.Technique),
			FeedbackID: record.ID,
		}

		user, err := users.NewRepository(db).FindByID(c.Request.Context(), userID)
		if err != nil {
			logger.ErrorErr(err, "failed to fetch user for alternative suggestion", "user_id", userID)
			c.JSON(http.StatusOK, response)

			return
		}

		history, err := loadFeedbackHistory(c.Request.Context(), db, userID)
		if err != nil {
			logger.ErrorErr(err, "failed to load feedback history for alternative suggestion", "user_id", userID)
			c.JSON(http.StatusOK, response)

			return
		}

		alternative, err := ai.AlternativeTechnique(
			c.Request.Context(),
			buildProfile(user),
			req.Technique,
			req.RejectionReason,
			history,
		)
		if err != nil {
			logger.ErrorErr(err, "failed to generate alternative technique", "user_id", userID)
		} else {
			response.Alternative = alternative
			logger.Info("alternative technique generated", "user_id", userID,
				"technique", alternative.Technique)
		}

		c.JSON(http.StatusOK, response)
	}
}

// SessionSummary godoc
// @Summary Get instant feedback for a completed session
// @Description Returns a short, energizing reaction right after a pomodoro session is completed
// @Tags coach
// @Accept json
// @Produce json
// @Param request body SessionSummaryRequest true "Completed session"
// @Success 200 {object} SessionSummaryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/v1/coach/session-summary [post]
// @Security BearerAuth
func SessionSummary(db *pgxpool.Pool, ai *coach.Coach) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req SessionSummaryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		session, err := sessions.NewRepository(db).FindByID(c.Request.Context(), req.SessionID, userID)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.NotFound(c, "pomodoro session")
				return
			}

			errors.InternalError(c, "failed to fetch session", err)

			return
		}

		if session.Status != sessions.StatusCompleted {
			errors.InvalidOperation(c, "this session is not completed yet. Complete it first.")
			return
		}

		user, err := users.NewRepository(db).FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to fetch user", err)
			return
		}

		profile := buildProfile(user)

		today, err := loadTodayStats(c.Request.Context(), db, userID, profile.DailyTargetMinutes)
		if err != nil {
			errors.InternalError(c, "failed to load today's stats", err)
			return
		}

		summary, err := ai.SessionFeedback(
			c.Request.Context(),
			profile,
			session.DurationMinutes,
			session.Category,
			session.Note,
			today,
		)
		if err != nil {
			respondCoachError(c, err)
			return
		}

		logger.Info("session summary generated", "user_id", userID, "session_id", req.SessionID)

		c.JSON(http.StatusOK, SessionSummaryResponse{
			SessionFeedback: *summary,
			GeneratedAt:     time.Now().UTC(),
		})
	}
}

// Health godoc
// @Summary Coach service health check
// @Description Verifies the flash model responds. Does not require authentication.
// @Tags coach
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/v1/coach/health [get]
func Health(ai *coach.Coach) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := ai.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusOK, HealthResponse{
				Status: "unhealthy",
				Error:  err.Error(),
			})

			return
		}

		c.JSON(http.StatusOK, HealthResponse{
			Status: "healthy",
			Model:  ai.FlashModel(),
		})
	}
}
