package reports

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/personasync/server/internal/errors"
	"codeberg.org/personasync/server/internal/logger"
	"codeberg.org/personasync/server/internal/reporting"
	"codeberg.org/personasync/server/personasync/reports"
	"codeberg.org/personasync/server/personasync/sessions"
	"codeberg.org/personasync/server/personasync/users"
)

// aggregates the week, generates the narrative, and upserts the report
// row; shared by the explicit and current-week endpoints
func generateForWeek(c *gin.Context, db *pgxpool.Pool, gen *reporting.Generator, weekStart, weekEnd time.Time) {
	userID := c.GetString("user_id")

	user, err := users.NewRepository(db).FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.IsNotFound(err) {
			errors.NotFound(c, "user")
			return
		}

		errors.InternalError(c, "failed to fetch user", err)

		return
	}

	list, err := sessions.NewRepository(db).ListBetween(c.Request.Context(), userID, weekStart, weekEnd)
	if err != nil {
		errors.InternalError(c, "failed to fetch week's sessions", err)
		return
	}

	records := make([]reporting.SessionRecord, 0, len(list))

	for _, s := range list {
		records = append(records, reporting.SessionRecord{
			Status:          s.Status,
			Category:        s.Category,
			DurationMinutes: s.DurationMinutes,
			StartedAt:       s.StartedAt,
		})
	}

	stats := reporting.BuildStats(records, user.DailyStudyTarget)

	statsJSON, err := json.Marshal(stats)
	if err != nil {
		errors.InternalError(c, "failed to encode report stats", err)
		return
	}

	message := gen.MotivationMessage(c.Request.Context(), reporting.UserInfo{
		FullName:           user.FullName,
		Goal:               user.Goal,
		Occupation:         user.Occupation,
		DailyTargetMinutes: user.DailyStudyTarget,
	}, stats)

	report, err := reports.NewRepository(db).Upsert(
		c.Request.Context(), userID, weekStart, weekEnd, statsJSON, message)
	if err != nil {
		errors.InternalError(c, "failed to store weekly report", err)
		return
	}

	logger.Info("weekly report generated", "user_id", userID,
		"report_id", report.ID, "week_start", weekStart.Format("2006-01-02"),
		"total_minutes", stats.TotalMinutes)

	c.JSON(http.StatusOK, report)
}

// Generate godoc
// @Summary Generate and store a weekly report
// @Description Aggregates the week's sessions and stores the report with an AI narrative. Regenerating the same week replaces the stored report.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body GenerateRequest false "Optional explicit week boundaries"
// @Success 200 {object} reports.Report
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/reports/generate [post]
// @Security BearerAuth
func Generate(db *pgxpool.Pool, gen *reporting.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req GenerateRequest

		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				errors.ValidationError(c, err)
				return
			}
		}

		var weekStart, weekEnd time.Time

		switch {
		case req.WeekStart != nil && req.WeekEnd != nil:
			weekStart = req.WeekStart.UTC()
			weekEnd = req.WeekEnd.UTC()

			if !weekEnd.After(weekStart) {
				errors.BadRequest(c, "week_end must be after week_start", nil)
				return
			}
		case req.WeekStart != nil || req.WeekEnd != nil:
			errors.BadRequest(c, "week_start and week_end must be provided together", nil)
			return
		default:
			weekStart, weekEnd = reporting.WeekBoundaries(time.Now())
		}

		generateForWeek(c, db, gen, weekStart, weekEnd)
	}
}

// CurrentWeek godoc
// @Summary Generate the current week's report
// @Description Shorthand for generating the report for the running Monday-to-Sunday week
// @Tags reports
// @Produce json
// @Success 200 {object} reports.Report
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/reports/current-week [get]
// @Security BearerAuth
func CurrentWeek(db *pgxpool.Pool, gen *reporting.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		weekStart, weekEnd := reporting.WeekBoundaries(time.Now())

		generateForWeek(c, db, gen, weekStart, weekEnd)
	}
}

// List godoc
// @Summary List stored weekly reports
// @Description Returns the user's reports, newest week first, with pagination
// @Tags reports
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} ListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/reports [get]
// @Security BearerAuth
func List(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		limit := defaultListLimit

		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxListLimit {
				errors.BadRequest(c, "limit must be between 1 and 50", nil)
				return
			}

			limit = parsed
		}

		offset := 0

		if raw := c.Query("offset"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				errors.BadRequest(c, "offset must be zero or positive", nil)
				return
			}

			offset = parsed
		}

		repo := reports.NewRepository(db)

		list, err := repo.List(c.Request.Context(), userID, limit, offset)
		if err != nil {
			errors.InternalError(c, "failed to fetch reports", err)
			return
		}

		total, err := repo.Count(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to count reports", err)
			return
		}

		if list == nil {
			list = []reports.Report{}
		}

		c.JSON(http.StatusOK, ListResponse{
			Reports:    list,
			TotalCount: total,
		})
	}
}

// GetByID godoc
// @Summary Get a stored weekly report
// @Description Returns one report and marks it as viewed
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} reports.Report
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/reports/{id} [get]
// @Security BearerAuth
func GetByID(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		reportID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		repo := reports.NewRepository(db)

		report, err := repo.FindByID(c.Request.Context(), reportID, userID)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.NotFound(c, "report")
				return
			}

			errors.InternalError(c, "failed to fetch report", err)

			return
		}

		// best effort; the report is still returned if this fails
		if !report.IsViewed {
			if err := repo.MarkViewed(c.Request.Context(), reportID, userID); err != nil {
				logger.ErrorErr(err, "failed to mark report as viewed",
					"user_id", userID, "report_id", reportID)
			} else {
				report.IsViewed = true
			}
		}

		c.JSON(http.StatusOK, report)
	}
}
