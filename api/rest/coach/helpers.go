package coach

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/personasync/server/internal/coach"
	apierrors "codeberg.org/personasync/server/internal/errors"
	"codeberg.org/personasync/server/internal/llm"
	"codeberg.org/personasync/server/internal/logger"
	"codeberg.org/personasync/server/personasync/feedback"
	"codeberg.org/personasync/server/personasync/sessions"
	"codeberg.org/personasync/server/personasync/users"
)

const (
	defaultGoal        = "General personal growth"
	defaultOccupation  = "Not specified"
	defaultDailyTarget = 60 // minutes
)

// maps a user row onto the profile sent to the model; empty profile
// fields fall back to neutral defaults
func buildProfile(user *users.User) coach.UserProfile {
	profile := coach.UserProfile{
		FirstName:          user.FirstName(),
		Goal:               user.Goal,
		Occupation:         user.Occupation,
		DailyTargetMinutes: user.DailyStudyTarget,
		Age:                user.Age,
	}

	if profile.Goal == "" {
		profile.Goal = defaultGoal
	}

	if profile.Occupation == "" {
		profile.Occupation = defaultOccupation
	}

	if profile.DailyTargetMinutes == 0 {
		profile.DailyTargetMinutes = defaultDailyTarget
	}

	return profile
}

func toRecords(list []sessions.Session) []coach.SessionRecord {
	records := make([]coach.SessionRecord, 0, len(list))

	for _, s := range list {
		records = append(records, coach.SessionRecord{
			Status:          s.Status,
			Category:        s.Category,
			DurationMinutes: s.DurationMinutes,
			StartedAt:       s.StartedAt,
		})
	}

	return records
}

func loadTodayStats(ctx context.Context, db *pgxpool.Pool, userID string, targetMinutes int) (coach.DailyStats, error) {
	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	list, err := sessions.NewRepository(db).ListSince(ctx, userID, todayStart)
	if err != nil {
		return coach.DailyStats{}, err
	}

	return coach.BuildDailyStats(toRecords(list), targetMinutes), nil
}

func loadWeeklyStats(ctx context.Context, db *pgxpool.Pool, userID string, days int) (coach.WeeklyStats, error) {
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -days)

	list, err := sessions.NewRepository(db).ListSince(ctx, userID, since)
	if err != nil {
		return coach.WeeklyStats{}, err
	}

	return coach.BuildWeeklyStats(toRecords(list), now), nil
}

func loadFeedbackHistory(ctx context.Context, db *pgxpool.Pool, userID string) (coach.FeedbackHistory, error) {
	rows, err := feedback.NewRepository(db).ListRecent(ctx, userID, feedbackHistoryLimit)
	if err != nil {
		return coach.FeedbackHistory{}, err
	}

	records := make([]coach.FeedbackRecord, 0, len(rows))

	for _, row := range rows {
		records = append(records, coach.FeedbackRecord{
			Technique: row.Technique,
			Liked:     row.Liked,
		})
	}

	return coach.BuildFeedbackHistory(records), nil
}

// translates pipeline failures into HTTP responses; technical detail
// stays in the logs, not the client message
func respondCoachError(c *gin.Context, err error) {
	userID := c.GetString("user_id")

	switch {
	case errors.Is(err, llm.ErrRateLimited):
		logger.Warn("coach rate limited", "user_id", userID, "error", err.Error())
		apierrors.TooManyRequests(c, "the AI coach is busy right now. Please try again in a few seconds.")
	case errors.Is(err, coach.ErrParse):
		logger.ErrorErr(err, "coach response failed validation", "user_id", userID)
		apierrors.BadGateway(c, "the AI coach returned an invalid response. Please try again.")
	case errors.Is(err, llm.ErrBlocked):
		logger.Warn("coach request blocked", "user_id", userID, "error", err.Error())
		apierrors.Unprocessable(c, "the request could not be processed. Please try phrasing it differently.")
	default:
		logger.ErrorErr(err, "coach request failed", "user_id", userID)
		apierrors.ServiceUnavailable(c, "the AI coach is unavailable right now. Please try again later.")
	}
}
