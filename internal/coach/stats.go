package coach

import "time"

const maxStreakLookbackDays = 30

// aggregates today's sessions into DailyStats; only completed
// sessions count toward minutes and the category breakdown
func BuildDailyStats(sessions []SessionRecord, targetMinutes int) DailyStats {
	stats := DailyStats{
		CategoryBreakdown: make(map[string]int),
		TargetMinutes:     targetMinutes,
	}

	for _, s := range sessions {
		switch s.Status {
		case StatusCompleted:
			stats.CompletedSessions++
			stats.TotalMinutes += s.DurationMinutes
			stats.CategoryBreakdown[s.Category]++
		case StatusCancelled:
			stats.CancelledSessions++
		}
	}

	return stats
}

// aggregates a trailing window of sessions into WeeklyStats; the
// streak is derived from the same slice, bounded at 30 days back
func BuildWeeklyStats(sessions []SessionRecord, now time.Time) WeeklyStats {
	stats := WeeklyStats{
		DailyBreakdown:    make(map[string]int),
		CategoryBreakdown: make(map[string]int),
	}

	activeDays := make(map[string]bool)

	for _, s := range sessions {
		switch s.Status {
		case StatusCompleted:
			stats.TotalSessions++
			stats.CompletedSessions++
			stats.TotalMinutes += s.DurationMinutes
			stats.CategoryBreakdown[s.Category]++

			dayKey := s.StartedAt.UTC().Format("2006-01-02")
			stats.DailyBreakdown[dayKey] += s.DurationMinutes
			activeDays[dayKey] = true
		case StatusCancelled:
			stats.TotalSessions++
			stats.CancelledSessions++
		default:
			stats.TotalSessions++
		}
	}

	for _, minutes := range stats.DailyBreakdown {
		if minutes > stats.BestDayMinutes {
			stats.BestDayMinutes = minutes
		}

		if stats.WorstDayMinutes == 0 || minutes < stats.WorstDayMinutes {
			stats.WorstDayMinutes = minutes
		}
	}

	stats.StreakDays = calculateStreak(activeDays, now)

	return stats
}

// counts consecutive days with at least one completed session,
// walking backwards from today
func calculateStreak(activeDays map[string]bool, now time.Time) int {
	streak := 0
	day := now.UTC()

	for i := 0; i < maxStreakLookbackDays; i++ {
		if !activeDays[day.Format("2006-01-02")] {
			break
		}

		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// BuildFeedbackHistory condenses the most recent feedback rows
// (newest first) into deduplicated liked/disliked technique lists.
// At most five of each are kept to bound prompt size.
func BuildFeedbackHistory(rows []FeedbackRecord) FeedbackHistory {
	history := FeedbackHistory{}

	if len(rows) > 0 {
		history.LastSuggested = rows[0].Technique
	}

	seenLiked := make(map[string]bool)
	seenDisliked := make(map[string]bool)

	for _, row := range rows {
		if row.Liked {
			if !seenLiked[row.Technique] && len(history.LikedTechniques) < 5 {
				seenLiked[row.Technique] = true
				history.LikedTechniques = append(history.LikedTechniques, row.Technique)
			}
		} else {
			if !seenDisliked[row.Technique] && len(history.DislikedTechniques) < 5 {
				seenDisliked[row.Technique] = true
				history.DislikedTechniques = append(history.DislikedTechniques, row.Technique)
			}
		}
	}

	return history
}
