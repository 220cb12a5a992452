package reports

const (
	queryUpsert = `
		INSERT INTO weekly_reports (user_id, week_start, week_end, stats, ai_message)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, week_start)
		DO UPDATE SET
			week_end = EXCLUDED.week_end,
			stats = EXCLUDED.stats,
			ai_message = EXCLUDED.ai_message,
			created_at = NOW()
		RETURNING id, user_id, week_start, week_end, created_at, stats, ai_message, is_viewed
	`

	queryFindByID = `
		SELECT id, user_id, week_start, week_end, created_at, stats, ai_message, is_viewed
		FROM weekly_reports
		WHERE id = $1 AND user_id = $2
	`

	queryList = `
		SELECT id, user_id, week_start, week_end, created_at, stats, ai_message, is_viewed
		FROM weekly_reports
		WHERE user_id = $1
		ORDER BY week_start DESC
		LIMIT $2 OFFSET $3
	`

	queryCount = `
		SELECT COUNT(*)
		FROM weekly_reports
		WHERE user_id = $1
	`

	queryMarkViewed = `
		UPDATE weekly_reports
		SET is_viewed = TRUE
		WHERE id = $1 AND user_id = $2
	`
)
