package sessions

const (
	queryStart = `
		INSERT INTO pomodoro_sessions (user_id, duration_minutes, category, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, started_at, ended_at, duration_minutes, status, category, note, rocket_type
	`

	queryFindByID = `
		SELECT id, user_id, started_at, ended_at, duration_minutes, status, category, note, rocket_type
		FROM pomodoro_sessions
		WHERE id = $1 AND user_id = $2
	`

	queryFindActive = `
		SELECT id, user_id, started_at, ended_at, duration_minutes, status, category, note, rocket_type
		FROM pomodoro_sessions
		WHERE user_id = $1 AND status = 'active'
		ORDER BY started_at DESC
		LIMIT 1
	`

	queryFinish = `
		UPDATE pomodoro_sessions
		SET status = $1,
			ended_at = NOW(),
			note = COALESCE(NULLIF($2, ''), note)
		WHERE id = $3 AND user_id = $4 AND status = 'active'
		RETURNING id, user_id, started_at, ended_at, duration_minutes, status, category, note, rocket_type
	`

	queryListSince = `
		SELECT id, user_id, started_at, ended_at, duration_minutes, status, category, note, rocket_type
		FROM pomodoro_sessions
		WHERE user_id = $1 AND started_at >= $2
		ORDER BY started_at DESC
	`

	queryListBetween = `
		SELECT id, user_id, started_at, ended_at, duration_minutes, status, category, note, rocket_type
		FROM pomodoro_sessions
		WHERE user_id = $1 AND started_at >= $2 AND started_at <= $3
		ORDER BY started_at DESC
	`
)
