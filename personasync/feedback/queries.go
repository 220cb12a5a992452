package feedback

const (
	queryCreate = `
		INSERT INTO ai_feedbacks (user_id, technique, liked, rejection_reason, advice_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, technique, liked, rejection_reason, advice_type, created_at
	`

	queryListRecent = `
		SELECT id, user_id, technique, liked, rejection_reason, advice_type, created_at
		FROM ai_feedbacks
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
)
