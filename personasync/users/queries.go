package users

const (
	queryCreate = `
		INSERT INTO users (email, password_hash, full_name)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, full_name, age, occupation, goal, daily_study_target, is_profile_complete, created_at
	`

	queryFindByEmail = `
		SELECT id, email, password_hash, full_name, age, occupation, goal, daily_study_target, is_profile_complete, created_at
		FROM users
		WHERE email = $1
	`

	queryFindByID = `
		SELECT id, email, password_hash, full_name, age, occupation, goal, daily_study_target, is_profile_complete, created_at
		FROM users
		WHERE id = $1
	`

	queryUpdateProfile = `
		UPDATE users
		SET age = $1, occupation = $2, goal = $3, daily_study_target = $4, is_profile_complete = TRUE
		WHERE id = $5
		RETURNING id, email, password_hash, full_name, age, occupation, goal, daily_study_target, is_profile_complete, created_at
	`
)
