package feedback

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new feedback repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// records one feedback row
func (r *Repository) Create(ctx context.Context, userID, technique string, liked bool, rejectionReason, adviceType string) (*Feedback, error) {
	var fb Feedback

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		userID,
		technique,
		liked,
		rejectionReason,
		adviceType,
	).Scan(
		&fb.ID,
		&fb.UserID,
		&fb.Technique,
		&fb.Liked,
		&fb.RejectionReason,
		&fb.AdviceType,
		&fb.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &fb, nil
}

// lists the user's most recent feedback rows, newest first
func (r *Repository) ListRecent(ctx context.Context, userID string, limit int) ([]Feedback, error) {
	rows, err := r.db.Query(ctx, queryListRecent, userID, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var result []Feedback

	for rows.Next() {
		var fb Feedback

		err := rows.Scan(
			&fb.ID,
			&fb.UserID,
			&fb.Technique,
			&fb.Liked,
			&fb.RejectionReason,
			&fb.AdviceType,
			&fb.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		result = append(result, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
