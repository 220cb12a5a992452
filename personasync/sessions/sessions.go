package sessions

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new session repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanSession(row pgx.Row) (*Session, error) {
	var session Session

	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.StartedAt,
		&session.EndedAt,
		&session.DurationMinutes,
		&session.Status,
		&session.Category,
		&session.Note,
		&session.RocketType,
	)

	if err != nil {
		return nil, err
	}

	return &session, nil
}

// starts a new session in the active state
func (r *Repository) Start(ctx context.Context, userID string, durationMinutes int, category, note string) (*Session, error) {
	return scanSession(r.db.QueryRow(ctx, queryStart, userID, durationMinutes, category, note))
}

// finds a session owned by the given user
func (r *Repository) FindByID(ctx context.Context, sessionID, userID string) (*Session, error) {
	return scanSession(r.db.QueryRow(ctx, queryFindByID, sessionID, userID))
}

// FindActive returns the user's currently active session.
// pgx.ErrNoRows means there is none.
func (r *Repository) FindActive(ctx context.Context, userID string) (*Session, error) {
	return scanSession(r.db.QueryRow(ctx, queryFindActive, userID))
}

// Complete marks an active session completed, stamping ended_at and
// optionally replacing the note. pgx.ErrNoRows means the session was
// not active.
func (r *Repository) Complete(ctx context.Context, sessionID, userID, note string) (*Session, error) {
	return scanSession(r.db.QueryRow(ctx, queryFinish, StatusCompleted, note, sessionID, userID))
}

// Cancel marks an active session cancelled. pgx.ErrNoRows means the
// session was not active.
func (r *Repository) Cancel(ctx context.Context, sessionID, userID string) (*Session, error) {
	return scanSession(r.db.QueryRow(ctx, queryFinish, StatusCancelled, "", sessionID, userID))
}

func collectSessions(rows pgx.Rows) ([]Session, error) {
	defer rows.Close()

	var result []Session

	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}

		result = append(result, *session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// lists the user's sessions started at or after the given time,
// newest first
func (r *Repository) ListSince(ctx context.Context, userID string, since time.Time) ([]Session, error) {
	rows, err := r.db.Query(ctx, queryListSince, userID, since)
	if err != nil {
		return nil, err
	}

	return collectSessions(rows)
}

// lists the user's sessions inside a closed time range, newest first
func (r *Repository) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]Session, error) {
	rows, err := r.db.Query(ctx, queryListBetween, userID, from, to)
	if err != nil {
		return nil, err
	}

	return collectSessions(rows)
}
