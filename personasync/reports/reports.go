package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new report repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanReport(row pgx.Row) (*Report, error) {
	var report Report

	err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.WeekStart,
		&report.WeekEnd,
		&report.CreatedAt,
		&report.Stats,
		&report.AIMessage,
		&report.IsViewed,
	)

	if err != nil {
		return nil, err
	}

	return &report, nil
}

// Upsert inserts the report for (user, week start) or refreshes the
// existing one with new stats and narrative.
func (r *Repository) Upsert(ctx context.Context, userID string, weekStart, weekEnd time.Time, stats []byte, aiMessage string) (*Report, error) {
	return scanReport(r.db.QueryRow(ctx, queryUpsert, userID, weekStart, weekEnd, stats, aiMessage))
}

// finds a report owned by the given user
func (r *Repository) FindByID(ctx context.Context, reportID, userID string) (*Report, error) {
	return scanReport(r.db.QueryRow(ctx, queryFindByID, reportID, userID))
}

// lists the user's reports, newest week first
func (r *Repository) List(ctx context.Context, userID string, limit, offset int) ([]Report, error) {
	rows, err := r.db.Query(ctx, queryList, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var result []Report

	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}

		result = append(result, *report)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// counts the user's stored reports
func (r *Repository) Count(ctx context.Context, userID string) (int, error) {
	var count int

	if err := r.db.QueryRow(ctx, queryCount, userID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// marks a report as seen by its owner
func (r *Repository) MarkViewed(ctx context.Context, reportID, userID string) error {
	_, err := r.db.Exec(ctx, queryMarkViewed, reportID, userID)

	return err
}
