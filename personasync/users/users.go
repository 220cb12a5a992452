package users

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) scanUser(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Age,
		&user.Occupation,
		&user.Goal,
		&user.DailyStudyTarget,
		&user.IsProfileComplete,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// creates a new account; fails with a unique violation if the email
// is already registered
func (r *Repository) Create(ctx context.Context, email, passwordHash, fullName string) (*User, error) {
	return r.scanUser(r.db.QueryRow(ctx, queryCreate, email, passwordHash, fullName))
}

// finds a user by their email address
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.scanUser(r.db.QueryRow(ctx, queryFindByEmail, email))
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return r.scanUser(r.db.QueryRow(ctx, queryFindByID, userID))
}

// updates the coaching profile fields and marks the profile complete
func (r *Repository) UpdateProfile(
	ctx context.Context,
	userID string,
	age int,
	occupation, goal string,
	dailyStudyTarget int,
) (*User, error) {
	return r.scanUser(r.db.QueryRow(
		ctx,
		queryUpdateProfile,
		age,
		occupation,
		goal,
		dailyStudyTarget,
		userID,
	))
}
