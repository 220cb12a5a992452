package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a registered account
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	FullName          string    `json:"full_name"`
	Age               int       `json:"age"`
	Occupation        string    `json:"occupation"`
	Goal              string    `json:"goal"`
	DailyStudyTarget  int       `json:"daily_study_target"` // minutes
	IsProfileComplete bool      `json:"is_profile_complete"`
	CreatedAt         time.Time `json:"created_at"`
}

// FirstName returns the first word of the full name, used when
// addressing the user in coach prompts.
func (u *User) FirstName() string {
	name := u.FullName

	for i, r := range name {
		if r == ' ' {
			return name[:i]
		}
	}

	if name == "" {
		return "there"
	}

	return name
}
