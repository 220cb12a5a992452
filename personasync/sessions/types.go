package sessions

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles pomodoro session database operations
type Repository struct {
	db *pgxpool.Pool
}

// session lifecycle states
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// study categories
const (
	CategoryLesson   = "lesson"
	CategoryProject  = "project"
	CategoryReading  = "reading"
	CategoryHomework = "homework"
	CategoryPersonal = "personal"
	CategoryOther    = "other"
)

func IsValidCategory(category string) bool {
	switch category {
	case CategoryLesson, CategoryProject, CategoryReading,
		CategoryHomework, CategoryPersonal, CategoryOther:
		return true
	}

	return false
}

// represents a single pomodoro session
type Session struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	Category        string     `json:"category"`
	Note            string     `json:"note"`
	RocketType      string     `json:"rocket_type"`
}
