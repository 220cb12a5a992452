package reports

import (
	"time"

	"codeberg.org/personasync/server/personasync/reports"
)

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

// optionally pins the report to an explicit week; when omitted the
// current calendar week (Monday to Sunday, UTC) is used
type GenerateRequest struct {
	WeekStart *time.Time `json:"week_start"`
	WeekEnd   *time.Time `json:"week_end"`
}

// paginated report listing
type ListResponse struct {
	Reports    []reports.Report `json:"reports"`
	TotalCount int              `json:"total_count"`
}
