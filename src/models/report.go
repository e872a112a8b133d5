package models

import "time"

// ReportMode identifies which of the two report transforms produced a run.
type ReportMode string

const (
	ModeCase    ReportMode = "case"
	ModeSummary ReportMode = "summary"
)

// ReportRun records one executed report generation for the history endpoint.
type ReportRun struct {
	ID        int64      `json:"id"`
	Mode      ReportMode `json:"mode"`
	Structure string     `json:"structure"`
	RowCount  int        `json:"row_count"`
	Output    string     `json:"output"`
	CreatedAt time.Time  `json:"created_at"`
}
