package database

import (
	"fmt"

	"github.com/username/brokercomm/src/models"
)

// ReportStore persists report runs against the shared database handle.
type ReportStore struct{}

func NewReportStore() *ReportStore {
	return &ReportStore{}
}

func (s *ReportStore) InsertReportRun(run models.ReportRun) error {
	_, err := DB.Exec(
		`INSERT INTO report_runs (mode, structure, row_count, output) VALUES (?, ?, ?, ?)`,
		string(run.Mode), run.Structure, run.RowCount, run.Output,
	)
	if err != nil {
		return fmt.Errorf("error inserting report run: %w", err)
	}
	return nil
}

func (s *ReportStore) ListReportRuns(limit int) ([]models.ReportRun, error) {
	rows, err := DB.Query(
		`SELECT id, mode, structure, row_count, output, created_at
		 FROM report_runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying report runs: %w", err)
	}
	defer rows.Close()

	var runs []models.ReportRun
	for rows.Next() {
		var run models.ReportRun
		var mode string
		if err := rows.Scan(&run.ID, &mode, &run.Structure, &run.RowCount, &run.Output, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning report run: %w", err)
		}
		run.Mode = models.ReportMode(mode)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
