package services

import (
	"errors"

	"github.com/username/brokercomm/src/models"
	"github.com/username/brokercomm/src/processors"
)

var (
	ErrGenerationFailed = errors.New("report generation failed")
	ErrUnknownMode      = errors.New("unknown report mode")
)

// RunStore persists executed report runs. database.ReportStore implements it;
// a nil store disables persistence (batch mode, tests).
type RunStore interface {
	InsertReportRun(run models.ReportRun) error
	ListReportRuns(limit int) ([]models.ReportRun, error)
}

// ReportService is the core report pipeline behind the HTTP handlers.
type ReportService interface {
	Run(input string, mode models.ReportMode, structure processors.BonusStructure) (string, error)
	History(limit int) ([]models.ReportRun, error)
}
