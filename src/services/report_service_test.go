package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/brokercomm/src/logger"
	"github.com/username/brokercomm/src/models"
	"github.com/username/brokercomm/src/processors"
	"github.com/username/brokercomm/src/reports"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

const caseInput = "BrokerName,CaseId,CaseValue\nAlice,C1,£110000.00\nBob,C2,$100.00"

func TestGenerateReport(t *testing.T) {
	fn := reports.CaseCommission(processors.RateTable{"$": 0.8}, processors.BonusStructure1)

	got, err := GenerateReport(caseInput, fn)
	require.NoError(t, err)

	want := "BrokerName,CaseId,BaseCommission,BonusCommission\nAlice,C1,£125,£10\nBob,C2,£125,£0"
	assert.Equal(t, want, got)
}

func TestWriteReportToFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "cases.csv")
	outputPath := filepath.Join(dir, "report.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte(caseInput), 0o644))

	fn := reports.CaseCommission(processors.RateTable{"$": 0.8}, processors.BonusNone)
	require.NoError(t, WriteReportToFile(inputPath, outputPath, fn))

	output, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "BrokerName,CaseId,BaseCommission\nAlice,C1,£125\nBob,C2,£125", string(output))
}

func TestWriteReportToFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := WriteReportToFile(filepath.Join(dir, "absent.csv"), filepath.Join(dir, "out.csv"), reports.BrokerSummary)
	assert.Error(t, err)
}

type fakeStore struct {
	runs []models.ReportRun
}

func (s *fakeStore) InsertReportRun(run models.ReportRun) error {
	run.ID = int64(len(s.runs) + 1)
	s.runs = append(s.runs, run)
	return nil
}

func (s *fakeStore) ListReportRuns(limit int) ([]models.ReportRun, error) {
	if limit > len(s.runs) {
		limit = len(s.runs)
	}
	return s.runs[:limit], nil
}

func TestReportService_Run(t *testing.T) {
	store := &fakeStore{}
	svc := NewReportService(processors.RateTable{"$": 0.8}, store, nil, cache.New(cache.NoExpiration, 0))

	output, err := svc.Run(caseInput, models.ModeCase, processors.BonusStructure1)
	require.NoError(t, err)
	assert.Contains(t, output, "Alice,C1,£125,£10")

	t.Run("persists the run", func(t *testing.T) {
		require.Len(t, store.runs, 1)
		assert.Equal(t, models.ModeCase, store.runs[0].Mode)
		assert.Equal(t, "1", store.runs[0].Structure)
		assert.Equal(t, 2, store.runs[0].RowCount)
	})

	t.Run("identical input served from cache without a new run", func(t *testing.T) {
		again, err := svc.Run(caseInput, models.ModeCase, processors.BonusStructure1)
		require.NoError(t, err)
		assert.Equal(t, output, again)
		assert.Len(t, store.runs, 1)
	})

	t.Run("different structure is a different run", func(t *testing.T) {
		_, err := svc.Run(caseInput, models.ModeCase, processors.BonusStructure2)
		require.NoError(t, err)
		assert.Len(t, store.runs, 2)
	})
}

func TestReportService_Run_SummaryChain(t *testing.T) {
	svc := NewReportService(processors.RateTable{"$": 0.8}, nil, nil, nil)

	commissionCSV, err := svc.Run(caseInput, models.ModeCase, processors.BonusStructure1)
	require.NoError(t, err)

	summary, err := svc.Run(commissionCSV, models.ModeSummary, processors.BonusNone)
	require.NoError(t, err)
	assert.Equal(t, "BrokerName,TotalCommission\nAlice,£135\nBob,£125", summary)
}

func TestReportService_Run_UnknownMode(t *testing.T) {
	svc := NewReportService(nil, nil, nil, nil)
	_, err := svc.Run("x", models.ReportMode("bogus"), processors.BonusNone)
	assert.ErrorIs(t, err, ErrUnknownMode)
}
