package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/brokercomm/src/logger"
	"github.com/username/brokercomm/src/models"
	"github.com/username/brokercomm/src/processors"
	"github.com/username/brokercomm/src/reports"
)

const ckReport = "report_%s"

type reportServiceImpl struct {
	rates       processors.RateTable
	store       RunStore
	mailer      ReportMailer
	reportCache *cache.Cache
}

func NewReportService(rates processors.RateTable, store RunStore, mailer ReportMailer, reportCache *cache.Cache) ReportService {
	return &reportServiceImpl{
		rates:       rates,
		store:       store,
		mailer:      mailer,
		reportCache: reportCache,
	}
}

// Run generates one report from raw CSV text. Identical inputs within the
// cache TTL are served from cache without recomputation or a new history row.
func (s *reportServiceImpl) Run(input string, mode models.ReportMode, structure processors.BonusStructure) (string, error) {
	startTime := time.Now()
	logger.L.Info("Report run START", "mode", mode, "structure", structure.String())

	cacheKey := s.cacheKey(input, mode, structure)
	if s.reportCache != nil {
		if cached, found := s.reportCache.Get(cacheKey); found {
			logger.L.Debug("Report served from cache", "mode", mode, "key", cacheKey)
			return cached.(string), nil
		}
	}

	fn, err := s.reportFunc(mode, structure)
	if err != nil {
		return "", err
	}

	output, err := GenerateReport(input, fn)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if s.reportCache != nil {
		s.reportCache.Set(cacheKey, output, cache.DefaultExpiration)
	}

	if s.store != nil {
		run := models.ReportRun{
			Mode:      mode,
			Structure: structure.String(),
			RowCount:  rowCount(output),
			Output:    output,
		}
		if err := s.store.InsertReportRun(run); err != nil {
			// Persistence is bookkeeping; the generated report is still good.
			logger.L.Error("Failed to persist report run", "mode", mode, "error", err)
		}
	}

	if mode == models.ModeSummary && s.mailer != nil {
		if err := s.mailer.SendReport("Broker commission summary", output); err != nil {
			logger.L.Error("Failed to email summary report", "error", err)
		}
	}

	logger.L.Info("Report run END", "mode", mode, "duration", time.Since(startTime))
	return output, nil
}

func (s *reportServiceImpl) History(limit int) ([]models.ReportRun, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.ListReportRuns(limit)
}

func (s *reportServiceImpl) reportFunc(mode models.ReportMode, structure processors.BonusStructure) (reports.ReportFunc, error) {
	switch mode {
	case models.ModeCase:
		return reports.CaseCommission(s.rates, structure), nil
	case models.ModeSummary:
		return reports.BrokerSummary, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func (s *reportServiceImpl) cacheKey(input string, mode models.ReportMode, structure processors.BonusStructure) string {
	hash := sha256.Sum256([]byte(string(mode) + "|" + structure.String() + "|" + input))
	return fmt.Sprintf(ckReport, hex.EncodeToString(hash[:]))
}

// rowCount counts data rows in serialized output (header excluded).
func rowCount(output string) int {
	if output == "" {
		return 0
	}
	count := 0
	for _, c := range output {
		if c == '\n' {
			count++
		}
	}
	return count
}
