package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/username/brokercomm/src/config"
	"github.com/username/brokercomm/src/csvcodec"
	"github.com/username/brokercomm/src/logger"
	"github.com/username/brokercomm/src/models"
	"github.com/username/brokercomm/src/processors"
	"github.com/username/brokercomm/src/security/validation"
	"github.com/username/brokercomm/src/services"
	"github.com/username/brokercomm/src/utils"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: service}
}

// HandleCaseReport accepts a multipart CSV of case records and returns the
// per-case commission report. The bonus structure comes from the "structure"
// query parameter (none, 1, 2).
func (h *ReportHandler) HandleCaseReport(w http.ResponseWriter, r *http.Request) {
	structure, err := processors.ParseBonusStructure(r.URL.Query().Get("structure"))
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.runReport(w, r, models.ModeCase, structure, "commission_report.csv")
}

// HandleSummaryReport accepts a multipart four-column commission report and
// returns per-broker totals.
func (h *ReportHandler) HandleSummaryReport(w http.ResponseWriter, r *http.Request) {
	h.runReport(w, r, models.ModeSummary, processors.BonusNone, "commission_summary.csv")
}

func (h *ReportHandler) runReport(w http.ResponseWriter, r *http.Request, mode models.ReportMode, structure processors.BonusStructure, filename string) {
	input, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	output, err := h.reportService.Run(input, mode, structure)
	if err != nil {
		if errors.Is(err, services.ErrGenerationFailed) {
			logger.L.Warn("Report generation rejected input", "mode", mode, "error", err)
			utils.SendJSONError(w, fmt.Sprintf("Error generating report: %v", err), http.StatusBadRequest)
		} else {
			logger.L.Error("Internal error generating report", "mode", mode, "error", err)
			utils.SendJSONError(w, "An internal error occurred while generating the report. Please try again later.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, output); err != nil {
		logger.L.Error("Error writing CSV response", "mode", mode, "error", err)
	}
}

// readUpload pulls the uploaded file out of the request, validates its size
// and content type, and returns sanitized CSV text.
func (h *ReportHandler) readUpload(w http.ResponseWriter, r *http.Request) (string, bool) {
	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return "", false
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		logger.L.Warn("Failed to retrieve file from request", "error", err)
		utils.SendJSONError(w, "Failed to retrieve file from request. Ensure 'file' field is used.", http.StatusBadRequest)
		return "", false
	}
	defer file.Close()

	if fileHeader.Size > config.Cfg.MaxUploadSizeBytes {
		utils.SendJSONError(w, fmt.Sprintf("File too large, max %d MB", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return "", false
	}

	if err := validation.ValidateClientContentType(fileHeader.Header.Get("Content-Type")); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return "", false
	}

	if _, err := validation.ValidateFileContentByMagicBytes(file); err != nil {
		logger.L.Warn("Server-side file content validation failed", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return "", false
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		logger.L.Error("Failed to read uploaded file", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, "Failed to read uploaded file.", http.StatusInternalServerError)
		return "", false
	}

	// Boundary sanitization only; the pipeline itself never rewrites fields.
	sanitized := validation.SanitizeRows(csvcodec.Parse(string(raw)))
	logger.L.Info("Upload accepted", "filename", fileHeader.Filename, "bytes", len(raw))
	return csvcodec.Serialize(sanitized), true
}

// HandleHistory returns recent persisted report runs as JSON.
func (h *ReportHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	runs, err := h.reportService.History(config.Cfg.ReportHistoryLimit)
	if err != nil {
		logger.L.Error("Error retrieving report history", "error", err)
		utils.SendJSONError(w, "Error retrieving report history.", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []models.ReportRun{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(runs); err != nil {
		logger.L.Error("Error encoding report history response", "error", err)
	}
}

// HandleHealth is the liveness probe.
func (h *ReportHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
