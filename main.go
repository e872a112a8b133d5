package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/brokercomm/src/config"
	"github.com/username/brokercomm/src/database"
	"github.com/username/brokercomm/src/handlers"
	"github.com/username/brokercomm/src/logger"
	"github.com/username/brokercomm/src/models"
	"github.com/username/brokercomm/src/processors"
	"github.com/username/brokercomm/src/reports"
	"github.com/username/brokercomm/src/security"
	"github.com/username/brokercomm/src/services"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowedOrigins := map[string]bool{
			"http://localhost:3000": true,
		}

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func loadRates() processors.RateTable {
	rates, err := processors.LoadRates(config.Cfg.CurrencyRatesPath)
	if err != nil {
		logger.L.Warn("Falling back to built-in conversion rates", "error", err)
		return processors.DefaultRates()
	}
	return rates
}

// runBatch executes the file pipeline once: read input CSV, generate the
// requested report, write the output file.
func runBatch(inputPath, outputPath, mode, structureFlag string) {
	structure, err := processors.ParseBonusStructure(structureFlag)
	if err != nil {
		logger.L.Error("Invalid -structure flag", "error", err)
		os.Exit(1)
	}

	var fn reports.ReportFunc
	switch models.ReportMode(mode) {
	case models.ModeCase:
		fn = reports.CaseCommission(loadRates(), structure)
	case models.ModeSummary:
		fn = reports.BrokerSummary
	default:
		logger.L.Error("Invalid -mode flag, want 'case' or 'summary'", "mode", mode)
		os.Exit(1)
	}

	if err := services.WriteReportToFile(inputPath, outputPath, fn); err != nil {
		logger.L.Error("Batch report failed", "input", inputPath, "output", outputPath, "error", err)
		os.Exit(1)
	}
	logger.L.Info("Batch report written", "input", inputPath, "output", outputPath, "mode", mode, "structure", structure.String())
}

func main() {
	inputPath := flag.String("input", "", "input CSV path; runs one batch report and exits")
	outputPath := flag.String("output", "", "output CSV path for batch mode")
	mode := flag.String("mode", "case", "batch report mode: case or summary")
	structureFlag := flag.String("structure", "none", "bonus structure for case reports: none, 1 or 2")
	flag.Parse()

	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	if *inputPath != "" {
		if *outputPath == "" {
			logger.L.Error("-output is required with -input")
			os.Exit(1)
		}
		runBatch(*inputPath, *outputPath, *mode, *structureFlag)
		return
	}

	logger.L.Info("Broker commission server starting...")

	if config.Cfg.JWTSecret == "" || len(config.Cfg.JWTSecret) < 32 {
		logger.L.Error("JWT_SECRET configuration invalid. Must be at least 32 bytes.")
		os.Exit(1)
	}

	rates := loadRates()

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	logger.L.Info("Database initialized successfully.")

	reportCache := cache.New(config.Cfg.ReportCacheTTL, config.Cfg.ReportCacheCleanup)

	authService := security.NewAuthService(config.Cfg.JWTSecret, config.Cfg.AdminPasswordHash, config.Cfg.AccessTokenExpiry)
	mailer := services.NewReportMailer()
	reportService := services.NewReportService(rates, database.NewReportStore(), mailer, reportCache)

	reportHandler := handlers.NewReportHandler(reportService)
	authHandler := handlers.NewAuthHandler(authService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.Handle("POST /api/reports/case", handlers.AuthMiddleware(authService, http.HandlerFunc(reportHandler.HandleCaseReport)))
	mux.Handle("POST /api/reports/summary", handlers.AuthMiddleware(authService, http.HandlerFunc(reportHandler.HandleSummaryReport)))
	mux.Handle("GET /api/reports/history", handlers.AuthMiddleware(authService, http.HandlerFunc(reportHandler.HandleHistory)))
	mux.HandleFunc("GET /api/health", reportHandler.HandleHealth)

	handler := rateLimitMiddleware(enableCORS(mux))

	addr := ":" + config.Cfg.Port
	logger.L.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.L.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
