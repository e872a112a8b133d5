package processors

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/username/brokercomm/src/logger"
	"github.com/username/brokercomm/src/models"
	"github.com/username/brokercomm/src/utils"
)

// RateTable maps a one-character currency symbol to its multiplier into the
// reporting currency.
type RateTable map[string]float64

// DefaultRates is the built-in conversion table used when no rates file is
// configured.
func DefaultRates() RateTable {
	return RateTable{"$": 0.8}
}

// LoadRates loads a conversion table from the specified JSON file path.
// This should be called once from main.go after config is loaded.
func LoadRates(filePath string) (RateTable, error) {
	logger.L.Info("Loading currency conversion rates", "path", filePath)
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading currency rates file '%s': %w", filePath, err)
	}

	var rates RateTable
	if err := json.Unmarshal(file, &rates); err != nil {
		return nil, fmt.Errorf("error unmarshalling currency rates from '%s': %w", filePath, err)
	}
	logger.L.Info("Currency conversion rates loaded successfully.", "path", filePath, "symbolCount", len(rates))
	return rates, nil
}

// caseValueColumn is the position of the CaseValue field in an input row
// (BrokerName,CaseId,CaseValue).
const caseValueColumn = 2

// NormalizeCurrency rewrites the case-value field of every data row into the
// reporting currency. The header row and rows already carrying the reporting
// symbol pass through unchanged. Rows are never mutated in place; each output
// row is a fresh slice.
//
// A symbol missing from the table leaves the multiplier undefined: the row is
// emitted with a non-numeric value ("£NaN") and a warning is logged, rather
// than failing the whole run.
func NormalizeCurrency(rows [][]string, rates RateTable) [][]string {
	if len(rows) == 0 {
		return rows
	}

	out := make([][]string, 0, len(rows))
	out = append(out, rows[0])

	for _, row := range rows[1:] {
		if len(row) <= caseValueColumn {
			out = append(out, append([]string(nil), row...))
			continue
		}

		value := models.ParseMoney(row[caseValueColumn])
		if value.Symbol == models.ReportingSymbol {
			out = append(out, append([]string(nil), row...))
			continue
		}

		rate, ok := rates[value.Symbol]
		if !ok {
			logger.L.Warn("No conversion rate for currency symbol; emitting non-numeric value",
				"symbol", value.Symbol, "caseValue", row[caseValueColumn])
			rate = math.NaN()
		}

		converted := models.Money{
			Symbol: models.ReportingSymbol,
			Amount: utils.RoundFloat(value.Amount*rate, 2),
		}

		normalized := append([]string(nil), row...)
		normalized[caseValueColumn] = converted.FormatFixed(2)
		out = append(out, normalized)
	}

	return out
}
