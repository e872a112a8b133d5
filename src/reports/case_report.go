// Package reports holds the two report transforms: the per-case commission
// report and the per-broker summary. Both operate on the row form produced
// by csvcodec and return fresh rows, leaving their input untouched.
package reports

import (
	"fmt"

	"github.com/username/brokercomm/src/models"
	"github.com/username/brokercomm/src/processors"
)

// ReportFunc is a single report transform: rows in, derived rows out.
type ReportFunc func(rows [][]string) ([][]string, error)

// CaseCommission builds the per-case report transform. Input rows are first
// normalized into the reporting currency, then each case earns the fixed base
// commission plus, when a bonus structure is selected, its tiered bonus.
// Output rows keep the input order and count.
func CaseCommission(rates processors.RateTable, structure processors.BonusStructure) ReportFunc {
	return func(rows [][]string) ([][]string, error) {
		normalized := processors.NormalizeCurrency(rows, rates)
		if len(normalized) == 0 {
			return nil, fmt.Errorf("case report: input has no header row")
		}

		header := []string{"BrokerName", "CaseId", "BaseCommission"}
		if structure != processors.BonusNone {
			header = append(header, "BonusCommission")
		}

		out := make([][]string, 0, len(normalized))
		out = append(out, header)

		for i, row := range normalized[1:] {
			if len(row) < 3 {
				return nil, fmt.Errorf("case report: row %d has %d fields, want 3", i+1, len(row))
			}

			base := models.Money{Symbol: models.ReportingSymbol, Amount: processors.BaseCommission}
			entry := []string{row[0], row[1], base.String()}

			if structure != processors.BonusNone {
				caseValue := models.ParseMoney(row[2])
				bonus := models.Money{
					Symbol: models.ReportingSymbol,
					Amount: processors.CalculateBonus(caseValue.Amount, structure),
				}
				entry = append(entry, bonus.String())
			}

			out = append(out, entry)
		}

		return out, nil
	}
}
