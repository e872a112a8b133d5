package reports

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/brokercomm/src/logger"
	"github.com/username/brokercomm/src/processors"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func caseRows() [][]string {
	return [][]string{
		{"BrokerName", "CaseId", "CaseValue"},
		{"Alice", "C1", "£109999.00"},
		{"Bob", "C2", "£110000.00"},
		{"Alice", "C3", "$100.00"},
	}
}

func TestCaseCommission_NoBonusStructure(t *testing.T) {
	fn := CaseCommission(processors.RateTable{"$": 0.8}, processors.BonusNone)
	got, err := fn(caseRows())
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, []string{"BrokerName", "CaseId", "BaseCommission"}, got[0])
	assert.Equal(t, []string{"Alice", "C1", "£125"}, got[1])
	assert.Equal(t, []string{"Bob", "C2", "£125"}, got[2])
	assert.Equal(t, []string{"Alice", "C3", "£125"}, got[3])
}

func TestCaseCommission_Structure1(t *testing.T) {
	fn := CaseCommission(processors.RateTable{"$": 0.8}, processors.BonusStructure1)
	got, err := fn(caseRows())
	require.NoError(t, err)

	assert.Equal(t, []string{"BrokerName", "CaseId", "BaseCommission", "BonusCommission"}, got[0])
	// 9999 over threshold: no whole target multiple.
	assert.Equal(t, []string{"Alice", "C1", "£125", "£0"}, got[1])
	// Exactly one whole multiple.
	assert.Equal(t, []string{"Bob", "C2", "£125", "£10"}, got[2])
	// Normalized to £80.00, far below threshold.
	assert.Equal(t, []string{"Alice", "C3", "£125", "£0"}, got[3])
}

func TestCaseCommission_Structure2(t *testing.T) {
	rows := [][]string{
		{"BrokerName", "CaseId", "CaseValue"},
		{"Alice", "C1", "£310000.00"},
	}
	fn := CaseCommission(nil, processors.BonusStructure2)
	got, err := fn(rows)
	require.NoError(t, err)

	// Structure-1 bonus 210 plus structure-2 bonus 10.
	assert.Equal(t, []string{"Alice", "C1", "£125", "£220"}, got[1])
}

func TestCaseCommission_PreservesOrderAndCount(t *testing.T) {
	rows := [][]string{
		{"BrokerName", "CaseId", "CaseValue"},
		{"Zed", "C9", "£1"},
		{"Ann", "C2", "£2"},
		{"Zed", "C1", "£3"},
	}
	fn := CaseCommission(nil, processors.BonusNone)
	got, err := fn(rows)
	require.NoError(t, err)

	require.Len(t, got, len(rows))
	assert.Equal(t, "Zed", got[1][0])
	assert.Equal(t, "Ann", got[2][0])
	assert.Equal(t, "Zed", got[3][0])
	assert.Equal(t, "C9", got[1][1])
}

func TestCaseCommission_ShortRowFails(t *testing.T) {
	rows := [][]string{
		{"BrokerName", "CaseId", "CaseValue"},
		{"Alice", "C1"},
	}
	fn := CaseCommission(nil, processors.BonusNone)
	_, err := fn(rows)
	assert.Error(t, err)
}
