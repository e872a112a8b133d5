package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerSummary(t *testing.T) {
	rows := [][]string{
		{"BrokerName", "CaseId", "BaseCommission", "BonusCommission"},
		{"Alice", "C1", "£125", "£0"},
		{"Bob", "C2", "£125", "£10"},
		{"Alice", "C3", "£125", "£10"},
	}

	got, err := BrokerSummary(rows)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"BrokerName", "TotalCommission"}, got[0])
	assert.Equal(t, []string{"Alice", "£260"}, got[1])
	assert.Equal(t, []string{"Bob", "£135"}, got[2])
}

func TestBrokerSummary_FirstSeenOrder(t *testing.T) {
	rows := [][]string{
		{"BrokerName", "CaseId", "BaseCommission", "BonusCommission"},
		{"Zed", "C1", "£125", "£0"},
		{"Ann", "C2", "£125", "£0"},
		{"Zed", "C3", "£125", "£0"},
	}

	got, err := BrokerSummary(rows)
	require.NoError(t, err)

	assert.Equal(t, "Zed", got[1][0])
	assert.Equal(t, "Ann", got[2][0])
}

func TestBrokerSummary_ThreeColumnInputFails(t *testing.T) {
	rows := [][]string{
		{"BrokerName", "CaseId", "BaseCommission"},
		{"Alice", "C1", "£125"},
	}

	_, err := BrokerSummary(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 4")
}
