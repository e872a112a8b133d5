package csvcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	rows := Parse("BrokerName,CaseId,CaseValue\nAlice,C1,£10000\nBob,C2,$5000")

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"BrokerName", "CaseId", "CaseValue"}, rows[0])
	assert.Equal(t, []string{"Alice", "C1", "£10000"}, rows[1])
	assert.Equal(t, []string{"Bob", "C2", "$5000"}, rows[2])
}

func TestSerialize_NoTrailingLineBreak(t *testing.T) {
	text := Serialize([][]string{{"a", "b"}, {"c", "d"}})
	assert.Equal(t, "a,b\nc,d", text)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"BrokerName,CaseId,CaseValue",
		"BrokerName,CaseId,CaseValue\nAlice,C1,£10000",
		"a,b,c\nd,e,f\ng,h,i",
		"single",
		"",
		"trailing,empty,\n,leading",
	}
	for _, input := range inputs {
		assert.Equal(t, input, Serialize(Parse(input)), "round-trip mismatch for %q", input)
	}
}
