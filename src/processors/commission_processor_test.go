package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBonus(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		threshold float64
		target    float64
		want      float64
	}{
		{"below threshold", 50000, 100000, 10000, 0},
		{"at threshold", 100000, 100000, 10000, 0},
		{"partial multiple earns nothing", 109999, 100000, 10000, 0},
		{"first whole multiple", 110000, 100000, 10000, 10},
		{"just past first multiple", 110001, 100000, 10000, 10},
		{"many multiples", 310000, 100000, 10000, 210},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bonus(tt.amount, tt.threshold, tt.target))
		})
	}
}

func TestBonus_NonDecreasingStep(t *testing.T) {
	prev := 0.0
	for amount := 90000.0; amount <= 200000; amount += 500 {
		got := Bonus(amount, 100000, 10000)
		require.GreaterOrEqual(t, got, prev, "bonus decreased at amount %v", amount)
		prev = got
	}
	// Step height is one bonus unit per target multiple.
	assert.Equal(t, 10.0, Bonus(110000, 100000, 10000)-Bonus(109999, 100000, 10000))
}

func TestCalculateBonus(t *testing.T) {
	t.Run("structure none", func(t *testing.T) {
		assert.Equal(t, 0.0, CalculateBonus(1000000, BonusNone))
	})

	t.Run("structure 1", func(t *testing.T) {
		assert.Equal(t, 0.0, CalculateBonus(109999, BonusStructure1))
		assert.Equal(t, 10.0, CalculateBonus(110000, BonusStructure1))
	})

	t.Run("structure 2 accrues structure 1 on top", func(t *testing.T) {
		// 310000: structure-1 bonus 210, structure-2 bonus 10.
		assert.Equal(t, 220.0, CalculateBonus(310000, BonusStructure2))
	})

	t.Run("structure 2 below its own threshold still earns structure 1", func(t *testing.T) {
		assert.Equal(t, 10.0, CalculateBonus(110000, BonusStructure2))
	})
}

func TestParseBonusStructure(t *testing.T) {
	tests := []struct {
		in      string
		want    BonusStructure
		wantErr bool
	}{
		{"", BonusNone, false},
		{"none", BonusNone, false},
		{"1", BonusStructure1, false},
		{"2", BonusStructure2, false},
		{"3", BonusNone, true},
	}
	for _, tt := range tests {
		got, err := ParseBonusStructure(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
