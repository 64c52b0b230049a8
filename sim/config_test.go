package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStrategy(t *testing.T) {
	tests := []struct {
		strategy string
		valid    bool
	}{
		{"cycle", true},
		{"auto", true},
		{"exhaustive", true},
		{"", true}, // empty defaults to cycle
		{"Cycle", false},
		{"bisect", false},
	}
	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidStrategy(tt.strategy))
		})
	}
}

func TestSearchConfig_Validate(t *testing.T) {
	assert.NoError(t, SearchConfig{}.Validate())
	assert.NoError(t, SearchConfig{Strategy: StrategyAuto, MaxPresses: 10}.Validate())
	assert.Error(t, SearchConfig{Strategy: "bisect"}.Validate())
	assert.Error(t, SearchConfig{MaxPresses: -5}.Validate())
}
