package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolarity_String(t *testing.T) {
	assert.Equal(t, "high", High.String())
	assert.Equal(t, "low", Low.String())
}

func TestParsePolarity(t *testing.T) {
	tests := []struct {
		in      string
		want    Polarity
		wantErr bool
	}{
		{"high", High, false},
		{"low", Low, false},
		{"HIGH", Low, true},
		{"", Low, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolarity(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPulse_String_MatchesArrowForm(t *testing.T) {
	p := Pulse{From: "broadcaster", To: "a", Polarity: Low}
	assert.Equal(t, "broadcaster -low-> a", p.String())
}
