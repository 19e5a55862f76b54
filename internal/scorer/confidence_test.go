package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidence(t *testing.T) {
	tests := []struct {
		name    string
		contact bool
		count   int
		want    float64
	}{
		{"no contact no phones", false, 0, 0.0},
		{"no contact one phone", false, 1, 0.2},
		{"no contact two phones", false, 2, 0.3},
		{"no contact many phones", false, 7, 0.3},
		{"contact no phones", true, 0, 0.5},
		{"contact one phone", true, 1, 0.7},
		{"contact two phones", true, 2, 0.8},
		{"contact many phones", true, 50, 0.8},
		{"negative count", false, -1, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Exact equality: the table values must survive rounding unchanged.
			assert.Equal(t, tt.want, Confidence(tt.contact, tt.count))
		})
	}
}

func TestConfidence_Bounded(t *testing.T) {
	for _, contact := range []bool{false, true} {
		for n := -2; n < 100; n++ {
			got := Confidence(contact, n)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, MaxConfidence)
		}
	}
}
