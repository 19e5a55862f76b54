package scorer

import "math"

// Confidence scores a phone match from the page it was read on and the number
// of distinct phones found there. The result is clamped to MaxConfidence and
// rounded to two decimals.
func Confidence(foundOnContactPage bool, phoneCount int) float64 {
	score := 0.0

	if foundOnContactPage {
		score += ContactPageWeight
	}

	switch {
	case phoneCount >= 2:
		score += MultiplePhoneBonus
	case phoneCount == 1:
		score += SinglePhoneBonus
	}

	return round2(math.Min(score, MaxConfidence))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
