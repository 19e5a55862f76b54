// Package scorer computes the confidence attached to a discovered phone number.
package scorer

// Fixed weights of the additive confidence table. These are a heuristic,
// not a probability.
const (
	ContactPageWeight  = 0.5
	MultiplePhoneBonus = 0.3
	SinglePhoneBonus   = 0.2
	MaxConfidence      = 1.0
)
