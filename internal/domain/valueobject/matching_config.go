// Package valueobject contains domain value objects for the Goal Tracker system.
package valueobject

import "strings"

// MatchingConfig contains the weights and thresholds for action-to-goal matching.
type MatchingConfig struct {
	// Confidence weights
	MetricWeight  float64 // 0.6 applied to the metric-overlap ratio
	KeywordWeight float64 // 0.3 added when a keyword appears

	// Suggestions at or above the threshold are confident; below it they are ambiguous
	ConfidenceThreshold float64 // 0.7

	// A metric is overachieved above this share of its target
	OverachievedRatio float64 // 1.1 = 110%

	// Keywords boost confidence when found in an action's title or description
	Keywords []string
}

// DefaultMatchingConfig returns the default matching configuration.
func DefaultMatchingConfig() MatchingConfig {
	return MatchingConfig{
		MetricWeight:        0.6,
		KeywordWeight:       0.3,
		ConfidenceThreshold: 0.7,
		OverachievedRatio:   1.1,
	}
}

// WithKeywords returns a copy of the config using the given keywords. Blank
// entries are dropped; a nil or empty list keeps the current keywords.
func (c MatchingConfig) WithKeywords(keywords []string) MatchingConfig {
	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) > 0 {
		c.Keywords = cleaned
	}
	return c
}

// IsConfident reports whether a confidence score clears the threshold.
func (c MatchingConfig) IsConfident(confidence float64) bool {
	return confidence >= c.ConfidenceThreshold
}
