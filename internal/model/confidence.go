package model

// ConfidenceLevel is a coarse reliability tier for a competence score,
// derived from sample size alone.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "Low"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceHigh   ConfidenceLevel = "High"
)
