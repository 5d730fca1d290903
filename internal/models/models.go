package models

const (
	TrustLevelTrusted      = "trusted"
	TrustLevelQuestionable = "questionable"
	TrustLevelSuspicious   = "suspicious"
)

const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"
	ImpactNeutral  = "neutral"
)

// AnalysisIndicator is one weighted boolean credibility check.
type AnalysisIndicator struct {
	Name        string `json:"name"`
	Present     bool   `json:"present"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

// Finding is a narrative observation about the page, never scored.
type Finding struct {
	Category string `json:"category"`
	Finding  string `json:"finding"`
	Impact   string `json:"impact"`
}

// AnalysisResult is the wire contract consumed by UI/API callers.
// Field names must stay stable.
type AnalysisResult struct {
	URL                 string              `json:"url"`
	TrustScore          int                 `json:"trustScore"`
	TrustLevel          string              `json:"trustLevel"`
	Indicators          []AnalysisIndicator `json:"indicators"`
	SensationalistWords []string            `json:"sensationalistWords"`
	DetailedFindings    []Finding           `json:"detailedFindings"`
	AnalyzedAt          string              `json:"analyzedAt"`
}
