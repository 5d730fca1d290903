package analyzer

import (
	"context"
	"time"

	"news_analyzer/internal/models"
)

// Output keeps at most this many sensationalist words.
const maxReportedWords = 10

// Analyzer runs the fetch → parse → detect → score pipeline for one URL at a
// time. It holds no session or cache, concurrent analyses are independent.
type Analyzer struct {
	fetcher *Fetcher
}

func New(fetcher *Fetcher) *Analyzer {
	return &Analyzer{fetcher: fetcher}
}

// Analyze fetches the page and scores it. The URL is assumed to be a valid
// absolute URL, validated by the caller. Any failure means the whole
// analysis is unavailable.
func (a *Analyzer) Analyze(ctx context.Context, urlStr string) (*models.AnalysisResult, error) {
	rawHTML, err := a.fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return nil, &AnalysisError{URL: urlStr, Err: err}
	}

	return a.AnalyzeHTML(urlStr, rawHTML)
}

// AnalyzeHTML scores already fetched HTML. Given identical input it produces
// identical indicators, score, level and findings; only the timestamp moves.
func (a *Analyzer) AnalyzeHTML(urlStr, rawHTML string) (*models.AnalysisResult, error) {
	doc, err := NewDocument(rawHTML)
	if err != nil {
		return nil, &AnalysisError{URL: urlStr, Err: err}
	}

	indicators, sensational := runIndicators(doc)

	score, err := TrustScore(indicators)
	if err != nil {
		return nil, &AnalysisError{URL: urlStr, Err: err}
	}

	if len(sensational) > maxReportedWords {
		sensational = sensational[:maxReportedWords]
	}
	if sensational == nil {
		sensational = []string{}
	}

	return &models.AnalysisResult{
		URL:                 urlStr,
		TrustScore:          score,
		TrustLevel:          TrustLevelFor(score),
		Indicators:          indicators,
		SensationalistWords: sensational,
		DetailedFindings:    runFindings(doc),
		AnalyzedAt:          time.Now().UTC().Format(time.RFC3339),
	}, nil
}
