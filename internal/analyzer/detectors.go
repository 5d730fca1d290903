package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"news_analyzer/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// A page is considered balanced while at most this many distinct
// sensationalist words appear in its text.
const maxBalancedWords = 3

// More than this many external non-social links counts as cited sources.
const minExternalLinks = 2

type indicatorSignal struct {
	present bool
	words   []string // only set by the balanced-language check
}

type indicatorCheck struct {
	name     string
	weight   int
	run      func(d *Document) indicatorSignal
	describe func(s indicatorSignal) string
}

// indicatorChecks is the fixed detector set. Declaration order is the order
// of AnalysisResult.Indicators. All checks run on every analysis, none may
// short-circuit another.
var indicatorChecks = []indicatorCheck{
	{
		name:   "Autoria Identificada",
		weight: 25,
		run: func(d *Document) indicatorSignal {
			return indicatorSignal{present: hasAuthor(d)}
		},
		describe: presentAbsent(
			"O artigo possui informação de autoria identificada.",
			"Não foi possível identificar a autoria do conteúdo."),
	},
	{
		name:   "Data de Publicação",
		weight: 20,
		run: func(d *Document) indicatorSignal {
			return indicatorSignal{present: hasDate(d)}
		},
		describe: presentAbsent(
			"O artigo possui data de publicação identificada.",
			"Não foi possível identificar a data de publicação."),
	},
	{
		name:   "Fontes Citadas",
		weight: 30,
		run: func(d *Document) indicatorSignal {
			return indicatorSignal{present: hasSources(d)}
		},
		describe: presentAbsent(
			"O artigo cita fontes ou referências externas.",
			"Não foram identificadas citações ou referências a fontes."),
	},
	{
		name:   "Linguagem Equilibrada",
		weight: 25,
		run: func(d *Document) indicatorSignal {
			words := detectSensationalistWords(d.BodyText() + " " + strings.ToLower(d.Title()))
			return indicatorSignal{present: len(words) <= maxBalancedWords, words: words}
		},
		describe: func(s indicatorSignal) string {
			if s.present {
				return "A linguagem utilizada parece equilibrada e factual."
			}
			return fmt.Sprintf("Detectadas %d palavras sensacionalistas no conteúdo.", len(s.words))
		},
	},
}

func presentAbsent(present, absent string) func(indicatorSignal) string {
	return func(s indicatorSignal) string {
		if s.present {
			return present
		}
		return absent
	}
}

// runIndicators evaluates every check against the document and returns the
// indicator list in declaration order plus the detected sensationalist words
// in first-seen order.
func runIndicators(d *Document) ([]models.AnalysisIndicator, []string) {
	indicators := make([]models.AnalysisIndicator, 0, len(indicatorChecks))
	var sensational []string

	for _, c := range indicatorChecks {
		s := c.run(d)
		if s.words != nil {
			sensational = s.words
		}
		indicators = append(indicators, models.AnalysisIndicator{
			Name:        c.name,
			Present:     s.present,
			Description: c.describe(s),
			Weight:      c.weight,
		})
	}

	return indicators, sensational
}

func hasAuthor(d *Document) bool {
	for _, sel := range authorSelectors {
		el := d.Find(sel)
		if el.Length() == 0 {
			continue
		}
		content, ok := el.Attr("content")
		if !ok || content == "" {
			content = el.Text()
		}
		if utf8.RuneCountInString(strings.TrimSpace(content)) > 2 {
			return true
		}
	}

	for _, re := range authorPatterns {
		if re.MatchString(d.RawText()) {
			return true
		}
	}
	return false
}

func hasDate(d *Document) bool {
	for _, sel := range dateSelectors {
		if d.Find(sel).Length() > 0 {
			return true
		}
	}

	for _, re := range datePatterns {
		if re.MatchString(d.RawText()) {
			return true
		}
	}
	return false
}

func hasSources(d *Document) bool {
	external := 0
	d.Find(externalLinkSelector).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !socialDomainPattern.MatchString(href) {
			external++
		}
	})
	if external > minExternalLinks {
		return true
	}

	return d.Find(citationSelector).Length() > 0
}

// detectSensationalistWords tokenizes text on whitespace and collects every
// vocabulary word contained in some token, once each, in first-seen order.
func detectSensationalistWords(text string) []string {
	var found []string
	seen := make(map[string]bool)

	for _, token := range strings.Fields(strings.ToLower(text)) {
		for _, w := range sensationalistWords {
			if !seen[w] && strings.Contains(token, w) {
				seen[w] = true
				found = append(found, w)
			}
		}
	}
	return found
}
