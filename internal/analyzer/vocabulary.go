package analyzer

import "regexp"

// Portuguese sensationalist vocabulary. Matching is by substring against
// each whitespace token, so stems like "explodiu" also catch inflections.
var sensationalistWords = []string{
	"chocante", "bombástico", "escândalo", "urgente", "inacreditável",
	"polêmico", "exclusivo", "revelado", "exposto", "denúncia",
	"vergonha", "absurdo", "surpreendente", "atenção", "alerta",
	"cuidado", "perigo", "golpe", "fraude", "mentira",
	"destruído", "arrasado", "explodiu", "devastador", "catastrófico",
}

var authorSelectors = []string{
	`meta[name="author"]`,
	`meta[property="article:author"]`,
	`[rel="author"]`,
	".author",
	".byline",
	".post-author",
	`[itemprop="author"]`,
}

// Keyword is case-insensitive, the name tokens must be capitalized.
var authorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i:por)\s+[A-Z][a-z]+\s+[A-Z][a-z]+`),
	regexp.MustCompile(`(?i:escrito\s+por)\s+[A-Z][a-z]+`),
	regexp.MustCompile(`(?i:autor:)\s*[A-Z][a-z]+`),
}

var dateSelectors = []string{
	`meta[property="article:published_time"]`,
	`meta[name="publish-date"]`,
	`meta[name="date"]`,
	`time[datetime]`,
	".publish-date",
	".post-date",
	`[itemprop="datePublished"]`,
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`),          // 01/01/2024
	regexp.MustCompile(`(?i)\d{1,2}\s+de\s+\p{L}+\s+de\s+\d{4}`), // 1 de janeiro de 2024
	regexp.MustCompile(`(?i)\p{L}+\s+\d{1,2},\s+\d{4}`),          // Janeiro 1, 2024
}

var socialDomainPattern = regexp.MustCompile(`(?i)(facebook|twitter|instagram|youtube|linkedin|whatsapp|telegram)`)

const (
	externalLinkSelector = `a[href^="http"]`
	citationSelector     = `blockquote, cite, q, [itemprop="citation"]`
)
