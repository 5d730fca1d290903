package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_analyzer/internal/models"
)

func findingsByCategory(findings []models.Finding, category string) []models.Finding {
	var out []models.Finding
	for _, f := range findings {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

func TestSecurityFindingIsAsymmetric(t *testing.T) {
	doc := mustDoc(t, `<head><meta property="og:url" content="https://example.com/artigo"></head><body></body>`)
	sec := findingsByCategory(runFindings(doc), "Segurança")
	require.Len(t, sec, 1)
	assert.Equal(t, models.ImpactPositive, sec[0].Impact)

	// http og:url stays silent instead of going negative
	doc = mustDoc(t, `<head><meta property="og:url" content="http://example.com/artigo"></head><body></body>`)
	assert.Empty(t, findingsByCategory(runFindings(doc), "Segurança"))

	doc = mustDoc(t, `<body></body>`)
	assert.Empty(t, findingsByCategory(runFindings(doc), "Segurança"))
}

func TestContactFindingIsSymmetric(t *testing.T) {
	doc := mustDoc(t, `<body><a href="mailto:redacao@example.com">escreva</a></body>`)
	contact := findingsByCategory(runFindings(doc), "Transparência")
	require.Len(t, contact, 1)
	assert.Equal(t, models.ImpactPositive, contact[0].Impact)

	doc = mustDoc(t, `<body><p>fale com nossa equipe de contato</p></body>`)
	contact = findingsByCategory(runFindings(doc), "Transparência")
	require.Len(t, contact, 1)
	assert.Equal(t, models.ImpactPositive, contact[0].Impact)

	doc = mustDoc(t, `<body><p>apenas texto simples</p></body>`)
	contact = findingsByCategory(runFindings(doc), "Transparência")
	require.Len(t, contact, 1)
	assert.Equal(t, models.ImpactNegative, contact[0].Impact)
}

func TestAboutPageFinding(t *testing.T) {
	doc := mustDoc(t, `<body><a href="/sobre">Quem somos</a></body>`)
	about := findingsByCategory(runFindings(doc), "Credibilidade")
	require.Len(t, about, 1)
	assert.Equal(t, models.ImpactPositive, about[0].Impact)

	doc = mustDoc(t, `<body><a href="/contact-us/about">About</a></body>`)
	assert.Len(t, findingsByCategory(runFindings(doc), "Credibilidade"), 1)

	doc = mustDoc(t, `<body><a href="/noticias">Notícias</a></body>`)
	assert.Empty(t, findingsByCategory(runFindings(doc), "Credibilidade"))
}

func TestContentDepthFinding(t *testing.T) {
	long := "<body><p>" + strings.Repeat("palavra ", 600) + "</p></body>"
	depth := findingsByCategory(runFindings(mustDoc(t, long)), "Profundidade")
	require.Len(t, depth, 1)
	assert.Equal(t, models.ImpactPositive, depth[0].Impact)
	assert.Contains(t, depth[0].Finding, "600")

	short := "<body><p>" + strings.Repeat("palavra ", 100) + "</p></body>"
	depth = findingsByCategory(runFindings(mustDoc(t, short)), "Profundidade")
	require.Len(t, depth, 1)
	assert.Equal(t, models.ImpactNegative, depth[0].Impact)

	// [200, 500] stays silent
	middle := "<body><p>" + strings.Repeat("palavra ", 300) + "</p></body>"
	assert.Empty(t, findingsByCategory(runFindings(mustDoc(t, middle)), "Profundidade"))
}

func TestScenarioRichFindings(t *testing.T) {
	html := `<html><head><meta property="og:url" content="https://example.com"></head>
		<body><a href="mailto:redacao@example.com"></a>
		<p>` + strings.Repeat("palavra ", 600) + `</p></body></html>`

	findings := runFindings(mustDoc(t, html))
	require.Len(t, findings, 3)

	// fixed check order
	assert.Equal(t, "Segurança", findings[0].Category)
	assert.Equal(t, "Transparência", findings[1].Category)
	assert.Equal(t, "Profundidade", findings[2].Category)
	for _, f := range findings {
		assert.Equal(t, models.ImpactPositive, f.Impact)
	}
	assert.Contains(t, findings[2].Finding, "palavras")
}
