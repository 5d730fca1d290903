package analyzer

import (
	"fmt"
	"strings"

	"news_analyzer/internal/models"
)

const (
	substantialWordCount = 500
	briefWordCount       = 200
)

// findingChecks run in fixed order: Segurança, Transparência, Credibilidade,
// Profundidade. A check may emit zero findings.
var findingChecks = []func(d *Document) []models.Finding{
	checkSecurity,
	checkContact,
	checkAboutPage,
	checkContentDepth,
}

func runFindings(d *Document) []models.Finding {
	findings := make([]models.Finding, 0, len(findingChecks))
	for _, check := range findingChecks {
		findings = append(findings, check(d)...)
	}
	return findings
}

// checkSecurity only reports the positive case. A page without an https
// og:url stays silent instead of being flagged.
func checkSecurity(d *Document) []models.Finding {
	ogURL, _ := d.Find(`meta[property="og:url"]`).Attr("content")
	if !strings.HasPrefix(ogURL, "https://") {
		return nil
	}
	return []models.Finding{{
		Category: "Segurança",
		Finding:  "O site utiliza conexão segura (HTTPS).",
		Impact:   models.ImpactPositive,
	}}
}

// checkContact always emits, positively or negatively.
func checkContact(d *Document) []models.Finding {
	hasContact := d.Find(`a[href^="mailto:"]`).Length() > 0 ||
		strings.Contains(d.BodyText(), "contato") ||
		strings.Contains(d.BodyText(), "email")

	if hasContact {
		return []models.Finding{{
			Category: "Transparência",
			Finding:  "Informações de contato foram identificadas no site.",
			Impact:   models.ImpactPositive,
		}}
	}
	return []models.Finding{{
		Category: "Transparência",
		Finding:  "Não foram identificadas informações de contato facilmente acessíveis.",
		Impact:   models.ImpactNegative,
	}}
}

func checkAboutPage(d *Document) []models.Finding {
	if d.Find(`a[href*="about"], a[href*="sobre"]`).Length() == 0 {
		return nil
	}
	return []models.Finding{{
		Category: "Credibilidade",
		Finding:  "O site possui uma página 'Sobre' ou 'About'.",
		Impact:   models.ImpactPositive,
	}}
}

// checkContentDepth is silent for word counts in [200, 500].
func checkContentDepth(d *Document) []models.Finding {
	wordCount := len(strings.Fields(d.BodyText()))
	switch {
	case wordCount > substantialWordCount:
		return []models.Finding{{
			Category: "Profundidade",
			Finding:  fmt.Sprintf("O conteúdo é substancial com aproximadamente %d palavras.", wordCount),
			Impact:   models.ImpactPositive,
		}}
	case wordCount < briefWordCount:
		return []models.Finding{{
			Category: "Profundidade",
			Finding:  "O conteúdo parece ser muito breve para um artigo jornalístico completo.",
			Impact:   models.ImpactNegative,
		}}
	}
	return nil
}
