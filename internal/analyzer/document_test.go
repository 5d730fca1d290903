package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *Document {
	t.Helper()
	doc, err := NewDocument(html)
	require.NoError(t, err)
	return doc
}

func TestDocumentStripsScriptStyleNoscript(t *testing.T) {
	doc := mustDoc(t, `<html><head><title>T</title>
		<script>var chocante = "escândalo";</script>
		<style>.x { color: red }</style></head>
		<body><noscript>urgente</noscript><p>Olá Mundo</p></body></html>`)

	assert.Equal(t, "olá mundo", doc.BodyText())
	assert.Equal(t, "Olá Mundo", doc.RawText())
}

func TestDocumentNormalizesWhitespace(t *testing.T) {
	doc := mustDoc(t, "<body><p>  um \n\t dois   três  </p></body>")
	assert.Equal(t, "um dois três", doc.BodyText())
}

func TestDocumentBlockBoundariesSeparateWords(t *testing.T) {
	doc := mustDoc(t, "<body><p>foo</p><p>bar</p><div>baz</div></body>")
	assert.Equal(t, "foo bar baz", doc.BodyText())
}

func TestDocumentTitle(t *testing.T) {
	doc := mustDoc(t, "<html><head><title> Manchete do Dia </title></head><body></body></html>")
	assert.Equal(t, "Manchete do Dia", doc.Title())
}

func TestDocumentTitleFallsBackToH1(t *testing.T) {
	doc := mustDoc(t, "<html><body><h1>Primeira Manchete</h1><h1>Segunda</h1></body></html>")
	assert.Equal(t, "Primeira Manchete", doc.Title())

	doc = mustDoc(t, "<html><head><title>   </title></head><body><h1>Manchete</h1></body></html>")
	assert.Equal(t, "Manchete", doc.Title())
}

func TestDocumentToleratesMalformedHTML(t *testing.T) {
	doc := mustDoc(t, "<html><body><div><p>texto aberto <b>sem fechar")
	assert.Contains(t, doc.BodyText(), "texto aberto sem fechar")
}

func TestDocumentSelectorsSeeAttributes(t *testing.T) {
	// Block spacing must not disturb attributes used by the detectors.
	doc := mustDoc(t, `<body><div class="author">Maria Silva</div><p data-x="1">ok</p></body>`)
	assert.Equal(t, 1, doc.Find(".author").Length())
	assert.Equal(t, "Maria Silva", doc.Find(".author").Text())
}
