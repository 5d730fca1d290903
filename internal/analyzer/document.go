package analyzer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reOpenBlock  = regexp.MustCompile(`(?i)(<(?:div|p|br|li|td|tr|h[1-6])\b[^>]*>)`)
	reCloseBlock = regexp.MustCompile(`(?i)(</(?:div|p|li|td|tr|h[1-6])>)`)
)

// Document is a parsed page plus the derived text views the detectors read.
// The underlying tree has script, style and noscript subtrees removed, so
// their text never reaches heuristic input.
type Document struct {
	doc      *goquery.Document
	bodyText string // lower-cased, whitespace-normalized
	rawText  string // case-preserved, whitespace-normalized
	title    string
}

// NewDocument parses rawHTML. Malformed markup is tolerated: the parser
// builds a best-effort partial tree, detectors simply see less signal.
func NewDocument(rawHTML string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(addBlockSpacing(rawHTML)))
	if err != nil {
		return nil, err
	}

	doc.Find("script, style, noscript").Remove()

	raw := normalizeText(doc.Find("body").Text())

	title := normalizeText(doc.Find("title").First().Text())
	if title == "" {
		title = normalizeText(doc.Find("h1").First().Text())
	}

	return &Document{
		doc:      doc,
		bodyText: strings.ToLower(raw),
		rawText:  raw,
		title:    title,
	}, nil
}

func (d *Document) Find(selector string) *goquery.Selection { return d.doc.Find(selector) }

func (d *Document) BodyText() string { return d.bodyText }

func (d *Document) RawText() string { return d.rawText }

func (d *Document) Title() string { return d.title }

func normalizeText(text string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))
}

// addBlockSpacing pads block-level tags with whitespace so text extracted
// across block boundaries does not glue adjacent words together. Attributes
// are kept intact, so selector matching is unaffected.
func addBlockSpacing(html string) string {
	html = reOpenBlock.ReplaceAllString(html, " $1")
	return reCloseBlock.ReplaceAllString(html, "$1 ")
}
