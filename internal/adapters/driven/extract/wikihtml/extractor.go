package wikihtml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/wikiwords/internal/core/domain"
	"github.com/custodia-labs/wikiwords/internal/core/ports/driven"
	"github.com/custodia-labs/wikiwords/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.SectionExtractor = (*Extractor)(nil)

const headingSelector = "h1, h2, h3, h4, h5, h6"

// headingWrapperClass marks the div MediaWiki wraps around headings.
const headingWrapperClass = "mw-heading"

// Extractor pulls paragraph text out of one section of an article.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Paragraphs returns the text of every <p> after the heading with id
// bounds.Start and before the first following heading with id bounds.End.
// Text is returned as written in the source: entity references such as
// &#91; are not decoded.
func (e *Extractor) Paragraphs(document string, bounds driven.SectionBounds) (string, error) {
	source, err := escapeCharData(document)
	if err != nil {
		return "", fmt.Errorf("%w: tokenize document: %w", domain.ErrInvalidInput, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return "", fmt.Errorf("%w: parse document: %w", domain.ErrInvalidInput, err)
	}

	starts := headings(doc, bounds.Start)
	if len(starts) == 0 {
		return "", fmt.Errorf("start section %q: %w", bounds.Start, domain.ErrSectionNotFound)
	}
	ends := headings(doc, bounds.End)

	endSet := make(map[*html.Node]bool, len(ends))
	for _, n := range ends {
		endSet[n] = true
	}

	var sb strings.Builder
	paragraphs, found := collect(doc.Get(0), starts[0], endSet, &sb)
	if !found {
		return "", fmt.Errorf("end section %q after %q: %w", bounds.End, bounds.Start, domain.ErrSectionNotFound)
	}

	logger.Debug("section %s..%s: %d paragraphs, %d bytes", bounds.Start, bounds.End, paragraphs, sb.Len())
	return sb.String(), nil
}

// escapeCharData re-escapes every '&' in character data so that parsing
// the result yields text nodes holding the original source bytes. Tags,
// attributes and comments are copied unchanged.
func escapeCharData(document string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(document))

	var sb strings.Builder
	sb.Grow(len(document))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return sb.String(), nil
		case html.TextToken:
			sb.WriteString(strings.ReplaceAll(string(z.Raw()), "&", "&amp;"))
		default:
			sb.Write(z.Raw())
		}
	}
}

// headings returns the boundary nodes of every heading carrying id, in
// document order. An id on a non-heading element is ignored.
func headings(doc *goquery.Document, id string) []*html.Node {
	var nodes []*html.Node
	if id == "" {
		return nodes
	}

	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		if v, _ := s.Attr("id"); v != id {
			return
		}
		heading := s
		if !s.Is(headingSelector) {
			heading = s.Closest(headingSelector)
			if heading.Length() == 0 {
				return
			}
		}
		if parent := heading.Parent(); parent.Is("div") && parent.HasClass(headingWrapperClass) {
			heading = parent
		}
		nodes = append(nodes, heading.Get(0))
	})
	return nodes
}

// collect walks root in document order. Paragraphs seen after start and
// before any node in ends are appended to sb. It reports the number of
// paragraphs written and whether an end boundary was reached.
func collect(root, start *html.Node, ends map[*html.Node]bool, sb *strings.Builder) (int, bool) {
	inside := false
	count := 0

	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		switch {
		case n == start:
			inside = true
			return false
		case inside && ends[n]:
			return true
		case inside && n.Type == html.ElementNode && n.DataAtom == atom.P:
			sb.WriteString(innerText(n))
			sb.WriteByte('\n')
			count++
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	return count, walk(root)
}

// innerText concatenates every text node below n without altering whitespace.
func innerText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(innerText(c))
	}
	return sb.String()
}
