// Package content converts ticket content blocks (ADF trees, rendered HTML,
// or plain text) into plain text with paragraph breaks as single newlines and
// headings delimited by a blank line on each side, so section detection can
// rely on blank-line-delimited regions.
package content

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/dt-pm-tools/dor-analyzer/internal/jira"
	"github.com/dt-pm-tools/dor-analyzer/internal/ticket"
)

var multiNewline = regexp.MustCompile(`\n{3,}`)

// Normalize renders one content block to plain text. An empty block yields
// an empty string, never an error.
func Normalize(b ticket.Block) string {
	switch {
	case b.ADF != nil:
		return FromADF(b.ADF)
	case b.HTML != "":
		return FromHTML(b.HTML)
	default:
		return b.Text
	}
}

// NormalizeAll renders every block of a record and joins them with blank
// lines, preserving block order.
func NormalizeAll(rec *ticket.Record) string {
	var parts []string
	for _, b := range rec.Blocks {
		if text := strings.TrimSpace(Normalize(b)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// FromADF renders an ADF node tree to plain text.
func FromADF(node *jira.ADFNode) string {
	if node == nil {
		return ""
	}
	var b strings.Builder
	renderNode(&b, node)
	return collapseNewlines(b.String())
}

func renderNode(b *strings.Builder, node *jira.ADFNode) {
	switch node.Type {
	case "text":
		b.WriteString(node.Text)

	case "paragraph":
		renderChildren(b, node)
		b.WriteString("\n")

	case "heading":
		b.WriteString("\n\n")
		renderChildren(b, node)
		b.WriteString("\n\n")

	case "bulletList", "orderedList":
		for i := range node.Content {
			renderNode(b, &node.Content[i])
		}

	case "listItem":
		renderChildren(b, node)
		if !strings.HasSuffix(b.String(), "\n") {
			b.WriteString("\n")
		}

	case "hardBreak":
		b.WriteString("\n")

	case "mention", "emoji":
		if t, ok := node.Attrs["text"].(string); ok {
			b.WriteString(t)
		}

	case "inlineCard":
		if u, ok := node.Attrs["url"].(string); ok {
			b.WriteString(u)
		}

	case "codeBlock", "blockquote":
		renderChildren(b, node)
		b.WriteString("\n")

	default:
		// Unrecognized kinds are skipped structurally but their nested
		// content still contributes text.
		renderChildren(b, node)
	}
}

func renderChildren(b *strings.Builder, node *jira.ADFNode) {
	for i := range node.Content {
		renderNode(b, &node.Content[i])
	}
}

// Block-level HTML elements that end a line of text.
var htmlBlockTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"table": true, "tr": true, "blockquote": true, "pre": true,
}

var htmlHeadingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var intraLineSpace = regexp.MustCompile(`[ \t]+`)

// FromHTML strips markup from rendered hypertext, keeping block boundaries as
// newlines and headings blank-line delimited. Runs of spaces and tabs inside a
// line collapse to a single space. Hyperlink targets are not preserved here;
// the link extractor reads the raw HTML separately.
func FromHTML(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		// Malformed markup degrades to empty text rather than failing the
		// whole analysis.
		return ""
	}

	var b strings.Builder
	for _, node := range doc.Selection.Nodes {
		renderHTMLNode(&b, node)
	}

	text := b.String()
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(intraLineSpace.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	return strings.Trim(collapseNewlines(text), "\n")
}

func renderHTMLNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(strings.ReplaceAll(n.Data, "\n", " "))
		return
	case html.ElementNode:
		switch {
		case n.Data == "script" || n.Data == "style":
			return
		case n.Data == "br":
			b.WriteString("\n")
			return
		case htmlHeadingTags[n.Data]:
			b.WriteString("\n\n")
			renderHTMLChildren(b, n)
			b.WriteString("\n\n")
			return
		case htmlBlockTags[n.Data]:
			renderHTMLChildren(b, n)
			b.WriteString("\n")
			return
		}
	}
	renderHTMLChildren(b, n)
}

func renderHTMLChildren(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderHTMLNode(b, c)
	}
}

// collapseNewlines reduces runs of 3+ newlines to exactly 2.
func collapseNewlines(s string) string {
	return multiNewline.ReplaceAllString(s, "\n\n")
}
