// Package figma finds references to the Figma design tool inside ticket
// content, regardless of how they are embedded: ADF link marks, HTML anchors,
// markdown/wiki link forms, or bare URLs. Results are deduplicated by
// canonical URL, so extraction is idempotent.
package figma

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dt-pm-tools/dor-analyzer/internal/jira"
	"github.com/dt-pm-tools/dor-analyzer/internal/ticket"
)

// Link is one reference to a Figma design.
type Link struct {
	URL     string   // canonical absolute URL, redirectors unwrapped
	FileID  string   // from /file/<id>, /proto/<id> or /design/<id>
	NodeIDs []string // node-id query values, percent-decoded
	Anchor  string   // display text, if the embedding carried one
	Section string   // heading the link was found under
}

var (
	bareURL      = regexp.MustCompile(`https?://[^\s<>"'\)\]\|]+`)
	markdownLink = regexp.MustCompile(`\[([^\]]*)\]\((https?://[^)\s]+)\)`)
	wikiLink     = regexp.MustCompile(`\[([^\]|]*)\|(https?://[^\]\s]+)\]`)
	fileIDPath   = regexp.MustCompile(`^/(?:file|proto|design)/([A-Za-z0-9]+)`)

	sectionHeadings = []struct {
		pattern *regexp.Regexp
		name    string
	}{
		{regexp.MustCompile(`(?i)acceptance\s+criteria`), "Acceptance Criteria"},
		{regexp.MustCompile(`(?i)\btest`), "Testing"},
		{regexp.MustCompile(`(?i)\b(user\s+)?story\b`), "User Story"},
		{regexp.MustCompile(`(?i)accessib`), "Accessibility"},
	}
)

type candidate struct {
	url    string
	anchor string
}

// Extract returns every Figma link found in the record's raw content blocks
// and its normalized text, deduplicated by canonical URL. Re-running on the
// same input always yields the same result.
func Extract(rec *ticket.Record, normalized string) []Link {
	var cands []candidate

	// 1. ADF link marks carry the target in the mark, not in visible text.
	for _, b := range rec.Blocks {
		if b.ADF != nil {
			collectADFLinks(b.ADF, &cands)
		}
	}

	// 2. HTML anchors.
	for _, b := range rec.Blocks {
		if b.HTML != "" {
			collectHTMLLinks(b.HTML, &cands)
		}
	}

	// 3. Markdown and wiki link forms in plain text.
	for _, m := range markdownLink.FindAllStringSubmatch(normalized, -1) {
		cands = append(cands, candidate{url: m[2], anchor: m[1]})
	}
	for _, m := range wikiLink.FindAllStringSubmatch(normalized, -1) {
		cands = append(cands, candidate{url: m[2], anchor: m[1]})
	}

	// 4. Bare URLs, skipping anything already captured. Containment rather
	// than equality: earlier steps may have captured a slightly different
	// substring of the same URL.
	marked := len(cands)
	for _, raw := range bareURL.FindAllString(normalized, -1) {
		trimmed := trimPunctuation(raw)
		seen := false
		for _, c := range cands[:marked] {
			if strings.Contains(c.url, trimmed) || strings.Contains(trimmed, c.url) {
				seen = true
				break
			}
		}
		if !seen {
			cands = append(cands, candidate{url: trimmed})
		}
	}

	// Canonicalize, filter to the Figma domain, deduplicate.
	var links []Link
	index := make(map[string]int)
	for _, c := range cands {
		canon := canonicalize(c.url)
		if !isFigmaURL(canon) {
			continue
		}
		if i, ok := index[canon]; ok {
			if links[i].Anchor == "" && c.anchor != "" {
				links[i].Anchor = c.anchor
			}
			continue
		}
		link := Link{
			URL:     canon,
			Anchor:  c.anchor,
			Section: sectionFor(normalized, c.url),
		}
		link.FileID, link.NodeIDs = parseIdentifiers(canon)
		index[canon] = len(links)
		links = append(links, link)
	}
	return links
}

func collectADFLinks(node *jira.ADFNode, out *[]candidate) {
	for _, mark := range node.Marks {
		if href := mark.Href(); href != "" {
			*out = append(*out, candidate{url: href, anchor: strings.TrimSpace(nodeText(node))})
		}
	}
	if node.Type == "inlineCard" {
		if u, ok := node.Attrs["url"].(string); ok && u != "" {
			*out = append(*out, candidate{url: u})
		}
	}
	for i := range node.Content {
		collectADFLinks(&node.Content[i], out)
	}
}

func nodeText(node *jira.ADFNode) string {
	if node.Type == "text" {
		return node.Text
	}
	var b strings.Builder
	for i := range node.Content {
		b.WriteString(nodeText(&node.Content[i]))
	}
	return b.String()
}

func collectHTMLLinks(markup string, out *[]candidate) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return
	}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href != "" {
			*out = append(*out, candidate{url: href, anchor: strings.TrimSpace(s.Text())})
		}
	})
}

// canonicalize unwraps redirector/shortener URLs (…?url=<encoded>) and trims
// trailing punctuation.
func canonicalize(raw string) string {
	raw = trimPunctuation(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if target := u.Query().Get("url"); target != "" {
		// Query() percent-decodes; the embedded value is the real link.
		if t, err := url.Parse(target); err == nil && t.Scheme != "" {
			return trimPunctuation(target)
		}
	}
	return raw
}

func trimPunctuation(s string) string {
	return strings.TrimRight(s, ".,;:!?\"'>)]")
}

func isFigmaURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == "figma.com" || strings.HasSuffix(host, ".figma.com")
}

func parseIdentifiers(raw string) (string, []string) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", nil
	}
	var fileID string
	if m := fileIDPath.FindStringSubmatch(u.Path); m != nil {
		fileID = m[1]
	}
	var nodeIDs []string
	for _, id := range u.Query()["node-id"] {
		if id != "" {
			nodeIDs = append(nodeIDs, id)
		}
	}
	return fileID, nodeIDs
}

// sectionFor scans backward from the link's position in the normalized text
// for the nearest preceding heading-like line. Links with no recognizable
// heading above them are attributed to the description.
func sectionFor(normalized, rawURL string) string {
	// ADF/HTML-embedded targets are invisible in the normalized text, so
	// they fall through to the default.
	pos := strings.Index(normalized, rawURL)
	if pos < 0 {
		return "Description"
	}
	lines := strings.Split(normalized[:pos], "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || len(line) > 80 {
			continue
		}
		for _, h := range sectionHeadings {
			if h.pattern.MatchString(line) {
				return h.name
			}
		}
	}
	return "Description"
}
