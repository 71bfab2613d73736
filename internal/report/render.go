// Package report renders an analysis result as a markdown document.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dt-pm-tools/dor-analyzer/internal/analysis"
	"github.com/dt-pm-tools/dor-analyzer/internal/fields"
	"github.com/dt-pm-tools/dor-analyzer/internal/ticket"
)

// Render converts an analysis result into a markdown report body.
func Render(rec *ticket.Record, res *analysis.Result) string {
	var b strings.Builder

	b.WriteString("---\n")
	b.WriteString(fmt.Sprintf("key: %s\n", rec.Key))
	b.WriteString(fmt.Sprintf("title: %s\n", rec.Title))
	b.WriteString(fmt.Sprintf("cardType: %s\n", res.CardType))
	b.WriteString(fmt.Sprintf("status: %s\n", res.DoR.Status))
	b.WriteString(fmt.Sprintf("analyzed: %s\n", time.Now().UTC().Format(time.RFC3339)))
	b.WriteString("---\n\n")

	b.WriteString(fmt.Sprintf("# %s: %s\n\n", rec.Key, rec.Title))
	b.WriteString(fmt.Sprintf("**Verdict: %s** (%s)\n\n", res.DoR.Status, res.CardType))

	b.WriteString("## Field Coverage\n\n")
	if len(res.DoR.Present) > 0 {
		b.WriteString("Present:\n\n")
		for _, f := range res.DoR.Present {
			b.WriteString(fmt.Sprintf("- %s\n", f.Label()))
		}
		b.WriteString("\n")
	}
	if len(res.DoR.Missing) > 0 {
		b.WriteString("Missing:\n\n")
		for _, f := range res.DoR.Missing {
			b.WriteString(fmt.Sprintf("- %s\n", f.Label()))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No required fields are missing.\n\n")
	}

	if len(res.DoR.Conflicts) > 0 {
		b.WriteString("## Conflicts\n\n")
		for _, c := range res.DoR.Conflicts {
			b.WriteString(fmt.Sprintf("- %s\n", c))
		}
		b.WriteString("\n")
	}

	if len(res.Links) > 0 {
		b.WriteString("## Design Links\n\n")
		for _, l := range res.Links {
			anchor := l.Anchor
			if anchor == "" {
				anchor = l.URL
			}
			b.WriteString(fmt.Sprintf("- [%s](%s)", anchor, l.URL))
			var details []string
			if l.FileID != "" {
				details = append(details, "file "+l.FileID)
			}
			if len(l.NodeIDs) > 0 {
				details = append(details, "views "+strings.Join(l.NodeIDs, ", "))
			}
			details = append(details, "under "+l.Section)
			b.WriteString(" (" + strings.Join(details, "; ") + ")\n")
		}
		b.WriteString("\n")
	}

	if e := res.Enrichment; e != nil {
		if len(e.Rewrites) > 0 {
			b.WriteString("## Suggested Rewrites\n\n")
			for _, f := range fields.All() {
				if text, ok := e.Rewrites[f]; ok {
					b.WriteString(fmt.Sprintf("### %s\n\n%s\n\n", f.Label(), text))
				}
			}
		}
		if len(e.TestScenarios) > 0 {
			b.WriteString("## Test Scenarios\n\n")
			for i, s := range e.TestScenarios {
				b.WriteString(fmt.Sprintf("%d. %s\n", i+1, s))
			}
			b.WriteString("\n")
		}
		if len(e.Recommendations) > 0 {
			b.WriteString("## Recommendations\n\n")
			for _, r := range e.Recommendations {
				b.WriteString(fmt.Sprintf("- **%s**: %s\n", r.Role, r.Text))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
