package report

import (
	"strings"
	"testing"

	"github.com/dt-pm-tools/dor-analyzer/internal/analysis"
	"github.com/dt-pm-tools/dor-analyzer/internal/dor"
	"github.com/dt-pm-tools/dor-analyzer/internal/fields"
	"github.com/dt-pm-tools/dor-analyzer/internal/figma"
	"github.com/dt-pm-tools/dor-analyzer/internal/genai"
	"github.com/dt-pm-tools/dor-analyzer/internal/ticket"
)

func TestRender(t *testing.T) {
	rec := &ticket.Record{Key: "SHOP-42", Title: "One-click checkout"}
	res := &analysis.Result{
		CardType: dor.CardStory,
		DoR: dor.Result{
			Present:   []fields.Field{fields.UserStory, fields.AcceptanceCriteria},
			Missing:   []fields.Field{fields.AccessibilityCriteria},
			Conflicts: []dor.Conflict{{TermA: "always", TermB: "sometimes"}},
			Status:    dor.StatusNeedsRefinement,
		},
		Links: []figma.Link{{
			URL:     "https://www.figma.com/file/Chk1/Checkout",
			FileID:  "Chk1",
			NodeIDs: []string{"5:9"},
			Anchor:  "Design",
			Section: "Acceptance Criteria",
		}},
		Enrichment: &genai.Enrichment{
			TestScenarios: []string{"Verify that the button is visible."},
			Recommendations: []genai.Recommendation{
				{Role: "QA", Text: "Provide the accessibility criteria before the ticket enters a sprint."},
			},
		},
	}

	md := Render(rec, res)

	for _, want := range []string{
		"# SHOP-42: One-click checkout",
		"status: Needs Refinement",
		"**Verdict: Needs Refinement** (story)",
		"- Accessibility Criteria",
		`"always" contradicts "sometimes"`,
		"[Design](https://www.figma.com/file/Chk1/Checkout)",
		"file Chk1",
		"views 5:9",
		"under Acceptance Criteria",
		"1. Verify that the button is visible.",
		"**QA**:",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q:\n%s", want, md)
		}
	}
}

func TestRender_NoOptionalSections(t *testing.T) {
	rec := &ticket.Record{Key: "T-1", Title: "Tiny"}
	res := &analysis.Result{
		CardType: dor.CardTask,
		DoR:      dor.Result{Status: dor.StatusNotReady, Missing: []fields.Field{fields.TaskDescription}},
	}

	md := Render(rec, res)
	if strings.Contains(md, "## Design Links") || strings.Contains(md, "## Conflicts") {
		t.Errorf("empty sections must be omitted:\n%s", md)
	}
	if !strings.Contains(md, "- Task Description") {
		t.Errorf("missing fields should be listed:\n%s", md)
	}
}
