package genai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dt-pm-tools/dor-analyzer/internal/dor"
	"github.com/dt-pm-tools/dor-analyzer/internal/fields"
)

type stubGenerator struct {
	reply string
	err   error
}

func (s stubGenerator) Generate(context.Context, string) (string, error) {
	return s.reply, s.err
}

func baseValues() map[fields.Field]fields.Value {
	return map[fields.Field]fields.Value{
		fields.UserStory:          {Text: "As a user, I want X.", Provenance: fields.ProvenanceInline},
		fields.AcceptanceCriteria: {Text: "- Button is visible\n- Popup closes on Escape", Provenance: fields.ProvenancePattern},
	}
}

func TestEnrich_WithGenerator(t *testing.T) {
	e := NewEnricher(stubGenerator{reply: "Improved text."})
	out := e.Enrich(context.Background(), baseValues(), dor.Result{})

	if out.Rewrites[fields.UserStory] != "Improved text." {
		t.Errorf("expected generated rewrite, got %v", out.Rewrites)
	}
	if len(out.TestScenarios) == 0 {
		t.Errorf("expected scenarios from the generator")
	}
}

func TestEnrich_GeneratorFailureFallsBack(t *testing.T) {
	e := NewEnricher(stubGenerator{err: errors.New("unavailable")})
	out := e.Enrich(context.Background(), baseValues(), dor.Result{
		Missing: []fields.Field{fields.TestingSteps},
	})

	if len(out.Rewrites) != 0 {
		t.Errorf("failed generation yields no rewrites, got %v", out.Rewrites)
	}
	if len(out.TestScenarios) != 2 {
		t.Fatalf("expected one template scenario per criterion, got %v", out.TestScenarios)
	}
	if !strings.HasPrefix(out.TestScenarios[0], "Verify that ") {
		t.Errorf("template scenario malformed: %q", out.TestScenarios[0])
	}
}

func TestEnrich_NilGenerator(t *testing.T) {
	e := NewEnricher(nil)
	out := e.Enrich(context.Background(), baseValues(), dor.Result{})
	if len(out.TestScenarios) != 2 {
		t.Errorf("nil generator still derives template scenarios, got %v", out.TestScenarios)
	}
}

func TestRecommendations_RoleTagged(t *testing.T) {
	e := NewEnricher(nil)
	out := e.Enrich(context.Background(), map[fields.Field]fields.Value{}, dor.Result{
		Missing:   []fields.Field{fields.UserStory, fields.TestingSteps, fields.ArchitecturalSolution},
		Conflicts: []dor.Conflict{{TermA: "always", TermB: "never"}},
	})

	if len(out.Recommendations) != 4 {
		t.Fatalf("expected 4 recommendations, got %v", out.Recommendations)
	}
	roles := map[string]bool{}
	for _, r := range out.Recommendations {
		roles[r.Role] = true
	}
	for _, want := range []string{"Product Owner", "QA", "Developer"} {
		if !roles[want] {
			t.Errorf("expected a %s recommendation, got %v", want, out.Recommendations)
		}
	}
}
