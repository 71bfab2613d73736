package genai

import (
	"context"
	"fmt"
	"strings"

	"github.com/dt-pm-tools/dor-analyzer/internal/dor"
	"github.com/dt-pm-tools/dor-analyzer/internal/fields"
)

// Recommendation is one piece of advice addressed to a specific role.
type Recommendation struct {
	Role string // "Product Owner", "QA", "Developer"
	Text string
}

// Enrichment carries the optional generated content attached to an analysis.
type Enrichment struct {
	Rewrites        map[fields.Field]string
	TestScenarios   []string
	Recommendations []Recommendation
}

// Enricher derives suggestions from extracted fields and the readiness
// result. The generator is optional; without one (or when it fails) every
// output falls back to a static template.
type Enricher struct {
	gen Generator
}

// NewEnricher wraps a generator, which may be nil.
func NewEnricher(gen Generator) *Enricher {
	return &Enricher{gen: gen}
}

// Fields worth a prose rewrite when present.
var rewriteTargets = []fields.Field{fields.UserStory, fields.AcceptanceCriteria}

// roleFor maps a missing field to the role best placed to supply it.
var roleFor = map[fields.Field]string{
	fields.UserStory:             "Product Owner",
	fields.AcceptanceCriteria:    "Product Owner",
	fields.KPI:                   "Product Owner",
	fields.Brand:                 "Product Owner",
	fields.Team:                  "Product Owner",
	fields.TaskDescription:       "Product Owner",
	fields.DefinitionOfDone:      "Product Owner",
	fields.TestingSteps:          "QA",
	fields.AccessibilityCriteria: "QA",
	fields.StepsToReproduce:      "QA",
	fields.ExpectedResult:        "QA",
	fields.ActualResult:          "QA",
	fields.Environment:           "QA",
	fields.Severity:              "QA",
	fields.ImplementationDetails: "Developer",
	fields.ArchitecturalSolution: "Developer",
	fields.Estimate:              "Developer",
	fields.Component:             "Developer",
}

// Enrich produces suggestions for the analyzed ticket. It never returns an
// error: generation failures degrade to templates, field by field.
func (e *Enricher) Enrich(ctx context.Context, values map[fields.Field]fields.Value, res dor.Result) *Enrichment {
	out := &Enrichment{
		Rewrites: make(map[fields.Field]string),
	}

	for _, f := range rewriteTargets {
		v := values[f]
		if v.Text == "" {
			continue
		}
		if text := e.generate(ctx, rewritePrompt(f, v.Text)); text != "" {
			out.Rewrites[f] = text
		}
	}

	out.TestScenarios = e.testScenarios(ctx, values[fields.AcceptanceCriteria].Text)
	out.Recommendations = recommendations(res)
	return out
}

// generate runs the generator when one is configured; any failure yields "".
func (e *Enricher) generate(ctx context.Context, prompt string) string {
	if e.gen == nil {
		return ""
	}
	text, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

func rewritePrompt(f fields.Field, text string) string {
	return fmt.Sprintf(
		"Rewrite the following %s of a work ticket to be clear, specific and testable. Keep the original meaning. Reply with the rewritten text only.\n\n%s",
		strings.ToLower(f.Label()), text)
}

// testScenarios derives verification scenarios from the acceptance criteria:
// generated when possible, one template scenario per criterion otherwise.
func (e *Enricher) testScenarios(ctx context.Context, criteria string) []string {
	if strings.TrimSpace(criteria) == "" {
		return nil
	}

	if e.gen != nil {
		prompt := fmt.Sprintf(
			"Derive concrete test scenarios from these acceptance criteria, one per line, no numbering:\n\n%s", criteria)
		if text := e.generate(ctx, prompt); text != "" {
			var out []string
			for _, line := range strings.Split(text, "\n") {
				if line = strings.TrimSpace(strings.TrimLeft(line, "-* ")); line != "" {
					out = append(out, line)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}

	// Template fallback: one scenario per non-empty criterion line.
	var out []string
	for _, line := range strings.Split(criteria, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*0123456789.) "))
		if line == "" {
			continue
		}
		out = append(out, "Verify that "+lowerFirst(line))
	}
	return out
}

// recommendations turns missing fields and conflicts into role-tagged
// advice. Always template-based; the generator plays no part here.
func recommendations(res dor.Result) []Recommendation {
	var out []Recommendation
	for _, f := range res.Missing {
		role := roleFor[f]
		if role == "" {
			role = "Product Owner"
		}
		out = append(out, Recommendation{
			Role: role,
			Text: fmt.Sprintf("Provide the %s before the ticket enters a sprint.", strings.ToLower(f.Label())),
		})
	}
	for _, c := range res.Conflicts {
		out = append(out, Recommendation{
			Role: "Product Owner",
			Text: fmt.Sprintf("Resolve the contradiction between %q and %q in the acceptance criteria.", c.TermA, c.TermB),
		})
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
