package dor

import (
	"testing"

	"github.com/dt-pm-tools/dor-analyzer/internal/fields"
)

// fullStory returns a value map with every story-required field populated.
func fullStory() map[fields.Field]fields.Value {
	values := make(map[fields.Field]fields.Value)
	for _, f := range Required(CardStory) {
		values[f] = fields.Value{Text: "content for " + string(f), Provenance: fields.ProvenancePattern}
	}
	values[fields.Estimate] = fields.Value{Text: "5", Provenance: fields.ProvenanceAttribute}
	return values
}

func TestEvaluate_StoryAllFieldsReady(t *testing.T) {
	res := Evaluate(fullStory(), CardStory)

	if len(res.Missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", res.Missing)
	}
	if len(res.Present) != len(Required(CardStory)) {
		t.Errorf("expected all %d required fields present, got %d", len(Required(CardStory)), len(res.Present))
	}
	if len(res.Conflicts) != 0 {
		t.Errorf("expected no conflicts, got %v", res.Conflicts)
	}
	if res.Status != StatusReady {
		t.Errorf("expected Ready, got %q", res.Status)
	}
}

func TestEvaluate_MissingUserStoryNotReady(t *testing.T) {
	values := fullStory()
	values[fields.UserStory] = fields.Value{Provenance: fields.ProvenanceNone}

	if res := Evaluate(values, CardStory); res.Status != StatusNotReady {
		t.Errorf("story without a user story must be Not Ready, got %q", res.Status)
	}
}

func TestEvaluate_NoCriteriaAndNoStepsNotReady(t *testing.T) {
	values := fullStory()
	values[fields.AcceptanceCriteria] = fields.Value{}
	values[fields.TestingSteps] = fields.Value{}

	if res := Evaluate(values, CardStory); res.Status != StatusNotReady {
		t.Errorf("neither criteria nor steps must be Not Ready, got %q", res.Status)
	}
}

func TestEvaluate_ConflictNeedsRefinement(t *testing.T) {
	values := fullStory()
	values[fields.AcceptanceCriteria] = fields.Value{
		Text:       "The popup opens immediately. The second CTA opens popup after delay.",
		Provenance: fields.ProvenancePattern,
	}

	res := Evaluate(values, CardStory)
	if len(res.Conflicts) != 1 {
		t.Fatalf("expected exactly one conflict, got %v", res.Conflicts)
	}
	if res.Status == StatusReady {
		t.Errorf("conflicting criteria can never be Ready, got %q", res.Status)
	}
	if res.Status != StatusNeedsRefinement {
		t.Errorf("expected Needs Refinement, got %q", res.Status)
	}
}

func TestEvaluate_AudienceConflict(t *testing.T) {
	values := fullStory()
	values[fields.AcceptanceCriteria] = fields.Value{
		Text:       "The banner is shown to all users. The banner is shown only to admins.",
		Provenance: fields.ProvenancePattern,
	}

	res := Evaluate(values, CardStory)
	if len(res.Conflicts) != 1 {
		t.Fatalf("expected one conflict, got %v", res.Conflicts)
	}
	if res.Status == StatusReady {
		t.Errorf("audience contradiction can never be Ready, got %q", res.Status)
	}
}

func TestEvaluate_PlaceholderIsAbsent(t *testing.T) {
	for _, placeholder := range []string{"tbd", "N/A", "TBA", "to be determined", "Not Applicable", "TODO", "pending"} {
		values := fullStory()
		values[fields.Brand] = fields.Value{Text: placeholder, Provenance: fields.ProvenanceAttribute}

		res := Evaluate(values, CardStory)
		if !contains(res.Missing, fields.Brand) {
			t.Errorf("placeholder %q must make the field absent", placeholder)
		}
	}
}

func TestEvaluate_NoneIsPresentButEmpty(t *testing.T) {
	values := fullStory()
	values[fields.AccessibilityCriteria] = fields.Value{Text: "none", Provenance: fields.ProvenancePattern}

	res := Evaluate(values, CardStory)
	if contains(res.Missing, fields.AccessibilityCriteria) {
		t.Errorf("\"none\" means the field was explicitly addressed and counts as present")
	}
	if res.Status != StatusReady {
		t.Errorf("expected Ready, got %q", res.Status)
	}
}

func TestEvaluate_ZeroEstimatePresent(t *testing.T) {
	values := fullStory()
	values[fields.Estimate] = fields.Value{Text: "0", Provenance: fields.ProvenanceAttribute}

	res := Evaluate(values, CardStory)
	if contains(res.Missing, fields.Estimate) {
		t.Errorf("zero estimate is a valid value, not an absence")
	}
	if res.Status != StatusReady {
		t.Errorf("expected Ready, got %q", res.Status)
	}
}

func TestEvaluate_MissingAccessibilityNeedsRefinement(t *testing.T) {
	values := fullStory()
	values[fields.AccessibilityCriteria] = fields.Value{}

	if res := Evaluate(values, CardStory); res.Status != StatusNeedsRefinement {
		t.Errorf("UI-bearing ticket without accessibility criteria needs refinement, got %q", res.Status)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	values := fullStory()
	values[fields.Team] = fields.Value{}

	a := Evaluate(values, CardStory)
	b := Evaluate(values, CardStory)
	if a.Status != b.Status || len(a.Missing) != len(b.Missing) {
		t.Errorf("identical input must yield identical results: %+v vs %+v", a, b)
	}
}

// statusRank orders verdicts from least to most ready.
func statusRank(s Status) int {
	switch s {
	case StatusNotReady:
		return 0
	case StatusNeedsRefinement:
		return 1
	default:
		return 2
	}
}

func TestEvaluate_RemovingFieldNeverUpgrades(t *testing.T) {
	base := fullStory()
	baseRank := statusRank(Evaluate(base, CardStory).Status)

	for _, f := range Required(CardStory) {
		values := fullStory()
		values[f] = fields.Value{Provenance: fields.ProvenanceNone}

		got := Evaluate(values, CardStory)
		if statusRank(got.Status) > baseRank {
			t.Errorf("removing %s upgraded status to %q", f, got.Status)
		}
	}
}

func TestEvaluate_BugRequirements(t *testing.T) {
	values := make(map[fields.Field]fields.Value)
	for _, f := range Required(CardBug) {
		values[f] = fields.Value{Text: "x", Provenance: fields.ProvenancePattern}
	}

	res := Evaluate(values, CardBug)
	if res.Status != StatusReady {
		t.Errorf("fully populated bug should be Ready, got %q", res.Status)
	}

	values[fields.StepsToReproduce] = fields.Value{}
	if res := Evaluate(values, CardBug); res.Status == StatusReady {
		t.Errorf("bug missing reproduction steps cannot be Ready")
	}
}

func contains(list []fields.Field, f fields.Field) bool {
	for _, x := range list {
		if x == f {
			return true
		}
	}
	return false
}
