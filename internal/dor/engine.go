package dor

import (
	"fmt"
	"strings"

	"github.com/dt-pm-tools/dor-analyzer/internal/fields"
)

// Status is the readiness verdict.
type Status string

const (
	StatusReady           Status = "Ready"
	StatusNeedsRefinement Status = "Needs Refinement"
	StatusNotReady        Status = "Not Ready"
)

// Conflict records a pair of contradictory terms found together in the
// acceptance criteria.
type Conflict struct {
	TermA string
	TermB string
}

func (c Conflict) String() string {
	return fmt.Sprintf("%q contradicts %q", c.TermA, c.TermB)
}

// Result is the outcome of a Definition-of-Ready evaluation. Present and
// Missing keep the order of the card type's required-field table.
type Result struct {
	Present   []fields.Field
	Missing   []fields.Field
	Conflicts []Conflict
	Status    Status
}

// Evaluate computes coverage, conflicts, and the readiness verdict for the
// extracted fields of a card. Two tickets with identical present/missing/
// conflict sets and card type always receive the same status: this is a
// decision table, not a score.
func Evaluate(values map[fields.Field]fields.Value, card CardType) Result {
	var res Result

	for _, f := range Required(card) {
		if fieldPresent(f, values[f]) {
			res.Present = append(res.Present, f)
		} else {
			res.Missing = append(res.Missing, f)
		}
	}

	res.Conflicts = findConflicts(values[fields.AcceptanceCriteria].Text)
	res.Status = decide(card, values, res)
	return res
}

// fieldPresent applies the placeholder invariant: placeholder terms make a
// field absent, a literal "none" makes it present-but-empty. A zero estimate
// is a valid value, never an absence.
func fieldPresent(f fields.Field, v fields.Value) bool {
	text := strings.ToLower(strings.TrimSpace(v.Text))
	if text == "" {
		return false
	}
	if text == "none" {
		return true
	}
	if f == fields.Estimate && text == "0" {
		return true
	}
	return !placeholderTerms[text]
}

func findConflicts(criteria string) []Conflict {
	if criteria == "" {
		return nil
	}
	lower := strings.ToLower(criteria)
	var out []Conflict
	for _, pair := range conflictPairs {
		if strings.Contains(lower, pair[0]) && strings.Contains(lower, pair[1]) {
			out = append(out, Conflict{TermA: pair[0], TermB: pair[1]})
		}
	}
	return out
}

// decide walks the ordered status rules; the first that applies wins.
func decide(card CardType, values map[fields.Field]fields.Value, res Result) Status {
	missing := make(map[fields.Field]bool, len(res.Missing))
	for _, f := range res.Missing {
		missing[f] = true
	}
	present := func(f fields.Field) bool { return fieldPresent(f, values[f]) }

	switch {
	case (card == CardStory || card == CardFeature) && !present(fields.UserStory):
		return StatusNotReady
	case !present(fields.AcceptanceCriteria) && !present(fields.TestingSteps):
		return StatusNotReady
	case len(res.Conflicts) > 0 || missing[fields.ImplementationDetails] || missing[fields.ArchitecturalSolution]:
		return StatusNeedsRefinement
	case (present(fields.UserStory) || present(fields.AcceptanceCriteria)) && missing[fields.AccessibilityCriteria]:
		return StatusNeedsRefinement
	case len(res.Missing) == 0 && len(res.Conflicts) == 0:
		return StatusReady
	default:
		return StatusNeedsRefinement
	}
}
