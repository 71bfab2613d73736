// Package fields defines the logical field model and the extractor that
// resolves a logical field to its text content, wherever it physically lives
// in the ticket (dedicated attribute, headed section, or inline phrasing).
package fields

// Field is a named logical slot of ticket information, independent of how
// the source record stores it.
type Field string

const (
	UserStory             Field = "user_story"
	AcceptanceCriteria    Field = "acceptance_criteria"
	TestingSteps          Field = "testing_steps"
	ImplementationDetails Field = "implementation_details"
	ArchitecturalSolution Field = "architectural_solution"
	AccessibilityCriteria Field = "accessibility_criteria"
	Brand                 Field = "brand"
	Component             Field = "component"
	Team                  Field = "team"
	Estimate              Field = "estimate"
	Environment           Field = "environment"
	Severity              Field = "severity"
	KPI                   Field = "kpi"

	// Bug-specific slots.
	StepsToReproduce Field = "steps_to_reproduce"
	ExpectedResult   Field = "expected_result"
	ActualResult     Field = "actual_result"

	// Task-specific slots.
	TaskDescription  Field = "task_description"
	DefinitionOfDone Field = "definition_of_done"
)

// All lists every logical field in stable order.
func All() []Field {
	return []Field{
		UserStory, AcceptanceCriteria, TestingSteps, ImplementationDetails,
		ArchitecturalSolution, AccessibilityCriteria, Brand, Component, Team,
		Estimate, Environment, Severity, KPI,
		StepsToReproduce, ExpectedResult, ActualResult,
		TaskDescription, DefinitionOfDone,
	}
}

// Label returns the human-readable name of a field for reports.
func (f Field) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

var labels = map[Field]string{
	UserStory:             "User Story",
	AcceptanceCriteria:    "Acceptance Criteria",
	TestingSteps:          "Testing Steps",
	ImplementationDetails: "Implementation Details",
	ArchitecturalSolution: "Architectural Solution",
	AccessibilityCriteria: "Accessibility Criteria",
	Brand:                 "Brand",
	Component:             "Component",
	Team:                  "Team",
	Estimate:              "Estimate",
	Environment:           "Environment",
	Severity:              "Severity",
	KPI:                   "KPI",
	StepsToReproduce:      "Steps to Reproduce",
	ExpectedResult:        "Expected Result",
	ActualResult:          "Actual Result",
	TaskDescription:       "Task Description",
	DefinitionOfDone:      "Definition of Done",
}

// Provenance records which extraction strategy supplied a field value.
type Provenance string

const (
	ProvenanceAttribute Provenance = "attribute" // dedicated structured attribute
	ProvenancePattern   Provenance = "pattern"   // synonym heading match in text
	ProvenanceInline    Provenance = "inline"    // natural-language fallback
	ProvenanceNone      Provenance = "none"      // nothing found
)

// Value is the resolved content of a logical field. Empty Text with
// ProvenanceNone means the field is absent; empty Text with any other
// provenance means it was found but empty.
type Value struct {
	Text       string
	Provenance Provenance
}
