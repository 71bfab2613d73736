package fields

import (
	"fmt"
	"regexp"
)

// attrNames maps each logical field to the custom attribute display names
// known to carry it. Matching is case-insensitive.
var attrNames = map[Field][]string{
	UserStory:             {"User Story"},
	AcceptanceCriteria:    {"Acceptance Criteria", "AC"},
	TestingSteps:          {"Testing Steps", "Test Steps", "How to Test"},
	ImplementationDetails: {"Implementation Details", "Implementation"},
	ArchitecturalSolution: {"Architectural Solution", "Architecture"},
	AccessibilityCriteria: {"Accessibility Criteria", "Accessibility"},
	Brand:                 {"Brand"},
	Component:             {"Component", "Components", "Component/s"},
	Team:                  {"Team", "Squad"},
	Estimate:              {"Story Points", "Story point estimate", "Estimate", "Original Estimate"},
	Environment:           {"Environment", "Affected Environment"},
	Severity:              {"Severity", "Priority"},
	KPI:                   {"KPI", "Success Metric", "Success Metrics", "Metrics"},
	StepsToReproduce:      {"Steps to Reproduce"},
	ExpectedResult:        {"Expected Result", "Expected Behaviour", "Expected Behavior"},
	ActualResult:          {"Actual Result", "Actual Behaviour", "Actual Behavior", "Current Behaviour", "Current Behavior"},
	TaskDescription:       {"Task Description"},
	DefinitionOfDone:      {"Definition of Done", "DoD"},
}

// synonyms maps each logical field to heading phrasings found in free text.
// The extractor anchors these to line starts (optionally behind markdown
// heading or emphasis markers).
var synonyms = map[Field][]string{
	UserStory:             {`user stor(?:y|ies)`, `story`},
	AcceptanceCriteria:    {`acceptance criteri(?:a|on)`, `acceptance`, `\bac\b`},
	TestingSteps:          {`test(?:ing)? steps`, `how to test`, `test plan`, `testing`},
	ImplementationDetails: {`implementation details?`, `implementation notes?`, `technical details?`},
	ArchitecturalSolution: {`architectural solution`, `architecture`, `technical solution`, `solution design`},
	AccessibilityCriteria: {`accessibility criteri(?:a|on)`, `accessibility`, `a11y`},
	Brand:                 {`brand`},
	Component:             {`components?`},
	Team:                  {`team`, `squad`},
	Estimate:              {`estimate`, `story points?`, `effort`},
	Environment:           {`environment`},
	Severity:              {`severity`, `priority`},
	KPI:                   {`kpis?`, `success metrics?`, `metrics?`},
	StepsToReproduce:      {`steps to reproduce`, `reproduction steps`, `repro steps`},
	ExpectedResult:        {`expected (?:result|behaviou?r|outcome)`},
	ActualResult:          {`(?:actual|current) (?:result|behaviou?r)`},
	TaskDescription:       {`task description`},
	DefinitionOfDone:      {`definition of done`, `dod`},
}

// headingExprs holds one compiled expression per field. Group 1 captures any
// same-line content following the heading.
var headingExprs = map[Field]*regexp.Regexp{}

func init() {
	for f, syns := range synonyms {
		alt := ""
		for i, s := range syns {
			if i > 0 {
				alt += "|"
			}
			alt += "(?:" + s + ")"
		}
		// Optional markdown heading/emphasis markers, the synonym, then
		// either end of line or a separator with same-line content. The
		// separator requirement keeps "Story" from matching "Story Points".
		expr := fmt.Sprintf(`(?i)^\s*(?:#{1,6}\s*)?(?:\*\*)?(?:%s)(?:\*\*)?\s*(?:$|[:\-–]\s*(.*)$)`, alt)
		headingExprs[f] = regexp.MustCompile(expr)
	}
}

// Inline natural-language fallbacks for fields that often appear without a
// heading of their own.
var (
	userStoryInline  = regexp.MustCompile(`(?i)\bas\s+an?\s+[^.\n]{1,100}?\bi\s+(?:want|need|would like)\b[^\n]*`)
	givenWhenThen    = regexp.MustCompile(`(?is)\bgiven\b[^\n]{0,200}\n?[^\n]{0,200}\bwhen\b[^\n]{0,200}\n?[^\n]{0,200}\bthen\b[^\n]*`)
	numberedSteps    = regexp.MustCompile(`(?m)^\s*1[.)]\s+.+(?:\n\s*\d+[.)]\s+.+)+`)
	inlineStrategies = map[Field]*regexp.Regexp{
		UserStory:          userStoryInline,
		AcceptanceCriteria: givenWhenThen,
		TestingSteps:       numberedSteps,
	}
)
