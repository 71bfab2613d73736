package dor

import "github.com/dt-pm-tools/dor-analyzer/internal/fields"

// requiredFields lists, per card type, the fields a ticket must have
// populated to be considered ready. Established once; never mutated.
var requiredFields = map[CardType][]fields.Field{
	CardStory: {
		fields.UserStory,
		fields.AcceptanceCriteria,
		fields.TestingSteps,
		fields.ImplementationDetails,
		fields.ArchitecturalSolution,
		fields.AccessibilityCriteria,
		fields.Brand,
		fields.Component,
		fields.Team,
		fields.Estimate,
		fields.KPI,
	},
	CardBug: {
		fields.StepsToReproduce,
		fields.ExpectedResult,
		fields.ActualResult,
		fields.Environment,
		fields.Severity,
		fields.TestingSteps,
		fields.Component,
		fields.Team,
		fields.Estimate,
	},
	CardTask: {
		fields.TaskDescription,
		fields.AcceptanceCriteria,
		fields.TestingSteps,
		fields.ImplementationDetails,
		fields.Component,
		fields.Team,
		fields.Estimate,
		fields.DefinitionOfDone,
	},
	CardFeature: {
		fields.UserStory,
		fields.AcceptanceCriteria,
		fields.KPI,
		fields.Brand,
		fields.ArchitecturalSolution,
		fields.AccessibilityCriteria,
		fields.Component,
		fields.Team,
		fields.Estimate,
	},
}

// Required returns the required-field list for a card type.
func Required(card CardType) []fields.Field {
	return requiredFields[card]
}

// placeholderTerms occupy a field textually without conveying information.
// A field whose entire content is one of these is treated as absent. The
// literal "none" is deliberately excluded: it means the field was explicitly
// addressed and counts as present-but-empty.
var placeholderTerms = map[string]bool{
	"tbd":              true,
	"n/a":              true,
	"tba":              true,
	"to be determined": true,
	"not applicable":   true,
	"todo":             true,
	"pending":          true,
}

// conflictPairs are contradictory terms; both appearing in the same
// acceptance-criteria text yields one conflict.
var conflictPairs = [][2]string{
	{"immediately", "after delay"},
	{"immediately", "after a delay"},
	{"always", "sometimes"},
	{"always", "never"},
	{"required", "optional"},
	{"enabled by default", "disabled by default"},
	{"all users", "only"},
}
