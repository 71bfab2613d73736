// Package dor classifies tickets into card types and evaluates them against
// the Definition of Ready: which fields a card of that type must have
// populated, whether its criteria contradict themselves, and the resulting
// readiness verdict.
package dor

import (
	"regexp"
	"strings"
)

// CardType is the functional category of a ticket, governing which fields
// are required.
type CardType string

const (
	CardStory   CardType = "story"
	CardBug     CardType = "bug"
	CardTask    CardType = "task"
	CardFeature CardType = "feature"
)

// Declared category substrings, checked in order.
var declaredTypes = []struct {
	substr string
	card   CardType
}{
	{"bug", CardBug},
	{"story", CardStory}, // covers "user story"
	{"task", CardTask},
	{"feature", CardFeature},
	{"epic", CardFeature},
}

// Text patterns used when the declared category is absent or unrecognized,
// checked in order.
var typePatterns = []struct {
	pattern *regexp.Regexp
	card    CardType
}{
	{regexp.MustCompile(`(?i)\bas\s+an?\s+.{1,100}?\bi\s+(?:want|need|would like)\b`), CardStory},
	{regexp.MustCompile(`(?i)current\s+behaviou?r|steps\s+to\s+reproduce`), CardBug},
	{regexp.MustCompile(`(?i)task\s+description`), CardTask},
	{regexp.MustCompile(`(?i)(?:feature|epic)\s+description`), CardFeature},
}

// Classify assigns a card type from the ticket's declared category, falling
// back to type-indicative phrasing in the normalized text. Pure and stable:
// identical input always yields the same type.
func Classify(declaredCategory, text string) CardType {
	declared := strings.ToLower(strings.TrimSpace(declaredCategory))
	if declared != "" {
		for _, d := range declaredTypes {
			if strings.Contains(declared, d.substr) {
				return d.card
			}
		}
	}
	for _, p := range typePatterns {
		if p.pattern.MatchString(text) {
			return p.card
		}
	}
	return CardStory
}
