// Package genai produces best-effort content suggestions (rewrites, test
// scenarios, role-tagged recommendations) from the analysis output. It is a
// consumer of the core's result, never an input to it: a failing or absent
// generator degrades to static templates and cannot change a verdict.
package genai

import "context"

// Generator is the injected text-generation capability. Implementations may
// call external services; callers must treat every error as "no suggestion".
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
