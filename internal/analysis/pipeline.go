// Package analysis wires the core pipeline: normalize the record's content,
// extract logical fields and design links, classify the card, evaluate the
// Definition of Ready, and optionally enrich the result with generated
// suggestions.
package analysis

import (
	"context"
	"errors"
	"strings"

	"github.com/dt-pm-tools/dor-analyzer/internal/content"
	"github.com/dt-pm-tools/dor-analyzer/internal/dor"
	"github.com/dt-pm-tools/dor-analyzer/internal/fields"
	"github.com/dt-pm-tools/dor-analyzer/internal/figma"
	"github.com/dt-pm-tools/dor-analyzer/internal/genai"
	"github.com/dt-pm-tools/dor-analyzer/internal/ticket"
)

// Depth selects how much optional work the pipeline does on top of the
// readiness verdict.
const (
	DepthQuick = "quick" // verdict and links only
	DepthDeep  = "deep"  // plus generated rewrites and scenarios
)

// Options configures one analysis call.
type Options struct {
	// Depth is a free-text depth option; anything other than "deep" means
	// quick.
	Depth string
	// Generator is the optional enrichment collaborator. May be nil.
	Generator genai.Generator
}

// Result is the terminal output of the core for one ticket.
type Result struct {
	CardType   dor.CardType
	Fields     map[fields.Field]fields.Value
	Links      []figma.Link
	DoR        dor.Result
	Enrichment *genai.Enrichment
}

// Analyze runs the full pipeline over one record. The record is read-only;
// repeated calls with the same input produce identical results. A nil record
// is the one fatal input error.
func Analyze(ctx context.Context, rec *ticket.Record, opts Options) (*Result, error) {
	if rec == nil {
		return nil, errors.New("analysis: nil ticket record")
	}

	text := content.NormalizeAll(rec)

	values := fields.ExtractAll(rec, text)
	card := dor.Classify(rec.Category, text)
	verdict := dor.Evaluate(values, card)
	links := figma.Extract(rec, text)

	res := &Result{
		CardType: card,
		Fields:   values,
		Links:    links,
		DoR:      verdict,
	}

	if strings.EqualFold(strings.TrimSpace(opts.Depth), DepthDeep) {
		// Enrichment is best-effort and runs after the verdict is fixed;
		// collaborator failures surface as template fallbacks, never as
		// errors.
		res.Enrichment = genai.NewEnricher(opts.Generator).Enrich(ctx, values, verdict)
	}

	return res, nil
}
