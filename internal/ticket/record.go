// Package ticket defines the raw work-item record the analysis pipeline
// consumes. A Record is built once from an external issue and never mutated
// by anything downstream.
package ticket

import (
	"github.com/dt-pm-tools/dor-analyzer/internal/jira"
)

// Block is one piece of ticket content in exactly one of three encodings:
// an ADF document tree, rendered HTML, or plain text.
type Block struct {
	ADF  *jira.ADFNode
	HTML string
	Text string
}

// IsZero reports whether the block carries no content at all.
func (b Block) IsZero() bool {
	return b.ADF == nil && b.HTML == "" && b.Text == ""
}

// Record is the normalized-input view of a ticket: identity, declared
// category, ordered content blocks, and a side table of named custom
// attributes whose values keep their original loose typing (string, number,
// list, record, or ADF-shaped map).
type Record struct {
	Key      string
	Title    string
	Category string
	Blocks   []Block
	Attrs    map[string]any
}

// FromIssue builds a Record from a fetched JIRA issue. fieldNames maps
// customfield IDs to display names; custom fields with no known name keep
// their raw ID as the attribute key.
func FromIssue(issue *jira.Issue, fieldNames map[string]string) *Record {
	rec := &Record{
		Key:      issue.Key,
		Title:    issue.Fields.Summary,
		Category: issue.Fields.IssueType.Name,
		Attrs:    make(map[string]any),
	}

	if issue.Fields.Description != nil {
		rec.Blocks = append(rec.Blocks, Block{ADF: issue.Fields.Description})
	}
	if html, ok := issue.RenderedFields["description"]; ok && html != "" {
		rec.Blocks = append(rec.Blocks, Block{HTML: html})
	}

	for id, v := range issue.Fields.Custom {
		name := fieldNames[id]
		if name == "" {
			name = id
		}
		rec.Attrs[name] = v
	}

	if issue.Fields.Priority.Name != "" {
		rec.Attrs["Priority"] = issue.Fields.Priority.Name
	}
	if len(issue.Fields.Labels) > 0 {
		labels := make([]any, len(issue.Fields.Labels))
		for i, l := range issue.Fields.Labels {
			labels[i] = l
		}
		rec.Attrs["Labels"] = labels
	}

	return rec
}
