package jira

import "encoding/json"

// Issue represents a JIRA issue from the REST API v3.
type Issue struct {
	Key            string         `json:"key"`
	Fields         Fields         `json:"fields"`
	RenderedFields RenderedValues `json:"renderedFields,omitempty"`
}

// RenderedValues holds the HTML-rendered variants of text fields. The API
// also renders comments, worklogs, and attachments as objects or arrays
// under the same key space; only string-valued entries are kept so one odd
// field never fails the whole issue decode.
type RenderedValues map[string]string

// UnmarshalJSON keeps string-valued entries and drops the rest.
func (r *RenderedValues) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(RenderedValues, len(raw))
	for key, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			continue
		}
		out[key] = s
	}
	*r = out
	return nil
}

// Fields contains the issue fields we care about. Custom fields
// (customfield_NNNNN) are collected into the Custom map as raw values.
type Fields struct {
	Summary     string    `json:"summary"`
	Status      Status    `json:"status"`
	IssueType   IssueType `json:"issuetype"`
	Priority    Priority  `json:"priority,omitempty"`
	Labels      []string  `json:"labels,omitempty"`
	Assignee    *User     `json:"assignee,omitempty"`
	Reporter    *User     `json:"reporter,omitempty"`
	Description *ADFNode  `json:"description,omitempty"`
	Updated     string    `json:"updated,omitempty"`

	Custom map[string]any `json:"-"`
}

// UnmarshalJSON decodes the known fields and collects customfield_* entries
// into Custom without interpreting their shape.
func (f *Fields) UnmarshalJSON(data []byte) error {
	type alias Fields
	var known alias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	custom := make(map[string]any)
	for id, raw := range all {
		if len(id) < 12 || id[:12] != "customfield_" {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		if v != nil {
			custom[id] = v
		}
	}

	*f = Fields(known)
	f.Custom = custom
	return nil
}

// Status represents a JIRA status.
type Status struct {
	Name           string          `json:"name"`
	StatusCategory *StatusCategory `json:"statusCategory,omitempty"`
}

// StatusCategory represents the high-level category of a JIRA status.
type StatusCategory struct {
	Key  string `json:"key"`  // "new", "indeterminate", "done"
	Name string `json:"name"` // "To Do", "In Progress", "Done"
}

// IssueType represents a JIRA issue type.
type IssueType struct {
	Name string `json:"name"`
}

// Priority represents a JIRA priority.
type Priority struct {
	Name string `json:"name"`
}

// User represents a JIRA user.
type User struct {
	EmailAddress string `json:"emailAddress"`
	DisplayName  string `json:"displayName"`
}

// ADFNode represents a node in the Atlassian Document Format.
type ADFNode struct {
	Type    string         `json:"type"`
	Content []ADFNode      `json:"content,omitempty"`
	Text    string         `json:"text,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Marks   []ADFMark      `json:"marks,omitempty"`
}

// ADFMark represents an inline formatting mark in ADF.
type ADFMark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Href returns the link target of a "link" mark, or "" for other marks.
func (m ADFMark) Href() string {
	if m.Type != "link" {
		return ""
	}
	if h, ok := m.Attrs["href"]; ok {
		if hs, ok := h.(string); ok {
			return hs
		}
	}
	return ""
}

// NodeFromAny converts a decoded JSON value into an ADFNode if it has the
// shape of one (a map with a "type" key). Returns nil otherwise. Custom field
// values arrive as map[string]any, so this is the bridge back into the typed
// tree.
func NodeFromAny(v any) *ADFNode {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	if _, ok := m["type"].(string); !ok {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	var node ADFNode
	if err := json.Unmarshal(data, &node); err != nil {
		return nil
	}
	return &node
}

// FieldInfo describes one field from GET /rest/api/3/field.
type FieldInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
