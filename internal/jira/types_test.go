package jira

import (
	"encoding/json"
	"testing"
)

func TestFieldsUnmarshal_CollectsCustomFields(t *testing.T) {
	payload := `{
		"summary": "One-click checkout",
		"issuetype": {"name": "Story"},
		"customfield_10001": "Acme",
		"customfield_10002": 3,
		"customfield_10003": null
	}`

	var f Fields
	if err := json.Unmarshal([]byte(payload), &f); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if f.Summary != "One-click checkout" || f.IssueType.Name != "Story" {
		t.Errorf("known fields wrong: %+v", f)
	}
	if f.Custom["customfield_10001"] != "Acme" {
		t.Errorf("string custom field missing: %v", f.Custom)
	}
	if f.Custom["customfield_10002"] != float64(3) {
		t.Errorf("numeric custom field missing: %v", f.Custom)
	}
	if _, ok := f.Custom["customfield_10003"]; ok {
		t.Errorf("null custom fields should be dropped: %v", f.Custom)
	}
}

func TestRenderedValuesUnmarshal_KeepsOnlyStrings(t *testing.T) {
	payload := `{
		"key": "DOR-7",
		"fields": {"summary": "Checkout banner"},
		"renderedFields": {
			"description": "<p>hello</p>",
			"comment": {"comments": [], "total": 0},
			"worklog": {"worklogs": []},
			"attachment": []
		}
	}`

	var issue Issue
	if err := json.Unmarshal([]byte(payload), &issue); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if issue.RenderedFields["description"] != "<p>hello</p>" {
		t.Errorf("rendered description missing: %v", issue.RenderedFields)
	}
	for _, key := range []string{"comment", "worklog", "attachment"} {
		if _, ok := issue.RenderedFields[key]; ok {
			t.Errorf("non-string rendered field %q should be dropped", key)
		}
	}
}

func TestNodeFromAny(t *testing.T) {
	node := NodeFromAny(map[string]any{
		"type": "paragraph",
		"content": []any{
			map[string]any{"type": "text", "text": "hello"},
		},
	})
	if node == nil {
		t.Fatal("expected a node")
	}
	if node.Type != "paragraph" || len(node.Content) != 1 || node.Content[0].Text != "hello" {
		t.Errorf("node shape wrong: %+v", node)
	}

	if NodeFromAny("not a node") != nil {
		t.Error("non-map values are not nodes")
	}
	if NodeFromAny(map[string]any{"value": "x"}) != nil {
		t.Error("maps without a type key are not nodes")
	}
}

func TestMarkHref(t *testing.T) {
	link := ADFMark{Type: "link", Attrs: map[string]any{"href": "https://www.figma.com/file/A1/X"}}
	if link.Href() != "https://www.figma.com/file/A1/X" {
		t.Errorf("got %q", link.Href())
	}
	if (ADFMark{Type: "strong"}).Href() != "" {
		t.Error("non-link marks have no href")
	}
}
