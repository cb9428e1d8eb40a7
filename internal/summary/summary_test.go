package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const structuredResponse = "Here is the improved README.\n\n" +
	"```markdown\n# Demo\n\nA much better readme.\n\n## Usage\n\nRun it.\n```\n\n" +
	"```json\n{\n  \"changes_made\": [\n    \"Added a Usage section\",\n    \"Rewrote the overview\"\n  ]\n}\n```\n"

func TestParseEnhanced_Structured(t *testing.T) {
	got := ParseEnhanced(structuredResponse)

	assert.True(t, got.Structured)
	assert.Equal(t, "# Demo\n\nA much better readme.\n\n## Usage\n\nRun it.", got.Readme)
	assert.Equal(t, []string{"Added a Usage section", "Rewrote the overview"}, got.Summary.Changes)
}

func TestParseEnhanced_MarkdownBlockOnly(t *testing.T) {
	got := ParseEnhanced("```markdown\n# Demo\n```\nno json block here")

	assert.True(t, got.Structured)
	assert.Equal(t, "# Demo", got.Readme)
	assert.Empty(t, got.Summary.Changes)
}

func TestParseEnhanced_LastJSONBlockWins(t *testing.T) {
	raw := "```markdown\n# Demo\n```\n" +
		"```json\n{\"changes_made\": [\"first\"]}\n```\n" +
		"```json\n{\"changes_made\": [\"second\"]}\n```\n"
	got := ParseEnhanced(raw)

	assert.Equal(t, []string{"second"}, got.Summary.Changes)
}

func TestParseEnhanced_InvalidJSONIsIgnored(t *testing.T) {
	raw := "```markdown\n# Demo\n```\n```json\n{not json\n```\n"
	got := ParseEnhanced(raw)

	assert.True(t, got.Structured)
	assert.Equal(t, "# Demo", got.Readme)
	assert.Empty(t, got.Summary.Changes)
}

func TestParseEnhanced_PlainChangesSection(t *testing.T) {
	got := ParseEnhanced("NEW README\n---\nChanges:\n- fixed typo")

	assert.False(t, got.Structured)
	assert.Equal(t, "NEW README", got.Readme)
	assert.Equal(t, []string{"fixed typo"}, got.Summary.Changes)
}

func TestParseEnhanced_FallbackWholeResponse(t *testing.T) {
	raw := "I could not follow the format, sorry. Here is some text."
	got := ParseEnhanced(raw)

	assert.False(t, got.Structured)
	assert.Equal(t, raw, got.Readme)
	assert.Empty(t, got.Summary.Changes)
}

func TestParseEnhanced_Deterministic(t *testing.T) {
	a := ParseEnhanced(structuredResponse)
	b := ParseEnhanced(structuredResponse)
	assert.Equal(t, a, b)
}

func TestParseReview(t *testing.T) {
	got := ParseReview("Overall: good. Improve examples.")
	assert.Equal(t, "Overall: good. Improve examples.", got.Assessment)
	assert.Empty(t, got.Changes)
}

func TestSplitChangesSection(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		body    string
		changes []string
		ok      bool
	}{
		{
			name:    "dash bullets",
			raw:     "BODY\n\nChanges:\n- one\n- two",
			body:    "BODY",
			changes: []string{"one", "two"},
			ok:      true,
		},
		{
			name:    "changes made heading",
			raw:     "BODY\n\n## Changes made\n* one",
			body:    "BODY",
			changes: []string{"one"},
			ok:      true,
		},
		{
			name:    "numbered bullets",
			raw:     "BODY\nChanges:\n1. one\n2) two",
			body:    "BODY",
			changes: []string{"one", "two"},
			ok:      true,
		},
		{
			name: "no heading",
			raw:  "just a readme",
			ok:   false,
		},
		{
			name: "heading but empty body",
			raw:  "Changes:\n- one",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, changes, ok := splitChangesSection(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.body, body)
				assert.Equal(t, tt.changes, changes)
			}
		})
	}
}
