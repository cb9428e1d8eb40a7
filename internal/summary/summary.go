package summary

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ChangeSummary is the structured result of parsing an LLM response.
type ChangeSummary struct {
	// Assessment holds free-form commentary (the whole response in review
	// mode). Empty in enhance mode.
	Assessment string `json:"assessment,omitempty"`
	// Changes lists the individual changes the model reported, in order.
	// Empty when extraction failed.
	Changes []string `json:"changes"`
}

// Enhanced is the result of splitting an enhance-mode response into the
// rewritten README body and the change commentary.
type Enhanced struct {
	// Readme is the rewritten README body to write to disk.
	Readme string
	// Summary carries the extracted change list.
	Summary ChangeSummary
	// Structured reports whether the response followed the expected fenced
	// block format. When false, Readme is a best-effort split or the whole
	// response.
	Structured bool
}

// ParseReview wraps a review-mode response. The text is opaque; it becomes
// the assessment as-is.
func ParseReview(raw string) ChangeSummary {
	return ChangeSummary{Assessment: raw}
}

// ParseEnhanced splits an enhance-mode response into README body and change
// list. It never fails: when no recognizable structure is found, the entire
// response becomes the README and the change list stays empty.
func ParseEnhanced(raw string) Enhanced {
	blocks := fencedBlocks(raw)

	var readme string
	for _, b := range blocks {
		if b.lang == "markdown" || b.lang == "md" {
			readme = strings.TrimSpace(b.content)
			break
		}
	}

	var changes []string
	// The json block comes last in the requested format, so scan backwards.
	for i := len(blocks) - 1; i >= 0; i-- {
		if blocks[i].lang != "json" {
			continue
		}
		if parsed, ok := parseChangesJSON(blocks[i].content); ok {
			changes = parsed
			break
		}
	}

	if readme != "" {
		return Enhanced{
			Readme:     readme,
			Summary:    ChangeSummary{Changes: changes},
			Structured: true,
		}
	}

	if body, plain, ok := splitChangesSection(raw); ok {
		return Enhanced{
			Readme:  body,
			Summary: ChangeSummary{Changes: plain},
		}
	}

	return Enhanced{
		Readme:  strings.TrimSpace(raw),
		Summary: ChangeSummary{Changes: changes},
	}
}

type fencedBlock struct {
	lang    string
	content string
}

// fencedBlocks walks the markdown AST and collects fenced code blocks with
// their info-string language.
func fencedBlocks(raw string) []fencedBlock {
	source := []byte(raw)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var blocks []fencedBlock
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		var content strings.Builder
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			content.Write(seg.Value(source))
		}
		blocks = append(blocks, fencedBlock{
			lang:    strings.ToLower(string(fcb.Language(source))),
			content: content.String(),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

func parseChangesJSON(content string) ([]string, bool) {
	var body struct {
		ChangesMade []string `json:"changes_made"`
	}
	if err := json.Unmarshal([]byte(content), &body); err != nil {
		return nil, false
	}
	if body.ChangesMade == nil {
		return nil, false
	}
	return body.ChangesMade, true
}

// Matches a standalone "Changes:" or "Changes made:" heading line.
var changesHeadingRe = regexp.MustCompile(`(?im)^\s*#{0,3}\s*changes(?:\s+made)?\s*:?\s*$`)

var bulletRe = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+(.*)$`)

// splitChangesSection handles responses that append a plain "Changes:"
// section instead of the fenced json block. Everything before the heading
// (minus a trailing horizontal rule) is the README body; bulleted lines
// after it are the changes.
func splitChangesSection(raw string) (body string, changes []string, ok bool) {
	loc := changesHeadingRe.FindStringIndex(raw)
	if loc == nil {
		return "", nil, false
	}

	body = strings.TrimSpace(raw[:loc[0]])
	body = strings.TrimSpace(strings.TrimSuffix(body, "---"))
	if body == "" {
		return "", nil, false
	}

	for _, line := range strings.Split(raw[loc[1]:], "\n") {
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			if item := strings.TrimSpace(m[1]); item != "" {
				changes = append(changes, item)
			}
		}
	}
	return body, changes, true
}
