package prompt

import (
	"fmt"
	"strings"

	"github.com/mujasoft/readme-consultant/internal/repo"
)

const systemPrompt = `You are an expert in open source documentation. You review and rewrite README files for software repositories. Be concrete and professional; your output may be shown to a client.`

// SystemPrompt returns the system prompt shared by both modes.
func SystemPrompt() string {
	return systemPrompt
}

// BuildReview constructs the user prompt asking for a critique of the
// repository's README.
func BuildReview(c *repo.Context, releaseTag string) string {
	var b strings.Builder

	b.WriteString("Review my README file and give me the report as plain text.\n\n")
	b.WriteString("Please do the following:\n")
	b.WriteString("- mention what I am doing well and what I could improve on.\n")
	b.WriteString("- point out missing sections such as 'usage' or 'requirements'.\n")
	b.WriteString("- check for professional tone.\n")
	b.WriteString("- mention best open source practices.\n")

	writeRepoContext(&b, c, releaseTag)

	return b.String()
}

// BuildEnhance constructs the user prompt asking for a full README rewrite.
// The response format it demands is the contract the summary parser relies
// on: the rewritten README inside a fenced markdown block, then a fenced
// json block with a changes_made array.
func BuildEnhance(c *repo.Context, releaseTag string) string {
	var b strings.Builder

	b.WriteString("Improve the following README with better formatting, clearer sectioning, and enhanced writing quality with a professional tone.\n\n")
	b.WriteString("Requirements:\n")
	b.WriteString("- Do not remove any existing GIFs, demo sections, or badge links.\n")
	b.WriteString("- Return the entire updated README in valid Markdown.\n")
	b.WriteString("- Be verbose and explain in reasonable detail.\n\n")

	b.WriteString("Format your response exactly as:\n\n")
	b.WriteString("```markdown\n<the complete improved README>\n```\n\n")
	b.WriteString("Then, at the very end, a json block listing every change you made:\n\n")
	b.WriteString("```json\n{\n  \"changes_made\": [\n    \"Improved formatting for section headers\",\n    \"Rewrote project overview with more clarity\"\n  ]\n}\n```\n\n")
	b.WriteString("Both blocks are mandatory. Do not add text outside them.\n")

	writeRepoContext(&b, c, releaseTag)

	return b.String()
}

func writeRepoContext(b *strings.Builder, c *repo.Context, releaseTag string) {
	fmt.Fprintf(b, "\nThe repository is named %q.\n", c.Name)
	if c.RemoteURL != "" {
		fmt.Fprintf(b, "Its origin remote is %s.\n", c.RemoteURL)
	}
	if releaseTag != "" {
		fmt.Fprintf(b, "Its latest published release is %s.\n", releaseTag)
	}

	b.WriteString("\nThe repository folder tree:\n")
	b.WriteString("----\n")
	b.WriteString(c.TreeString())
	b.WriteString("\n----\n")

	b.WriteString("\nThe current README:\n")
	b.WriteString("_____\n")
	b.WriteString(c.Readme)
	b.WriteString("\n_____\n")
}
