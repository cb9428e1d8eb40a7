package output

import (
	"fmt"
	"io"

	"github.com/mujasoft/readme-consultant/internal/ui"
)

// TextWriter renders the report as styled console panels.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *Report) error {
	subtitle := fmt.Sprintf("LLM Powered Improvements by %q", report.Model)

	var panel string
	switch report.Mode {
	case "review":
		title := fmt.Sprintf("Review for %q", report.Repo)
		panel = ui.Panel(title, subtitle, report.Summary.Assessment)
	default:
		title := fmt.Sprintf("Changes Made for %q", report.Repo)
		panel = ui.Panel(title, subtitle, ui.Bullets(report.Summary.Changes))
	}

	_, err := io.WriteString(w, panel)
	return err
}
