package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mujasoft/readme-consultant/internal/summary"
)

// Report is everything a command produces for rendering.
type Report struct {
	Mode    string                `json:"mode"`
	Repo    string                `json:"repo"`
	Model   string                `json:"model"`
	Summary summary.ChangeSummary `json:"summary"`
	// OutPath is where the review text or rewritten README was written.
	OutPath string `json:"outPath,omitempty"`
}

// Writer renders a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Render writes the report to w in the given format.
func Render(w io.Writer, report *Report, format string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	return writer.Write(w, report)
}

// WriteError indicates the output file could not be written.
type WriteError struct {
	Path  string
	cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing output file %s: %v", e.Path, e.cause)
}

func (e *WriteError) Unwrap() error { return e.cause }

// IsWriteError checks if an error is a WriteError.
func IsWriteError(err error) bool {
	_, ok := err.(*WriteError)
	return ok
}

// WriteFile writes content to path, overwriting any existing file. The
// write is not atomic. It returns the resolved absolute path.
func WriteFile(path, content string) (string, error) {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", &WriteError{Path: path, cause: err}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
