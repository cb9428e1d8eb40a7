package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mujasoft/readme-consultant/internal/summary"
)

func reviewReport() *Report {
	return &Report{
		Mode:    "review",
		Repo:    "demo",
		Model:   "llama3",
		Summary: summary.ChangeSummary{Assessment: "Overall: good. Improve examples."},
	}
}

func enhanceReport() *Report {
	return &Report{
		Mode:    "enhance",
		Repo:    "demo",
		Model:   "llama3",
		Summary: summary.ChangeSummary{Changes: []string{"fixed typo", "added usage"}},
		OutPath: "/tmp/out.md",
	}
}

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		w, err := GetWriter(format)
		require.NoError(t, err, format)
		assert.NotNil(t, w)
	}

	_, err := GetWriter("sarif")
	assert.Error(t, err)
}

func TestTextWriter_Review(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, reviewReport(), "text"))

	out := buf.String()
	assert.Contains(t, out, `Review for "demo"`)
	assert.Contains(t, out, "Overall: good. Improve examples.")
	assert.Contains(t, out, `LLM Powered Improvements by "llama3"`)
}

func TestTextWriter_Enhance(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, enhanceReport(), "text"))

	out := buf.String()
	assert.Contains(t, out, `Changes Made for "demo"`)
	assert.Contains(t, out, "• fixed typo")
	assert.Contains(t, out, "• added usage")
}

func TestTextWriter_EnhanceNoChanges(t *testing.T) {
	r := enhanceReport()
	r.Summary.Changes = nil

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, "text"))
	assert.Contains(t, buf.String(), "(none reported)")
}

func TestTextWriter_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Render(&a, enhanceReport(), "text"))
	require.NoError(t, Render(&b, enhanceReport(), "text"))
	assert.Equal(t, a.String(), b.String())
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, enhanceReport(), "json"))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "enhance", got.Mode)
	assert.Equal(t, []string{"fixed typo", "added usage"}, got.Summary.Changes)
	assert.Equal(t, "/tmp/out.md", got.OutPath)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")

	abs, err := WriteFile(path, "# New README\n")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# New README\n", string(data))
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	_, err := WriteFile(path, "new")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFile_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.md")

	_, err := WriteFile(path, "x")
	require.Error(t, err)
	assert.True(t, IsWriteError(err))
	assert.True(t, strings.Contains(err.Error(), "out.md"))
}
