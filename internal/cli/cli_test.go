package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mujasoft/readme-consultant/internal/config"
	"github.com/mujasoft/readme-consultant/internal/providers"
)

// resetFlags resets all package-level flag variables to their zero values.
func resetFlags() {
	flagRepoDir = ""
	flagOutput = ""
	flagModel = ""
	flagFormat = ""
	flagTreeDepth = 0
	flagTimeout = 0
	flagQuiet = false
	exitCode = ExitSuccess
}

// useFake swaps the consultant factory for a Fake and restores it afterwards.
func useFake(t *testing.T, fake *providers.Fake) {
	t.Helper()
	orig := newConsultant
	newConsultant = func(cfg config.Config) providers.Consultant { return fake }
	t.Cleanup(func() { newConsultant = orig })
}

// captureStdout runs fn with os.Stdout redirected to a buffer.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("reading captured stdout: %v", err)
	}
	return buf.String()
}

func demoRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Demo"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Model = "llama3"
	return cfg
}

// --- buildOverrides tests ---

func TestBuildOverrides_NoFlags(t *testing.T) {
	resetFlags()
	m := buildOverrides()
	if len(m) != 0 {
		t.Errorf("buildOverrides() with no flags = %v, want empty map", m)
	}
}

func TestBuildOverrides_AllFlags(t *testing.T) {
	resetFlags()
	flagModel = "mistral"
	flagFormat = "json"
	flagTreeDepth = 2
	flagTimeout = 60

	m := buildOverrides()
	if m["model"] != "mistral" {
		t.Errorf("model override = %q, want %q", m["model"], "mistral")
	}
	if m["format"] != "json" {
		t.Errorf("format override = %q, want %q", m["format"], "json")
	}
	if m["treeDepth"] != "2" {
		t.Errorf("treeDepth override = %q, want %q", m["treeDepth"], "2")
	}
	if m["timeoutSeconds"] != "60" {
		t.Errorf("timeoutSeconds override = %q, want %q", m["timeoutSeconds"], "60")
	}
}

// --- enhance pipeline tests ---

func TestRunEnhance_WritesReadmeAndShowsChanges(t *testing.T) {
	resetFlags()
	flagQuiet = true
	flagRepoDir = demoRepo(t)
	flagOutput = filepath.Join(t.TempDir(), "out.md")

	useFake(t, &providers.Fake{
		Response: providers.Response{Content: "NEW README\n---\nChanges:\n- fixed typo"},
	})

	out := captureStdout(t, func() { runEnhance(testConfig()) })

	if exitCode != ExitSuccess {
		t.Fatalf("exitCode = %d, want %d", exitCode, ExitSuccess)
	}
	data, err := os.ReadFile(flagOutput)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if string(data) != "NEW README" {
		t.Errorf("output file = %q, want %q", string(data), "NEW README")
	}
	if !strings.Contains(out, "fixed typo") {
		t.Errorf("panel output missing change item, got:\n%s", out)
	}
}

func TestRunEnhance_StructuredResponse(t *testing.T) {
	resetFlags()
	flagQuiet = true
	flagRepoDir = demoRepo(t)
	flagOutput = filepath.Join(t.TempDir(), "out.md")

	fake := &providers.Fake{
		Response: providers.Response{
			Content: "```markdown\n# Better Demo\n```\n```json\n{\"changes_made\": [\"rewrote title\"]}\n```",
		},
	}
	useFake(t, fake)

	out := captureStdout(t, func() { runEnhance(testConfig()) })

	data, _ := os.ReadFile(flagOutput)
	if string(data) != "# Better Demo" {
		t.Errorf("output file = %q, want %q", string(data), "# Better Demo")
	}
	if !strings.Contains(out, "rewrote title") {
		t.Errorf("panel output missing change item, got:\n%s", out)
	}
	if fake.Calls != 1 {
		t.Errorf("Consult called %d times, want 1", fake.Calls)
	}
	if !strings.Contains(fake.LastRequest.UserPrompt, "# Demo") {
		t.Error("prompt should embed the README contents")
	}
}

func TestRunEnhance_Deterministic(t *testing.T) {
	resetFlags()
	flagQuiet = true
	flagRepoDir = demoRepo(t)

	fake := &providers.Fake{
		Response: providers.Response{
			Content: "```markdown\n# Better Demo\n```\n```json\n{\"changes_made\": [\"rewrote title\"]}\n```",
		},
	}
	useFake(t, fake)

	outDir := t.TempDir()
	first := filepath.Join(outDir, "a.md")
	second := filepath.Join(outDir, "b.md")

	flagOutput = first
	captureStdout(t, func() { runEnhance(testConfig()) })
	flagOutput = second
	captureStdout(t, func() { runEnhance(testConfig()) })

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two runs with identical inputs produced different output files")
	}
}

func TestRunEnhance_UnavailableServiceWritesNothing(t *testing.T) {
	resetFlags()
	flagQuiet = true
	flagRepoDir = demoRepo(t)
	flagOutput = filepath.Join(t.TempDir(), "out.md")

	useFake(t, &providers.Fake{Err: io.ErrUnexpectedEOF})

	captureStdout(t, func() { runEnhance(testConfig()) })

	if exitCode == ExitSuccess {
		t.Error("Expected non-zero exit code when the service fails")
	}
	if _, err := os.Stat(flagOutput); !os.IsNotExist(err) {
		t.Error("No output file should be written when the LLM call fails")
	}
}

func TestRunEnhance_MissingRepoDir(t *testing.T) {
	resetFlags()
	flagQuiet = true
	flagOutput = filepath.Join(t.TempDir(), "out.md")

	fake := &providers.Fake{}
	useFake(t, fake)

	captureStdout(t, func() { runEnhance(testConfig()) })

	if exitCode != ExitUsageError {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitUsageError)
	}
	if fake.Calls != 0 {
		t.Error("No inference call should be made without a repo dir")
	}
}

func TestRunEnhance_RepoPathNotFound(t *testing.T) {
	resetFlags()
	flagQuiet = true
	flagRepoDir = filepath.Join(t.TempDir(), "nope")
	flagOutput = filepath.Join(t.TempDir(), "out.md")

	useFake(t, &providers.Fake{})

	captureStdout(t, func() { runEnhance(testConfig()) })

	if exitCode == ExitSuccess {
		t.Error("Expected non-zero exit code for a missing repo path")
	}
	if _, err := os.Stat(flagOutput); !os.IsNotExist(err) {
		t.Error("No output file should be written for a missing repo path")
	}
}

// --- review pipeline tests ---

func TestRunReview_RendersPanelAndWritesFile(t *testing.T) {
	resetFlags()
	flagQuiet = true
	flagRepoDir = demoRepo(t)
	flagOutput = filepath.Join(t.TempDir(), "report.txt")

	useFake(t, &providers.Fake{
		Response: providers.Response{Content: "Overall: good. Improve examples."},
	})

	out := captureStdout(t, func() { runReview(testConfig()) })

	if exitCode != ExitSuccess {
		t.Fatalf("exitCode = %d, want %d", exitCode, ExitSuccess)
	}
	if !strings.Contains(out, "Overall: good. Improve examples.") {
		t.Errorf("panel output missing review text, got:\n%s", out)
	}
	if !strings.Contains(out, "Review for") {
		t.Errorf("panel title missing, got:\n%s", out)
	}

	data, err := os.ReadFile(flagOutput)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if string(data) != "Overall: good. Improve examples." {
		t.Errorf("output file = %q, want the verbatim response", string(data))
	}
}

func TestRunReview_MissingReadme(t *testing.T) {
	resetFlags()
	flagQuiet = true
	flagRepoDir = t.TempDir() // exists, but has no README
	flagOutput = filepath.Join(t.TempDir(), "report.txt")

	fake := &providers.Fake{}
	useFake(t, fake)

	captureStdout(t, func() { runReview(testConfig()) })

	if exitCode == ExitSuccess {
		t.Error("Expected non-zero exit code when README is missing")
	}
	if fake.Calls != 0 {
		t.Error("No inference call should be made without a README")
	}
}

func TestRunReview_JSONFormat(t *testing.T) {
	resetFlags()
	flagQuiet = true
	flagRepoDir = demoRepo(t)
	flagOutput = filepath.Join(t.TempDir(), "report.txt")

	useFake(t, &providers.Fake{
		Response: providers.Response{Content: "fine"},
	})

	cfg := testConfig()
	cfg.Format = "json"
	out := captureStdout(t, func() { runReview(cfg) })

	if !strings.Contains(out, `"mode": "review"`) {
		t.Errorf("json output missing mode field, got:\n%s", out)
	}
	if !strings.Contains(out, `"assessment": "fine"`) {
		t.Errorf("json output missing assessment, got:\n%s", out)
	}
}
