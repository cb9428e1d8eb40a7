package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mujasoft/readme-consultant/internal/config"
	"github.com/mujasoft/readme-consultant/internal/output"
	"github.com/mujasoft/readme-consultant/internal/prompt"
	"github.com/mujasoft/readme-consultant/internal/providers"
	"github.com/mujasoft/readme-consultant/internal/repo"
	"github.com/mujasoft/readme-consultant/internal/ui"
)

// Shared command flags
var (
	flagRepoDir   string
	flagOutput    string
	flagModel     string
	flagFormat    string
	flagTreeDepth int
	flagTimeout   int
	flagQuiet     bool
)

func addConsultFlags(cmd *cobra.Command, defaultOutput string) {
	cmd.Flags().StringVarP(&flagRepoDir, "repo-dir", "r", "", "Location of where the repo is cloned")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", defaultOutput, "Location of where to save the result")
	cmd.Flags().StringVarP(&flagModel, "model", "m", "", "Name of model")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Console output format (text, json)")
	cmd.Flags().IntVar(&flagTreeDepth, "tree-depth", 0, "Maximum folder tree depth (0 = unlimited)")
	cmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Inference timeout in seconds")
	cmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress status messages")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagTreeDepth > 0 {
		m["treeDepth"] = fmt.Sprintf("%d", flagTreeDepth)
	}
	if flagTimeout > 0 {
		m["timeoutSeconds"] = fmt.Sprintf("%d", flagTimeout)
	}
	return m
}

// newConsultant builds the inference client for a run. Tests swap it for a
// providers.Fake.
var newConsultant = func(cfg config.Config) providers.Consultant {
	return providers.NewOllama(cfg.Model, time.Duration(cfg.TimeoutSeconds)*time.Second)
}

// fetchReleaseTag looks up the latest release tag when enabled. Best-effort:
// failures only produce a warning.
func fetchReleaseTag(ctx context.Context, cfg config.Config, c *repo.Context) string {
	if !cfg.FetchRelease || c.Owner == "" {
		return ""
	}
	tag, err := repo.NewReleaseClient().LatestTag(ctx, c.Owner, c.Name)
	if err != nil {
		ui.Warning("Could not fetch latest release: %v", err)
		return ""
	}
	return tag
}

func scanRepo(cfg config.Config) (*repo.Context, bool) {
	if flagRepoDir == "" {
		fmt.Fprintln(os.Stderr, "Error: you must specify a repo directory with -r")
		exitCode = ExitUsageError
		return nil, false
	}

	c, err := repo.Scan(flagRepoDir, repo.Options{
		MaxDepth:   cfg.TreeDepth,
		IgnoreDirs: cfg.IgnoreDirs,
	})
	if err != nil {
		printError(err)
		return nil, false
	}
	return c, true
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitCode = ExitRuntimeError
}

func consult(ctx context.Context, cfg config.Config, userPrompt string) (providers.Response, bool) {
	client := newConsultant(cfg)

	if !flagQuiet {
		ui.Info("Analyzing your README with %q...", cfg.Model)
	}

	resp, err := client.Consult(ctx, providers.Request{
		SystemPrompt: prompt.SystemPrompt(),
		UserPrompt:   userPrompt,
		MaxTokens:    cfg.MaxTokens,
	})
	if err != nil {
		printError(err)
		return providers.Response{}, false
	}
	return resp, true
}

func renderReport(report *output.Report, format string) bool {
	if err := output.Render(os.Stdout, report, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return false
	}
	return true
}

func finish(savedPath string) {
	if flagQuiet {
		return
	}
	ui.SavedTo(savedPath)
	fmt.Fprintln(os.Stderr)
	ui.Warning("WARNING: Please double-check since LLMs can still make mistakes.")
}
