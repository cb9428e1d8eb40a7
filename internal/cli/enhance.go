package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mujasoft/readme-consultant/internal/config"
	"github.com/mujasoft/readme-consultant/internal/output"
	"github.com/mujasoft/readme-consultant/internal/prompt"
	"github.com/mujasoft/readme-consultant/internal/summary"
	"github.com/mujasoft/readme-consultant/internal/ui"
)

var enhanceCmd = &cobra.Command{
	Use:   "generate-enhanced-readme",
	Short: "Generate an improved README file",
	Long:  "Uses the LLM to rewrite your README, saves the result, and reports the changes made.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		runEnhance(cfg)
		return nil
	},
}

func runEnhance(cfg config.Config) {
	ctx := context.Background()

	c, ok := scanRepo(cfg)
	if !ok {
		return
	}

	releaseTag := fetchReleaseTag(ctx, cfg, c)

	resp, ok := consult(ctx, cfg, prompt.BuildEnhance(c, releaseTag))
	if !ok {
		return
	}

	enhanced := summary.ParseEnhanced(resp.Content)
	if !enhanced.Structured && !flagQuiet {
		ui.Warning("The model did not follow the expected response format; extracting the README on a best-effort basis.")
	}

	saved, err := output.WriteFile(flagOutput, enhanced.Readme)
	if err != nil {
		printError(err)
		return
	}

	report := &output.Report{
		Mode:    "enhance",
		Repo:    c.Name,
		Model:   cfg.Model,
		Summary: enhanced.Summary,
		OutPath: saved,
	}

	if !renderReport(report, cfg.Format) {
		return
	}

	finish(saved)
}

func init() {
	addConsultFlags(enhanceCmd, "output_readme.md")
}
