package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mujasoft/readme-consultant/internal/config"
	"github.com/mujasoft/readme-consultant/internal/output"
	"github.com/mujasoft/readme-consultant/internal/prompt"
	"github.com/mujasoft/readme-consultant/internal/summary"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review a repository's README and report feedback",
	Long:  "Goes through your README and provides feedback on structure, clarity, and completeness.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		runReview(cfg)
		return nil
	},
}

func runReview(cfg config.Config) {
	ctx := context.Background()

	c, ok := scanRepo(cfg)
	if !ok {
		return
	}

	releaseTag := fetchReleaseTag(ctx, cfg, c)

	resp, ok := consult(ctx, cfg, prompt.BuildReview(c, releaseTag))
	if !ok {
		return
	}

	report := &output.Report{
		Mode:    "review",
		Repo:    c.Name,
		Model:   cfg.Model,
		Summary: summary.ParseReview(resp.Content),
	}

	if flagOutput != "" {
		saved, err := output.WriteFile(flagOutput, resp.Content)
		if err != nil {
			printError(err)
			return
		}
		report.OutPath = saved
	}

	if !renderReport(report, cfg.Format) {
		return
	}

	if report.OutPath != "" {
		finish(report.OutPath)
	}
}

func init() {
	addConsultFlags(reviewCmd, "output.txt")
}
