package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mujasoft/readme-consultant/internal/config"
	"github.com/mujasoft/readme-consultant/internal/providers"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Inspect the local inference service",
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List models installed on the local Ollama server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		client := providers.NewOllama(cfg.Model, 30*time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		names, err := client.ListModels(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if len(names) == 0 {
			fmt.Fprintln(os.Stdout, "No models installed.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintf(os.Stdout, "  - %s\n", name)
		}
		return nil
	},
}

var modelsDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the local inference service responds",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Checking %s...\n", cfg.Model)

		client := providers.NewOllama(cfg.Model, 30*time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, err = client.Consult(ctx, providers.Request{
			SystemPrompt: "Respond with exactly: ok",
			UserPrompt:   "ping",
			MaxTokens:    10,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		fmt.Fprintf(os.Stdout, "OK: %s is installed and responding\n", cfg.Model)
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsDoctorCmd)
	modelsListCmd.Flags().StringVarP(&flagModel, "model", "m", "", "Name of model")
	modelsDoctorCmd.Flags().StringVarP(&flagModel, "model", "m", "", "Name of model")
}
