// Package main is the cscreen CLI: regulation lookup, requirement
// combination, and full compliance screening of scenario files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cscreen/internal/core"
	"cscreen/internal/engine"
	"cscreen/internal/llm"
	"cscreen/internal/regulation"
	"cscreen/internal/store"
	"cscreen/pkg/schema"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "cscreen",
		Short: "Screen concrete product declarations against regulatory requirements",
		Long: `cscreen combines clause requirements from regulation tables, technical
drawings and free-text project constraints into one most-stringent
requirement record, then checks product declarations (EPDs) against it.

Examples:
  cscreen regulations                          # List available jurisdictions
  cscreen requirements en206 XC4 XD1           # Combined requirements for classes
  cscreen check scenario.yaml                  # Full screening run
`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&dataDir, "data", "", "Data directory (default $CSCREEN_DATA_DIR or ./data)")

	cmd.AddCommand(regulationsCmd(&dataDir))
	cmd.AddCommand(requirementsCmd(&dataDir))
	cmd.AddCommand(checkCmd(&dataDir))

	return cmd
}

// loadConfig resolves the effective configuration, letting the --data
// flag override the environment.
func loadConfig(dataDir string) (*core.Config, error) {
	cfg, err := core.LoadConfig()
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

func regulationsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "regulations",
		Short: "List jurisdictions with a regulation clause table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*dataDir)
			if err != nil {
				return err
			}

			repo := regulation.NewRepository(cfg.RegulationsDir())
			jurisdictions, err := repo.List()
			if err != nil {
				return err
			}

			if len(jurisdictions) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no regulation tables found in %s\n", cfg.RegulationsDir())
				return nil
			}
			for _, j := range jurisdictions {
				fmt.Fprintln(cmd.OutOrStdout(), j)
			}
			return nil
		},
	}
}

func requirementsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "requirements <jurisdiction> [exposure-class ...]",
		Short: "Print the combined requirement record for a set of exposure classes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*dataDir)
			if err != nil {
				return err
			}

			repo := regulation.NewRepository(cfg.RegulationsDir())
			table, err := repo.Load(args[0])
			if err != nil {
				return err
			}

			classes := make([]any, 0, len(args)-1)
			for _, class := range args[1:] {
				classes = append(classes, class)
			}

			record := engine.Combine(classes, map[string]schema.ClauseVector(table), nil, nil)
			return printYAML(cmd, record)
		},
	}
}

func checkCmd(dataDir *string) *cobra.Command {
	var noArchive bool

	cmd := &cobra.Command{
		Use:   "check <scenario.yaml>",
		Short: "Run a full screening scenario and archive the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*dataDir)
			if err != nil {
				return err
			}
			logger := core.NewLogger(cfg.LogLevel)

			scenario, err := core.LoadScenario(args[0])
			if err != nil {
				return err
			}

			client, err := llm.NewClient(&llm.Config{
				APIKey:       cfg.OpenRouterAPIKey,
				BaseURL:      defaultBaseURL,
				DefaultModel: cfg.DefaultModel,
			})
			if err != nil {
				return fmt.Errorf("configure extraction client: %w (set OPENROUTER_API_KEY)", err)
			}

			orch := core.NewOrchestrator(
				core.NewLLMTaskExecutor(client),
				regulation.NewRepository(cfg.RegulationsDir()),
				logger,
			)

			result, err := orch.RunScenario(cmd.Context(), scenario)
			if err != nil {
				return err
			}

			if !noArchive {
				runDir, err := store.NewArchiver(cfg.OutputDir()).ArchiveRun(result)
				if err != nil {
					return fmt.Errorf("archive run: %w", err)
				}
				logger.Info("run archived", "dir", runDir)
			}

			if err := printYAML(cmd, result); err != nil {
				return err
			}

			for _, product := range result.Products {
				if product.Error != "" || (product.Verdict != nil && !product.Verdict.Pass) {
					os.Exit(1)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noArchive, "no-archive", false, "Skip writing the run archive")

	return cmd
}

func printYAML(cmd *cobra.Command, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
