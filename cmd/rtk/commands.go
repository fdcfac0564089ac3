package main

import (
	"os"
	"time"

	"rtk-backend/internal/config"
	"rtk-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	inputFile    string
	outputFormat string
	distribution string
	confidence   float64
	missionTime  float64
	tokenUser    string
	tokenEmail   string
	tokenTTL     time.Duration

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "rtk",
		Short: "Reliability predictions, growth and life data analysis",
		Long: `rtk evaluates parts lists with MIL-HDBK-217F, fits reliability
growth models to failure times and fits life distributions to field data.
Input files are YAML or JSON; pass - to read from stdin.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}

	// --- Prediction ---
	predictCmd = &cobra.Command{
		Use:   "predict",
		Short: "Predict part and system hazard rates from a parts list",
		Args:  cobra.NoArgs,
		RunE:  runPredict, // Defined in cmd_predict.go
	}
	catalogCmd = &cobra.Command{
		Use:   "catalog",
		Short: "List the part categories, environments and quality levels the engine accepts",
		Args:  cobra.NoArgs,
		RunE:  runCatalog, // Defined in cmd_predict.go
	}

	// --- Analysis ---
	growthCmd = &cobra.Command{
		Use:   "growth",
		Short: "Fit Crow-AMSAA and Duane growth models to failure data",
		Args:  cobra.NoArgs,
		RunE:  runGrowth, // Defined in cmd_growth.go
	}
	fitCmd = &cobra.Command{
		Use:   "fit",
		Short: "Fit life distributions to failure and suspension times",
		Args:  cobra.NoArgs,
		RunE:  runFit, // Defined in cmd_fit.go
	}

	// --- Access ---
	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the API server",
		Args:  cobra.NoArgs,
		RunE:  runToken, // Defined in cmd_token.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, yaml)")

	for _, cmd := range []*cobra.Command{predictCmd, growthCmd, fitCmd} {
		cmd.Flags().StringVarP(&inputFile, "file", "f", "", "Input file (YAML or JSON), - for stdin")
		_ = cmd.MarkFlagRequired("file")
	}

	predictCmd.Flags().Float64Var(&missionTime, "mission-time", 0, "Mission time in hours; overrides the file")
	growthCmd.Flags().Float64Var(&confidence, "confidence", 0, "Two-sided confidence level; overrides the file")
	fitCmd.Flags().Float64Var(&confidence, "confidence", 0, "Two-sided confidence level; overrides the file")
	fitCmd.Flags().StringVarP(&distribution, "distribution", "d", "", "Distribution to fit (exponential, weibull, all); overrides the file")

	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "Username placed in the token")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email placed in the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(predictCmd, catalogCmd, growthCmd, fitCmd, tokenCmd)
}

// loadConfig reads .env and the layered configuration. Logs go to stderr so
// they never mix with command output.
func loadConfig(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded
	logger.SetupWithOutput(cfg.LogLevel, os.Stderr)
	return nil
}
