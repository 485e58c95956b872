package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vaani/internal/config"
	"vaani/internal/core"
	"vaani/internal/logging"
	"vaani/internal/ml"
	"vaani/internal/parser"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vaani",
	Short: "vaani - multilingual seller command interpreter",
	Long: `vaani turns free-form seller chat messages, in English, Hindi, or a
mix of both scripts, into structured commerce commands.

Every message yields a JSON envelope with the detected language, the
classified intent, its extracted entities, and a confidence score.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// parseCmd interprets one message and prints the command envelope
var parseCmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Parse a seller message into a structured command",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.Logging.Debug && !verbose {
			logger, err = logging.New(true)
			if err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		engine, err := buildEngine(ctx, cfg)
		if err != nil {
			return err
		}

		msg := core.NewRawMessage("cli", strings.Join(args, " "))
		result := engine.ParseMessage(ctx, msg)
		return printJSON(result)
	},
}

// detectCmd runs only the language identification stage
var detectCmd = &cobra.Command{
	Use:   "detect [message]",
	Short: "Detect the language mix of a message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		engine, err := buildEngine(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return printJSON(engine.DetectLanguage(strings.Join(args, " ")))
	},
}

// buildEngine assembles the parse pipeline, wiring the Gemini strategy only
// when it is enabled and a key is configured.
func buildEngine(ctx context.Context, cfg config.Config) (*parser.Engine, error) {
	opts := []parser.Option{parser.WithLogger(logger)}

	if cfg.ML.Enabled {
		strategy, err := ml.NewGemini(ctx, cfg.ML.APIKey, cfg.ML.Model, cfg.ML.Timeout)
		if err != nil {
			return nil, fmt.Errorf("ml strategy: %w", err)
		}
		logger.Debug("model strategy enabled", zap.String("strategy", strategy.Name()))
		opts = append(opts, parser.WithStrategy(strategy))
	}

	return parser.New(cfg, opts...), nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(detectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
