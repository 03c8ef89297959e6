// Command cardpress reads a roster of names and numbers and produces a
// single printable PDF of card sheets with name labels and EAN-13
// barcodes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/cardpress"
	"github.com/tsawler/cardpress/internal/config"
	"github.com/tsawler/cardpress/roster"
)

var (
	logger *zap.Logger

	flagInput     string
	flagOutput    string
	flagTemplate  string
	flagFont      string
	flagWorkDir   string
	flagEncoding  string
	flagNormalize bool
	flagDebug     bool
)

var rootCmd = &cobra.Command{
	Use:   "cardpress",
	Short: "Generate printable barcode card sheets from a roster file",
	Long: `cardpress reads name,number,info records from a delimited text file
and writes one PDF: a card per record with the name label and an EAN-13
barcode encoding the number plus its check digit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if flagDebug {
			zcfg = zap.NewDevelopmentConfig()
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
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
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "", "roster file (name,number,info per line)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output PDF path")
	rootCmd.Flags().StringVar(&flagTemplate, "template", "", "front-face background image (PNG)")
	rootCmd.Flags().StringVar(&flagFont, "font", "", "TTF font for card text")
	rootCmd.Flags().StringVar(&flagWorkDir, "work-dir", "", "directory for transient raster files")
	rootCmd.Flags().StringVar(&flagEncoding, "encoding", "", "input encoding: utf-8 or windows-1251")
	rootCmd.Flags().BoolVar(&flagNormalize, "normalize", false, "pad/truncate numbers to 12 digits")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable verbose logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	logger.Debug("configuration resolved",
		zap.String("input", cfg.InputPath),
		zap.String("output", cfg.OutputPath),
		zap.String("encoding", cfg.Encoding))

	gen := cardpress.FromCSV(cfg.InputPath).
		Encoding(roster.Encoding(cfg.Encoding)).
		WorkDir(cfg.WorkDir).
		Logger(logger)
	if cfg.FontPath != "" {
		gen = gen.Font(cfg.FontPath)
	}
	if cfg.TemplatePath != "" {
		gen = gen.Template(cfg.TemplatePath)
	}
	if cfg.NormalizePayload {
		gen = gen.NormalizePayload()
	}

	if err := gen.WritePDF(cfg.OutputPath); err != nil {
		return err
	}

	fmt.Printf("File %s created successfully\n", cfg.OutputPath)
	return nil
}

// applyFlags overrides loaded configuration with any flags the user set
// explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("input") {
		cfg.InputPath = flagInput
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputPath = flagOutput
	}
	if cmd.Flags().Changed("template") {
		cfg.TemplatePath = flagTemplate
	}
	if cmd.Flags().Changed("font") {
		cfg.FontPath = flagFont
	}
	if cmd.Flags().Changed("work-dir") {
		cfg.WorkDir = flagWorkDir
	}
	if cmd.Flags().Changed("encoding") {
		cfg.Encoding = flagEncoding
	}
	if cmd.Flags().Changed("normalize") {
		cfg.NormalizePayload = flagNormalize
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
