package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/variantkit/variant-go/variant"
)

var (
	logLevel string
	format   string
)

var rootCmd = &cobra.Command{
	Use:   "variantour",
	Short: "Tour of closed-variant modeling: sessions, roles, and ticket classes",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := setupLogger()
		undo := zap.ReplaceGlobals(logger)
		_ = undo
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			zap.L().Error("failed to show help", zap.Error(err))
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format (text, json, pp)")

	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(ticketsCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(reportCmd)
}

func setupLogger() *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(logLevel)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	logger, err := loggerCfg.Build()
	if err != nil {
		panic(err)
	}

	return logger
}

// render writes the derived lines, or the raw instances for the json and pp
// formats, to stdout.
func render(insts []*variant.Instance, lines []string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(insts, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "pp":
		for _, inst := range insts {
			pp.Println(inst.Tag(), inst.Payload())
		}
	default:
		for _, line := range lines {
			fmt.Fprintln(os.Stdout, line)
		}
	}
	return nil
}
