package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lako/internal"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "lako [file]",
	Short: "lako expression frontend",
	Long: `lako scans and parses a single expression and prints its
fully parenthesized canonical form.

With a file argument the file is run once. Without arguments an
interactive prompt reads one expression per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			runFile(args[0])
			return nil
		}
		runRepl(cfg)
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.lako.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// setup loads the config file and applies it together with the flags.
// Flags win over the file.
func setup() (internal.Config, error) {
	path := cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".lako.toml")
		}
	}

	cfg, err := internal.LoadConfig(path)
	if err != nil {
		return cfg, err
	}

	if debug || cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if !cfg.Color {
		color.Disable()
	}
	return cfg, nil
}

func runFile(path string) {
	hadError, err := internal.RunFile(path, os.Stdout, os.Stderr)
	if err != nil && internal.IsIOError(err) {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		os.Exit(5)
	}
	if err != nil || hadError {
		os.Exit(127)
	}
}

func runRepl(cfg internal.Config) {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.Cyan(cfg.Prompt))
		if !in.Scan() {
			// ctrl-D
			fmt.Println()
			return
		}
		// Each line is a complete, independent input. Diagnostics were
		// already written, so the error itself is not reported again.
		_, _ = internal.RunSource(in.Text(), os.Stdout, os.Stderr)
	}
}
