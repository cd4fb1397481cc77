package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gis116/pyker/internal/completion"
	"github.com/gis116/pyker/internal/config"
	"github.com/gis116/pyker/internal/core"
	"github.com/gis116/pyker/internal/registry"
	"github.com/gis116/pyker/internal/shell"
)

var BUILD_VERSION = "dev"

// NewRootCmd creates the root command for pyker-completion.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pyker-completion",
		Short:        "Shell completion helper for the pyker process manager",
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newScriptCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newCompleteCmd() *cobra.Command {
	var (
		cword   int
		current string
		line    string
		point   int
	)

	cmd := &cobra.Command{
		Use:   "complete [flags] -- [words...]",
		Short: "Print completion candidates for the current pyker command line",
		Long: `Print completion candidates, one per line, for the word at index
--cword of the given words. With --line, the raw command line is split
using shell quoting rules instead.

The shell calls this on every tab press, so it always exits 0 and prints
nothing but candidates.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result := config.LoadFromFile(core.ConfigFile())

			logger := newCompletionLogger(result.Config.LogLevel)
			defer logger.Sync()

			for _, err := range result.Errors {
				logger.Warn("completion config problem", zap.Error(err))
			}

			statePath := result.Config.StateFile
			if statePath == "" {
				statePath = core.StateFile()
			}

			provider := completion.NewProvider(registry.NewFileSource(statePath), result.Config, logger)

			var candidates []string
			if line != "" {
				candidates = provider.CompleteLine(line, point)
			} else {
				if current == "" && cword >= 0 && cword < len(args) {
					current = args[cword]
				}
				candidates = provider.Complete(args, cword, current)
			}

			for _, candidate := range candidates {
				fmt.Fprintln(cmd.OutOrStdout(), candidate)
			}
		},
	}

	cmd.Flags().IntVar(&cword, "cword", -1, "index of the word being completed (COMP_CWORD)")
	cmd.Flags().StringVar(&current, "current", "", "the partial word being completed")
	cmd.Flags().StringVar(&line, "line", "", "complete against a raw command line (COMP_LINE)")
	cmd.Flags().IntVar(&point, "point", -1, "cursor position within --line (COMP_POINT)")

	return cmd
}

func newScriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "script (bash|zsh)",
		Short:     "Print the shell registration script",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := shell.Generate(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "install (bash|zsh)",
		Short:     "Write the registration script under ~/.pyker and print what to source",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := core.EnsureDataDir(); err != nil {
				return fmt.Errorf("failed to create data directory: %w", err)
			}

			path, err := shell.Install(args[0], core.ScriptDir())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Installed %s\n", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Add this line to your shell rc file:\n  source %q\n", path)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), BUILD_VERSION)
		},
	}
}

// newCompletionLogger logs to a file under pyker's data dir. The terminal
// belongs to the shell during completion, so nothing may be written to
// stdout or stderr, and a tab press must not create ~/.pyker either: when
// the data dir is missing the logger is a nop.
func newCompletionLogger(level string) *zap.Logger {
	if _, err := os.Stat(core.DataDir()); err != nil {
		return zap.NewNop()
	}

	parsedLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		parsedLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = parsedLevel
	loggerConfig.OutputPaths = []string{core.LogFile()}
	loggerConfig.ErrorOutputPaths = []string{core.LogFile()}

	logger, err := loggerConfig.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
