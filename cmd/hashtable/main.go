// hashtable - drive a linear-probing hash table from scripts or an interactive prompt
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/homier/hashtable"
	"github.com/homier/hashtable/internal/shell"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "hashtable",
		Short: "Linear-probing hash table playground",
		Long: `Runs table commands (set, get, del, stats, ...) against an in-memory
open-addressing hash table, either from a script or interactively.`,
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	var (
		capacity    int
		verbose     bool
		historyFile string
	)

	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", hashtable.DefaultCapacity, "Initial table capacity")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log commands and resizes")

	var runCmd = &cobra.Command{
		Use:   "run [script]",
		Short: "Execute a script file, or stdin when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				in = f
			}

			sh, err := shell.New(capacity, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
			if err != nil {
				return err
			}

			failed, err := sh.Run(in)
			if err != nil {
				return fmt.Errorf("reading script: %w", err)
			}

			if failed > 0 {
				return fmt.Errorf("%d command(s) failed", failed)
			}

			return nil
		},
	}

	var replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := shell.New(capacity, cmd.OutOrStdout(), cmd.ErrOrStderr(), newLogger(verbose))
			if err != nil {
				return err
			}

			return repl(newReplConfig(historyFile), sh)
		},
	}

	replCmd.Flags().StringVar(&historyFile, "history", "", "File to keep the prompt history in")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hashtable %s (commit %s, built %s)\n", Version, Commit, BuildTime)
		},
	}

	rootCmd.AddCommand(runCmd, replCmd, versionCmd)

	return rootCmd
}

func newReplConfig(historyFile string) *readline.Config {
	return &readline.Config{
		Prompt:          "hashtable> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
}

// repl feeds prompt lines to sh until exit, quit, EOF or ^C on an empty line.
// A failed command is reported and the session goes on.
func repl(cfg *readline.Config, sh *shell.Shell) error {
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	sh.SetOutput(rl.Stdout(), rl.Stderr())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			return nil
		}

		if err := sh.Exec(line); err != nil {
			sh.Report("", err)
		}
	}
}
