// Command tinyps is the interpreter CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nickandperla.net/tinyps/internal/parser"
	"nickandperla.net/tinyps/internal/scanner"
	"nickandperla.net/tinyps/internal/value"
	"nickandperla.net/tinyps/pkg/tinyps"
)

var (
	rootCmd = &cobra.Command{
		Use:          "tinyps [file]",
		Short:        "tinyps",
		Long:         `Interpreter for a stack-based, graphics-free PostScript subset. With no file argument, starts a REPL on stdin/stdout.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flagLexical bool
	flagEval    string
	flagDB      string
	flagTrace   bool
	flagConfig  string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.Flags().BoolVar(&flagLexical, "lexical", false, "enable lexical scoping (default is dynamic)")
	rootCmd.Flags().StringVarP(&flagEval, "eval", "e", "", "evaluate a program string")
	rootCmd.Flags().StringVar(&flagDB, "db", "", "SQLite definition store path")
	rootCmd.Flags().BoolVar(&flagTrace, "trace", false, "log each execution-stack dispatch")
	rootCmd.Flags().StringVar(&flagConfig, "config", "tinyps.yaml", "YAML config file supplying flag defaults")
	return rootCmd.Execute()
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logrus.StandardLogger()

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("lexical") && cfg.Lexical {
		flagLexical = true
	}
	if flagDB == "" {
		flagDB = cfg.Database
	}
	if !cmd.Flags().Changed("trace") && cfg.Trace {
		flagTrace = true
	}

	opts := []tinyps.Option{}
	if flagLexical {
		opts = append(opts, tinyps.WithLexicalScoping())
	}
	if flagDB != "" {
		opts = append(opts, tinyps.WithSQLiteStore(flagDB))
	}
	if flagTrace {
		logger.SetLevel(logrus.DebugLevel)
		opts = append(opts, tinyps.WithTrace(func(v value.Value) {
			logger.Debugf("exec %s", v.Repr())
		}))
	}

	rt := tinyps.New(opts...)
	defer rt.Close()

	if flagEval != "" {
		if quit := runSource(rt, flagEval); quit || len(args) == 0 {
			return nil
		}
	}

	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		runSource(rt, string(content))
		return nil
	}

	runREPL(rt)
	return nil
}

// runSource executes one program, printing stage-prefixed errors to
// standard error. It reports whether the program quit.
func runSource(rt *tinyps.Runtime, src string) bool {
	err := rt.Run(src)
	if err == nil {
		return false
	}
	if errors.Is(err, tinyps.ErrQuit) {
		return true
	}
	reportError(err)
	return false
}

func reportError(err error) {
	var scanErr *scanner.Error
	switch {
	case errors.As(err, &scanErr):
		fmt.Fprintf(os.Stderr, "Tokenization Error: %v\n", err)
	case errors.Is(err, parser.ErrUnexpectedRBrace), errors.Is(err, parser.ErrUnexpectedEOF):
		fmt.Fprintf(os.Stderr, "Parse Error: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Runtime Error: %v\n", err)
	}
}
