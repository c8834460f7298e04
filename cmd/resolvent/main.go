// Command resolvent is the CLI entry point for the resolution refutation
// prover: it reads a JSON knowledge base and negated goal, runs the
// engine in pkg/fopc, and prints a plain-text report.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/clauseforge/resolvent/internal/proverio"
	"github.com/clauseforge/resolvent/pkg/fopc"
)

// Exit codes: 0 covers both a completed proof attempt and a completed
// "no proof" attempt; everything else means the run never got that far.
const (
	exitOK             = 0
	exitIOError        = 1
	exitMalformedInput = 2
	exitParseError     = 3
)

var (
	inputPath  string
	verbose    bool
	maxLevel   int
	maxClauses int
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "resolvent",
		Level: hclog.Info,
	})

	root := &cobra.Command{
		Use:   "resolvent",
		Short: "Resolution refutation prover for first-order predicate logic",
	}

	proveCmd := &cobra.Command{
		Use:   "prove",
		Short: "Load a knowledge base and negated goal and attempt a refutation proof",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(hclog.Debug)
			}
			return prove(cmd.Context(), logger, inputPath)
		},
	}
	proveCmd.Flags().StringVarP(&inputPath, "file", "f", "", "path to the JSON input document (required)")
	proveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging (input summary and per-clause parse diagnostics)")
	proveCmd.Flags().IntVar(&maxLevel, "max-level", 0, "stop after this many saturation levels (0 = unlimited)")
	proveCmd.Flags().IntVar(&maxClauses, "max-clauses", 0, "stop after the clause store reaches this size (0 = unlimited)")
	_ = proveCmd.MarkFlagRequired("file")

	root.AddCommand(proveCmd)

	exitCode := exitOK
	root.SilenceUsage = true
	root.SilenceErrors = true
	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Error(err.Error())
		fmt.Fprintln(os.Stderr, err)
		exitCode = classify(err)
	}
	return exitCode
}

func prove(ctx context.Context, logger hclog.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return ioError{err}
	}
	defer f.Close()

	doc, err := proverio.DecodeInput(f)
	if err != nil {
		return err
	}
	logger.Debug("decoded input", "knowledge_base", len(doc.KnowledgeBase), "negated_goal", len(doc.NegatedTheoremPredicates))

	if err := proverio.ValidateClauses(logger, doc.KnowledgeBase, doc.NegatedTheoremPredicates); err != nil {
		return parseError{err}
	}

	limits := fopc.Limits{MaxLevel: maxLevel, MaxClauses: maxClauses}
	outcome, err := fopc.Prove(ctx, doc.KnowledgeBase, doc.NegatedTheoremPredicates, limits)
	if err != nil {
		return parseError{err}
	}

	logger.Info("search complete", "proved", outcome.Proved, "initial_clauses", len(outcome.InitialClauses))
	return proverio.WriteReport(os.Stdout, outcome)
}

// ioError, malformedInputError (via proverio.ErrMalformedInput) and
// parseError let classify() map a failure back to the right exit code,
// without the core engine or I/O wrapper knowing about exit codes
// themselves.
type ioError struct{ err error }

func (e ioError) Error() string { return e.err.Error() }
func (e ioError) Unwrap() error { return e.err }

type parseError struct{ err error }

func (e parseError) Error() string { return e.err.Error() }
func (e parseError) Unwrap() error { return e.err }

func classify(err error) int {
	switch err.(type) {
	case ioError:
		return exitIOError
	case parseError:
		return exitParseError
	}
	if errors.Is(err, proverio.ErrMalformedInput) {
		return exitMalformedInput
	}
	return exitIOError
}
