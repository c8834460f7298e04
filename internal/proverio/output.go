package proverio

import (
	"fmt"
	"io"

	"github.com/clauseforge/resolvent/pkg/fopc"
)

// WriteReport renders an Outcome to w as plain text: the initial clause
// listing, then either the contradiction header and derivation trace or
// the single "does not contradict" line.
func WriteReport(w io.Writer, outcome *fopc.Outcome) error {
	if _, err := fmt.Fprintln(w, "Initial knowledge base clauses are:"); err != nil {
		return err
	}
	for _, c := range outcome.InitialClauses {
		if _, err := fmt.Fprintf(w, "Clause %d\t| %s\n", c.ID, c.String()); err != nil {
			return err
		}
	}

	if !outcome.Proved {
		_, err := fmt.Fprintln(w, "Knowledge base does not contradict.")
		return err
	}

	if _, err := fmt.Fprint(w, "Knowledge base contradicts, so inverse of the negated target clause is provable.\n"+
		"Prove by refutation resolution order will be shown.\n"); err != nil {
		return err
	}
	for _, line := range outcome.Trace {
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
