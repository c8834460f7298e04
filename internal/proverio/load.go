package proverio

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/clauseforge/resolvent/pkg/fopc"
)

// ValidateClauses parses every clause string in kb and negatedGoal
// without keeping the results, so a caller can report every malformed
// clause in one pass instead of stopping at the first. Failures are
// aggregated with go-multierror; a nil return means every clause string
// is well-formed.
func ValidateClauses(logger hclog.Logger, kb, negatedGoal []string) error {
	var result *multierror.Error
	check := func(section string, clauses []string) {
		for i, src := range clauses {
			if _, err := fopc.ParseClause(src); err != nil {
				logger.Debug("clause failed to parse", "section", section, "index", i, "clause", src, "error", err)
				result = multierror.Append(result, fmt.Errorf("%s[%d] %q: %w", section, i, src, err))
			}
		}
	}
	check("knowledge_base", kb)
	check("negated_theorem_predicates", negatedGoal)
	return result.ErrorOrNil()
}
