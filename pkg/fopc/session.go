package fopc

import "fmt"

// Session owns the mutable counters a single proof attempt needs: the
// monotonically increasing clause id and the suffix counter used when
// standardising a clause's variables apart before resolution. These are
// deliberately scoped to one Session value rather than package globals,
// which keeps repeated Prove calls from one process independent and
// deterministic.
type Session struct {
	nextClauseID  int
	nextVarSuffix int
}

// NewSession creates a fresh, zeroed Session.
func NewSession() *Session {
	return &Session{}
}

// nextID returns the next clause id and advances the counter. Ids are
// assigned in strictly increasing insertion order.
func (s *Session) nextID() int {
	id := s.nextClauseID
	s.nextClauseID++
	return id
}

// freshSuffix returns a new monotonic suffix (e.g. "#3") for standardising
// a clause's variables apart.
func (s *Session) freshSuffix() string {
	s.nextVarSuffix++
	return fmt.Sprintf("#%d", s.nextVarSuffix)
}
