package loadout

import (
	"fmt"
	"strings"
)

// Attempt names one source a failed lookup consulted.
type Attempt struct {
	Source Source
	Keys   []string
}

// Clause renders the attempt the way it appears in a MissingValueError
// message.
func (a Attempt) Clause() string {
	if a.Source == SourceCred {
		return "credential (" + strings.Join(a.Keys, ".") + ")"
	}
	return "environment variable (" + envName(a.Keys) + ")"
}

// MissingValueError reports that no declared source produced a value and no
// fallback, inline or prefix-scoped, was available. It marks a caller
// configuration mistake and is never retried.
type MissingValueError struct {
	attempts []Attempt
}

// Error implements the error interface.
func (e *MissingValueError) Error() string {
	clauses := make([]string, len(e.attempts))
	for i, attempt := range e.attempts {
		clauses[i] = attempt.Clause()
	}
	return "required " + strings.Join(clauses, " or ") + " is not set"
}

// Attempts returns a copy of the consulted sources, in declared order.
func (e *MissingValueError) Attempts() []Attempt {
	out := make([]Attempt, len(e.attempts))
	copy(out, e.attempts)
	return out
}

// InvalidValueError reports a present environment value that failed coercion.
// A malformed value fails even when a fallback was supplied; fallbacks cover
// absence, not invalidity.
type InvalidValueError struct {
	Kind string // bool, int, float or list
	Raw  string
	Name string // environment lookup name the value came from
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s (`%s`) in %s", e.Kind, e.Raw, e.Name)
}
