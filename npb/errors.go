package npb

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is the explicit "the source answered and has no such
	// record" result. Distinct from a transport fault.
	ErrNotFound = errors.New("not found")

	// ErrUnsupported marks operations a provider cannot structurally serve
	// (e.g. live standings from an archival store), as opposed to ones that
	// merely returned nothing.
	ErrUnsupported = errors.New("operation not supported by this provider")
)

// TransportError wraps a failure to reach or read a backing source. Callers
// can unwrap to the underlying cause with errors.Is/As.
type TransportError struct {
	Source string
	Op     string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AmbiguityError reports a player search that could not be narrowed to a
// single identity. Candidates holds the qualifying set; NoneConfirmed is set
// when no candidate could be confirmed to have recorded stats, in which case
// Candidates is the full original result list.
type AmbiguityError struct {
	Query         string
	Candidates    []Player
	NoneConfirmed bool
}

func (e *AmbiguityError) Error() string {
	names := make([]string, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		names = append(names, c.NameEnglish)
	}
	if e.NoneConfirmed {
		return fmt.Sprintf("search %q: no candidate confirmed, %d unverified: %s",
			e.Query, len(e.Candidates), strings.Join(names, ", "))
	}
	return fmt.Sprintf("search %q: ambiguous between %d players: %s",
		e.Query, len(e.Candidates), strings.Join(names, ", "))
}
