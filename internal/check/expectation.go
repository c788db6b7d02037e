package check

import (
	"errors"
	"strconv"
)

// ErrUnrecognizedExpectation marks a target whose declared expectation is
// neither a status code nor a failure condition. This is a configuration
// error and is fatal for the whole run.
var ErrUnrecognizedExpectation = errors.New("unrecognized expectation")

// ExpectationKind discriminates the two recognized expectation shapes.
// The zero value is deliberately not a valid kind.
type ExpectationKind int

const (
	ExpectStatus ExpectationKind = iota + 1
	ExpectFailure
)

// Expectation is the declared outcome for a target: either a specific HTTP
// status code, or a transport failure. The failure kind label is
// informational only; matching is by category, not message text.
type Expectation struct {
	Kind        ExpectationKind
	Status      int
	FailureKind string
}

func ExpectedStatus(code int) Expectation {
	return Expectation{Kind: ExpectStatus, Status: code}
}

func ExpectedFailure(kind string) Expectation {
	return Expectation{Kind: ExpectFailure, FailureKind: kind}
}

// Recognized reports whether the expectation is one of the two valid kinds.
func (e Expectation) Recognized() bool {
	return e.Kind == ExpectStatus || e.Kind == ExpectFailure
}

func (e Expectation) String() string {
	switch e.Kind {
	case ExpectStatus:
		return strconv.Itoa(e.Status)
	case ExpectFailure:
		return e.FailureKind
	default:
		return "unrecognized"
	}
}
