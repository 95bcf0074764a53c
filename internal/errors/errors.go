// Package errors is the error toolkit of the infrastructure and delivery layers:
// stdlib matching, pkg/errors wrapping, and stack extraction for server-error logs.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Matching and joining follow the stdlib semantics.
var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// Constructors and wrappers record a stack trace at the call site.
var (
	New       = pkgerrors.New
	Errorf    = pkgerrors.Errorf
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Stack returns the deepest stack trace recorded in err's chain, one frame per line,
// or "" when none was recorded.
func Stack(err error) string {
	var deepest pkgerrors.StackTrace
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			deepest = st.StackTrace()
		}
	}
	if len(deepest) == 0 {
		return ""
	}

	frames := make([]string, 0, len(deepest))
	for _, frame := range deepest {
		frames = append(frames, fmt.Sprintf("%+s:%d", frame, frame))
	}

	return strings.Join(frames, "\n")
}
