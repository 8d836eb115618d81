package internal

import "github.com/pkg/errors"

var (
	ErrMalformedPolygon = errors.New("malformed polygon")
	ErrNoBridge         = errors.New("no bridge found for reflex vertex")
	ErrDegenerateSplit  = errors.New("split produced a degenerate polygon")
	ErrDepthExceeded    = errors.New("decomposition exceeded maximum recursion depth")
)

// Threading errors up and down the recursion would add a lot of noise to the
// decomposer. Instead, we panic with a DecomposeError, and the public API
// recovers to convert it to an error. Anything else that panics is a real bug
// and is allowed to propagate.
type DecomposeError struct {
	error
}

func (e DecomposeError) Unwrap() error {
	return e.error
}

// Panic with a DecomposeError wrapping one of the sentinel errors.
func fatalf(cause error, format string, args ...interface{}) {
	panic(DecomposeError{errors.Wrapf(cause, format, args...)})
}

func HandleDecomposePanicRecover(r interface{}) error {
	if r != nil {
		if decomposeError, ok := r.(DecomposeError); ok {
			return decomposeError.error
		}
		panic(r)
	}
	return nil
}
