package querystring

import (
	"errors"
	"fmt"
)

// ErrBadEncoding is the sentinel for an invalid percent-escape. Callers
// compare with errors.Is; it survives wrapping inside a *DecodeError.
var ErrBadEncoding = errors.New("invalid percent-encoding")

// DecodeError reports which query segment failed strict decoding.
type DecodeError struct {
	Segment string // the raw "key=value" chunk that failed
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("querystring: cannot decode segment %q: %v", e.Segment, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
