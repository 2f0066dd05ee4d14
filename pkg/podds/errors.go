package podds

import "errors"

// ErrInvalidArgument is returned whenever an input falls outside the
// documented numeric domain: a non-positive goal rate, a negative goal
// count, non-positive decimal odds or a degenerate normalization sum.
// Wrap it with fmt.Errorf("...: %w", ErrInvalidArgument) so that callers
// can test with errors.Is
var ErrInvalidArgument = errors.New("invalid argument")
