package planar

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when no algorithm exists for a combination of shapes. It is never a synonym for "no intersection". It wraps errors.ErrUnsupported.
var ErrUnsupported = fmt.Errorf("planar: unsupported shape combination: %w", errors.ErrUnsupported)

func unsupported(op string, a, b Shape) error {
	return fmt.Errorf("%s between %s and %s: %w", op, shapeName(a), shapeName(b), ErrUnsupported)
}
