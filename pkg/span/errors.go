package span

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ErrInvalidArgument is returned when a span is constructed from arguments
// that violate 0 <= start <= end.
var ErrInvalidArgument = errors.New("invalid argument")

// invalid returns an error matching both ErrInvalidArgument and a
// *field.Error describing the offending argument.
func invalid(name string, value int64, detail string) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, field.Invalid(field.NewPath(name), value, detail))
}
