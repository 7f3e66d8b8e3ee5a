package capacity

import "fmt"

// InvalidGeometryError reports a pile geometry that cannot be
// computed. Computation is refused rather than silently zeroed.
type InvalidGeometryError struct {
	Field string
	Value float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid pile geometry: %s = %.3f (must be > 0)", e.Field, e.Value)
}

// InvalidParameterError reports an engine parameter outside its
// allowed range.
type InvalidParameterError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter: %s = %.3f (must be in [%.2f, %.2f])", e.Field, e.Value, e.Min, e.Max)
}
