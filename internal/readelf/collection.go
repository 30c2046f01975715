package readelf

// ReportCollection holds the per-object record groups extracted from one
// readelf invocation. Plain executables yield a single group; archives
// yield one group per embedded member whose table appears in the output.
type ReportCollection[T any] [][]T

// Flatten returns all records across groups in input order.
func (c ReportCollection[T]) Flatten() []T {
	var out []T
	for _, group := range c {
		out = append(out, group...)
	}
	return out
}
