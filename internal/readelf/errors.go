package readelf

import "fmt"

// SonameFormatError indicates a SONAME dynamic entry whose value does not
// carry the exact literal wrapping readelf is known to emit. This is kept
// distinct from the soft per-report ParsingFailed flag: absorbing it
// would mask a parser/tool incompatibility as a false "no SONAME" result.
type SonameFormatError struct {
	Value string
}

func (e *SonameFormatError) Error() string {
	return fmt.Sprintf("unexpected SONAME entry format: %q", e.Value)
}
