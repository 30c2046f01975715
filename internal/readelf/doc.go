// Package readelf extracts structured metadata about compiled object
// files by invoking readelf and parsing its textual reports.
//
// Four report kinds are supported, each behind its own parser: the
// section-header table (readelf -W -S), the program-header table
// (readelf -W -l), the dynamic section (readelf -W -d) and the symbol
// table (readelf -W -s). An Inspector runs all four against one target
// and aggregates them into an Object together with a purely path-based
// classification (archive, shared library, detached debug info).
//
// # Usage
//
//	inspector := readelf.NewInspector(nil, "")
//	obj, err := inspector.Inspect(ctx, "/tmp/extracted/libfoo.so.2", "/usr/lib64/libfoo.so.2")
//	if err != nil {
//	    // SONAME shape contract violation; see SonameFormatError
//	}
//	if obj.ParsingFailed() {
//	    // readelf failed for at least one report kind; skip this object
//	}
//
// # Error model
//
// A readelf invocation that exits non-zero is routine (unsupported or
// corrupt object, tool version mismatch) and is recorded as a per-report
// ParsingFailed flag, never as an error. The single hard failure is a
// SONAME entry whose value does not carry readelf's exact literal
// wrapping: silently absorbing that would turn a parser/tool
// incompatibility into a false "no SONAME" result.
//
// # Limitations
//
// This package never decodes ELF binary data itself; its correctness is
// bounded by the stability of readelf's report layout. There is no
// timeout handling at this layer: a hung readelf blocks the caller
// unless the supplied context enforces a deadline.
package readelf
