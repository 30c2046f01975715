package readelf

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Idesmi/rpmlint/internal/executor"
)

// DefaultToolPath is the readelf binary used when an Inspector is built
// without an explicit override.
const DefaultToolPath = "readelf"

// Report flags passed to readelf, one per report kind. All invocations
// additionally use -W (wide format, no truncation).
const (
	flagSections       = "-S"
	flagProgramHeaders = "-l"
	flagDynamicSection = "-d"
	flagSymbolTable    = "-s"
)

// sharedLibRegex matches the installed path convention for shared
// objects: a lib or lib64 directory and a .so base name with an optional
// numeric version suffix.
var sharedLibRegex = regexp.MustCompile(`/lib(64)?/[^/]+\.so(\.[0-9]+)*$`)

// Object aggregates the four readelf reports for one object file,
// together with a classification derived purely from the logical path,
// independent of the parsed content.
type Object struct {
	IsArchive   bool
	IsSharedLib bool
	IsDebugInfo bool

	Sections       *SectionInfo
	ProgramHeaders *ProgramHeaderInfo
	Dynamic        *DynamicSectionInfo
	Symbols        *SymbolTableInfo
}

// ParsingFailed reports whether any of the four underlying readelf
// invocations failed. Callers typically skip further analysis for such
// objects rather than aborting their batch.
func (o *Object) ParsingFailed() bool {
	return o.Sections.ParsingFailed ||
		o.ProgramHeaders.ParsingFailed ||
		o.Dynamic.ParsingFailed ||
		o.Symbols.ParsingFailed
}

// Inspector runs readelf against object files and structures its
// reports. Inspectors are stateless and independent: driving several
// concurrently is a caller-side scheduling decision.
type Inspector struct {
	exec     executor.CommandExecutor
	toolPath string
}

// NewInspector creates an Inspector. If exec is nil the default executor
// is used; if toolPath is empty readelf is resolved from PATH.
func NewInspector(exec executor.CommandExecutor, toolPath string) *Inspector {
	if exec == nil {
		exec = executor.NewDefaultExecutor()
	}
	if toolPath == "" {
		toolPath = DefaultToolPath
	}
	return &Inspector{exec: exec, toolPath: toolPath}
}

// Inspect runs the four report kinds strictly sequentially against
// pkgfilePath and aggregates the results. memberPath is the logical path
// used only for classification; it differs from pkgfilePath when the
// object under test was extracted from a package payload.
//
// The only error returned is a SONAME shape violation; readelf failures
// are recorded on the individual reports and surfaced via ParsingFailed.
func (i *Inspector) Inspect(ctx context.Context, pkgfilePath, memberPath string) (*Object, error) {
	obj := &Object{
		IsArchive:   strings.HasSuffix(memberPath, ".a"),
		IsSharedLib: sharedLibRegex.MatchString(memberPath),
		IsDebugInfo: strings.HasSuffix(memberPath, ".debug"),
	}

	obj.Sections = i.Sections(ctx, pkgfilePath)
	obj.ProgramHeaders = i.ProgramHeaders(ctx, pkgfilePath)

	dynamic, err := i.DynamicSection(ctx, pkgfilePath)
	if err != nil {
		return nil, err
	}
	obj.Dynamic = dynamic

	obj.Symbols = i.SymbolTable(ctx, pkgfilePath)
	return obj, nil
}

// Sections runs the section-header report against path.
func (i *Inspector) Sections(ctx context.Context, path string) *SectionInfo {
	out, ok := i.run(ctx, flagSections, path)
	if !ok {
		return &SectionInfo{ParsingFailed: true}
	}
	return ParseSectionTable(out)
}

// ProgramHeaders runs the program-header report against path.
func (i *Inspector) ProgramHeaders(ctx context.Context, path string) *ProgramHeaderInfo {
	out, ok := i.run(ctx, flagProgramHeaders, path)
	if !ok {
		return &ProgramHeaderInfo{ParsingFailed: true}
	}
	return ParseProgramHeaders(out)
}

// DynamicSection runs the dynamic-section report against path. The error
// is the SONAME shape contract; see ParseDynamicSection.
func (i *Inspector) DynamicSection(ctx context.Context, path string) (*DynamicSectionInfo, error) {
	out, ok := i.run(ctx, flagDynamicSection, path)
	if !ok {
		return &DynamicSectionInfo{ParsingFailed: true}, nil
	}
	return ParseDynamicSection(out)
}

// SymbolTable runs the symbol-table report against path.
func (i *Inspector) SymbolTable(ctx context.Context, path string) *SymbolTableInfo {
	out, ok := i.run(ctx, flagSymbolTable, path)
	if !ok {
		return &SymbolTableInfo{ParsingFailed: true}
	}
	return ParseSymbolTable(out)
}

// run invokes readelf for one report kind and returns the captured
// output. ok is false both when the tool exits non-zero and when it
// could not be started; either way the report soft-fails.
func (i *Inspector) run(ctx context.Context, reportFlag, path string) (string, bool) {
	result, err := i.exec.Run(ctx, i.toolPath, "-W", reportFlag, path)
	if err != nil {
		slog.Debug("readelf invocation failed", "flag", reportFlag, "path", path, "error", err)
		return "", false
	}
	if result.ExitCode != 0 {
		return "", false
	}
	return result.Stdout, true
}
