// Package main provides the entry point for the elfinspect command. It
// classifies each given object file, runs readelf for the four report
// kinds, and prints the structured result as text or JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Idesmi/rpmlint/internal/config"
	"github.com/Idesmi/rpmlint/internal/executor"
	"github.com/Idesmi/rpmlint/internal/logging"
	"github.com/Idesmi/rpmlint/internal/readelf"
	"github.com/Idesmi/rpmlint/internal/terminal"
)

// Error definitions
var (
	ErrNoInputFiles = errors.New("at least one object file path is required")
)

// ErrParsingFailed marks that readelf failed for at least one object; the
// process exits non-zero without treating it as a fatal error.
var ErrParsingFailed = errors.New("parsing failed for at least one object")

var (
	configPath  = flag.String("config", "", "path to TOML config file")
	format      = flag.String("format", "", "output format (text, json); overrides config")
	logLevel    = flag.String("log-level", "", "log level (debug, info, warn, error); overrides config")
	memberPath  = flag.String("member", "", "logical member path used for classification (defaults to the file path)")
	readelfPath = flag.String("readelf", "", "readelf binary to invoke; overrides config")
)

// objectSummary is the printable projection of one inspected object.
type objectSummary struct {
	Path          string   `json:"path"`
	MemberPath    string   `json:"member_path"`
	IsArchive     bool     `json:"is_archive"`
	IsSharedLib   bool     `json:"is_shared_library"`
	IsDebugInfo   bool     `json:"is_debug_info"`
	ParsingFailed bool     `json:"parsing_failed"`
	PIC           bool     `json:"pic"`
	Soname        *string  `json:"soname"`
	Needed        []string `json:"needed"`
	SectionCount  int      `json:"section_count"`
	SegmentCount  int      `json:"segment_count"`
	SymbolCount   int      `json:"symbol_count"`
}

func summarize(path, member string, obj *readelf.Object) objectSummary {
	return objectSummary{
		Path:          path,
		MemberPath:    member,
		IsArchive:     obj.IsArchive,
		IsSharedLib:   obj.IsSharedLib,
		IsDebugInfo:   obj.IsDebugInfo,
		ParsingFailed: obj.ParsingFailed(),
		PIC:           obj.Sections.PIC,
		Soname:        obj.Dynamic.Soname.Ptr(),
		Needed:        obj.Dynamic.Lookup("NEEDED"),
		SectionCount:  len(obj.Sections.ElfFiles.Flatten()),
		SegmentCount:  len(obj.ProgramHeaders.ElfFiles.Flatten()),
		SymbolCount:   len(obj.Symbols.Symbols),
	}
}

func printText(s objectSummary, colorize bool) {
	status := "ok"
	if s.ParsingFailed {
		status = "parsing failed"
		if colorize {
			status = "\x1b[31m" + status + "\x1b[0m"
		}
	}

	fmt.Printf("%s: %s\n", s.Path, status)
	fmt.Printf("  archive=%t shared_library=%t debug_info=%t\n", s.IsArchive, s.IsSharedLib, s.IsDebugInfo)
	fmt.Printf("  pic=%t sections=%d segments=%d symbols=%d\n", s.PIC, s.SectionCount, s.SegmentCount, s.SymbolCount)
	if s.Soname != nil {
		fmt.Printf("  soname=%s\n", *s.Soname)
	}
	for _, needed := range s.Needed {
		fmt.Printf("  needed=%s\n", needed)
	}
}

func run() error {
	flag.Parse()
	paths := flag.Args()
	if len(paths) == 0 {
		return ErrNoInputFiles
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *readelfPath != "" {
		cfg.ReadelfPath = *readelfPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := logging.GenerateRunID()
	logger, err := logging.Setup(cfg.Log.Level, runID)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	detector := terminal.NewInteractiveDetector(terminal.DetectorOptions{})
	colorize := cfg.Output.Format == config.FormatText && detector.IsInteractive()

	inspector := readelf.NewInspector(executor.NewDefaultExecutor(), cfg.ReadelfPath)

	anyFailed := false
	for _, path := range paths {
		member := *memberPath
		if member == "" {
			member = path
		}

		obj, err := inspector.Inspect(ctx, path, member)
		if err != nil {
			// SONAME shape contract violation; must not be absorbed.
			return fmt.Errorf("inspecting %s: %w", path, err)
		}
		if obj.ParsingFailed() {
			logger.Warn("readelf failed for object", "path", path)
			anyFailed = true
		}

		summary := summarize(path, member, obj)
		switch cfg.Output.Format {
		case config.FormatJSON:
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(summary); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
		default:
			printText(summary, colorize)
		}
	}

	if anyFailed {
		return ErrParsingFailed
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, ErrParsingFailed) {
			fmt.Fprintf(os.Stderr, "elfinspect: %v\n", err)
		}
		os.Exit(1)
	}
}
