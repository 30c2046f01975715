package readelf

import "regexp"

// Symbol type names as printed by readelf.
const (
	SymbolTypeFunc = "FUNC"
)

// Symbol is one entry of the symbol table.
type Symbol struct {
	Type       string `json:"type"`
	Bind       string `json:"bind"`
	Visibility string `json:"visibility"`
	Name       string `json:"name"`
}

// SymbolTableInfo holds the structured symbol-table report
// (readelf -W -s) for one target.
type SymbolTableInfo struct {
	Symbols       []Symbol `json:"symbols"`
	ParsingFailed bool     `json:"parsing_failed"`
}

// symbolRegex is the line grammar for one symbol-table row:
//
//	10: 0000000000000000    18 FUNC    GLOBAL DEFAULT    4 main
//
// capturing type, binding, visibility and name. The symbol table mixes
// header and footer lines with data rows and, unlike the other reports,
// has no structural delimiter, so every line is tested independently.
var symbolRegex = regexp.MustCompile(`^\s*\d+:\s+[0-9A-Fa-f]+\s+\w+\s+(?P<type>\w+)\s+(?P<bind>\w+)\s+(?P<visibility>\w+)\s+\S+\s+(?P<name>\S+)`)

// ParseSymbolTable structures captured readelf -W -s text. Lines that do
// not match the grammar (headers, blank lines, unnamed symbols) are
// skipped without being treated as errors. Archives are read as a single
// flat group; see ParseDynamicSection for the same asymmetry.
func ParseSymbolTable(out string) *SymbolTableInfo {
	info := &SymbolTableInfo{}

	for _, line := range splitLines(out) {
		m := symbolRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		info.Symbols = append(info.Symbols, Symbol{
			Type:       m[1],
			Bind:       m[2],
			Visibility: m[3],
			Name:       m[4],
		})
	}

	return info
}

// FunctionsMatching returns the FUNC symbols whose name matches pattern.
// Matching is an unanchored regexp search; which patterns are meaningful
// is the caller's policy.
func (s *SymbolTableInfo) FunctionsMatching(pattern *regexp.Regexp) []Symbol {
	var funcs []Symbol
	for _, sym := range s.Symbols {
		if sym.Type == SymbolTypeFunc && pattern.MatchString(sym.Name) {
			funcs = append(funcs, sym)
		}
	}
	return funcs
}
