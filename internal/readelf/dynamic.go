package readelf

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/Idesmi/rpmlint/internal/common"
)

// DynamicEntry is one key/value metadata record of the dynamic section.
// Value semantics depend on the key; keys such as NEEDED legitimately
// repeat.
type DynamicEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DynamicSectionInfo holds the structured dynamic-section report
// (readelf -W -d) for one target. Soname is derived from a single SONAME
// entry when present; it stays unset when the target has no SONAME or,
// unusually, more than one.
type DynamicSectionInfo struct {
	Entries       []DynamicEntry `json:"entries"`
	ParsingFailed bool           `json:"parsing_failed"`

	Soname common.OptionalValue[string] `json:"-"`
}

// dynamicRegex is the line grammar for one dynamic-section row:
//
//	0x000000000000000e (SONAME)             Library soname: [libc.so.6]
//
// capturing the parenthesized tag and the trailing free-form value.
var dynamicRegex = regexp.MustCompile(`^\s*0x[0-9A-Fa-f]+\s+\((?P<key>\w+)\)\s+(?P<value>.*)$`)

const (
	dynamicNeedle = "Dynamic section at offset"
	// One framing line follows the section heading: the column header.
	dynamicSkipAfter = 1
)

// sonameToken is the literal prefix readelf wraps SONAME values in. The
// derivation depends on this exact shape; see deriveSoname.
const sonameToken = "Library soname: ["

// ParseDynamicSection structures captured readelf -W -d text. Unlike the
// section and program-header reports the dynamic section is read as a
// single flat group even for archives; readelf does not re-emit the
// heading per member in this invocation mode.
//
// The only error returned is a *SonameFormatError: a SONAME entry whose
// value does not carry the exact expected literal wrapping indicates
// tool-version drift or an integration bug and must not be silently
// absorbed as "no SONAME".
func ParseDynamicSection(out string) (*DynamicSectionInfo, error) {
	info := &DynamicSectionInfo{}

	blocks := scanBlocks(splitLines(out), dynamicNeedle, dynamicSkipAfter, blankLine)
	if len(blocks) > 0 {
		for _, line := range blocks[0] {
			m := dynamicRegex.FindStringSubmatch(line)
			if m == nil {
				slog.Debug("dynamic entry did not match line grammar", "line", line)
				continue
			}
			info.Entries = append(info.Entries, DynamicEntry{Key: m[1], Value: m[2]})
		}
	}

	if err := info.deriveSoname(); err != nil {
		return nil, err
	}
	return info, nil
}

// Lookup returns the values of every entry with the given key, in input
// order.
func (d *DynamicSectionInfo) Lookup(key string) []string {
	var values []string
	for _, entry := range d.Entries {
		if entry.Key == key {
			values = append(values, entry.Value)
		}
	}
	return values
}

// deriveSoname resolves the convenience Soname field from the raw SONAME
// entry. Zero or multiple SONAME entries leave it unset; that is a
// legitimate state for non-library objects. A single entry must have the
// literal shape "Library soname: [<name>]".
func (d *DynamicSectionInfo) deriveSoname() error {
	values := d.Lookup("SONAME")
	if len(values) != 1 {
		return nil
	}

	value := values[0]
	if !strings.HasPrefix(value, sonameToken) || !strings.HasSuffix(value, "]") {
		return &SonameFormatError{Value: value}
	}
	name := strings.TrimSuffix(strings.TrimPrefix(value, sonameToken), "]")
	d.Soname = common.NewOptionalValue(name)
	return nil
}
