package readelf

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Section is one entry of the section-header table. Size is parsed from
// readelf's hexadecimal Size column.
type Section struct {
	Name string `json:"name"`
	Size uint64 `json:"size"`
}

// SectionInfo holds the structured section-header report (readelf -W -S)
// for one target. PIC is true when any section name across all embedded
// members matches the relocation-section marker for .text or .data.
type SectionInfo struct {
	ElfFiles      ReportCollection[Section] `json:"elf_files"`
	PIC           bool                      `json:"pic"`
	ParsingFailed bool                      `json:"parsing_failed"`
}

var (
	// sectionRegex is the line grammar for one section-header row:
	//   [ 2] .rela.text  RELA  0000000000000000 0001d8 000018 18  I  9  1  8
	// capturing the name and the hexadecimal size column.
	sectionRegex = regexp.MustCompile(`\[\s*\d+\]\s+(?P<name>\S+)\s+\S+\s+[0-9A-Fa-f]+\s+[0-9A-Fa-f]+\s+(?P<size>[0-9A-Fa-f]+)`)

	// picRegex marks relocation sections against .text or .data, the
	// position-independent-code indicator.
	picRegex = regexp.MustCompile(`\.rela?\.(data|text)`)
)

const (
	sectionNeedle = "Section Headers:"
	// Two framing lines follow the table heading: the column header and
	// the index-zero null section.
	sectionSkipAfter = 2
	sectionStop      = "Key to Flags:"
)

// ParseSectionTable structures captured readelf -W -S text. Rows that do
// not match the line grammar are skipped rather than aborting the table:
// format drift in one entry should not blank out the rest. Such skips are
// logged for diagnosis.
func ParseSectionTable(out string) *SectionInfo {
	info := &SectionInfo{}

	blocks := scanBlocks(splitLines(out), sectionNeedle, sectionSkipAfter, func(line string) bool {
		return strings.Contains(line, sectionStop)
	})
	for _, block := range blocks {
		var sections []Section
		for _, line := range block {
			m := sectionRegex.FindStringSubmatch(line)
			if m == nil {
				if !blankLine(line) {
					slog.Warn("section row did not match line grammar", "line", line)
				}
				continue
			}
			size, err := strconv.ParseUint(m[2], 16, 64)
			if err != nil {
				slog.Warn("section size is not hexadecimal", "line", line)
				continue
			}
			sections = append(sections, Section{Name: m[1], Size: size})
			if picRegex.MatchString(m[1]) {
				info.PIC = true
			}
		}
		if len(sections) > 0 {
			info.ElfFiles = append(info.ElfFiles, sections)
		}
	}

	return info
}
