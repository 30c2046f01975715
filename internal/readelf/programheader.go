package readelf

import (
	"regexp"
	"strings"
)

// ProgramHeader is one entry of the program-header table: the segment
// type and its permission flags with blanks stripped. Flags is composed
// only of characters from {R,W,E} and may be empty.
type ProgramHeader struct {
	Type  string `json:"type"`
	Flags string `json:"flags"`
}

// ProgramHeaderInfo holds the structured program-header report
// (readelf -W -l) for one target. Entry order within each group is load
// order and is preserved.
type ProgramHeaderInfo struct {
	ElfFiles      ReportCollection[ProgramHeader] `json:"elf_files"`
	ParsingFailed bool                            `json:"parsing_failed"`
}

// programHeaderRegex is the line grammar for one program-header row:
//
//	LOAD  0x001000 0x0000000000401000 0x0000000000401000 0x0002ad 0x0002ad R E 0x1000
//
// capturing the type token and the three-character flags column.
var programHeaderRegex = regexp.MustCompile(`^\s+(?P<type>\w+)(?:\s+\w+){5}\s+(?P<flags>[RWE ]{3})`)

const (
	programHeaderNeedle = "Program Headers:"
	// One framing line follows the table heading: the column header.
	programHeaderSkipAfter = 1
)

// ParseProgramHeaders structures captured readelf -W -l text. Rows that
// do not match the line grammar are silently skipped: program-header
// reports interleave structured rows with free-text annotation rows such
// as the interpreter path, so a non-matching line is expected, not an
// error.
func ParseProgramHeaders(out string) *ProgramHeaderInfo {
	info := &ProgramHeaderInfo{}

	blocks := scanBlocks(splitLines(out), programHeaderNeedle, programHeaderSkipAfter, blankLine)
	for _, block := range blocks {
		var headers []ProgramHeader
		for _, line := range block {
			m := programHeaderRegex.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			headers = append(headers, ProgramHeader{
				Type:  m[1],
				Flags: strings.ReplaceAll(m[2], " ", ""),
			})
		}
		if len(headers) > 0 {
			info.ElfFiles = append(info.ElfFiles, headers)
		}
	}

	return info
}
