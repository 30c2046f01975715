package readelf

import "strings"

// scanBlocks repeatedly scans lines for a line containing needle, skips
// skipAfter framing lines immediately after it, then collects lines until
// stop reports a terminator or the input runs out. One inner slice is
// produced per needle occurrence: archive targets emit the same table
// once per member, back to back in a single stream. If needle never
// occurs the result is nil, which callers must keep distinguishable from
// a table that was found but empty.
func scanBlocks(lines []string, needle string, skipAfter int, stop func(string) bool) [][]string {
	var blocks [][]string
	i := 0
	for {
		for i < len(lines) && !strings.Contains(lines[i], needle) {
			i++
		}
		if i >= len(lines) {
			return blocks
		}
		i += 1 + skipAfter

		var block []string
		for i < len(lines) && !stop(lines[i]) {
			block = append(block, lines[i])
			i++
		}
		blocks = append(blocks, block)
	}
}

// blankLine reports whether a line contains nothing but whitespace.
func blankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// splitLines splits captured command output into lines, tolerating CRLF.
func splitLines(out string) []string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
