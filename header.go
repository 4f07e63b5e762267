package main

import "strings"

const (
	// docMarker identifies an inner doc comment line in the target file.
	docMarker = "//!"
	// docPrefix is prepended to every README line.
	docPrefix = docMarker + " "
)

type syncResult struct {
	// Content is the new target document.
	Content []string
	// Backup holds the header lines that Content no longer carries.
	Backup []string
}

// splitLines splits data after every '\n'. Terminators stay attached to their
// line and a trailing fragment without one is kept as the last line.
func splitLines(data string) []string {
	if data == "" {
		return nil
	}
	lines := strings.SplitAfter(data, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isHeaderLine(line string) bool {
	if strings.HasPrefix(line, docMarker) {
		return true
	}
	return line != "" && strings.TrimSpace(line) == ""
}

// splitHeader returns the leading run of header lines and everything after
// it. The scan stops at the first non-header line; later doc or blank lines
// belong to the body.
func splitHeader(lines []string) (header, body []string) {
	n := 0
	for n < len(lines) && isHeaderLine(lines[n]) {
		n++
	}
	return lines[:n:n], lines[n:]
}

func docBlock(readme []string) []string {
	doc := make([]string, 0, len(readme))
	for _, line := range readme {
		doc = append(doc, docPrefix+line)
	}
	return doc
}

// render joins the doc block and the body with a single blank line.
func render(doc, body []string) []string {
	out := make([]string, 0, len(doc)+1+len(body))
	out = append(out, doc...)
	out = append(out, "\n")
	out = append(out, body...)
	return out
}

func synchronize(readme, target []string) syncResult {
	header, body := splitHeader(target)
	return syncResult{
		Content: render(docBlock(readme), body),
		Backup:  header,
	}
}
