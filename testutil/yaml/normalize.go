package yaml

import "strings"

// NormalizeYAMLIndentation strips the indentation common to every non-blank
// line of a YAML document written inline in a test, typically as a tab
// indented raw string literal, so that it can be unmarshaled.
func NormalizeYAMLIndentation(rawContent string) string {
	lines := strings.Split(rawContent, "\n")

	commonIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, "\t"))
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}

	normalizedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			normalizedLines = append(normalizedLines, "")
			continue
		}
		normalizedLines = append(normalizedLines, line[commonIndent:])
	}

	return strings.TrimSpace(strings.Join(normalizedLines, "\n")) + "\n"
}
