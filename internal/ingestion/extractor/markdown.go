package extractor

import "strings"

type MarkdownSection struct {
	Title string
	Body  string
}

// SplitMarkdownSections cuts converted markdown at its headings. Text before
// the first heading forms an untitled section. A section's body includes its
// heading line so the heading text stays searchable. Whitespace-only
// sections are dropped.
func SplitMarkdownSections(markdown string) []MarkdownSection {
	var sections []MarkdownSection
	var title string
	var body strings.Builder

	flush := func() {
		text := strings.TrimSpace(body.String())
		if text != "" {
			sections = append(sections, MarkdownSection{Title: title, Body: text})
		}
		body.Reset()
	}

	for _, line := range strings.Split(markdown, "\n") {
		if heading, ok := headingText(line); ok {
			flush()
			title = heading
		}
		body.WriteString(line)
		body.WriteString("\n")
	}
	flush()
	return sections
}

func headingText(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if !strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	rest := strings.TrimLeft(trimmed, "#")
	if rest != "" && !strings.HasPrefix(rest, " ") {
		// not a heading, e.g. a #hashtag
		return "", false
	}
	return strings.TrimSpace(rest), true
}
