package topics

import "strings"

// Renderer turns raw topic content into what is written to the terminal.
// format is the topic file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer writes topics unchanged apart from a trailing newline
type PlainRenderer struct{}

// Render returns content terminated by exactly one newline
func (r *PlainRenderer) Render(content string, format string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
