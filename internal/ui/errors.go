package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay renders an error for the status area. The message is
// word-wrapped to maxWidth, limited to maxErrorLines lines, and truncated
// with "..." when it does not fit. The first line carries the "Error: "
// prefix and its width budget accounts for it.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}

	firstLineWidth := maxWidth - utf8.RuneCountInString(errorPrefix)
	if firstLineWidth < 10 {
		firstLineWidth = 10
	}
	otherLineWidth := maxWidth
	if otherLineWidth < 10 {
		otherLineWidth = 10
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + message
	}

	var lines []string
	var current strings.Builder
	lineWidth := firstLineWidth
	truncated := false

	for i, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(current.String())

		if currentLen > 0 && currentLen+1+wordLen > lineWidth {
			lines = append(lines, current.String())
			current.Reset()
			lineWidth = otherLineWidth

			if len(lines) >= maxErrorLines {
				truncated = i < len(words)
				break
			}
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, current.String())
	}

	if len(lines) == 0 {
		return errorPrefix
	}

	if truncated {
		last := lines[len(lines)-1]
		budget := otherLineWidth - utf8.RuneCountInString(truncationMark)
		if budget > 0 {
			runes := []rune(last)
			if len(runes) > budget {
				last = string(runes[:budget])
			}
		}
		lines[len(lines)-1] = last + truncationMark
	}

	result := errorPrefix + lines[0]
	if len(lines) > 1 {
		result += "\n" + strings.Join(lines[1:], "\n")
	}
	return result
}
