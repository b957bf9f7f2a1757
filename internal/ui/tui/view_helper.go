package tui

import (
	"strings"
	"unicode/utf8"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// summary lists the answers given so far, one per line.
func summary(answers map[step]string) string {
	var b strings.Builder
	for _, s := range inputSteps {
		v, ok := answers[s]
		if !ok {
			continue
		}
		b.WriteString(stepLabels[s])
		b.WriteString(": ")
		b.WriteString(clampString(v, 40))
		b.WriteByte('\n')
	}
	return b.String()
}
