package diag

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// FieldWidth is the minimum width of the subject column.
const FieldWidth = 40

// Format renders subject left-justified in a column of at least FieldWidth
// characters (runes), immediately followed by detail. Subjects that already
// have FieldWidth or more characters are not truncated.
func Format(subject, detail string) string {
	return join(subject, runePadding(subject), detail)
}

// FormatCells is Format with the column measured in terminal display cells,
// so wide (CJK) runes count twice and zero-width runes not at all.
func FormatCells(subject, detail string) string {
	return join(subject, cellPadding(subject), detail)
}

func join(subject, pad, detail string) string {
	var sb strings.Builder
	sb.Grow(len(subject) + len(pad) + len(detail))
	sb.WriteString(subject)
	sb.WriteString(pad)
	sb.WriteString(detail)
	return sb.String()
}

func runePadding(subject string) string {
	return fill(utf8.RuneCountInString(subject))
}

func cellPadding(subject string) string {
	return fill(runewidth.StringWidth(subject))
}

func fill(width int) string {
	if width >= FieldWidth {
		return ""
	}
	return strings.Repeat(" ", FieldWidth-width)
}
