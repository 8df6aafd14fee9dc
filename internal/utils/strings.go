package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleCase trims and title-cases user-supplied names ("pokhara" -> "Pokhara").
// Layout names and route endpoints are stored in this form.
func TitleCase(s string) string {
	return titleCaser.String(NormalizeSpace(s))
}

// NormalizePlate uppercases a vehicle number plate ("ba 2 kha 9133" -> "BA 2 KHA 9133").
func NormalizePlate(s string) string {
	return strings.ToUpper(NormalizeSpace(s))
}
