package export

import (
	"strings"
	"time"
)

const fallbackName = "Sin_Nombre"

// invalidFileChars are stripped from filename components by omission,
// not substitution.
const invalidFileChars = `<>:"/\|?*`

// FileName builds the suggested workbook filename:
// Cantidades_{project}[_{location}]_{yyyyMMdd_HHmmss}.xlsx. The
// location component is omitted when empty.
func FileName(project, location string, now time.Time) string {
	var b strings.Builder
	b.WriteString("Cantidades_")
	b.WriteString(Sanitize(project))
	if location != "" {
		b.WriteString("_")
		b.WriteString(Sanitize(location))
	}
	b.WriteString("_")
	b.WriteString(now.Format("20060102_150405"))
	b.WriteString(".xlsx")
	return b.String()
}

// Sanitize strips filesystem-invalid characters from a filename
// component. A component that is empty, or reduced to whitespace,
// becomes "Sin_Nombre".
func Sanitize(name string) string {
	if name == "" {
		return fallbackName
	}
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(invalidFileChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	if strings.TrimSpace(b.String()) == "" {
		return fallbackName
	}
	return b.String()
}
