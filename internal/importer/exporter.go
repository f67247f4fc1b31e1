package importer

import (
	"strconv"
	"strings"
)

// CategoryNamer resolves a category id to its display name. Ids that no
// longer resolve must still yield a name (the fallback bucket).
type CategoryNamer func(id string) string

// ExportLine is one expense flattened for export.
type ExportLine struct {
	Year        int
	Month       int
	Day         int
	Amount      float64
	Description string
	Category    string
}

// Export renders expenses in the same line format Parse accepts, so an
// exported file round-trips through import. Commas and newlines inside
// descriptions would corrupt the line structure and are replaced with
// spaces.
func Export(lines []ExportLine) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(strconv.Itoa(l.Year))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(l.Month))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(l.Day))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(l.Amount, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(sanitizeField(l.Description))
		b.WriteByte(',')
		b.WriteString(sanitizeField(l.Category))
		b.WriteByte('\n')
	}
	return b.String()
}

func sanitizeField(s string) string {
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
