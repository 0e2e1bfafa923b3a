package importer

import (
	"fmt"
	"strings"
)

// Columns holds the resolved header label for each attendee field.
// Empty means the field was not found in the file.
type Columns struct {
	Name        string
	Phone       string
	Affiliation string
}

// Ordered keyword lists per field. Multilingual on purpose: rosters
// arrive from export tools labelled in Indonesian or English. Earlier
// keywords win; matching is lowercased-trimmed equality or substring
// containment.
var (
	nameKeywords = []string{
		"nama lengkap", "nama", "full name", "fullname", "name",
	}
	phoneKeywords = []string{
		"no. hp", "no hp", "nohp", "hp", "handphone", "whatsapp",
		"no wa", "wa", "telepon", "telp", "phone", "mobile",
	}
	affiliationKeywords = []string{
		"asal gereja", "gereja", "church", "asal", "instansi",
		"organisasi", "organization", "institution", "affiliation",
	}
)

// ErrNameColumn reports an unresolvable name column, echoing the
// detected headers so the caller can fix the file.
type ErrNameColumn struct {
	Headers []string
}

func (e *ErrNameColumn) Error() string {
	return fmt.Sprintf(
		"no name column found: expected a header like %q, got %q",
		nameKeywords, e.Headers,
	)
}

// ResolveColumns maps the header row to attendee fields. The name
// column is required; phone and affiliation are optional and stay
// empty for every row when absent.
func ResolveColumns(headers []string) (Columns, error) {
	cols := Columns{
		Name:        findHeader(headers, nameKeywords),
		Phone:       findHeader(headers, phoneKeywords),
		Affiliation: findHeader(headers, affiliationKeywords),
	}
	if cols.Name == "" {
		return Columns{}, &ErrNameColumn{Headers: headers}
	}
	return cols, nil
}

func findHeader(headers []string, keywords []string) string {
	for _, kw := range keywords {
		for _, h := range headers {
			lh := strings.ToLower(strings.TrimSpace(h))
			if lh == kw || strings.Contains(lh, kw) {
				return h
			}
		}
	}
	return ""
}
