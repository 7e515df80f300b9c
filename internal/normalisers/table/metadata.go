package table

import (
	"regexp"
	"strings"
	"time"
)

// creationPattern matches the creation line of a footer. The year is
// optional so that the year-less layout can apply.
var creationPattern = regexp.MustCompile(
	`^Creation:\s?(?P<date>\d{1,2}[A-Z][a-z]{2}(?:\d{2,4})?)\s?(?P<country>.*)`,
)

// dateLayouts are tried in order; the first that parses wins.
var dateLayouts = []string{
	"2Jan2006",
	"2Jan06",
	"2Jan",
}

// Metadata holds the fields derived from a footer.
type Metadata struct {
	Date    *time.Time
	Country *string
}

// ParseFooter extracts the creation date and country from footer text.
// A missing or non-matching footer yields empty metadata and is not an error.
// When the date does not parse, the country is still returned.
func ParseFooter(footer *string) Metadata {
	if footer == nil {
		return Metadata{}
	}

	match := creationPattern.FindStringSubmatch(strings.TrimSpace(*footer))
	if match == nil {
		return Metadata{}
	}

	var meta Metadata
	if country := strings.TrimSpace(match[creationPattern.SubexpIndex("country")]); country != "" {
		meta.Country = &country
	}
	meta.Date = ParseDate(match[creationPattern.SubexpIndex("date")])
	return meta
}

// ParseDate parses a compact date such as "15Jan2023", "15Jan23" or "15Jan".
// It returns nil when no layout matches.
func ParseDate(raw string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
