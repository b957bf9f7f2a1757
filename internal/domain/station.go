package domain

import (
	"net/url"
	"strings"
)

const mapsSearchBase = "https://www.google.com/maps/search/"

// StationMapURL returns a map search link for a railway station code.
func StationMapURL(code string) string {
	c := NormalizeCode(code)
	return mapsSearchBase + url.PathEscape(c) + "+railway+station"
}

// IsYes reports whether an interactive answer means "yes".
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
