package railapi

import (
	"net/url"
	"strings"
)

const redacted = "********"

// buildURL renders <base>/<api>/apikey/<key>/<segments...>.
func buildURL(base, api, key string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	b.WriteByte('/')
	b.WriteString(url.PathEscape(api))
	b.WriteString("/apikey/")
	b.WriteString(url.PathEscape(key))
	b.WriteByte('/')
	for i, s := range segments {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// redact hides the API key in s.
func redact(s, key string) string {
	if key == "" {
		return s
	}
	s = strings.ReplaceAll(s, url.PathEscape(key), redacted)
	return strings.ReplaceAll(s, key, redacted)
}
