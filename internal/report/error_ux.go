package report

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/railinfo/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// MsgUnexpected is shown for errors that carry no classification.
const MsgUnexpected = "Unexpected error (see logs)"

// UserMessage turns an error into a one-line message fit for the terminal.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "configfinder") {
				return "Config file not found (tip: run `railinfo init`)"
			}
			return "Not found"

		case domain.KindInvalidArgument:
			return "Invalid input: " + causeText(oe.Err, domain.ErrInvalidArgument)

		case domain.KindInvalidConfig:
			if strings.Contains(oe.Op, "apikey") || strings.Contains(err.Error(), "api key") {
				return "Missing or unreadable API key (set RAILINFO_API_KEY or use --api-key-file)"
			}

			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config: " + causeText(oe.Err, domain.ErrInvalidConfig)

		case domain.KindTransport:
			return transportMessage(err)

		case domain.KindAPI:
			return "API Error: " + causeText(oe.Err, domain.ErrAPI)

		case domain.KindNoData:
			return "No data returned"

		default:
			return MsgUnexpected
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return MsgUnexpected
}

func transportMessage(err error) string {
	var re *domain.RunError
	if errors.As(err, &re) {
		switch re.Kind {
		case domain.RunErrorTimeout:
			return "Network/API request failed: timed out"
		case domain.RunErrorDNS:
			return "Network/API request failed: could not resolve host"
		case domain.RunErrorConn:
			return "Network/API request failed: connection error"
		case domain.RunErrorHTTP:
			return "Network/API request failed: " + re.Message
		}
		return "Network/API request failed: " + re.Message
	}
	return "Network/API request failed"
}

// causeText renders err without the trailing sentinel text.
func causeText(err, sentinel error) string {
	if err == nil {
		return sentinel.Error()
	}
	s := err.Error()
	if trimmed := strings.TrimSuffix(s, ": "+sentinel.Error()); trimmed != "" {
		return trimmed
	}
	return s
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
