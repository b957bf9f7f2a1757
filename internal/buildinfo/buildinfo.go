package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the build stamp for the given binary name.
func String(binary string) string {
	if binary == "" {
		binary = "railinfo"
	}
	return fmt.Sprintf("%s %s (commit=%s, date=%s)", binary, Version, Commit, Date)
}
