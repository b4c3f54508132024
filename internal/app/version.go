package app

import "fmt"

// appName tags every log record and the database session.
const appName = "vocabd"

// Overridden by the mage build target through -ldflags -X.
var (
	Version = "dev"
	Commit  = "unknown"
)

// BuildVersion is reported by `vocabd --version` and the startup log.
func BuildVersion() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
