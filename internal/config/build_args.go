package config

import "fmt"

// The following vars are injected via -ldflags, e.g.
// go build -ldflags "-X github/chapool/hdderive/internal/config.Commit=$(git rev-parse HEAD)"
var (
	ModuleName = "hdderive"
	Commit     = "< 40 chars git commit hash via ldflags >"
	BuildDate  = "1970-01-01T00:00:00+00:00"
)

// GetFormattedBuildArgs returns string representation of buildsargs set via ldflags "<ModuleName> @ <Commit> (<BuildDate>)"
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
