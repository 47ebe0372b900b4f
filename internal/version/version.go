// Package version holds build and schema version information.
package version

// Version is the application version. Overridden at build time via
// -ldflags "-X github.com/keystone1031/exchange-tools/internal/version.Version=...".
var Version = "dev"

// SchemaVersion tracks the reference-data schema revision. Bumped whenever a
// goose migration is added so the version endpoint can report drift.
const SchemaVersion = "1"
