// Package logging builds the leveled logger shared by the CLI and the
// descriptor parser.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/oneclick-labs/ymp/internal/branding"
)

// DefaultLevel is used when no level is configured or the configured one is unknown.
const DefaultLevel = log.WarnLevel

// ParseLevel maps a level name (debug, info, warn, error) to a log.Level.
// An empty name yields DefaultLevel.
func ParseLevel(name string) (log.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return DefaultLevel, fmt.Errorf("parsing log level %q: %w", name, err)
	}
	return lvl, nil
}

// New returns a logger writing to w at the named level. Unknown level
// names fall back to DefaultLevel; use ParseLevel to surface the error.
func New(w io.Writer, level string) *log.Logger {
	lvl, _ := ParseLevel(level)
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  lvl,
	})
}
