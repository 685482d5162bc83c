// package shared defines shared helpers
package shared

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps and caller reporting enabled.
//
// The writer defaults to [os.Stderr]
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	return log.NewWithOptions(w, opts)
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel sets the [log.Level] for the given [log.Logger].
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}

// NormalizeGroup canonicalizes an age-group label to the backend's spelling.
//
// The backend recognizes U13, U15, U17 and Seniors; CLI input is matched
// case-insensitively ("u15" -> "U15", "SENIORS" -> "Seniors"). Unrecognized
// labels are returned trimmed but otherwise unchanged so the server can reject them.
func NormalizeGroup(groupe string) string {
	g := strings.TrimSpace(groupe)
	switch strings.ToUpper(g) {
	case "U13":
		return "U13"
	case "U15":
		return "U15"
	case "U17":
		return "U17"
	case "SENIORS", "SENIOR":
		return "Seniors"
	}
	return g
}
