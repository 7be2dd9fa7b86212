package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks that a record at the given level containing msg was
// written to logs. Level is the slog text form, e.g. "WARN".
func AssertLogged(t *testing.T, logs *SafeBuffer, level, msg string) {
	t.Helper()
	for _, line := range logs.Lines() {
		if strings.Contains(line, "level="+level) && strings.Contains(line, msg) {
			return
		}
	}
	require.Failf(t, "log record not found", "no %s record containing %q in:\n%s", level, msg, logs.String())
}

// AssertNotLogged checks that no record at the given level was written.
func AssertNotLogged(t *testing.T, logs *SafeBuffer, level string) {
	t.Helper()
	require.NotContains(t, logs.String(), "level="+level, "unexpected %s record", level)
}
