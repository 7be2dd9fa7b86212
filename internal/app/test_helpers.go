package app

import (
	"os"
	"testing"

	"github.com/specialistvlad/chemlite/internal/hcl_adapter"
	"github.com/specialistvlad/chemlite/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. Logs are
// captured at debug level in text format.
func SetupAppTest(t *testing.T, cfg Config) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	validated, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test configuration: %v", err)
	}

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	testApp := NewApp(outBuffer, logBuffer, validated, hcl_adapter.NewLoader())

	t.Cleanup(func() {
		if os.Getenv("CHEMLITE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
