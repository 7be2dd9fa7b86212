package integration_tests

import (
	"context"
	"testing"

	"github.com/specialistvlad/chemlite/internal/app"
	"github.com/specialistvlad/chemlite/internal/builder"
	"github.com/specialistvlad/chemlite/internal/testutil"
	"github.com/stretchr/testify/require"
)

// harness bundles an App set up over temporary definition files.
type harness struct {
	app  *app.App
	out  *testutil.SafeBuffer
	logs *testutil.SafeBuffer
	root string
}

// newHarness writes files to a temporary directory and creates an App
// reading it.
func newHarness(t *testing.T, files map[string]string, cfg app.Config) *harness {
	t.Helper()
	root := testutil.WriteFiles(t, files)
	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{root}
	}
	a, out, logs := app.SetupAppTest(t, cfg)
	return &harness{app: a, out: out, logs: logs, root: root}
}

// load runs the App load phase and requires it to succeed.
func (h *harness) load(t *testing.T) *builder.Result {
	t.Helper()
	res, err := h.app.Load(context.Background())
	require.NoError(t, err)
	return res
}
