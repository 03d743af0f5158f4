package integration_tests

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vk/hyperlayers/internal/app"
	"github.com/vk/hyperlayers/internal/testutil"
)

// result captures everything a single end-to-end run produced.
type result struct {
	Err        error
	Output     string // what the app printed (dry runs)
	Logs       string
	OutputPath string
}

// Document reads the written karabiner.json.
func (r result) Document(t *testing.T) gjson.Result {
	t.Helper()
	data, err := os.ReadFile(r.OutputPath)
	require.NoError(t, err, "expected %s to be written", r.OutputPath)
	require.True(t, gjson.ValidBytes(data))
	return gjson.ParseBytes(data)
}

// Rules returns the rule array of the first profile of the written document.
func (r result) Rules(t *testing.T) []gjson.Result {
	t.Helper()
	return r.Document(t).Get("profiles.0.complex_modifications.rules").Array()
}

// runIntegrationTest writes files into a temporary layers directory and runs
// the full load → compile → write pipeline on it. tweak may adjust the
// configuration before the app is built.
func runIntegrationTest(t *testing.T, files map[string]string, tweak func(*app.Config)) result {
	t.Helper()

	root := testutil.WriteFiles(t, files)
	cfg := app.Config{
		LayersPath: filepath.Join(root, "layers"),
		OutputPath: filepath.Join(root, "karabiner.json"),
		LogLevel:   "debug",
	}
	if tweak != nil {
		tweak(&cfg)
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	runErr := app.NewApp(out, logs, appConfig).Run(context.Background())

	t.Cleanup(func() {
		if os.Getenv("HYPERLAYERS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return result{Err: runErr, Output: out.String(), Logs: logs.String(), OutputPath: appConfig.OutputPath}
}

// conditions flattens a manipulator's conditions into name=value pairs.
func conditions(m gjson.Result) map[string]int64 {
	got := make(map[string]int64)
	m.Get("conditions").ForEach(func(_, c gjson.Result) bool {
		got[c.Get("name").String()] = c.Get("value").Int()
		return true
	})
	return got
}
