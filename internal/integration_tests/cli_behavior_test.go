package integration_tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vk/hyperlayers/internal/app"
)

// TestCLI_MergesHCL_FromDirectoryPath validates that the loader discovers
// every .hcl file under the layers directory, in lexical order.
func TestCLI_MergesHCL_FromDirectoryPath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"layers/b.hcl":        `layer "b" { command = open("https://b.example") }`,
		"layers/a.hcl":        `layer "a" { command = open("https://a.example") }`,
		"layers/nested/c.hcl": `layer "c" { command = open("https://c.example") }`,
		"layers/README.md":    `ignored`,
	}

	// --- Act ---
	res := runIntegrationTest(t, files, nil)

	// --- Assert ---
	require.NoError(t, res.Err)
	var got []string
	for _, r := range res.Rules(t)[1:] {
		got = append(got, r.Get("description").String())
	}
	assert.Equal(t, []string{"Hyper Key + a", "Hyper Key + b", "Hyper Key + c"}, got)
	assert.Contains(t, res.Logs, "Discovered HCL files.")
}

// TestCLI_ProfileName checks that the profile flag names the generated profile.
func TestCLI_ProfileName(t *testing.T) {
	t.Parallel()

	// --- Act ---
	res := runIntegrationTest(t,
		map[string]string{"layers/main.hcl": `layer "b" { command = open("https://github.com") }`},
		func(c *app.Config) { c.ProfileName = "Hyper" })

	// --- Assert ---
	require.NoError(t, res.Err)
	doc := res.Document(t)
	assert.Equal(t, "Hyper", doc.Get("profiles.0.name").String())
	assert.True(t, doc.Get("global.show_in_menu_bar").Bool())
	assert.False(t, doc.Get("global.unsafe_ui").Bool())
}

// TestCLI_MergeIntoExistingFile checks that merge mode only replaces the
// profile's rules.
func TestCLI_MergeIntoExistingFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	output := filepath.Join(t.TempDir(), "karabiner.json")
	existing := `{
		"global": {"show_in_menu_bar": false},
		"profiles": [{
			"name": "Default",
			"simple_modifications": [{"from": {"key_code": "a"}, "to": [{"key_code": "b"}]}],
			"complex_modifications": {"rules": [{"description": "stale", "manipulators": []}]}
		}]
	}`
	require.NoError(t, os.WriteFile(output, []byte(existing), 0o644))

	// --- Act ---
	res := runIntegrationTest(t,
		map[string]string{"layers/main.hcl": `layer "b" { command = open("https://github.com") }`},
		func(c *app.Config) {
			c.OutputPath = output
			c.Merge = true
		})

	// --- Assert ---
	require.NoError(t, res.Err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.False(t, gjson.GetBytes(data, "global.show_in_menu_bar").Bool())
	assert.Equal(t, "b", gjson.GetBytes(data, "profiles.0.simple_modifications.0.to.0.key_code").String())
	rules := gjson.GetBytes(data, "profiles.0.complex_modifications.rules").Array()
	require.Len(t, rules, 2)
	assert.Equal(t, "Hyper Key + b", rules[1].Get("description").String())
}

// TestCLI_DefaultLayoutCompiles compiles the layout shipped in layers/.
func TestCLI_DefaultLayoutCompiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src, err := os.ReadFile(filepath.Join("..", "..", "layers", "default.hcl"))
	require.NoError(t, err)

	// --- Act ---
	res := runIntegrationTest(t, map[string]string{"layers/default.hcl": string(src)}, nil)

	// --- Assert ---
	require.NoError(t, res.Err)
	rules := res.Rules(t)
	// hyper + 4 sublayers + 6 single-key shortcuts + 1 remap
	require.Len(t, rules, 12)

	window := rules[4]
	assert.Equal(t, `Hyper Key sublayer "w"`, window.Get("description").String())
	hide := window.Get("manipulators.1")
	assert.Equal(t, "Window: Hide", hide.Get("description").String())
	assert.Equal(t, "semicolon", hide.Get("from.key_code").String())
	assert.Equal(t, "h", hide.Get("to.0.key_code").String())
	assert.Equal(t, []any{"right_command"}, hide.Get("to.0.modifiers").Value())

	arrows := rules[len(rules)-1]
	assert.Equal(t, "Change hyper to hjkl arrows", arrows.Get("description").String())
	assert.Equal(t, map[string]int64{"hyper": 1}, conditions(arrows.Get("manipulators.0")))
}
