// Package testutil provides fixtures and assertions shared by tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ProjectPath joins a slash-separated relative path onto root.
func ProjectPath(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// ReadProjectFile reads rel under root, failing the test if it is missing.
func ReadProjectFile(t testing.TB, root, rel string) string {
	t.Helper()

	content, err := os.ReadFile(ProjectPath(root, rel))
	require.NoError(t, err, "failed to read file: %s", rel)
	return string(content)
}

// AssertFileExists asserts that a regular file exists at rel under root.
func AssertFileExists(t testing.TB, root, rel string) {
	t.Helper()

	info, err := os.Stat(ProjectPath(root, rel))
	if os.IsNotExist(err) {
		assert.Fail(t, "file does not exist", "expected file to exist: %s", rel)
		return
	}
	require.NoError(t, err)
	assert.False(t, info.IsDir(), "expected file but got directory: %s", rel)
}

// AssertFileNotExists asserts that nothing exists at rel under root.
func AssertFileNotExists(t testing.TB, root, rel string) {
	t.Helper()

	_, err := os.Stat(ProjectPath(root, rel))
	assert.True(t, os.IsNotExist(err), "expected file to not exist: %s", rel)
}

// AssertFileContains asserts that rel under root contains expected.
func AssertFileContains(t testing.TB, root, rel, expected string) {
	t.Helper()

	assert.Contains(t, ReadProjectFile(t, root, rel), expected, "file %s", rel)
}

// AssertFileEquals asserts that rel under root holds exactly expected.
func AssertFileEquals(t testing.TB, root, rel, expected string) {
	t.Helper()

	actual := strings.ReplaceAll(ReadProjectFile(t, root, rel), "\r\n", "\n")
	expected = strings.ReplaceAll(expected, "\r\n", "\n")
	assert.Equal(t, expected, actual, "file %s", rel)
}

// AssertJSONScripts asserts that the package.json at rel under root has
// exactly the given scripts.
func AssertJSONScripts(t testing.TB, root, rel string, expected map[string]string) {
	t.Helper()

	var doc struct {
		Scripts map[string]string `json:"scripts"`
	}
	require.NoError(t, json.Unmarshal([]byte(ReadProjectFile(t, root, rel)), &doc), "file %s", rel)
	assert.Equal(t, expected, doc.Scripts, "scripts in %s", rel)
}
