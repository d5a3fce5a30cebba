package scaffold_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/stackinit/internal/domain/scaffold"
)

func TestEnsureDirectory_CreatesWithParents(t *testing.T) {
	t.Parallel()

	env, _, reporter := diskEnv(t)
	result := scaffold.EnsureDirectory{Path: "backend/src"}.Execute(context.Background(), env)

	require.True(t, result.Success())
	assert.Equal(t, scaffold.StatusDone, result.Status())
	assert.DirExists(t, filepath.Join(env.Root, "backend", "src"))
	assert.Equal(t, []string{"Created backend/src"}, reporter.Messages("success"))
}

func TestEnsureDirectory_IdempotentAndPreservesContents(t *testing.T) {
	t.Parallel()

	env, _, reporter := diskEnv(t)
	action := scaffold.EnsureDirectory{Path: "backend/src"}

	first := action.Execute(context.Background(), env)
	require.True(t, first.Success())

	keep := filepath.Join(env.Root, "backend", "src", "keep.ts")
	require.NoError(t, os.WriteFile(keep, []byte("export {}"), 0o644))

	second := action.Execute(context.Background(), env)
	require.True(t, second.Success())
	assert.True(t, second.Skipped())

	content, err := os.ReadFile(keep)
	require.NoError(t, err)
	assert.Equal(t, "export {}", string(content))
	assert.Equal(t, []string{"backend/src already exists, skipping creation."}, reporter.Messages("skip"))
}

func TestEnsureDirectory_FileInTheWay(t *testing.T) {
	t.Parallel()

	env, _, reporter := diskEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.Root, "backend"), []byte("x"), 0o644))

	result := scaffold.EnsureDirectory{Path: "backend"}.Execute(context.Background(), env)

	require.False(t, result.Success())
	var actionErr *scaffold.ActionError
	require.ErrorAs(t, result.Err(), &actionErr)
	assert.Equal(t, scaffold.FailureFilesystem, actionErr.Kind)
	assert.Equal(t, "backend", actionErr.Target)
	assert.Equal(t, []string{"Error creating directory backend"}, reporter.Messages("failure"))
}

func TestEnsureDirectory_MkdirError(t *testing.T) {
	t.Parallel()

	env, fs, _, reporter := memEnv()
	boom := errors.New("permission denied")
	fs.FailMkdir("backend/src", boom)

	result := scaffold.EnsureDirectory{Path: "backend/src"}.Execute(context.Background(), env)

	require.False(t, result.Success())
	assert.ErrorIs(t, result.Err(), boom)
	assert.True(t, reporter.Contains("backend/src"))
}

func TestWriteFile_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing *string
		content  string
		message  string
	}{
		{name: "new file", content: "@tailwind base;", message: "Created src/index.css"},
		{name: "existing longer file", existing: strPtr("body { margin: 0; padding: 0; color: red; }"), content: "@tailwind base;", message: "Updated src/index.css"},
		{name: "empty content", existing: strPtr("old"), content: "", message: "Updated src/index.css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, reporter := diskEnv(t)
			path := filepath.Join(env.Root, "src", "index.css")
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			if tt.existing != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.existing), 0o644))
			}

			result := scaffold.WriteFile{Path: "src/index.css", Content: tt.content, Overwrite: true}.Execute(context.Background(), env)
			require.True(t, result.Success())

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(got))
			assert.Equal(t, []string{tt.message}, reporter.Messages("success"))
		})
	}
}

func TestWriteFile_NoOverwriteSkipsExisting(t *testing.T) {
	t.Parallel()

	env, fs, _, _ := memEnv()
	fs.AddFile("frontend/src/index.css", "user edits")

	result := scaffold.WriteFile{Path: "frontend/src/index.css", Content: "generated"}.Execute(context.Background(), env)

	require.True(t, result.Success())
	assert.True(t, result.Skipped())
	got, _ := fs.ReadFile("frontend/src/index.css")
	assert.Equal(t, "user edits", string(got))
}

func TestWriteFile_FailureNamesPath(t *testing.T) {
	t.Parallel()

	env, fs, _, reporter := memEnv()
	boom := errors.New("disk full")
	fs.FailWrite("frontend/postcss.config.js", boom)

	result := scaffold.WriteFile{Path: "frontend/postcss.config.js", Content: "x", Overwrite: true}.Execute(context.Background(), env)

	require.False(t, result.Success())
	var actionErr *scaffold.ActionError
	require.ErrorAs(t, result.Err(), &actionErr)
	assert.Equal(t, scaffold.FailureFilesystem, actionErr.Kind)
	assert.Equal(t, "frontend/postcss.config.js", actionErr.Target)
	assert.ErrorIs(t, result.Err(), boom)

	entries := reporter.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Error writing frontend/postcss.config.js", entries[0].Message)
	assert.ErrorIs(t, entries[0].Err, boom)
}

func TestWriteFile_MissingParentFails(t *testing.T) {
	t.Parallel()

	env, _, _ := diskEnv(t)

	result := scaffold.WriteFile{Path: "frontend/src/index.css", Content: "x", Overwrite: true}.Execute(context.Background(), env)

	assert.False(t, result.Success())
	assert.Equal(t, scaffold.KindWriteFile, result.Kind())
}

func strPtr(s string) *string { return &s }
