package scaffold_test

import (
	"testing"

	"github.com/felixgeelhaar/stackinit/internal/adapters/filesystem"
	"github.com/felixgeelhaar/stackinit/internal/adapters/logging"
	"github.com/felixgeelhaar/stackinit/internal/domain/scaffold"
	"github.com/felixgeelhaar/stackinit/internal/testutil/mocks"
)

// diskEnv returns an Env rooted at a fresh temp dir on the real filesystem.
func diskEnv(t *testing.T) (scaffold.Env, *mocks.CommandRunner, *mocks.Reporter) {
	t.Helper()

	runner := mocks.NewSucceedingCommandRunner()
	reporter := mocks.NewReporter()
	return scaffold.Env{
		Root:     t.TempDir(),
		FS:       filesystem.NewRealFileSystem(),
		Runner:   runner,
		Reporter: reporter,
		Logger:   logging.NewNopLogger(),
	}, runner, reporter
}

// memEnv returns an Env backed by the in-memory filesystem with no root.
func memEnv() (scaffold.Env, *mocks.FileSystem, *mocks.CommandRunner, *mocks.Reporter) {
	fs := mocks.NewFileSystem()
	runner := mocks.NewSucceedingCommandRunner()
	reporter := mocks.NewReporter()
	return scaffold.Env{
		FS:       fs,
		Runner:   runner,
		Reporter: reporter,
		Logger:   logging.NewNopLogger(),
	}, fs, runner, reporter
}
