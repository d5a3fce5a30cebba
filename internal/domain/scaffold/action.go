package scaffold

import (
	"context"
	"path/filepath"

	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// Kind identifies the variant of an Action.
type Kind string

// Action variants.
const (
	KindRunCommand      Kind = "run-command"
	KindEnsureDirectory Kind = "ensure-directory"
	KindWriteFile       Kind = "write-file"
	KindPatchManifest   Kind = "patch-manifest"
)

// Action is a single side-effecting unit of work within a Step.
type Action interface {
	// Kind returns the action variant.
	Kind() Kind
	// Describe returns a short human-readable summary used in logs.
	Describe() string
	// Execute performs the action. It reports its own progress lines through
	// env.Reporter and never panics; failures are returned as a failed Result.
	Execute(ctx context.Context, env Env) Result
}

// Env carries the collaborators an Action needs.
type Env struct {
	// Root is the directory relative action paths resolve against.
	// Empty means the process working directory.
	Root     string
	FS       ports.FileSystem
	Runner   ports.CommandRunner
	Reporter ports.Reporter
	Logger   ports.Logger
}

// resolve maps a slash-separated action path onto the filesystem.
func (e Env) resolve(path string) string {
	native := filepath.FromSlash(path)
	if e.Root == "" || filepath.IsAbs(native) {
		return native
	}
	return filepath.Join(e.Root, native)
}

const (
	dirPerm  = 0o755
	filePerm = 0o644
)
