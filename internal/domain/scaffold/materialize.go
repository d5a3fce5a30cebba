package scaffold

import (
	"context"
	"errors"
	"fmt"
)

var errNotDirectory = errors.New("path exists but is not a directory")

// EnsureDirectory creates a directory and its missing parents.
// An existing directory is reported as skipped, never as an error.
type EnsureDirectory struct {
	Path string
}

// Kind returns KindEnsureDirectory.
func (a EnsureDirectory) Kind() Kind { return KindEnsureDirectory }

// Describe returns a short summary of the action.
func (a EnsureDirectory) Describe() string { return "ensure directory " + a.Path }

// Execute creates the directory if it is absent.
func (a EnsureDirectory) Execute(_ context.Context, env Env) Result {
	path := env.resolve(a.Path)

	if env.FS.Exists(path) {
		if !env.FS.IsDir(path) {
			return a.fail(env, errNotDirectory)
		}
		env.Reporter.Skip(fmt.Sprintf("%s already exists, skipping creation.", a.Path))
		return NewResult(a, StatusSkipped, nil)
	}

	if err := env.FS.MkdirAll(path, dirPerm); err != nil {
		return a.fail(env, err)
	}

	env.Reporter.Success("Created " + a.Path)
	return NewResult(a, StatusDone, nil)
}

func (a EnsureDirectory) fail(env Env, err error) Result {
	actionErr := &ActionError{Kind: FailureFilesystem, Target: a.Path, Err: err}
	env.Reporter.Failure("Error creating directory "+a.Path, err)
	return NewResult(a, StatusFailed, actionErr)
}

// WriteFile writes Content as the full contents of Path.
// With Overwrite set, an existing file is truncated and replaced; without it,
// an existing file is left alone and the action is skipped.
type WriteFile struct {
	Path      string
	Content   string
	Overwrite bool
}

// Kind returns KindWriteFile.
func (a WriteFile) Kind() Kind { return KindWriteFile }

// Describe returns a short summary of the action.
func (a WriteFile) Describe() string { return "write " + a.Path }

// Execute writes the file.
func (a WriteFile) Execute(_ context.Context, env Env) Result {
	path := env.resolve(a.Path)
	existed := env.FS.Exists(path)

	if existed && !a.Overwrite {
		env.Reporter.Skip(fmt.Sprintf("%s already exists, leaving it unchanged.", a.Path))
		return NewResult(a, StatusSkipped, nil)
	}

	if err := env.FS.WriteFile(path, []byte(a.Content), filePerm); err != nil {
		actionErr := &ActionError{Kind: FailureFilesystem, Target: a.Path, Err: err}
		env.Reporter.Failure("Error writing "+a.Path, err)
		return NewResult(a, StatusFailed, actionErr)
	}

	if existed {
		env.Reporter.Success("Updated " + a.Path)
	} else {
		env.Reporter.Success("Created " + a.Path)
	}
	return NewResult(a, StatusDone, nil)
}
