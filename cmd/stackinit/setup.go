package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/stackinit/internal/adapters/command"
	"github.com/felixgeelhaar/stackinit/internal/adapters/filesystem"
	"github.com/felixgeelhaar/stackinit/internal/domain/orchestrator"
	"github.com/felixgeelhaar/stackinit/internal/domain/scaffold"
	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// Overridable in tests.
var (
	workingDir = os.Getwd

	newSetupRunner = func(cmd *cobra.Command) ports.CommandRunner {
		return command.NewStreamingRunner(command.WithStdio(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()))
	}
)

func runSetup(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	root, err := workingDir()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	ctx := ports.ContextWithLogger(cmd.Context(), s.logger)
	s.logger.Debug(ctx, "starting setup", ports.F("root", root))

	env := scaffold.Env{
		Root:     root,
		FS:       filesystem.NewRealFileSystem(),
		Runner:   newSetupRunner(cmd),
		Reporter: s.console,
		Logger:   s.logger,
	}

	if _, err := orchestrator.New(env, orchestrator.WithRunID(s.runID)).Run(ctx); err != nil {
		return &reportedError{err: err}
	}
	return nil
}
