// Package scaffold implements the setup engine: Actions that run external
// commands, materialize directories and files, or patch a package.json, and
// Steps that execute an ordered list of Actions with first-failure-wins
// semantics.
//
// Actions never panic and never return errors directly. Every outcome is a
// Result; a failed Result carries an *ActionError describing whether the
// command, the filesystem, or the manifest was at fault.
//
// The two built-in Steps, ServerStep and ClientStep, own the literal templates
// they write.
package scaffold
