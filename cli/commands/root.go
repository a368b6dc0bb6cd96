// Package commands wires up the loom CLI.
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Compiler for Loom application schemas",
	Long: `Loom compiles a single .loom schema into the artifacts an application
is built from: TypeScript interfaces, GraphQL queries, and a Prisma
data model.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return &usageError{err: fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
	},
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
}

// Execute runs the CLI and returns the error of the invoked command, if any.
func Execute() error {
	return rootCmd.Execute()
}

// usageError marks errors caused by how the command was invoked rather than
// by the schema or the environment.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ExitCode maps an error returned by Execute to a process exit code: 0 on
// success, 2 for usage errors, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usage *usageError
	if errors.As(err, &usage) {
		return 2
	}
	return 1
}

// maximumArgs is like cobra.MaximumNArgs except that excess arguments count
// as a usage error, so they exit with code 2.
func maximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return &usageError{err: fmt.Errorf("accepts at most %d arg(s), received %d", n, len(args))}
		}
		return nil
	}
}
