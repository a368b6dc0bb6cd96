package commands

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/loomlang/loom/cli/internal/config"
	"github.com/loomlang/loom/cli/internal/ui"
	"github.com/loomlang/loom/lsl/diagnostics"
	"github.com/loomlang/loom/lsl/format"
	"github.com/loomlang/loom/lsl/parser"
)

var fmtCmd = &cobra.Command{
	Use:     "fmt [schema file]",
	Aliases: []string{"format"},
	Short:   "Reformat a Loom schema in place",
	Long: `Fmt rewrites a Loom schema into its canonical layout: two-space
indentation, one declaration per block, normalized spacing.

With --check the file is left untouched and the exit code is 1 when
formatting would change it.`,
	Args: maximumArgs(1),
	RunE: runFmt,
}

var fmtCheck bool

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Report instead of writing; exit 1 when not formatted")

	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	schemaFile := schemaPath(cfg, args)

	file, err := readSchema(schemaFile)
	if err != nil {
		return err
	}

	// Parse up front so syntax problems come out as pretty diagnostics
	// instead of a bare error string.
	if _, err := parser.ParseString(file.Path, file.Data); err != nil {
		diags := diagnostics.FromError(parser.Diagnose(err))
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(file.Path, file.Data))
		return diags.ToResult()
	}

	formatted, err := format.Reformat(file.Data, 2)
	if err != nil {
		return fmt.Errorf("failed to reformat schema: %w", err)
	}

	if fmtCheck {
		if formatted != file.Data {
			return fmt.Errorf("%s is not formatted", schemaFile)
		}
		ui.PrintSuccess("%s is formatted", schemaFile)
		return nil
	}

	if formatted == file.Data {
		ui.PrintInfo("%s is already formatted", schemaFile)
		return nil
	}

	if err := afero.WriteFile(config.AppFs, schemaFile, []byte(formatted), 0644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}

	ui.PrintSuccess("Reformatted %s", schemaFile)
	return nil
}
