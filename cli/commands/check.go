package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/loomlang/loom/cli/internal/config"
	"github.com/loomlang/loom/cli/internal/ui"
	"github.com/loomlang/loom/lsl/resolver"
)

var checkCmd = &cobra.Command{
	Use:   "check [schema file]",
	Short: "Validate a Loom schema without writing anything",
	Long: `Check parses and resolves a Loom schema and reports every problem it
finds. Nothing is written; the exit code is 1 when the schema has errors.`,
	Args: maximumArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	schemaFile := schemaPath(cfg, args)

	file, err := readSchema(schemaFile)
	if err != nil {
		return err
	}

	schema, diags := resolver.ResolveSource(file)
	if diags.HasErrors() {
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(file.Path, file.Data))
		return diags.ToResult()
	}

	ui.PrintSuccess("%s is valid", schemaFile)
	fmt.Println()

	ui.PrintSection("Declarations")
	ui.PrintTable(
		[]string{"Kind", "Count"},
		[][]string{
			{"Models", strconv.Itoa(len(schema.Models))},
			{"Enums", strconv.Itoa(len(schema.Enums))},
			{"Queries", strconv.Itoa(len(schema.Queries))},
			{"Routes", strconv.Itoa(len(schema.Routes))},
			{"Components", strconv.Itoa(len(schema.Components))},
		},
	)

	return nil
}
