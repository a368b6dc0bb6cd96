package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/loomlang/loom/cli/internal/config"
	"github.com/loomlang/loom/cli/internal/ui"
	"github.com/loomlang/loom/cli/internal/watch"
	"github.com/loomlang/loom/internal/debug"
	"github.com/loomlang/loom/lsl/resolver"
)

var compileCmd = &cobra.Command{
	Use:     "compile [schema file]",
	Aliases: []string{"build"},
	Short:   "Compile a Loom schema into application artifacts",
	Long: `Compile parses and resolves a Loom schema, then writes the artifacts it
describes under the output directory:

- typescript/application.ts       typed interfaces and enums
- graphql/application.graphql     named queries
- prisma/application.prisma       database schema`,
	Args: maximumArgs(1),
	RunE: runCompile,
}

var (
	compileOutput string
	compileWatch  bool
)

func init() {
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "Output directory (default from config)")
	compileCmd.Flags().BoolVarP(&compileWatch, "watch", "w", false, "Recompile whenever the schema changes")

	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	schemaFile := schemaPath(cfg, args)
	outputDir := cfg.OutputDir
	if compileOutput != "" {
		outputDir = compileOutput
	}

	if compileWatch {
		return runCompileWatch(schemaFile, outputDir)
	}

	ui.PrintHeader("Loom", "Compile")
	return compileOnce(schemaFile, outputDir)
}

func compileOnce(schemaFile, outputDir string) error {
	debug.Debug("compiling schema", "path", schemaFile, "output", outputDir)

	spinner, _ := ui.PrintSpinner("Compiling schema...")

	file, err := readSchema(schemaFile)
	if err != nil {
		spinner.Stop()
		return err
	}

	schema, diags := resolver.ResolveSource(file)
	if diags.HasErrors() {
		spinner.Stop()
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(file.Path, file.Data))
		return diags.ToResult()
	}

	written, err := writeArtifacts(outputDir, schema)
	if err != nil {
		spinner.Stop()
		return err
	}

	spinner.Stop()

	absPath, _ := filepath.Abs(outputDir)
	ui.PrintSuccess("Compiled %s to %s", schemaFile, absPath)
	fmt.Println()

	ui.PrintSection("Artifacts")
	ui.PrintList(written)

	return nil
}

func runCompileWatch(schemaFile, outputDir string) error {
	ui.PrintHeader("Loom", "Watch Mode")

	// Compile once up front so the watcher only has to react to changes.
	if err := compileOnce(schemaFile, outputDir); err != nil {
		return err
	}

	watcher, err := watch.NewWatcher(schemaFile, func() error {
		ui.PrintInfo("Schema changed, recompiling...")
		return compileOnce(schemaFile, outputDir)
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	ui.PrintSuccess("Watching %s for changes... (Press Ctrl+C to stop)", schemaFile)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ui.PrintInfo("\nStopping watch mode...")
	return nil
}
