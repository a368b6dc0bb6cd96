package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/loomlang/loom/cli/internal/config"
	"github.com/loomlang/loom/generator/graphql"
	"github.com/loomlang/loom/generator/prisma"
	"github.com/loomlang/loom/generator/typescript"
	"github.com/loomlang/loom/internal/debug"
	"github.com/loomlang/loom/lsl/ir"
	"github.com/loomlang/loom/lsl/source"
)

// schemaPath resolves the schema file to operate on: an explicit argument
// wins, otherwise the configured path.
func schemaPath(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.SchemaPath
}

// readSchema loads a schema file through the application filesystem.
func readSchema(path string) (source.File, error) {
	if _, err := config.AppFs.Stat(path); os.IsNotExist(err) {
		return source.File{}, fmt.Errorf("schema file not found: %s", path)
	}

	content, err := afero.ReadFile(config.AppFs, path)
	if err != nil {
		return source.File{}, fmt.Errorf("failed to read schema: %w", err)
	}
	return source.NewFile(path, string(content)), nil
}

// artifact pairs an output path, relative to the output directory, with the
// emitter producing its content.
type artifact struct {
	path string
	emit func(*ir.Schema) string
}

var artifacts = []artifact{
	{filepath.Join("typescript", "application.ts"), typescript.Generate},
	{filepath.Join("graphql", "application.graphql"), graphql.Generate},
	{filepath.Join("prisma", "application.prisma"), prisma.Generate},
}

// writeArtifacts emits every artifact for the schema under outputDir and
// returns the paths written.
func writeArtifacts(outputDir string, schema *ir.Schema) ([]string, error) {
	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		target := filepath.Join(outputDir, a.path)
		if err := config.AppFs.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := afero.WriteFile(config.AppFs, target, []byte(a.emit(schema)), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", target, err)
		}
		debug.Debug("wrote artifact", "path", target)
		written = append(written, target)
	}
	return written, nil
}
