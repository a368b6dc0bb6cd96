package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/loomlang/loom/cli/internal/config"
)

// runCLI executes the root command against an in-memory filesystem.
func runCLI(t *testing.T, fs afero.Fs, args ...string) error {
	t.Helper()

	previous := config.AppFs
	config.AppFs = fs
	t.Cleanup(func() { config.AppFs = previous })

	resetFlags()

	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// resetFlags clears flag state left behind by earlier executions; absent
// flags are not re-defaulted by cobra.
func resetFlags() {
	compileOutput = ""
	compileWatch = false
	fmtCheck = false
	initYes = false
	initExplain = false
	versionVerbose = false
}

func memFsWithSchema(t *testing.T, path, content string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	return fs
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(content)
}

const validSchema = `model User {
  name: String
}
`

func TestCompileWritesArtifacts(t *testing.T) {
	fs := memFsWithSchema(t, "app.loom", validSchema)

	if err := runCLI(t, fs, "compile"); err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	ts := readFile(t, fs, "out/typescript/application.ts")
	if !strings.Contains(ts, "interface User") {
		t.Errorf("Expected a User interface, got %q", ts)
	}

	prisma := readFile(t, fs, "out/prisma/application.prisma")
	if !strings.Contains(prisma, "model User") {
		t.Errorf("Expected a User model, got %q", prisma)
	}

	// No queries declared, so the GraphQL artifact is present but empty.
	if graphql := readFile(t, fs, "out/graphql/application.graphql"); graphql != "" {
		t.Errorf("Expected an empty GraphQL artifact, got %q", graphql)
	}
}

func TestCompileHonorsOutputFlag(t *testing.T) {
	fs := memFsWithSchema(t, "app.loom", validSchema)

	if err := runCLI(t, fs, "compile", "--output", "build"); err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	exists, err := afero.Exists(fs, "build/prisma/application.prisma")
	if err != nil || !exists {
		t.Errorf("Expected artifacts under build/, exists=%v err=%v", exists, err)
	}
}

func TestCompileSchemaArgument(t *testing.T) {
	fs := memFsWithSchema(t, "schemas/blog.loom", validSchema)

	if err := runCLI(t, fs, "compile", "schemas/blog.loom"); err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	exists, _ := afero.Exists(fs, "out/typescript/application.ts")
	if !exists {
		t.Error("Expected artifacts for the named schema file")
	}
}

func TestCompileMissingSchema(t *testing.T) {
	err := runCLI(t, afero.NewMemMapFs(), "compile")
	if err == nil {
		t.Fatal("Expected an error for a missing schema file")
	}
	if code := ExitCode(err); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}

func TestCompileInvalidSchemaWritesNothing(t *testing.T) {
	fs := memFsWithSchema(t, "app.loom", `model Image {
  country: Country
}
`)

	err := runCLI(t, fs, "compile")
	if err == nil {
		t.Fatal("Expected an error for an unresolved reference")
	}
	if code := ExitCode(err); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}

	exists, _ := afero.Exists(fs, "out/typescript/application.ts")
	if exists {
		t.Error("Expected no artifacts for an invalid schema")
	}
}

func TestCheckValidSchema(t *testing.T) {
	fs := memFsWithSchema(t, "app.loom", validSchema)

	if err := runCLI(t, fs, "check"); err != nil {
		t.Fatalf("check failed: %v", err)
	}
}

func TestCheckReportsErrors(t *testing.T) {
	fs := memFsWithSchema(t, "app.loom", `model Empty {
}
`)

	err := runCLI(t, fs, "check")
	if err == nil {
		t.Fatal("Expected an error for an empty model")
	}
	if code := ExitCode(err); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}

func TestCheckSchemaPathFromEnvironment(t *testing.T) {
	t.Setenv("LOOM_SCHEMA", "custom.loom")
	fs := memFsWithSchema(t, "custom.loom", validSchema)

	if err := runCLI(t, fs, "check"); err != nil {
		t.Fatalf("check failed: %v", err)
	}
}

func TestFmtRewritesFile(t *testing.T) {
	fs := memFsWithSchema(t, "app.loom", `model   User{name:String}`)

	if err := runCLI(t, fs, "fmt"); err != nil {
		t.Fatalf("fmt failed: %v", err)
	}

	if got := readFile(t, fs, "app.loom"); got != validSchema {
		t.Errorf("Expected %q, got %q", validSchema, got)
	}
}

func TestFmtCheckLeavesFileAlone(t *testing.T) {
	messy := `model   User{name:String}`
	fs := memFsWithSchema(t, "app.loom", messy)

	err := runCLI(t, fs, "fmt", "--check")
	if err == nil {
		t.Fatal("Expected an error for an unformatted file")
	}
	if code := ExitCode(err); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}

	if got := readFile(t, fs, "app.loom"); got != messy {
		t.Errorf("Expected the file to be untouched, got %q", got)
	}
}

func TestFmtCheckAcceptsFormattedFile(t *testing.T) {
	fs := memFsWithSchema(t, "app.loom", validSchema)

	if err := runCLI(t, fs, "fmt", "--check"); err != nil {
		t.Fatalf("fmt --check failed on a formatted file: %v", err)
	}
}

func TestFmtReportsSyntaxErrors(t *testing.T) {
	fs := memFsWithSchema(t, "app.loom", `model {`)

	err := runCLI(t, fs, "fmt")
	if err == nil {
		t.Fatal("Expected an error for unparseable input")
	}
	if code := ExitCode(err); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}

func TestInitScaffoldsWorkingProject(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := runCLI(t, fs, "init", "myapp", "--yes"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	for _, name := range []string{"myapp/app.loom", "myapp/loom.yaml", "myapp/.env.example", "myapp/.gitignore"} {
		exists, _ := afero.Exists(fs, name)
		if !exists {
			t.Errorf("Expected %s to be created", name)
		}
	}

	// The starter schema must survive its own toolchain.
	if err := runCLI(t, fs, "check", "myapp/app.loom"); err != nil {
		t.Errorf("Expected the starter schema to validate: %v", err)
	}
	if err := runCLI(t, fs, "fmt", "myapp/app.loom", "--check"); err != nil {
		t.Errorf("Expected the starter schema to be canonically formatted: %v", err)
	}
}

func TestInitSkipsExistingFiles(t *testing.T) {
	custom := "model Thing {\n  name: String\n}\n"
	fs := memFsWithSchema(t, "myapp/app.loom", custom)

	if err := runCLI(t, fs, "init", "myapp", "--yes"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if got := readFile(t, fs, "myapp/app.loom"); got != custom {
		t.Errorf("Expected the existing schema to be preserved, got %q", got)
	}
}

func TestVersionCommand(t *testing.T) {
	if err := runCLI(t, afero.NewMemMapFs(), "version"); err != nil {
		t.Fatalf("version failed: %v", err)
	}
}

func TestUnknownCommandIsUsageError(t *testing.T) {
	err := runCLI(t, afero.NewMemMapFs(), "frobnicate")
	if err == nil {
		t.Fatal("Expected an error for an unknown command")
	}
	if code := ExitCode(err); code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	fs := memFsWithSchema(t, "app.loom", validSchema)

	err := runCLI(t, fs, "check", "--bogus")
	if err == nil {
		t.Fatal("Expected an error for an unknown flag")
	}
	if code := ExitCode(err); code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
}

func TestTooManyArgumentsIsUsageError(t *testing.T) {
	err := runCLI(t, afero.NewMemMapFs(), "check", "a.loom", "b.loom")
	if err == nil {
		t.Fatal("Expected an error for excess arguments")
	}
	if code := ExitCode(err); code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
}

func TestBareInvocationPrintsHelp(t *testing.T) {
	if err := runCLI(t, afero.NewMemMapFs()); err != nil {
		t.Fatalf("bare invocation failed: %v", err)
	}
}

func TestExitCode(t *testing.T) {
	usage := &usageError{err: errors.New("bad flag")}

	tests := []struct {
		err      error
		expected int
	}{
		{nil, 0},
		{errors.New("boom"), 1},
		{usage, 2},
		{fmt.Errorf("wrapped: %w", usage), 2},
	}

	for _, test := range tests {
		if got := ExitCode(test.err); got != test.expected {
			t.Errorf("Expected exit code %d for %v, got %d", test.expected, test.err, got)
		}
	}
}
