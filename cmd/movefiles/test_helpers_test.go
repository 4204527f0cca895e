package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"movefiles/internal/config"
	"movefiles/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	srcDir     string
	dstDir     string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("MOVEFILES_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg := testsupport.NewConfig(t, opts...)
	cfg.Logging.Level = "error"
	return &cliTestEnv{
		cfg:        cfg,
		configPath: testsupport.WriteConfigFile(t, cfg),
		srcDir:     cfg.Paths.SourcePrefix,
		dstDir:     cfg.Paths.DestinationDir,
	}
}

func (e *cliTestEnv) src(name string) string { return filepath.Join(e.srcDir, name) }

func (e *cliTestEnv) dst(name string) string { return filepath.Join(e.dstDir, name) }

// run executes the CLI against the environment's config file.
func (e *cliTestEnv) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return runCLI(t, append([]string{"--config-file", e.configPath}, args...), stdin)
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func requireExitCode(t *testing.T, err error, want int) {
	t.Helper()
	if got := exitCode(err); got != want {
		t.Fatalf("exit code = %d, want %d (err=%v)", got, want, err)
	}
}
