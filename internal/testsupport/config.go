package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"movefiles/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The source and destination directories exist; state and log directories
// are left for the code under test to create.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.SourcePrefix = filepath.Join(base, "src")
	cfgVal.Paths.DestinationDir = filepath.Join(base, "dst")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "state", "logs")
	cfgVal.Logging.Level = "debug"
	cfgVal.Logging.Format = "json"

	for _, dir := range []string{cfgVal.Paths.SourcePrefix, cfgVal.Paths.DestinationDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithOverwrite sets the default overwrite flag on the test config.
func WithOverwrite(overwrite bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Move.Overwrite = overwrite
	}
}

// WithDryRun sets the default dry-run flag on the test config.
func WithDryRun(dryRun bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Move.DryRun = dryRun
	}
}

// WithoutHistory disables the run journal.
func WithoutHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// WithConfigFile encodes the config to movefiles.toml in the base directory
// so tests can drive --config-file.
func WithConfigFile() ConfigOption {
	return func(b *configBuilder) {
		WriteConfigFile(b.t, b.cfg)
	}
}

// WriteConfigFile encodes cfg to ConfigFile(cfg), replacing any earlier copy,
// and returns the path.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()

	path := ConfigFile(cfg)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create config file: %v", err)
	}
	defer f.Close()
	if err := cfg.Encode(f); err != nil {
		t.Fatalf("encode config file: %v", err)
	}
	return path
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}

// ConfigFile returns the path written by WithConfigFile.
func ConfigFile(cfg *config.Config) string {
	return filepath.Join(BaseDir(cfg), "movefiles.toml")
}
