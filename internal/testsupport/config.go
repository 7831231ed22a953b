package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mytool/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config seeded with repository defaults and applies any
// provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{
		t:   t,
		cfg: &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDefaultName sets the hello.default_name value.
func WithDefaultName(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Hello.DefaultName = name
	}
}

// WithColor sets the output.color value.
func WithColor(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Color = mode
	}
}

// WithLogging sets the logging level and format.
func WithLogging(level, format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
		b.cfg.Logging.Format = format
	}
}

// WriteConfig encodes cfg as TOML into a fresh temp directory and returns the
// file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// IsolateHome points HOME and the working directory at empty temp
// directories so default config discovery finds nothing.
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}
