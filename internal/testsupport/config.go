package testsupport

import (
	"path/filepath"
	"testing"

	"adlib/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test:
// reproduction files resolve against <base>/files and logs go to <base>/logs.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Files.BaseDir = filepath.Join(base, "files")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.Links.TimeoutSeconds = 2

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return builder.cfg
}

// WithOutputFields sets the default export selection.
func WithOutputFields(fields ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Fields = fields
	}
}

// WithDelimiter overrides the CSV delimiter.
func WithDelimiter(delim string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Input.CSVDelimiter = delim
	}
}

// WithEncoding overrides the input encoding label.
func WithEncoding(label string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Input.Encoding = label
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Files.BaseDir)
}
