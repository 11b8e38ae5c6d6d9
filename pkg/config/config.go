// Package config loads modscan's layered configuration: embedded
// defaults, then a modscan.toml in the workspace root, then MODSCAN_*
// environment variables. Later layers win.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/modscan/modscan/pkg/errors"
)

// Build tool identifiers accepted in scan.build_tool
const (
	ToolMaven = "maven"
	ToolAnt   = "ant"
	ToolNone  = "none"
)

// Config is the complete modscan configuration
type Config struct {
	Scan   ScanConfig   `koanf:"scan" toml:"scan"`
	Output OutputConfig `koanf:"output" toml:"output"`
}

// ScanConfig configures a single workspace scan
type ScanConfig struct {
	// Pattern is the Ant-style glob of report files to parse
	Pattern string `koanf:"pattern" toml:"pattern"`
	// ModuleName, when non-blank, is applied to every file and skips
	// module detection entirely
	ModuleName string `koanf:"module_name" toml:"module_name"`
	// BuildTool selects the heuristic fallbacks: maven, ant or none
	BuildTool string `koanf:"build_tool" toml:"build_tool"`
	// UseIndex resolves modules through a precomputed descriptor index
	UseIndex bool `koanf:"use_index" toml:"use_index"`
}

// OutputConfig configures result rendering
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// MavenBuild reports whether the workspace is a Maven build
func (c ScanConfig) MavenBuild() bool { return c.BuildTool == ToolMaven }

// AntBuild reports whether the workspace is an Ant build
func (c ScanConfig) AntBuild() bool { return c.BuildTool == ToolAnt }

// Load reads the configuration for a scan of the given workspace.
// Defaults always load; the workspace file and environment are optional.
func Load(workspace string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	for _, name := range []string{".modscan.toml", "modscan.toml"} {
		path := filepath.Join(workspace, name)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
			}
			break
		}
	}

	if err := k.Load(env.Provider("MODSCAN_", ".", envTransform), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enum-valued settings
func (c *Config) Validate() error {
	switch c.Scan.BuildTool {
	case ToolMaven, ToolAnt, ToolNone:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown build_tool: %s", c.Scan.BuildTool)
	}
	switch strings.ToLower(c.Output.Format) {
	case "", "auto", "term", "terminal", "text", "plain":
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown output format: %s", c.Output.Format)
	}
	return nil
}

// envTransform maps MODSCAN_SCAN_MODULE_NAME to scan.module_name. Only
// the first underscore separates the section from the key, so keys may
// themselves contain underscores.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "MODSCAN_"))
	return strings.Replace(s, "_", ".", 1)
}
