package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPort is the dev-server port used when the manifest does not set one.
const DefaultPort = 8000

// Config is the parsed mbweb.toml content.
type Config struct {
	Package PackageConfig `toml:"package"`
	Serve   ServeConfig   `toml:"serve"`
	Tools   ToolsConfig   `toml:"tools"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type ServeConfig struct {
	Port int `toml:"port"`
}

// ToolsConfig overrides the external tool command lines. Each value is a
// full command split on whitespace; empty means the built-in default.
type ToolsConfig struct {
	Wasm string `toml:"wasm"`
	Lint string `toml:"lint"`
	Fmt  string `toml:"fmt"`
	Test string `toml:"test"`
}

// DefaultConfig returns the configuration used when no manifest exists.
func DefaultConfig() Config {
	return Config{Serve: ServeConfig{Port: DefaultPort}}
}

// LoadConfig parses an mbweb.toml file. Only [package].name is mandatory;
// everything else falls back to defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if cfg.Serve.Port <= 0 || cfg.Serve.Port > 65535 {
		return Config{}, fmt.Errorf("%s: [serve].port %d out of range", path, cfg.Serve.Port)
	}
	return cfg, nil
}

// WasmCommand returns the engine compiler invocation for the layout.
func (l Layout) WasmCommand() []string {
	if cmd := fields(l.Config.Tools.Wasm); cmd != nil {
		return cmd
	}
	return []string{
		"wasm-pack", "build", l.WasmCrate,
		"--target", "web",
		"--out-dir", l.WasmPkg,
	}
}

// LintCommand returns the delegated linter invocation.
func (l Layout) LintCommand() []string {
	if cmd := fields(l.Config.Tools.Lint); cmd != nil {
		return cmd
	}
	return []string{"biome", "lint", l.SrcDir}
}

// FmtCommand returns the delegated formatter invocation.
func (l Layout) FmtCommand() []string {
	if cmd := fields(l.Config.Tools.Fmt); cmd != nil {
		return cmd
	}
	return []string{"biome", "format", "--write", l.SrcDir}
}

// TestCommand returns the delegated test-runner invocation.
func (l Layout) TestCommand() []string {
	if cmd := fields(l.Config.Tools.Test); cmd != nil {
		return cmd
	}
	return []string{"vitest", "run"}
}

func fields(command string) []string {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil
	}
	return parts
}
