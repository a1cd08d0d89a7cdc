// internal/config/config.go
//
// This package handles configuration and the .openstudio directory structure.
// Every project opened with openstudio gets a .openstudio/ folder in its root.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectDirName is the name of the directory we create in each project
	ProjectDirName = ".openstudio"

	UnitsSI = "si"
	UnitsIP = "ip"

	defaultModelPath      = "model.osm.yaml"
	defaultLogLevel       = "info"
	defaultDefaultedColor = "#5FAF5F"
	defaultSetColor       = "#FFFFFF"
	defaultFocusColor     = "#FFC627"
)

// Environment overrides, read after the project file.
const (
	EnvUnits    = "OPENSTUDIO_UNITS"
	EnvLogLevel = "OPENSTUDIO_LOG_LEVEL"
)

const defaultProjectConfigYAML = `# openstudio project configuration
version: 1

# Display units for quantity fields: si or ip. Toggle at runtime with ctrl+u.
units: si

# debug, info, warn or error
log_level: info

model:
  # Relative paths resolve against the project directory.
  path: model.osm.yaml

inspector:
  defaulted_color: "#5FAF5F"
  set_color: "#FFFFFF"
  focus_color: "#FFC627"
`

// ModelConfig locates the model document.
type ModelConfig struct {
	Path string `yaml:"path"`
}

// InspectorConfig holds the colors the inspector renders fields with.
type InspectorConfig struct {
	DefaultedColor string `yaml:"defaulted_color"`
	SetColor       string `yaml:"set_color"`
	FocusColor     string `yaml:"focus_color"`
}

// ProjectConfig models .openstudio/config.yaml.
type ProjectConfig struct {
	Version   int             `yaml:"version"`
	Units     string          `yaml:"units"`
	LogLevel  string          `yaml:"log_level"`
	Model     ModelConfig     `yaml:"model"`
	Inspector InspectorConfig `yaml:"inspector"`
}

// Config holds the runtime configuration.
type Config struct {
	// ProjectDir is the directory openstudio was started from
	ProjectDir string

	// StateDir is ProjectDir/.openstudio
	StateDir string

	Project ProjectConfig
}

// InitProjectDir creates the .openstudio directory structure in the given
// project directory and writes a default config.yaml when none exists.
//
// Structure created:
// .openstudio/
// ├── config.yaml
// ├── logs/         <- openstudio.log
// └── backups/      <- previous model documents, one per save
func InitProjectDir(projectDir string) error {
	root := filepath.Join(projectDir, ProjectDirName)
	dirs := []string{
		filepath.Join(root, "logs"),
		filepath.Join(root, "backups"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return ensureProjectConfig(filepath.Join(root, "config.yaml"))
}

// NewConfig loads the project configuration for projectDir. A missing config
// file yields defaults; environment overrides are applied last.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir: projectDir,
		StateDir:   filepath.Join(projectDir, ProjectDirName),
		Project:    defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.StateDir, "logs")
}

// BackupsDir returns the directory previous model documents are copied to
func (c *Config) BackupsDir() string {
	return filepath.Join(c.StateDir, "backups")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.StateDir, "config.yaml")
}

// ModelPath returns the absolute path of the model document.
func (c *Config) ModelPath() string {
	return c.Project.Model.Path
}

// IsIP reports whether quantities display in IP units.
func (c *Config) IsIP() bool {
	return c.Project.Units == UnitsIP
}

// LogLevel returns the configured log level name.
func (c *Config) LogLevel() string {
	return c.Project.LogLevel
}

// SetUnits updates the display units and persists them to config.yaml.
// Only units is written; environment overrides and a model path given on
// the command line stay in memory.
func (c *Config) SetUnits(units string) error {
	units = strings.ToLower(strings.TrimSpace(units))
	if units != UnitsSI && units != UnitsIP {
		return fmt.Errorf("config: units must be %q or %q", UnitsSI, UnitsIP)
	}
	stored, err := c.readProjectConfig()
	if err != nil {
		return err
	}
	stored.Units = units
	if err := c.saveProjectConfig(stored); err != nil {
		return err
	}
	c.Project.Units = units
	return nil
}

func (c *Config) loadProjectConfig() error {
	parsed, err := c.readProjectConfig()
	if err != nil {
		return err
	}
	c.Project = parsed
	return nil
}

// readProjectConfig returns config.yaml as stored on disk, with defaults
// filled in. A missing file yields the defaults.
func (c *Config) readProjectConfig() (ProjectConfig, error) {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			pc := defaultProjectConfig()
			pc.normalize(c.ProjectDir)
			return pc, nil
		}
		return ProjectConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return ProjectConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.ProjectDir)
	if err := parsed.validate(); err != nil {
		return ProjectConfig{}, fmt.Errorf("config: %w", err)
	}
	return parsed, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvUnits); v != "" {
		c.Project.Units = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Project.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	return nil
}

func defaultProjectConfig() ProjectConfig {
	pc := ProjectConfig{}
	pc.applyDefaults()
	return pc
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if pc.Units == "" {
		pc.Units = UnitsSI
	}
	if pc.LogLevel == "" {
		pc.LogLevel = defaultLogLevel
	}
	if pc.Model.Path == "" {
		pc.Model.Path = defaultModelPath
	}
	if pc.Inspector.DefaultedColor == "" {
		pc.Inspector.DefaultedColor = defaultDefaultedColor
	}
	if pc.Inspector.SetColor == "" {
		pc.Inspector.SetColor = defaultSetColor
	}
	if pc.Inspector.FocusColor == "" {
		pc.Inspector.FocusColor = defaultFocusColor
	}
}

func (pc *ProjectConfig) normalize(base string) {
	pc.Units = strings.ToLower(strings.TrimSpace(pc.Units))
	pc.LogLevel = strings.ToLower(strings.TrimSpace(pc.LogLevel))
	pc.Model.Path = resolvePath(base, pc.Model.Path)
	pc.Inspector.DefaultedColor = strings.TrimSpace(pc.Inspector.DefaultedColor)
	pc.Inspector.SetColor = strings.TrimSpace(pc.Inspector.SetColor)
	pc.Inspector.FocusColor = strings.TrimSpace(pc.Inspector.FocusColor)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	switch pc.Units {
	case UnitsSI, UnitsIP:
	default:
		return fmt.Errorf("units must be %q or %q, got %q", UnitsSI, UnitsIP, pc.Units)
	}
	switch pc.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", pc.LogLevel)
	}
	if pc.Model.Path == "" {
		return fmt.Errorf("model.path is required")
	}
	for name, color := range map[string]string{
		"inspector.defaulted_color": pc.Inspector.DefaultedColor,
		"inspector.set_color":       pc.Inspector.SetColor,
		"inspector.focus_color":     pc.Inspector.FocusColor,
	} {
		if !validColor(color) {
			return fmt.Errorf("%s %q must be a #RRGGBB hex color", name, color)
		}
	}
	return nil
}

func validColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}

func (c *Config) saveProjectConfig(out ProjectConfig) error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	out.applyDefaults()
	out.normalize(c.ProjectDir)
	if err := out.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.StateDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure state dir: %w", err)
	}
	if rel, err := filepath.Rel(c.ProjectDir, out.Model.Path); err == nil && !strings.HasPrefix(rel, "..") {
		out.Model.Path = rel
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
