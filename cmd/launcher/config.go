package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kahiin/launcher/pkg/lib/compose"
	"github.com/kahiin/launcher/pkg/lib/relay"
)

const (
	envBaseDir  = "LAUNCHER_BASE_DIR"
	envConfig   = "LAUNCHER_CONFIG"
	envLogLevel = "LAUNCHER_LOG_LEVEL"

	configFileName = "launcher.toml"
)

// Config holds the launcher settings. Everything except BaseDir can be
// overridden in launcher.toml next to the launcher.
type Config struct {
	BaseDir string `toml:"-"`

	ServerURL      string   `toml:"server_url"`
	DockerCommand  string   `toml:"docker_command"`
	ComposeCommand []string `toml:"compose_command"`
	ComposeFile    string   `toml:"compose_file"`
	DockerFilter   string   `toml:"docker_filter"`
	InitRequires   []string `toml:"init_requires"`
	TailLines      int      `toml:"tail_lines"`

	LogLevel string `toml:"-"`
}

func defaultConfig(baseDir string) Config {
	return Config{
		BaseDir:        baseDir,
		ServerURL:      "http://localhost:5000",
		DockerCommand:  "docker",
		ComposeCommand: []string{"docker-compose"},
		ComposeFile:    "docker-compose.yml",
		DockerFilter:   "kahiin",
		InitRequires:   []string{"mysql"},
		TailLines:      relay.DefaultTailLines,
	}
}

// DBDir is the kahiin-db checkout.
func (c Config) DBDir() string { return filepath.Join(c.BaseDir, "kahiin-db") }

// AppDir is the kahiin-app (Android) checkout.
func (c Config) AppDir() string { return filepath.Join(c.BaseDir, "kahiin-app") }

// ServerDir is the kahiin server checkout.
func (c Config) ServerDir() string { return filepath.Join(c.BaseDir, "kahiin") }

// DBEnvFile is the environment file written by the database init scripts.
func (c Config) DBEnvFile() string { return filepath.Join(c.DBDir(), ".env") }

func (c Config) compose() compose.Compose {
	return compose.Compose{
		BaseDir: c.BaseDir,
		Command: c.ComposeCommand,
		File:    c.ComposeFile,
		Filter:  c.DockerFilter,
		Docker:  c.DockerCommand,
	}
}

// loadConfig resolves the base directory, then applies launcher.toml if it
// exists. Unknown keys are rejected.
func loadConfig(getenv func(string) string) (Config, error) {
	baseDir := strings.TrimSpace(getenv(envBaseDir))
	if baseDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return Config{}, fmt.Errorf("failed to locate launcher: %w", err)
		}
		baseDir = filepath.Dir(exe)
	}
	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return Config{}, err
	}

	cfg := defaultConfig(baseDir)
	cfg.LogLevel = strings.TrimSpace(getenv(envLogLevel))

	path := strings.TrimSpace(getenv(envConfig))
	explicit := path != ""
	if !explicit {
		path = filepath.Join(baseDir, configFileName)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	decoder := toml.NewDecoder(f).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.DockerCommand) == "" {
		return errors.New("docker_command must not be empty")
	}
	if len(c.ComposeCommand) == 0 || strings.TrimSpace(c.ComposeCommand[0]) == "" {
		return errors.New("compose_command must not be empty")
	}
	if strings.TrimSpace(c.ComposeFile) == "" {
		return errors.New("compose_file must not be empty")
	}
	if c.TailLines <= 0 {
		return errors.New("tail_lines must be positive")
	}
	return nil
}
