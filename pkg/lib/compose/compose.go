// Package compose drives the Docker Compose deployment of Kahiin through the
// docker and compose command line tools.
package compose

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/kahiin/launcher/pkg/lib"
	"github.com/kahiin/launcher/pkg/lib/runner"
)

var logger = log.New(io.Discard)

// SetLogger replaces the package logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Compose describes where the compose project lives and which CLI drives it.
type Compose struct {
	// BaseDir holds the compose file and the docker .env file.
	BaseDir string
	// Command is the compose CLI, e.g. ["docker-compose"] or ["docker", "compose"].
	Command []string
	// File is the compose file name relative to BaseDir.
	File string
	// Filter is the container name filter used for status.
	Filter string
	// Docker is the docker CLI binary.
	Docker string
}

// EnvPath is the docker .env file read by compose.
func (c Compose) EnvPath() string {
	return filepath.Join(c.BaseDir, ".env")
}

func (c Compose) docker() string {
	if c.Docker == "" {
		return "docker"
	}
	return c.Docker
}

// DockerAvailable probes "docker --version".
func (c Compose) DockerAvailable(ctx context.Context) error {
	version, err := runner.Output(ctx, lib.Command{Command: c.docker(), Args: []string{"--version"}})
	if err != nil {
		return &lib.DependencyError{Missing: []string{c.docker()}, Err: err}
	}
	logger.Debug("docker available", "version", version)
	return nil
}

// Available probes both docker and the compose CLI.
func (c Compose) Available(ctx context.Context) error {
	if err := c.DockerAvailable(ctx); err != nil {
		return err
	}
	if len(c.Command) == 0 {
		return &lib.DependencyError{Err: fmt.Errorf("no compose command configured")}
	}
	probe := c.compose("--version")
	version, err := runner.Output(ctx, probe)
	if err != nil {
		return &lib.DependencyError{Missing: []string{c.Command[0]}, Err: err}
	}
	logger.Debug("compose available", "version", version)
	return nil
}

func (c Compose) compose(args ...string) lib.Command {
	all := append(append([]string(nil), c.Command[1:]...), args...)
	return lib.Command{Command: c.Command[0], Args: all, Dir: c.BaseDir}
}

// UpCommand starts the stack detached.
func (c Compose) UpCommand() lib.Command {
	return c.compose("-f", c.File, "up", "-d")
}

// DownCommand stops and removes the stack.
func (c Compose) DownCommand() lib.Command {
	return c.compose("-f", c.File, "down")
}

// StatusCommand lists the project's running containers.
func (c Compose) StatusCommand() lib.Command {
	return lib.Command{Command: c.docker(), Args: []string{"ps", "--filter", "name=" + c.Filter}, Dir: c.BaseDir}
}

type composeFile struct {
	Services map[string]struct {
		ContainerName string `yaml:"container_name"`
		Image         string `yaml:"image"`
	} `yaml:"services"`
}

// Services returns the sorted service names declared in the compose file.
func (c Compose) Services() ([]string, error) {
	path := filepath.Join(c.BaseDir, c.File)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file composeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	names := make([]string, 0, len(file.Services))
	for name := range file.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
