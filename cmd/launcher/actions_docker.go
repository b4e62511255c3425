package main

import (
	"context"
	"strings"

	"github.com/kahiin/launcher/pkg/lib/compose"
)

func (a *App) dockerUp(ctx context.Context) error {
	a.ui.Banner("STARTING KAHIIN WITH DOCKER")

	if err := a.compose.Available(ctx); err != nil {
		a.ui.Errorf("Docker and/or Docker Compose are not installed!")
		a.ui.Println("Please install Docker and Docker Compose to use this feature.")
		return err
	}

	if !a.compose.EnvExists() && a.tracker.IsInitialized() {
		if err := a.prepareDockerEnv(); err != nil {
			a.ui.Errorf("Error while creating the .env file: %v", err)
		}
	}

	if services, err := a.compose.Services(); err == nil && len(services) > 0 {
		a.ui.Printf("Services: %s\n", strings.Join(services, ", "))
	}

	a.ui.Println("Starting the Docker containers...")
	if err := a.spawn("Docker Compose", a.compose.UpCommand()); err != nil {
		return err
	}
	a.ui.Printf("\nKahiin is available at: %s\n", a.cfg.ServerURL)
	return nil
}

// prepareDockerEnv writes the docker .env, reusing the database env file when
// the init scripts produced one.
func (a *App) prepareDockerEnv() error {
	if compose.HasEnv(a.cfg.DBEnvFile()) {
		root, err := a.prompt.ReadSecret("Database root password: ")
		if err != nil {
			return err
		}
		env, err := compose.DeriveEnv(a.cfg.DBEnvFile(), root)
		if err != nil {
			return err
		}
		if err := a.compose.WriteEnv(env); err != nil {
			return err
		}
		a.ui.Println("Docker configuration created from the existing settings.")
		return nil
	}

	env := make(map[string]string, len(compose.EnvFields))
	for _, f := range compose.EnvFields {
		label := f.Prompt
		if f.Default != "" {
			label += " [" + f.Default + "]"
		}
		read := a.prompt.ReadLine
		if f.Secret {
			read = a.prompt.ReadSecret
		}
		value, err := read(label + ": ")
		if err != nil {
			return err
		}
		if value == "" {
			value = f.Default
		}
		env[f.Key] = value
	}
	if err := validateEnv(env); err != nil {
		return err
	}
	if err := a.compose.WriteEnv(env); err != nil {
		return err
	}
	a.ui.Println("Docker configuration created.")
	return nil
}

func (a *App) dockerStatus(ctx context.Context) error {
	a.ui.Banner("KAHIIN DOCKER CONTAINER STATUS")

	if err := a.compose.DockerAvailable(ctx); err != nil {
		a.ui.Errorf("Docker is not installed!")
		return err
	}

	a.ui.Println("Docker containers currently running:")
	return a.runForeground(ctx, a.compose.StatusCommand())
}

func (a *App) dockerDown(ctx context.Context) error {
	a.ui.Banner("STOPPING THE KAHIIN DOCKER CONTAINERS")

	if err := a.compose.Available(ctx); err != nil {
		a.ui.Errorf("Docker and/or Docker Compose are not installed!")
		return err
	}

	a.ui.Println("Stopping the Docker containers...")
	if err := a.runForeground(ctx, a.compose.DownCommand()); err != nil {
		return err
	}
	a.ui.Println("The Docker containers have been stopped.")
	return nil
}
