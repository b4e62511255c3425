package main

import (
	"context"

	"github.com/kahiin/launcher/pkg/lib"
	"github.com/kahiin/launcher/pkg/lib/platform"
)

func (a *App) startServer(ctx context.Context) error {
	a.ui.Banner("STARTING THE KAHIIN SERVER")

	command := platform.LocalScript(a.goos, a.cfg.ServerDir(), "start")
	if a.goos != "windows" {
		a.ui.Println("The server needs administrator privileges to run.")
		password, err := a.prompt.ReadSecret("sudo password: ")
		if err != nil {
			return err
		}
		// sudo -S reads the password from stdin; it never appears in argv.
		command = lib.Command{
			Command: "sudo",
			Args:    []string{"-S", command.Command},
			Dir:     command.Dir,
			Stdin:   []byte(password + "\n"),
		}
	}

	a.ui.Println("\nStarting the Kahiin server...")
	if err := a.spawn("Server", command); err != nil {
		return err
	}
	a.ui.Printf("The server will be available at: %s\n", a.cfg.ServerURL)
	return nil
}

func (a *App) startDB(ctx context.Context) error {
	a.ui.Println("\nStarting the Kahiin database...")
	return a.spawn("Database", platform.LocalScript(a.goos, a.cfg.DBDir(), "start"))
}

func (a *App) buildApp(ctx context.Context) error {
	a.ui.Println("\nBuilding the Android application...")
	return a.spawn("Android app builder", platform.LocalScript(a.goos, a.cfg.AppDir(), "build"))
}

func (a *App) stopAll(ctx context.Context) error {
	a.shutdown()
	return nil
}
