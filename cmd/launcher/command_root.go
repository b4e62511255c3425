package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kahiin/launcher/pkg/lib/relay"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kahiin-launcher",
		Short:         "Interactive launcher for the Kahiin project",
		Long:          "Starts the Kahiin server, database, Android build and Docker stack from a single-key menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(os.Getenv)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", envLogLevel, err)
			}
			installLogger(logger)
			logger.Debug("configuration loaded", "base", cfg.BaseDir)

			sink := relay.NewTerminal(os.Stdout)
			prompter := newTerminalPrompter(os.Stdin, sink)
			isTTY := term.IsTerminal(int(os.Stdout.Fd()))
			app := newApp(cfg, prompter, sink, os.Stdin, newUI(sink, lipgloss.NewRenderer(os.Stdout), isTTY))

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigs)
			go func() {
				<-sigs
				prompter.Restore()
				app.ui.Println("\nInterrupt detected. Stopping processes...")
				app.shutdown()
				os.Exit(0)
			}()

			return app.Run(cmd.Context())
		},
	}

	return root
}
