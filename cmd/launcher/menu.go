package main

import (
	"context"
	"errors"
	"io"
	"unicode"
)

type action func(a *App, ctx context.Context) error

// Run shows the main menu until the user quits, stdin closes, input fails or
// the user interrupts. Every way out stops the managed processes first and
// returns nil.
func (a *App) Run(ctx context.Context) error {
	for {
		a.showMenu()
		key, err := a.prompt.ReadKey("\nChoice: ")
		if err != nil {
			if errors.Is(err, ErrInterrupted) {
				a.ui.Println("\nInterrupt detected. Stopping processes...")
			}
			if !errors.Is(err, io.EOF) && !errors.Is(err, ErrInterrupted) {
				a.ui.Errorf("\nCould not read input: %v", err)
			}
			a.shutdown()
			return nil
		}

		if quit := a.dispatch(ctx, unicode.ToLower(key)); quit {
			a.shutdown()
			a.ui.Println("Closing the Kahiin launcher...")
			return nil
		}
		if ctx.Err() != nil {
			a.shutdown()
			return nil
		}
	}
}

func (a *App) showMenu() {
	initialized := a.tracker.IsInitialized()

	a.ui.Clear()
	a.ui.Println(logo)
	a.ui.Rule()
	a.ui.Println("                     " + a.ui.titleStyle.Render("KAHIIN PROJECT LAUNCHER"))
	a.ui.Rule()

	a.ui.Println("\n [1] Start Kahiin")
	if !initialized {
		a.ui.Println(" [2] Initialize the Kahiin database")
	} else {
		a.ui.Println(" [2] Start the Kahiin database")
		a.ui.Println(" [3] Drop the Kahiin database")
	}
	a.ui.Println(" [4] Build the Android application")
	a.ui.Println(" [5] Show process status")
	a.ui.Println(" [6] Stop all processes")
	a.ui.Println("\n [d] Start with Docker")
	a.ui.Println(" [s] Docker status")
	a.ui.Println(" [x] Stop Docker")
	a.ui.Println("\n [q] Quit")
	a.ui.Println("")
	a.ui.Rule()
}

// resolve maps a key to its action, reading the initialization state at the
// moment of the choice. ok is false for keys with no action in that state.
func (a *App) resolve(key rune) (act action, ok bool) {
	switch key {
	case '1':
		return (*App).startServer, true
	case '2':
		if a.tracker.IsInitialized() {
			return (*App).startDB, true
		}
		return (*App).initDB, true
	case '3':
		if a.tracker.IsInitialized() {
			return (*App).dropDB, true
		}
	case '4':
		return (*App).buildApp, true
	case '5':
		return (*App).showStatus, true
	case '6':
		return (*App).stopAll, true
	case 'd':
		return (*App).dockerUp, true
	case 's':
		return (*App).dockerStatus, true
	case 'x':
		return (*App).dockerDown, true
	}
	return nil, false
}

// dispatch runs the action for key and reports whether the user asked to quit.
func (a *App) dispatch(ctx context.Context, key rune) bool {
	if key == 'q' {
		return true
	}

	act, ok := a.resolve(key)
	if !ok {
		a.ui.Errorf("\nInvalid option. Please try again.")
		a.pause()
		return false
	}

	if err := act(a, ctx); err != nil {
		a.report(err)
	}
	a.pause()
	return false
}
