package main

import (
	"context"
	"errors"

	"github.com/kahiin/launcher/pkg/lib"
	"github.com/kahiin/launcher/pkg/lib/compose"
	"github.com/kahiin/launcher/pkg/lib/runner"
)

const dropConfirmation = "CONFIRM"

// initInput is what the init script needs, collected from prompts.
type initInput struct {
	DBUser        string
	DBPassword    string
	DBName        string
	DBHost        string
	RootPassword  string
	Email         string
	EmailPassword string
	SMTPServer    string
	SMTPPort      string
	EncryptionKey string
}

// args is the positional argument list of the initDB scripts.
func (in initInput) args() []string {
	return []string{
		in.DBName,
		in.DBUser,
		in.DBPassword,
		in.DBHost,
		in.Email,
		in.EmailPassword,
		in.SMTPServer,
		in.SMTPPort,
		in.EncryptionKey,
		in.RootPassword,
	}
}

func (in initInput) env() map[string]string {
	return map[string]string{
		compose.KeyDBName:        in.DBName,
		compose.KeyDBUser:        in.DBUser,
		compose.KeyDBPassword:    in.DBPassword,
		compose.KeyDBHost:        in.DBHost,
		compose.KeyDBRootPass:    in.RootPassword,
		compose.KeyEmail:         in.Email,
		compose.KeyEmailPassword: in.EmailPassword,
		compose.KeySMTPServer:    in.SMTPServer,
		compose.KeySMTPPort:      in.SMTPPort,
		compose.KeyEncryptionKey: in.EncryptionKey,
	}
}

// promptField is one prompt of the init form.
type promptField struct {
	label  string
	secret bool
	def    string
	dst    *string
}

func (a *App) readInitInput() (initInput, error) {
	var in initInput
	database := []promptField{
		{label: "\nMySQL user name: ", dst: &in.DBUser},
		{label: "MySQL password: ", secret: true, dst: &in.DBPassword},
		{label: "Database name: ", dst: &in.DBName},
		{label: "Host [localhost]: ", def: "localhost", dst: &in.DBHost},
		{label: "MySQL root password: ", secret: true, dst: &in.RootPassword},
	}
	email := []promptField{
		{label: "Notification email address: ", dst: &in.Email},
		{label: "Email password: ", secret: true, dst: &in.EmailPassword},
		{label: "SMTP server: ", dst: &in.SMTPServer},
		{label: "SMTP port [587]: ", def: "587", dst: &in.SMTPPort},
		{label: "Encryption key (at least 16 characters): ", secret: true, dst: &in.EncryptionKey},
	}

	a.ui.Infof("\nPlease enter the following information:")
	if err := a.readFields(database); err != nil {
		return in, err
	}
	a.ui.Infof("\nEmail configuration:")
	if err := a.readFields(email); err != nil {
		return in, err
	}
	return in, nil
}

func (a *App) readFields(fields []promptField) error {
	for _, f := range fields {
		read := a.prompt.ReadLine
		if f.secret {
			read = a.prompt.ReadSecret
		}
		value, err := read(f.label)
		if err != nil {
			return err
		}
		if value == "" {
			value = f.def
		}
		*f.dst = value
	}
	return nil
}

func (a *App) initDB(ctx context.Context) error {
	a.ui.Banner("INITIALIZING THE KAHIIN DATABASE")

	a.ui.Println("Checking required tools...")
	if err := runner.LookupAll(a.cfg.InitRequires...); err != nil {
		return err
	}

	in, err := a.readInitInput()
	if err != nil {
		return err
	}
	if err := validateEnv(in.env()); err != nil {
		return err
	}

	script := a.detector.Script(a.cfg.DBDir(), "initDB")
	if err := script.Prepare(); err != nil {
		return err
	}

	a.ui.Successf("\nInitializing with %s...", script.Name)
	a.ui.Println("Running...\n")

	err = a.runForeground(ctx, script.Command(in.args()...))
	var failure *lib.ScriptFailureError
	switch {
	case err == nil:
		a.ui.Successf("\nDatabase initialization completed successfully.")
		a.markInitialized(true)
		return nil
	case errors.As(err, &failure):
		a.markInitialized(false)
		return &lib.ScriptFailureError{Command: "Database initialization", Code: failure.Code}
	default:
		return err
	}
}

func (a *App) dropDB(ctx context.Context) error {
	a.ui.Banner("DROPPING THE KAHIIN DATABASE")

	a.ui.Errorf("WARNING: this action permanently deletes the database.")
	confirmation, err := a.prompt.ReadLine("Type '" + dropConfirmation + "' to continue: ")
	if err != nil {
		return err
	}
	if confirmation != dropConfirmation {
		a.ui.Println("\nDrop cancelled.")
		return nil
	}

	script := a.detector.Script(a.cfg.DBDir(), "dropDB")
	if err := script.Prepare(); err != nil {
		return err
	}

	a.ui.Successf("\nDropping with %s...", script.Name)
	err = a.runForeground(ctx, script.Command())
	var failure *lib.ScriptFailureError
	switch {
	case err == nil:
		a.ui.Successf("\nDatabase drop completed successfully.")
		a.markInitialized(false)
		return nil
	case errors.As(err, &failure):
		a.markInitialized(false)
		return &lib.ScriptFailureError{Command: "Database drop", Code: failure.Code}
	default:
		return err
	}
}
